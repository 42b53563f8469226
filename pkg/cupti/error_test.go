package cupti

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/samcharles93/cupti/pkg/cuptisys"
)

func TestCheck(t *testing.T) {
	if err := check(cuptisys.CUPTI_SUCCESS); err != nil {
		t.Fatalf("success should not be an error: %v", err)
	}
	err := check(cuptisys.CUPTI_ERROR_NOT_INITIALIZED)
	if !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
	wrapped := fmt.Errorf("start session: %w", err)
	if !errors.Is(wrapped, ErrNotInitialized) {
		t.Fatal("errors.Is should see through wrapping")
	}
	var ce Error
	if !errors.As(wrapped, &ce) || ce.Code() != uint32(cuptisys.CUPTI_ERROR_NOT_INITIALIZED) {
		t.Fatalf("errors.As gave %v", ce)
	}
	if errors.Is(err, ErrNotReady) {
		t.Fatal("distinct codes must not match")
	}
}

func TestErrorName(t *testing.T) {
	tests := []struct {
		err  Error
		want string
	}{
		{ErrInvalidParameter, "CUPTI_ERROR_INVALID_PARAMETER"},
		{ErrInsufficientPrivileges, "CUPTI_ERROR_INSUFFICIENT_PRIVILEGES"},
		{ErrUnknown, "CUPTI_ERROR_UNKNOWN"},
		{Error(4242), "CUptiResult(4242)"},
	}
	for _, tt := range tests {
		if got := tt.err.Name(); got != tt.want {
			t.Errorf("Name() = %q, want %q", got, tt.want)
		}
	}
}

func TestErrorStringWithoutLibrary(t *testing.T) {
	if cuptisys.CuptiGetErrorMessage != nil {
		t.Skip("libcupti is bound")
	}
	got := ErrNotInitialized.Error()
	want := "cupti: error code 15 (CUPTI_ERROR_NOT_INITIALIZED)"
	if got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestUnboundCalls(t *testing.T) {
	if cuptisys.CuptiGetVersion != nil {
		t.Skip("libcupti is bound")
	}
	lib := &Library{}
	if _, err := lib.Version(); !errors.Is(err, ErrUnavailable) || !strings.Contains(err.Error(), "cuptiGetVersion") {
		t.Fatalf("Version: %v", err)
	}
	if err := lib.EnableActivity(ActivityKindKernel); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("EnableActivity: %v", err)
	}
	if err := lib.FlushAll(true); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("FlushAll: %v", err)
	}
	if _, err := lib.InitializeProfiler(); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("InitializeProfiler: %v", err)
	}
	if _, err := ResultString(0); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("ResultString: %v", err)
	}

	p := &Profiler{}
	first := p.Close()
	if !errors.Is(first, ErrUnavailable) {
		t.Fatalf("Close: %v", first)
	}
	if second := p.Close(); second != first {
		t.Fatalf("second Close returned %v, want %v", second, first)
	}
}
