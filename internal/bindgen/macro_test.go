package bindgen

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseMacros(t *testing.T) {
	data := []byte(`#define _CUPTI_H_ 
#define CUPTI_API_VERSION 130000
#define CUPTI_TIMESTAMP_UNKNOWN (0LL)
#define CUPTI_HEX 0x1Fu
#define CUPTI_NEG (-4)
#define CUPTI_MAX(a,b) ((a) > (b) ? (a) : (b))
#define CUPTI_EVENT_OVERFLOW ((uint64_t)0xFFFFFFFFFFFFFFFFULL)
#define CUPTI_ALL_BITS 0xFFFFFFFFFFFFFFFFULL
#define CUPTI_VERSION_STRING "13.0"
not a define
`)
	want := []Macro{
		{Name: "CUPTI_API_VERSION", Value: "130000"},
		{Name: "CUPTI_TIMESTAMP_UNKNOWN", Value: "0"},
		{Name: "CUPTI_HEX", Value: "31"},
		{Name: "CUPTI_NEG", Value: "-4"},
		{Name: "CUPTI_ALL_BITS", Value: "18446744073709551615"},
		{Name: "CUPTI_VERSION_STRING", Value: `"13.0"`},
	}
	if diff := cmp.Diff(want, ParseMacros(data)); diff != "" {
		t.Fatalf("macros mismatch (-want +got):\n%s", diff)
	}
}

func TestParseIntLiteral(t *testing.T) {
	tests := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"0", 0, true},
		{"42u", 42, true},
		{"0x10UL", 16, true},
		{"010", 8, true},
		{"-1", -1, true},
		{"0xFFFFFFFFFFFFFFFF", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseIntLiteral(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("parseIntLiteral(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
