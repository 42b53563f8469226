package bindgen

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseCType(t *testing.T) {
	tests := []struct {
		in   string
		want cType
	}{
		{"int", cType{Base: "int"}},
		{"unsigned long long", cType{Base: "unsigned long long"}},
		{"long int", cType{Base: "long"}},
		{"signed char", cType{Base: "signed char"}},
		{"signed int", cType{Base: "int"}},
		{"short unsigned int", cType{Base: "unsigned short"}},
		{"const char *", cType{Base: "char", Ptr: 1}},
		{"void **", cType{Base: "void", Ptr: 2}},
		{"struct CUctx_st *", cType{Base: "CUctx_st", Ptr: 1}},
		{"const CUpti_Foo *const", cType{Base: "CUpti_Foo", Ptr: 1}},
		{"char [16]", cType{Base: "char", Dims: []int64{16}}},
		{"uint32_t [2][3]", cType{Base: "uint32_t", Dims: []int64{2, 3}}},
		{"uint8_t []", cType{Base: "uint8_t", Dims: []int64{-1}}},
		{"void (*)(void *, int)", cType{FuncPtr: true}},
		{"CUpti_Outer::CUpti_Inner", cType{Base: "CUpti_Inner"}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, parseCType(tt.in)); diff != "" {
			t.Errorf("parseCType(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestGoExpr(t *testing.T) {
	e := &emitter{unit: &Unit{byName: map[string]Decl{}}}
	tests := []struct {
		in, want string
	}{
		{"void", ""},
		{"void *", "unsafe.Pointer"},
		{"void **", "*unsafe.Pointer"},
		{"const char *", "*byte"},
		{"size_t", "uintptr"},
		{"unsigned int", "uint32"},
		{"long", "int64"},
		{"uint64_t *", "*uint64"},
		{"CUpti_ActivityKind", "CUpti_ActivityKind"},
		{"struct CUctx_st *", "*CUctx_st"},
		{"char [16]", "[16]byte"},
		{"float [2][4]", "[2][4]float32"},
		{"void (*)(int)", "uintptr"},
	}
	for _, tt := range tests {
		if got := e.goType(tt.in); got != tt.want {
			t.Errorf("goType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if !e.needUnsafe {
		t.Fatal("expected unsafe import to be requested")
	}
}

func TestEnumUnderlying(t *testing.T) {
	tests := []struct {
		name string
		en   Enum
		want string
	}{
		{"empty", Enum{}, "uint32"},
		{"small", Enum{Constants: []EnumConst{{Value: 0}, {Value: 0x7fffffff}}}, "uint32"},
		{"negative", Enum{Constants: []EnumConst{{Value: -1}, {Value: 4}}}, "int32"},
		{"wide", Enum{Constants: []EnumConst{{Value: 1 << 40}}}, "uint64"},
		{"wide negative", Enum{Constants: []EnumConst{{Value: -1}, {Value: 1 << 33}}}, "int64"},
		{"negative over int32", Enum{Constants: []EnumConst{{Value: -1}, {Value: 0xffffffff}}}, "int64"},
		{"fixed", Enum{Fixed: "unsigned char", Constants: []EnumConst{{Value: 1}}}, "uint8"},
	}
	for _, tt := range tests {
		if got := enumUnderlying(&tt.en); got != tt.want {
			t.Errorf("%s: enumUnderlying = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestResultSpelling(t *testing.T) {
	tests := map[string]string{
		"CUptiResult (uint32_t *)":               "CUptiResult",
		"void (const char *, ...)":               "void",
		"const char *(CUptiResult) noexcept":     "const char *",
		"CUptiResult (void (*)(void *), void *)": "CUptiResult",
	}
	for in, want := range tests {
		if got := resultSpelling(in); got != want {
			t.Errorf("resultSpelling(%q) = %q, want %q", in, got, want)
		}
	}
}
