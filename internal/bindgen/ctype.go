package bindgen

import (
	"strconv"
	"strings"
)

// cType is a parsed C type spelling as clang prints it.
type cType struct {
	Base string
	Ptr  int
	// Dims are array extents, outermost first. -1 is an unsized array.
	Dims    []int64
	FuncPtr bool
}

type builtin struct {
	Go   string
	Size int64
}

var builtins = map[string]builtin{
	"void":               {"", 0},
	"char":               {"byte", 1},
	"signed char":        {"int8", 1},
	"unsigned char":      {"uint8", 1},
	"short":              {"int16", 2},
	"unsigned short":     {"uint16", 2},
	"int":                {"int32", 4},
	"unsigned":           {"uint32", 4},
	"unsigned int":       {"uint32", 4},
	"long":               {"int64", 8},
	"unsigned long":      {"uint64", 8},
	"long long":          {"int64", 8},
	"unsigned long long": {"uint64", 8},
	"float":              {"float32", 4},
	"double":             {"float64", 8},
	"bool":               {"bool", 1},
	"_Bool":              {"bool", 1},
	"wchar_t":            {"int32", 4},
	"size_t":             {"uintptr", 8},
	"uintptr_t":          {"uintptr", 8},
	"ssize_t":            {"int", 8},
	"ptrdiff_t":          {"int", 8},
	"intptr_t":           {"int", 8},
	"int8_t":             {"int8", 1},
	"uint8_t":            {"uint8", 1},
	"int16_t":            {"int16", 2},
	"uint16_t":           {"uint16", 2},
	"int32_t":            {"int32", 4},
	"uint32_t":           {"uint32", 4},
	"int64_t":            {"int64", 8},
	"uint64_t":           {"uint64", 8},
}

var qualifiers = map[string]bool{
	"const":      true,
	"volatile":   true,
	"restrict":   true,
	"__restrict": true,
	"struct":     true,
	"union":      true,
	"enum":       true,
	"class":      true,
}

func parseCType(s string) cType {
	s = strings.TrimSpace(s)
	var t cType
	if strings.Contains(s, "(") {
		t.FuncPtr = true
		return t
	}
	for strings.HasSuffix(s, "]") {
		open := strings.LastIndexByte(s, '[')
		if open < 0 {
			break
		}
		dim := int64(-1)
		if n, err := strconv.ParseInt(strings.TrimSpace(s[open+1:len(s)-1]), 0, 64); err == nil {
			dim = n
		}
		t.Dims = append([]int64{dim}, t.Dims...)
		s = strings.TrimSpace(s[:open])
	}
	t.Ptr = strings.Count(s, "*")
	s = strings.ReplaceAll(s, "*", " ")

	var words []string
	for _, w := range strings.Fields(s) {
		if qualifiers[w] {
			continue
		}
		if i := strings.LastIndex(w, "::"); i >= 0 {
			w = w[i+2:]
		}
		words = append(words, w)
	}
	t.Base = canonicalBuiltin(words)
	return t
}

// canonicalBuiltin folds the spellings C allows for one integer type.
func canonicalBuiltin(words []string) string {
	sized := false
	char := false
	for _, w := range words {
		switch w {
		case "short", "long":
			sized = true
		case "char":
			char = true
		}
	}
	var out []string
	unsigned := false
	for _, w := range words {
		switch {
		case w == "int" && sized:
		case w == "signed" && !char:
		case w == "unsigned":
			unsigned = true
		default:
			out = append(out, w)
		}
	}
	if unsigned {
		out = append([]string{"unsigned"}, out...)
	}
	if len(out) == 0 && len(words) > 0 {
		// "signed" alone
		return "int"
	}
	return strings.Join(out, " ")
}

func (t cType) builtin() (builtin, bool) {
	b, ok := builtins[t.Base]
	return b, ok
}

// stripTagKeyword drops a leading struct/union/enum keyword.
func stripTagKeyword(s string) string {
	for _, kw := range []string{"struct ", "union ", "enum ", "class "} {
		if rest, ok := strings.CutPrefix(s, kw); ok {
			return strings.TrimSpace(rest)
		}
	}
	return s
}

// namedRef returns the declaration name t refers to, if it is not a builtin.
func (t cType) namedRef() (string, bool) {
	if t.FuncPtr || t.Base == "" {
		return "", false
	}
	if _, ok := t.builtin(); ok {
		return "", false
	}
	return t.Base, true
}
