package bindgen

import (
	"bufio"
	"bytes"
	"strconv"
	"strings"
)

// Macro is an object-like #define with a literal value.
type Macro struct {
	Name string
	// Value is a Go literal.
	Value string
}

// ParseMacros reads `clang -dM -E` output and keeps object-like macros whose
// body is a single integer or string literal.
func ParseMacros(data []byte) []Macro {
	var out []Macro
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		rest, ok := strings.CutPrefix(line, "#define ")
		if !ok {
			continue
		}
		name, body, _ := strings.Cut(rest, " ")
		if name == "" || strings.Contains(name, "(") {
			continue
		}
		if lit, ok := macroLiteral(strings.TrimSpace(body)); ok {
			out = append(out, Macro{Name: name, Value: lit})
		}
	}
	return out
}

func macroLiteral(body string) (string, bool) {
	for len(body) > 2 && body[0] == '(' && body[len(body)-1] == ')' {
		body = strings.TrimSpace(body[1 : len(body)-1])
	}
	if body == "" {
		return "", false
	}
	if body[0] == '"' {
		s, err := strconv.Unquote(body)
		if err != nil {
			return "", false
		}
		return strconv.Quote(s), true
	}
	if v, ok := parseIntLiteral(body); ok {
		return strconv.FormatInt(v, 10), true
	}
	if u, ok := parseUintLiteral(body); ok {
		return strconv.FormatUint(u, 10), true
	}
	return "", false
}

// parseIntLiteral accepts C integer literals: an optional sign, decimal, hex
// or octal digits, and any u/U/l/L suffix.
func parseIntLiteral(s string) (int64, bool) {
	s = strings.TrimRight(strings.TrimSpace(s), "uUlL")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseUintLiteral(s string) (uint64, bool) {
	s = strings.TrimRight(strings.TrimSpace(s), "uUlL")
	u, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, false
	}
	return u, true
}
