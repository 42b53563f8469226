package bindgen

import (
	"fmt"
	"regexp"
)

// Filter decides which declarations reach the output. Allow applies to every
// declaration; Block applies to functions only and wins over Allow.
type Filter struct {
	allow *regexp.Regexp
	block *regexp.Regexp
}

// NewFilter compiles the patterns. An empty block pattern blocks nothing.
func NewFilter(allow, block string) (*Filter, error) {
	a, err := regexp.Compile(allow)
	if err != nil {
		return nil, fmt.Errorf("%w: allow pattern: %v", ErrSpec, err)
	}
	f := &Filter{allow: a}
	if block != "" {
		if f.block, err = regexp.Compile(block); err != nil {
			return nil, fmt.Errorf("%w: block pattern: %v", ErrSpec, err)
		}
	}
	return f, nil
}

// Allowed reports whether name matches the allow pattern.
func (f *Filter) Allowed(name string) bool {
	return f.allow.MatchString(name)
}

// Blocked reports whether a function called name is excluded.
func (f *Filter) Blocked(name string) bool {
	return f.block != nil && f.block.MatchString(name)
}

// AdmitFunction applies both patterns.
func (f *Filter) AdmitFunction(name string) bool {
	return f.Allowed(name) && !f.Blocked(name)
}
