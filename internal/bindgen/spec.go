package bindgen

import (
	_ "embed"
	"errors"
	"fmt"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

//go:embed policy.yaml
var defaultPolicy []byte

// ErrSpec reports an unusable BindingSpec.
var ErrSpec = errors.New("invalid binding spec")

// TraitSet says what a generated type supports.
//
//   - Copy: the value may be copied. When false the struct carries a leading
//     noCopy marker so go vet flags copies.
//   - Debug: enum types get a String method.
//   - Default: complete structs get a DefaultX constructor.
type TraitSet struct {
	Copy    bool `yaml:"copy"`
	Debug   bool `yaml:"debug"`
	Default bool `yaml:"default"`
}

// TraitRule applies to names ending in Suffix.
type TraitRule struct {
	Suffix   string `yaml:"suffix"`
	TraitSet `yaml:",inline"`
}

// TraitPolicy decides the traits of types pulled in as dependencies of
// admitted declarations. Admitted declarations always get every trait.
type TraitPolicy struct {
	Fallback TraitSet    `yaml:"default"`
	Rules    []TraitRule `yaml:"suffixes"`
}

// For returns the first rule matching name, or the fallback.
func (p TraitPolicy) For(name string) TraitSet {
	for _, r := range p.Rules {
		if strings.HasSuffix(name, r.Suffix) {
			return r.TraitSet
		}
	}
	return p.Fallback
}

// AllTraits is what admitted declarations get.
var AllTraits = TraitSet{Copy: true, Debug: true, Default: true}

// BindingSpec configures one regeneration job.
type BindingSpec struct {
	Header string `yaml:"-"`
	Output string `yaml:"-"`
	// Package is the package clause of the output; derived from Output when empty.
	Package string `yaml:"-"`
	// ParserArgs are passed to the header parser before any caller arguments.
	ParserArgs     []string    `yaml:"parser_args"`
	Allow          string      `yaml:"allow"`
	BlockFunctions string      `yaml:"block_functions"`
	Traits         TraitPolicy `yaml:"traits"`
	// Raw skips the parse-and-reformat pass.
	Raw bool `yaml:"-"`
}

// DefaultSpec returns the embedded CUPTI policy with the given paths and extra
// parser arguments.
func DefaultSpec(header, output string, extraArgs ...string) (*BindingSpec, error) {
	spec, err := ParseSpec(defaultPolicy)
	if err != nil {
		return nil, err
	}
	spec.Header = header
	spec.Output = output
	spec.ParserArgs = append(spec.ParserArgs, extraArgs...)
	return spec, nil
}

// ParseSpec decodes a YAML policy document.
func ParseSpec(data []byte) (*BindingSpec, error) {
	var spec BindingSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSpec, err)
	}
	if spec.Allow == "" {
		return nil, fmt.Errorf("%w: allow pattern is empty", ErrSpec)
	}
	return &spec, nil
}

// Validate checks the paths and patterns.
func (s *BindingSpec) Validate() error {
	if strings.TrimSpace(s.Header) == "" {
		return fmt.Errorf("%w: header path is empty", ErrSpec)
	}
	if strings.TrimSpace(s.Output) == "" {
		return fmt.Errorf("%w: output path is empty", ErrSpec)
	}
	if _, err := NewFilter(s.Allow, s.BlockFunctions); err != nil {
		return err
	}
	if s.Package != "" && !isIdent(s.Package) {
		return fmt.Errorf("%w: %q is not a valid package name", ErrSpec, s.Package)
	}
	return nil
}

// PackageName returns Package, or the package of the existing Go files next
// to Output, or a name derived from Output's directory.
func (s *BindingSpec) PackageName() string {
	if s.Package != "" {
		return s.Package
	}
	dir := filepath.Dir(s.Output)
	if name := existingPackage(dir, filepath.Base(s.Output)); name != "" {
		return name
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	var b strings.Builder
	for _, r := range strings.ToLower(filepath.Base(abs)) {
		if r == '_' || unicode.IsLetter(r) || (unicode.IsDigit(r) && b.Len() > 0) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "cuptisys"
	}
	return b.String()
}

func existingPackage(dir, skip string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}
	fset := token.NewFileSet()
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == skip || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.PackageClauseOnly)
		if err == nil {
			return f.Name.Name
		}
	}
	return ""
}

func isIdent(s string) bool {
	if s == "" || token.IsKeyword(s) {
		return false
	}
	return token.IsIdentifier(s)
}
