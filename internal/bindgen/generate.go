package bindgen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"go/format"
	"os"

	"github.com/samcharles93/cupti/internal/logger"
)

// ErrFormat reports generated source that does not parse as Go. The raw
// output is left on disk for inspection.
var ErrFormat = errors.New("generated bindings do not parse")

// Generator runs one regeneration job.
type Generator struct {
	Spec   *BindingSpec
	Parser Parser
	Log    logger.Logger
}

// NewGenerator returns a Generator that parses with clang from PATH.
func NewGenerator(spec *BindingSpec, log logger.Logger) *Generator {
	if log == nil {
		log = logger.Discard()
	}
	return &Generator{Spec: spec, Parser: &Clang{Log: log}, Log: log}
}

// Run parses the header, emits the bindings and writes them to the output
// path, formatted unless Spec.Raw is set.
func (g *Generator) Run(ctx context.Context) (Stats, error) {
	log := g.Log
	if log == nil {
		log = logger.Discard()
	}
	spec := g.Spec
	if err := spec.Validate(); err != nil {
		return Stats{}, err
	}

	src, err := g.Parser.Parse(ctx, spec.Header, spec.ParserArgs)
	if err != nil {
		return Stats{}, err
	}
	root, err := DecodeAST(bytes.NewReader(src.AST))
	if err != nil {
		return Stats{}, fmt.Errorf("%s: %w", spec.Header, err)
	}
	unit := BuildUnit(root)
	unit.Macros = ParseMacros(src.Macros)
	log.Debug("header parsed", "header", spec.Header, "types", len(unit.Decls), "functions", len(unit.Functions), "macros", len(unit.Macros))

	raw, stats, err := Emit(unit, spec, log)
	if err != nil {
		return stats, err
	}
	if err := writeFile(spec.Output, raw); err != nil {
		return stats, err
	}
	if !spec.Raw {
		formatted, err := format.Source(raw)
		if err != nil {
			return stats, fmt.Errorf("%w: %s: %v", ErrFormat, spec.Output, err)
		}
		if err := writeFile(spec.Output, formatted); err != nil {
			return stats, err
		}
	}

	log.Info("bindings written",
		"output", spec.Output,
		"functions", stats.Functions,
		"types", stats.Types,
		"dependencies", stats.Dependencies,
		"constants", stats.Constants,
		"blocked", stats.Blocked,
	)
	return stats, nil
}

// writeFile never creates the parent directory; a missing one is an error.
func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
