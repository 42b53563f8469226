package toolkit

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"io"
	"strings"

	"github.com/goccy/go-json"
)

// Output formats understood by Render.
const (
	FormatLines = "lines"
	FormatFlags = "flags"
	FormatEnv   = "env"
	FormatCgo   = "cgo"
	FormatJSON  = "json"
)

// Formats lists the accepted output formats.
func Formats() []string {
	return []string{FormatLines, FormatFlags, FormatEnv, FormatCgo, FormatJSON}
}

// RenderOptions configures the cgo format; other formats ignore it.
type RenderOptions struct {
	Package  string
	BuildTag string
}

// Render writes the plan in the requested format.
func Render(w io.Writer, plan Plan, formatName string, opts RenderOptions) error {
	var buf bytes.Buffer
	switch formatName {
	case FormatLines, "":
		for _, d := range plan.Directives() {
			buf.WriteString(d.String())
			buf.WriteByte('\n')
		}
	case FormatFlags, FormatEnv:
		flags, err := quoteAll(plan.LDFlags(), false)
		if err != nil {
			return err
		}
		line := strings.Join(flags, " ")
		if formatName == FormatEnv {
			line = "CGO_LDFLAGS=" + shellQuote(line)
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
	case FormatCgo:
		src, err := cgoSource(plan, opts)
		if err != nil {
			return err
		}
		buf.Write(src)
	case FormatJSON:
		b, err := json.MarshalIndent(plan, "", "  ")
		if err != nil {
			return fmt.Errorf("encode plan: %w", err)
		}
		buf.Write(b)
		buf.WriteByte('\n')
	default:
		return fmt.Errorf("unknown format %q (expected one of %s)", formatName, strings.Join(Formats(), ", "))
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func cgoSource(plan Plan, opts RenderOptions) ([]byte, error) {
	pkg := opts.Package
	if pkg == "" {
		return nil, fmt.Errorf("cgo format needs a package name")
	}
	flags, err := quoteAll(plan.LDFlags(), true)
	if err != nil {
		return nil, err
	}
	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by cuptilocate for %s; DO NOT EDIT.\n", plan.Target)
	fmt.Fprintf(&b, "// Regenerate when %s change.\n\n", strings.Join(plan.Watch, ", "))
	if opts.BuildTag != "" {
		fmt.Fprintf(&b, "//go:build %s\n\n", opts.BuildTag)
	}
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	fmt.Fprintf(&b, "// #cgo LDFLAGS: %s\n", strings.Join(flags, " "))
	b.WriteString("import \"C\"\n")

	src, err := format.Source(b.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format cgo source: %w", err)
	}
	return src, nil
}

// ErrUnquotable reports a flag holding both quote characters, which
// CGO_LDFLAGS cannot carry as one argument.
var ErrUnquotable = errors.New("flag cannot be quoted")

// quoteAll quotes flags that would otherwise be split or unquoted. cgo
// directives and CGO_LDFLAGS share the quote rules, but only directives
// treat a backslash as an escape.
func quoteAll(flags []string, directive bool) ([]string, error) {
	out := make([]string, len(flags))
	for i, f := range flags {
		if directive {
			f = strings.ReplaceAll(f, `\`, `\\`)
		}
		switch {
		case !strings.ContainsAny(f, " \t\n'\""):
		case !strings.Contains(f, "'"):
			f = "'" + f + "'"
		case !strings.Contains(f, `"`):
			f = `"` + f + `"`
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnquotable, flags[i])
		}
		out[i] = f
	}
	return out, nil
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
