package bindgen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/samcharles93/cupti/internal/logger"
)

// ErrParse reports a header the parser could not process.
var ErrParse = errors.New("parse header")

// Source is what a Parser extracts from a header.
type Source struct {
	// AST is a clang JSON AST dump.
	AST []byte
	// Macros is `-dM -E` output. May be empty.
	Macros []byte
}

// Parser turns a header into a Source.
type Parser interface {
	Parse(ctx context.Context, header string, args []string) (*Source, error)
}

// Clang runs the clang driver.
type Clang struct {
	// Path of the clang binary; "clang" from PATH when empty.
	Path string
	Log  logger.Logger
}

func (c *Clang) binary() string {
	if c.Path != "" {
		return c.Path
	}
	return "clang"
}

func (c *Clang) Parse(ctx context.Context, header string, args []string) (*Source, error) {
	ast, err := c.run(ctx, header, args, "-Xclang", "-ast-dump=json", "-fsyntax-only")
	if err != nil {
		return nil, err
	}
	macros, err := c.run(ctx, header, args, "-dM", "-E")
	if err != nil {
		return nil, err
	}
	return &Source{AST: ast, Macros: macros}, nil
}

func (c *Clang) run(ctx context.Context, header string, args []string, mode ...string) ([]byte, error) {
	argv := make([]string, 0, len(args)+len(mode)+1)
	argv = append(argv, args...)
	argv = append(argv, mode...)
	argv = append(argv, header)

	if c.Log != nil {
		c.Log.Debug("running header parser", "bin", c.binary(), "args", strings.Join(argv, " "))
	}
	cmd := exec.CommandContext(ctx, c.binary(), argv...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w %s: %v: %s", ErrParse, header, err, lastLines(stderr.String(), 5))
	}
	return stdout.Bytes(), nil
}

func lastLines(s string, n int) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "; ")
}
