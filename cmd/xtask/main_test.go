package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/samcharles93/cupti/internal/bindgen"
	"github.com/samcharles93/cupti/internal/logger"
)

const headerAST = `{"id":"0x1","kind":"TranslationUnitDecl","inner":[
	{"id":"0x2","kind":"FunctionDecl","name":"cuptiActivityEnable","type":{"qualType":"int (int)"},"inner":[
		{"id":"0x3","kind":"ParmVarDecl","name":"kind","type":{"qualType":"int"}}
	]},
	{"id":"0x4","kind":"FunctionDecl","name":"cuInit","type":{"qualType":"int (unsigned int)"},"inner":[
		{"id":"0x5","kind":"ParmVarDecl","name":"flags","type":{"qualType":"unsigned int"}}
	]},
	{"id":"0x6","kind":"FunctionDecl","name":"cuptiGetVersion","type":{"qualType":"int (unsigned int *)"},"inner":[
		{"id":"0x7","kind":"ParmVarDecl","name":"version","type":{"qualType":"unsigned int *"}}
	]}
]}`

type stubParser struct {
	header string
	args   []string
	err    error
}

func (p *stubParser) Parse(_ context.Context, header string, args []string) (*bindgen.Source, error) {
	p.header, p.args = header, args
	if p.err != nil {
		return nil, p.err
	}
	return &bindgen.Source{AST: []byte(headerAST)}, nil
}

func useParser(t *testing.T, p *stubParser) {
	t.Helper()
	prev := newParser
	newParser = func(logger.Logger) bindgen.Parser { return p }
	t.Cleanup(func() { newParser = prev })
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := newApp(&stdout, &stderr).Run(context.Background(), append([]string{"xtask"}, args...))
	return stdout.String(), stderr.String(), err
}

func TestRegenerate(t *testing.T) {
	p := &stubParser{}
	useParser(t, p)
	dir := filepath.Join(t.TempDir(), "cuptisys")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "zz_cupti_gen.go")

	_, _, err := run(t, "regenerate", "--log-format", "text", "-o", out, "cupti.h", "--", "-I/usr/local/cuda/include")
	if err != nil {
		t.Fatalf("regenerate: %v", err)
	}
	if p.header != "cupti.h" {
		t.Fatalf("header = %q", p.header)
	}
	if diff := cmp.Diff([]string{"-x", "c++", "-I/usr/local/cuda/include"}, p.args); diff != "" {
		t.Fatalf("parser args mismatch (-want +got):\n%s", diff)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	src := string(data)
	if !strings.Contains(src, "package cuptisys") {
		t.Fatalf("missing package clause:\n%s", src)
	}
	if !strings.Contains(src, `"cuptiActivityEnable"`) || !strings.Contains(src, `"cuptiGetVersion"`) {
		t.Fatalf("admitted functions missing:\n%s", src)
	}
	if strings.Contains(src, "cuInit") {
		t.Fatalf("blocked function emitted:\n%s", src)
	}
}

func TestRegenerateRequiresOutput(t *testing.T) {
	useParser(t, &stubParser{})
	if _, _, err := run(t, "regenerate", "cupti.h"); err == nil {
		t.Fatal("expected error without --output")
	}
}

func TestRegenerateRequiresHeader(t *testing.T) {
	useParser(t, &stubParser{})
	_, _, err := run(t, "regenerate", "-o", filepath.Join(t.TempDir(), "out.go"))
	if err == nil || !strings.Contains(err.Error(), "header") {
		t.Fatalf("expected missing header error, got %v", err)
	}
}

func TestRegenerateParserFailure(t *testing.T) {
	parseErr := errors.New("clang exploded")
	useParser(t, &stubParser{err: parseErr})
	out := filepath.Join(t.TempDir(), "out.go")
	_, _, err := run(t, "regenerate", "-o", out, "cupti.h")
	if !errors.Is(err, parseErr) {
		t.Fatalf("expected parser error, got %v", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Fatal("output should not exist after a parser failure")
	}
}

func TestRegenerateRejectsUnknownFlags(t *testing.T) {
	useParser(t, &stubParser{})
	out := filepath.Join(t.TempDir(), "out.go")
	for _, flag := range []string{"--package=cuptisys", "--clang=/usr/bin/clang"} {
		if _, _, err := run(t, "regenerate", "-o", out, flag, "cupti.h"); err == nil {
			t.Errorf("expected %s to be rejected", flag)
		}
	}
}

func TestRegenerateMissingOutputDir(t *testing.T) {
	useParser(t, &stubParser{})
	out := filepath.Join(t.TempDir(), "missing", "zz_cupti_gen.go")
	_, _, err := run(t, "regenerate", "-o", out, "cupti.h")
	if err == nil || !strings.Contains(err.Error(), out) {
		t.Fatalf("expected error naming %s, got %v", out, err)
	}
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "xtask ") {
		t.Fatalf("unexpected version output %q", out)
	}
}
