package toolkit

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func testPlan() Plan {
	return (&Locator{Getenv: envMap(map[string]string{EnvCUDAPath: "/opt/my cuda"})}).Locate(linuxGNU)
}

func TestRenderFlags(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, testPlan(), FormatFlags, RenderOptions{}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := strings.TrimSpace(buf.String())
	if !strings.HasPrefix(out, "'-L/opt/my cuda/targets/x86_64-linux/lib' ") {
		t.Fatalf("expected quoted first flag, got %q", out)
	}
	if !strings.HasSuffix(out, " -lcupti") {
		t.Fatalf("expected -lcupti last, got %q", out)
	}
}

func TestRenderEnv(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, testPlan(), FormatEnv, RenderOptions{}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "CGO_LDFLAGS='") {
		t.Fatalf("unexpected env output %q", out)
	}
	if !strings.Contains(out, `'\''-L/opt/my cuda/lib64'\''`) {
		t.Fatalf("expected nested quotes to be escaped, got %q", out)
	}
}

func TestRenderCgo(t *testing.T) {
	var buf bytes.Buffer
	opts := RenderOptions{Package: "cuptisys", BuildTag: "cupti_link"}
	if err := Render(&buf, testPlan(), FormatCgo, opts); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"// Code generated by cuptilocate for x86_64-linux-gnu; DO NOT EDIT.",
		"//go:build cupti_link",
		"package cuptisys",
		"// #cgo LDFLAGS: ",
		"-L/usr/local/cuda/lib64",
		"-lcupti\n",
		`import "C"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("cgo output missing %q:\n%s", want, out)
		}
	}

	if err := Render(&bytes.Buffer{}, testPlan(), FormatCgo, RenderOptions{}); err == nil {
		t.Fatal("expected error without package name")
	}
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, testPlan(), FormatJSON, RenderOptions{}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	var decoded struct {
		Target  Target `json:"target"`
		Library string `json:"library"`
		Search  []struct {
			Dir    string `json:"dir"`
			Source string `json:"source"`
		} `json:"search"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode: %v\n%s", err, buf.String())
	}
	if decoded.Library != "cupti" || decoded.Target != linuxGNU {
		t.Fatalf("unexpected plan header %+v", decoded)
	}
	if len(decoded.Search) != 8 || decoded.Search[0].Source != "env" || decoded.Search[7].Source != "convention" {
		t.Fatalf("unexpected search list %+v", decoded.Search)
	}
}

func TestRenderQuotesApostrophe(t *testing.T) {
	plan := (&Locator{Getenv: envMap(map[string]string{EnvCUDAPath: "/opt/o'brien cuda"})}).Locate(linuxGNU)

	var flags bytes.Buffer
	if err := Render(&flags, plan, FormatFlags, RenderOptions{}); err != nil {
		t.Fatalf("Render flags: %v", err)
	}
	if !strings.HasPrefix(flags.String(), `"-L/opt/o'brien cuda/targets/x86_64-linux/lib" `) {
		t.Fatalf("expected double-quoted flag, got %q", flags.String())
	}

	var env bytes.Buffer
	if err := Render(&env, plan, FormatEnv, RenderOptions{}); err != nil {
		t.Fatalf("Render env: %v", err)
	}
	if !strings.Contains(env.String(), `"-L/opt/o'\''brien cuda/lib64"`) {
		t.Fatalf("expected shell-escaped apostrophe, got %q", env.String())
	}

	var cgo bytes.Buffer
	if err := Render(&cgo, plan, FormatCgo, RenderOptions{Package: "cuptisys"}); err != nil {
		t.Fatalf("Render cgo: %v", err)
	}
	if !strings.Contains(cgo.String(), `// #cgo LDFLAGS: "-L/opt/o'brien cuda/targets/x86_64-linux/lib" `) {
		t.Fatalf("unexpected cgo directive:\n%s", cgo.String())
	}
}

func TestRenderCgoEscapesBackslash(t *testing.T) {
	plan := (&Locator{Getenv: envMap(map[string]string{EnvCUDAPath: `/opt/a\b`})}).Locate(linuxGNU)
	var buf bytes.Buffer
	if err := Render(&buf, plan, FormatCgo, RenderOptions{Package: "cuptisys"}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(buf.String(), `-L/opt/a\\b/lib64 `) {
		t.Fatalf("expected doubled backslash:\n%s", buf.String())
	}
}

func TestRenderRejectsUnquotableRoot(t *testing.T) {
	plan := (&Locator{Getenv: envMap(map[string]string{EnvCUDAPath: `/opt/it's "cuda"`})}).Locate(linuxGNU)
	for _, f := range []string{FormatFlags, FormatEnv, FormatCgo} {
		err := Render(&bytes.Buffer{}, plan, f, RenderOptions{Package: "cuptisys"})
		if !errors.Is(err, ErrUnquotable) {
			t.Errorf("%s: expected ErrUnquotable, got %v", f, err)
		}
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	err := Render(&bytes.Buffer{}, testPlan(), "toml", RenderOptions{})
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Fatalf("expected unknown format error, got %v", err)
	}
}
