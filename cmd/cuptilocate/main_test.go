package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samcharles93/cupti/internal/toolkit"
)

func clearToolkitEnv(t *testing.T) {
	t.Helper()
	for _, v := range toolkit.RootVars() {
		t.Setenv(v, "")
	}
	t.Setenv(toolkit.EnvLibDir, "")
	t.Setenv(toolkit.EnvTargetArch, "")
	t.Setenv(toolkit.EnvTargetOS, "")
	t.Setenv(toolkit.EnvTargetABI, "")
	t.Setenv("GOPACKAGE", "")

	cfgDir := t.TempDir()
	prev := userConfigDir
	userConfigDir = func() (string, error) { return cfgDir, nil }
	t.Cleanup(func() { userConfigDir = prev })
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := newApp(&stdout, &stderr).Run(context.Background(), append([]string{"cuptilocate"}, args...))
	return stdout.String(), stderr.String(), err
}

func TestLocateFromEnvironment(t *testing.T) {
	clearToolkitEnv(t)
	t.Setenv(toolkit.EnvTargetArch, "amd64")
	t.Setenv(toolkit.EnvTargetOS, "linux")
	t.Setenv(toolkit.EnvTargetABI, "gnu")
	t.Setenv(toolkit.EnvCUDAPath, "/opt/foo")

	out, _, err := run(t, "--prefix", t.TempDir())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, want := range []string{
		"link-search=native=/opt/foo/targets/x86_64-linux/lib\n",
		"link-search=native=/opt/foo/lib64\n",
		"link-search=native=/opt/foo/lib\n",
		"link-search=native=/opt/foo/lib/x86_64-linux-gnu\n",
		"link-lib=dylib=cupti\n",
		"rerun-if-env-changed=CUDA_PATH\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if n := strings.Count(out, "link-lib="); n != 1 {
		t.Errorf("expected one link-lib directive, got %d", n)
	}
}

func TestLocateMissingTargetIsFatal(t *testing.T) {
	clearToolkitEnv(t)
	t.Setenv(toolkit.EnvTargetArch, "amd64")
	t.Setenv(toolkit.EnvTargetOS, "linux")

	out, _, err := run(t)
	if !errors.Is(err, toolkit.ErrMissingTarget) {
		t.Fatalf("expected ErrMissingTarget, got %v", err)
	}
	if out != "" {
		t.Fatalf("expected no directives on failure, got %q", out)
	}
}

func TestLocateFlagsOverrideEnvironment(t *testing.T) {
	clearToolkitEnv(t)
	t.Setenv(toolkit.EnvTargetArch, "amd64")
	t.Setenv(toolkit.EnvTargetOS, "linux")
	t.Setenv(toolkit.EnvTargetABI, "gnu")

	out, _, err := run(t, "--arch", "arm64", "--abi", "musl", "--prefix", "/p", "--format", "flags")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "-L/p/targets/aarch64-linux/lib -L/p/lib64 -L/p/lib -lcupti\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestLocateStrictFailsWithoutLibrary(t *testing.T) {
	clearToolkitEnv(t)
	if _, err := (&toolkit.Locator{}).Probe(toolkit.Target{Arch: "x86_64", OS: "linux", ABI: "musl"}); err == nil {
		t.Skip("host has libcupti in a system directory")
	}

	_, _, err := run(t, "--arch", "x86_64", "--os", "linux", "--abi", "musl", "--prefix", t.TempDir(), "--strict")
	if !errors.Is(err, toolkit.ErrLibraryNotFound) {
		t.Fatalf("expected ErrLibraryNotFound, got %v", err)
	}

	_, stderr, err := run(t, "--arch", "x86_64", "--os", "linux", "--abi", "musl", "--prefix", t.TempDir(), "--log-format", "text")
	if err != nil {
		t.Fatalf("non-strict run should succeed: %v", err)
	}
	if !strings.Contains(stderr, "deferring to the linker") {
		t.Fatalf("expected a warning, got %q", stderr)
	}
}

func TestLocateWritesCgoFile(t *testing.T) {
	clearToolkitEnv(t)
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "lib64"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "lib64", "libcupti.so"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(toolkit.EnvCUDAHome, root)
	t.Setenv("GOPACKAGE", "cuptisys")

	dst := filepath.Join(t.TempDir(), "zz_link_gen.go")
	_, _, err := run(t, "--arch", "amd64", "--os", "linux", "--abi", "gnu", "--strict",
		"--format", "cgo", "--tags", "cupti_link", "-o", dst)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	src := string(data)
	if !strings.Contains(src, "package cuptisys") || !strings.Contains(src, "-L"+filepath.Join(root, "lib64")) {
		t.Fatalf("unexpected cgo file:\n%s", src)
	}
}

func TestLocateConfigFile(t *testing.T) {
	clearToolkitEnv(t)
	cfg := filepath.Join(t.TempDir(), "locate.yaml")
	body := "prefix: /cfg/cuda\nextra_roots:\n  - /cfg/extra\nsource_dir: third_party/cupti\nformat: flags\n"
	if err := os.WriteFile(cfg, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := run(t, "--config", cfg, "--arch", "x86_64", "--os", "windows", "--abi", "msvc")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "-L/cfg/extra/targets/x86_64-windows/lib -L/cfg/extra/lib64 -L/cfg/extra/lib " +
		"-L/cfg/cuda/targets/x86_64-windows/lib -L/cfg/cuda/lib64 -L/cfg/cuda/lib -lcupti\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}

	out, _, err = run(t, "--config", cfg, "--arch", "x86_64", "--os", "windows", "--abi", "msvc", "--format", "lines", "--prefix", "/flag")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, "link-search=native=/flag/lib64") || !strings.Contains(out, "rerun-if-changed="+cfg) {
		t.Fatalf("flags should beat config and the file should be watched:\n%s", out)
	}
	if !strings.Contains(out, "rerun-if-changed=third_party/cupti\n") {
		t.Fatalf("configured source dir should be watched:\n%s", out)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	clearToolkitEnv(t)
	cfg, path, err := loadConfig("")
	if err != nil || path != "" || len(cfg.ExtraRoots) != 0 {
		t.Fatalf("missing default config should be ignored: %+v %q %v", cfg, path, err)
	}
	if _, _, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("missing explicit config should be an error")
	}
}
