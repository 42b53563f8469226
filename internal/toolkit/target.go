package toolkit

import (
	"errors"
	"fmt"
	"strings"
)

// Environment variables supplied by the build orchestrator. go generate
// exports GOARCH and GOOS; the ABI has no Go equivalent and must be set.
const (
	EnvTargetArch = "GOARCH"
	EnvTargetOS   = "GOOS"
	EnvTargetABI  = "CUPTI_TARGET_ABI"
)

// ErrMissingTarget reports an absent target triple component.
var ErrMissingTarget = errors.New("missing target triple")

// Target identifies the platform the library is linked for.
type Target struct {
	Arch string `json:"arch"`
	OS   string `json:"os"`
	ABI  string `json:"abi"`
}

// TargetFromEnv reads the target triple. Every component is mandatory.
func TargetFromEnv(getenv func(string) string) (Target, error) {
	t := Target{
		Arch: strings.TrimSpace(getenv(EnvTargetArch)),
		OS:   strings.TrimSpace(getenv(EnvTargetOS)),
		ABI:  strings.TrimSpace(getenv(EnvTargetABI)),
	}
	return t, t.Validate()
}

// Validate names the first missing component.
func (t Target) Validate() error {
	switch {
	case t.Arch == "":
		return fmt.Errorf("%w: architecture (%s) is not set", ErrMissingTarget, EnvTargetArch)
	case t.OS == "":
		return fmt.Errorf("%w: operating system (%s) is not set", ErrMissingTarget, EnvTargetOS)
	case t.ABI == "":
		return fmt.Errorf("%w: ABI (%s) is not set", ErrMissingTarget, EnvTargetABI)
	}
	return nil
}

func (t Target) String() string {
	return t.Arch + "-" + t.OS + "-" + t.ABI
}

// TargetsLibDir is the toolkit-relative "targets/{arch}-{os}/lib" segment.
func (t Target) TargetsLibDir() string {
	return "targets/" + toolkitArch(t.Arch) + "-" + t.OS + "/lib"
}

// MultiarchTuple returns the Debian-style "{arch}-{os}-{abi}" directory name,
// or "" unless the target is GNU/Linux.
func (t Target) MultiarchTuple() string {
	if t.OS != "linux" || !isGNU(t.ABI) {
		return ""
	}
	return multiarchArch(t.Arch) + "-" + t.OS + "-" + t.ABI
}

func isGNU(abi string) bool {
	return strings.HasPrefix(abi, "gnu")
}

// toolkitArch maps GOARCH names onto the names CUDA uses under targets/.
func toolkitArch(arch string) string {
	switch arch {
	case "amd64":
		return "x86_64"
	case "arm64":
		return "aarch64"
	case "386":
		return "i386"
	default:
		return arch
	}
}

func multiarchArch(arch string) string {
	switch arch {
	case "ppc64le":
		return "powerpc64le"
	default:
		return toolkitArch(arch)
	}
}
