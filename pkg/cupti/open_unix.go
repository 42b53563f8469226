//go:build darwin || freebsd || linux

package cupti

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/ebitengine/purego"
	"golang.org/x/sys/unix"

	"github.com/samcharles93/cupti/internal/logger"
	"github.com/samcharles93/cupti/internal/toolkit"
	"github.com/samcharles93/cupti/pkg/cuptisys"
)

// Options controls how Open finds the library.
type Options struct {
	// Path loads this file and skips the search.
	Path string
	// Locator searches the toolkit; one reading the process environment is
	// used when nil.
	Locator *toolkit.Locator
	// Target defaults to the running platform.
	Target toolkit.Target
	Log    logger.Logger
}

var (
	bindMu    sync.Mutex
	bound     uintptr
	boundMiss []string
)

// Open loads libcupti and binds the cuptisys function variables to it. The
// bindings are process-wide: later calls reuse the first library.
func Open(opts Options) (*Library, error) {
	log := opts.Log
	if log == nil {
		log = logger.Discard()
	}

	path, searched, err := resolvePath(opts, log)
	if err != nil {
		return nil, err
	}

	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		if searched {
			return nil, fmt.Errorf("%w: %v", toolkit.ErrLibraryNotFound, err)
		}
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	bindMu.Lock()
	defer bindMu.Unlock()
	if bound == 0 {
		bound = handle
		boundMiss = cuptisys.RegisterFunctions(handle)
		if len(boundMiss) > 0 {
			log.Warn("libcupti lacks some entry points", "path", path, "missing", boundMiss)
		}
		log.Debug("libcupti bound", "path", path)
	} else if bound != handle {
		log.Warn("libcupti already bound to another library; reusing it", "path", path)
	}
	return &Library{path: path, missing: boundMiss}, nil
}

// resolvePath picks the file to load. searched is set when it falls back to
// the bare soname and leaves the search to the dynamic loader.
func resolvePath(opts Options, log logger.Logger) (path string, searched bool, err error) {
	if opts.Path != "" {
		if err := unix.Access(opts.Path, unix.R_OK); err != nil {
			return "", false, fmt.Errorf("open %s: %w", opts.Path, err)
		}
		return opts.Path, false, nil
	}

	loc := opts.Locator
	if loc == nil {
		loc = &toolkit.Locator{Log: log}
	}
	target := opts.Target
	if target == (toolkit.Target{}) {
		target = hostTarget()
	}

	m, err := loc.Probe(target)
	switch {
	case err != nil:
		log.Debug("probe found nothing; asking the dynamic loader", "error", err)
	case m.Static:
		log.Debug("only a static archive was found; asking the dynamic loader", "path", m.Path)
	case unix.Access(m.Path, unix.R_OK) != nil:
		log.Warn("libcupti is not readable; asking the dynamic loader", "path", m.Path)
	default:
		return m.Path, false, nil
	}
	if target.OS == "darwin" {
		return "libcupti.dylib", true, nil
	}
	return "libcupti.so", true, nil
}

// hostTarget describes the running process. The ABI comes from
// CUPTI_TARGET_ABI and defaults to gnu on Linux.
func hostTarget() toolkit.Target {
	abi := os.Getenv(toolkit.EnvTargetABI)
	if abi == "" {
		abi = "none"
		if runtime.GOOS == "linux" {
			abi = "gnu"
		}
	}
	return toolkit.Target{Arch: runtime.GOARCH, OS: runtime.GOOS, ABI: abi}
}

func cString(p *byte) string {
	if p == nil {
		return ""
	}
	return unix.BytePtrToString(p)
}
