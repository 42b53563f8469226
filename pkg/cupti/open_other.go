//go:build !(darwin || freebsd || linux)

package cupti

import (
	"errors"
	"unsafe"

	"github.com/samcharles93/cupti/internal/logger"
	"github.com/samcharles93/cupti/internal/toolkit"
)

type Options struct {
	Path    string
	Locator *toolkit.Locator
	Target  toolkit.Target
	Log     logger.Logger
}

// Open is not supported on this platform.
func Open(Options) (*Library, error) {
	return nil, errors.ErrUnsupported
}

func cString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return unsafe.String(p, n)
}
