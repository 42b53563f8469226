package cupti

import (
	"sync"

	"github.com/samcharles93/cupti/pkg/cuptisys"
)

// ActivityKind selects a class of activity records.
type ActivityKind = cuptisys.CUpti_ActivityKind

const (
	ActivityKindMemcpy           = cuptisys.CUPTI_ACTIVITY_KIND_MEMCPY
	ActivityKindMemset           = cuptisys.CUPTI_ACTIVITY_KIND_MEMSET
	ActivityKindKernel           = cuptisys.CUPTI_ACTIVITY_KIND_KERNEL
	ActivityKindDriver           = cuptisys.CUPTI_ACTIVITY_KIND_DRIVER
	ActivityKindRuntime          = cuptisys.CUPTI_ACTIVITY_KIND_RUNTIME
	ActivityKindDevice           = cuptisys.CUPTI_ACTIVITY_KIND_DEVICE
	ActivityKindContext          = cuptisys.CUPTI_ACTIVITY_KIND_CONTEXT
	ActivityKindConcurrentKernel = cuptisys.CUPTI_ACTIVITY_KIND_CONCURRENT_KERNEL
	ActivityKindName             = cuptisys.CUPTI_ACTIVITY_KIND_NAME
	ActivityKindMarker           = cuptisys.CUPTI_ACTIVITY_KIND_MARKER
	ActivityKindOverhead         = cuptisys.CUPTI_ACTIVITY_KIND_OVERHEAD
)

// flushForced is CUPTI_ACTIVITY_FLAG_FLUSH_FORCED.
const flushForced = 1

// Library is a loaded libcupti. It stays mapped for the life of the process;
// CUPTI does not support being unloaded once attached to the driver.
type Library struct {
	path    string
	missing []string
}

// Path is the file the library was loaded from, or the bare soname when the
// dynamic loader searched for it.
func (l *Library) Path() string { return l.path }

// Missing lists the entry points the loaded library does not export.
func (l *Library) Missing() []string { return l.missing }

// Version returns the CUPTI API version.
func (l *Library) Version() (uint32, error) {
	if cuptisys.CuptiGetVersion == nil {
		return 0, unavailable("cuptiGetVersion")
	}
	var v uint32
	if err := check(cuptisys.CuptiGetVersion(&v)); err != nil {
		return 0, err
	}
	return v, nil
}

// Timestamp returns the CUPTI timestamp in nanoseconds.
func (l *Library) Timestamp() (uint64, error) {
	if cuptisys.CuptiGetTimestamp == nil {
		return 0, unavailable("cuptiGetTimestamp")
	}
	var ts uint64
	if err := check(cuptisys.CuptiGetTimestamp(&ts)); err != nil {
		return 0, err
	}
	return ts, nil
}

// EnableActivity starts collecting records of the given kind.
func (l *Library) EnableActivity(kind ActivityKind) error {
	if cuptisys.CuptiActivityEnable == nil {
		return unavailable("cuptiActivityEnable")
	}
	return check(cuptisys.CuptiActivityEnable(kind))
}

// DisableActivity stops collecting records of the given kind.
func (l *Library) DisableActivity(kind ActivityKind) error {
	if cuptisys.CuptiActivityDisable == nil {
		return unavailable("cuptiActivityDisable")
	}
	return check(cuptisys.CuptiActivityDisable(kind))
}

// FlushAll delivers every completed activity buffer. With forced set,
// buffers still being filled are flushed too.
func (l *Library) FlushAll(forced bool) error {
	if cuptisys.CuptiActivityFlushAll == nil {
		return unavailable("cuptiActivityFlushAll")
	}
	var flag uint32
	if forced {
		flag = flushForced
	}
	return check(cuptisys.CuptiActivityFlushAll(flag))
}

// Profiler is an initialized profiler interface. Close deinitializes it.
type Profiler struct {
	once sync.Once
	err  error
}

// InitializeProfiler loads the profiling libraries and hooks them into the
// driver. Most profiler calls return ErrNotInitialized without it.
func (l *Library) InitializeProfiler() (*Profiler, error) {
	if cuptisys.CuptiProfilerInitialize == nil {
		return nil, unavailable("cuptiProfilerInitialize")
	}
	params := cuptisys.DefaultCUpti_Profiler_Initialize_Params()
	if err := check(cuptisys.CuptiProfilerInitialize(&params)); err != nil {
		return nil, err
	}
	return &Profiler{}, nil
}

// Close deinitializes the profiler. Later calls return the first result.
func (p *Profiler) Close() error {
	p.once.Do(func() {
		if cuptisys.CuptiProfilerDeInitialize == nil {
			p.err = unavailable("cuptiProfilerDeInitialize")
			return
		}
		params := cuptisys.DefaultCUpti_Profiler_DeInitialize_Params()
		p.err = check(cuptisys.CuptiProfilerDeInitialize(&params))
	})
	return p.err
}

// ResultString returns CUPTI's own name for a result code.
func ResultString(code uint32) (string, error) {
	if cuptisys.CuptiGetResultString == nil {
		return "", unavailable("cuptiGetResultString")
	}
	var s *byte
	if err := check(cuptisys.CuptiGetResultString(cuptisys.CUptiResult(code), &s)); err != nil {
		return "", err
	}
	return cString(s), nil
}
