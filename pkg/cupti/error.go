package cupti

import (
	"errors"
	"fmt"

	"github.com/samcharles93/cupti/pkg/cuptisys"
)

// Error is a CUPTI result code other than CUPTI_SUCCESS. Codes not listed
// below can still be returned by newer libraries.
type Error uint32

const (
	ErrInvalidParameter        = Error(cuptisys.CUPTI_ERROR_INVALID_PARAMETER)
	ErrInvalidDevice           = Error(cuptisys.CUPTI_ERROR_INVALID_DEVICE)
	ErrInvalidContext          = Error(cuptisys.CUPTI_ERROR_INVALID_CONTEXT)
	ErrInvalidOperation        = Error(cuptisys.CUPTI_ERROR_INVALID_OPERATION)
	ErrOutOfMemory             = Error(cuptisys.CUPTI_ERROR_OUT_OF_MEMORY)
	ErrHardware                = Error(cuptisys.CUPTI_ERROR_HARDWARE)
	ErrParameterSize           = Error(cuptisys.CUPTI_ERROR_PARAMETER_SIZE_NOT_SUFFICIENT)
	ErrNotImplemented          = Error(cuptisys.CUPTI_ERROR_API_NOT_IMPLEMENTED)
	ErrMaxLimitReached         = Error(cuptisys.CUPTI_ERROR_MAX_LIMIT_REACHED)
	ErrNotReady                = Error(cuptisys.CUPTI_ERROR_NOT_READY)
	ErrNotCompatible           = Error(cuptisys.CUPTI_ERROR_NOT_COMPATIBLE)
	ErrNotInitialized          = Error(cuptisys.CUPTI_ERROR_NOT_INITIALIZED)
	ErrQueueEmpty              = Error(cuptisys.CUPTI_ERROR_QUEUE_EMPTY)
	ErrInvalidKind             = Error(cuptisys.CUPTI_ERROR_INVALID_KIND)
	ErrDisabled                = Error(cuptisys.CUPTI_ERROR_DISABLED)
	ErrHardwareBusy            = Error(cuptisys.CUPTI_ERROR_HARDWARE_BUSY)
	ErrNotSupported            = Error(cuptisys.CUPTI_ERROR_NOT_SUPPORTED)
	ErrInsufficientPrivileges  = Error(cuptisys.CUPTI_ERROR_INSUFFICIENT_PRIVILEGES)
	ErrOldProfilerAPI          = Error(cuptisys.CUPTI_ERROR_OLD_PROFILER_API_INITIALIZED)
	ErrMultipleSubscribers     = Error(cuptisys.CUPTI_ERROR_MULTIPLE_SUBSCRIBERS_NOT_SUPPORTED)
	ErrConfidentialComputing   = Error(cuptisys.CUPTI_ERROR_CONFIDENTIAL_COMPUTING_NOT_SUPPORTED)
	ErrMIGDeviceNotSupported   = Error(cuptisys.CUPTI_ERROR_MIG_DEVICE_NOT_SUPPORTED)
	ErrVirtualizedNotPermitted = Error(cuptisys.CUPTI_ERROR_VIRTUALIZED_DEVICE_INSUFFICIENT_PRIVILEGES)
	ErrUnknown                 = Error(cuptisys.CUPTI_ERROR_UNKNOWN)
)

// ErrUnavailable reports an entry point the loaded library does not export.
var ErrUnavailable = errors.New("cupti: function not available")

// Code returns the raw result code.
func (e Error) Code() uint32 { return uint32(e) }

// Name returns CUPTI's identifier for the code, e.g. CUPTI_ERROR_NOT_READY.
func (e Error) Name() string {
	return cuptisys.CUptiResult(e).String()
}

func (e Error) Error() string {
	if msg := errorMessage(cuptisys.CUptiResult(e)); msg != "" {
		return fmt.Sprintf("cupti: %s (%s)", msg, e.Name())
	}
	return fmt.Sprintf("cupti: error code %d (%s)", uint32(e), e.Name())
}

// errorMessage asks the library for a description of r. It returns "" when
// no library is bound.
func errorMessage(r cuptisys.CUptiResult) string {
	if cuptisys.CuptiGetErrorMessage == nil {
		return ""
	}
	var s *byte
	if cuptisys.CuptiGetErrorMessage(r, &s) != cuptisys.CUPTI_SUCCESS {
		return ""
	}
	return cString(s)
}

// check converts a result code into an error.
func check(r cuptisys.CUptiResult) error {
	if r == cuptisys.CUPTI_SUCCESS {
		return nil
	}
	return Error(r)
}

func unavailable(symbol string) error {
	return fmt.Errorf("%w: %s", ErrUnavailable, symbol)
}
