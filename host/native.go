//go:build !(js && wasm)

package host

import "github.com/wippyai/sourcemap/errors"

// Name identifies the adapter compiled into this build.
const Name = "native"

// Status mirrors the Node-API status reported alongside a thrown error.
type Status int

// StatusGenericFailure is napi_generic_failure.
const StatusGenericFailure Status = 9

// Error is the native host's error value
type Error struct {
	Message string
	Status  Status
}

func (e *Error) Error() string {
	return e.Message
}

// HostError is the value handed back to the native host.
type HostError = *Error

// Render wraps err in a generic-failure host error.
func Render(err *errors.Error) HostError {
	if err == nil {
		panic("host: Render called with nil error")
	}
	return &Error{
		Status:  StatusGenericFailure,
		Message: err.Error(),
	}
}
