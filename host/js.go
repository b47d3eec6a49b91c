//go:build js && wasm

package host

import (
	"syscall/js"

	"github.com/wippyai/sourcemap/errors"
)

// Name identifies the adapter compiled into this build.
const Name = "js"

// HostError is the value handed back to the script engine.
type HostError = js.Value

// Render wraps err in a JavaScript Error object.
func Render(err *errors.Error) HostError {
	if err == nil {
		panic("host: Render called with nil error")
	}
	return js.Global().Get("Error").New(err.Error())
}
