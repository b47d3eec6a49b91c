//go:build js && wasm

package host

import (
	"syscall/js"
	"testing"

	"github.com/wippyai/sourcemap/errors"
)

func TestRender(t *testing.T) {
	errorCtor := js.Global().Get("Error")

	for _, k := range errors.Kinds() {
		for _, err := range []*errors.Error{errors.New(k), errors.NewWithReason(k, "index 42 >= 10 sources")} {
			got := Render(err)
			if !got.InstanceOf(errorCtor) {
				t.Fatalf("%v: rendered value is not an Error", k)
			}
			if msg := got.Get("message").String(); msg != err.Error() {
				t.Errorf("%v: message = %q, want %q", k, msg, err.Error())
			}
		}
	}

	if Name != "js" {
		t.Errorf("Name = %q, want js", Name)
	}
}
