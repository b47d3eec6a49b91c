// Package host renders library failures into the error value native to the
// environment embedding the library.
//
// Exactly one adapter is compiled into a build:
//
//	native.go   default builds; a Node-API style generic-failure error
//	js.go       GOOS=js GOARCH=wasm; a JavaScript Error object via syscall/js
//
// Both expose the same contract, so call sites at the public boundary are
// written once:
//
//	if err != nil {
//	    return host.Render(err)
//	}
//
// The message is always err.Error(), so user-visible text does not depend on
// which adapter is active. Only the wrapping value differs.
package host
