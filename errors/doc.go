// Package errors provides the failure taxonomy for the sourcemap library.
//
// Every failure is an *Error carrying a Kind and an optional free-text reason.
// Kinds have stable numeric codes that host bindings and persisted diagnostics
// may rely on; codes are append-only and 0 is reserved for "no error".
//
// Failures raised by the library itself are built directly:
//
//	err := errors.NewWithReason(errors.KindSourceOutOfRange, "index 42 >= 10 sources")
//	err := errors.SourceOutOfRange(42, 10)
//
// Failures reported by collaborators are converted once, at the call site:
//
//	if err != nil {
//	    return errors.FromIO(err)
//	}
//
// Conversions take the collaborator's error as returned, with no type
// assertion first. Only call them on the failure path: a nil input yields a
// nil *Error, which is non-nil once stored in an error interface.
//
// The message returned by Error is the exact text every host adapter exposes:
//
//	[parcel-sourcemap] Source out of range, index 42 >= 10 sources
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
