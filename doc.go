// Package sourcemap is the failure-reporting layer of a source map library.
//
// Source map parsing, the mapping tables and the buffer format live elsewhere;
// this module defines how their failures are classified, carried and finally
// shown to whoever embeds the library.
//
// # Architecture Overview
//
//	sourcemap/
//	├── errors/      Kind taxonomy, the *Error carrier, conversions from collaborator failures
//	├── vlq/         failures reported by the base64 VLQ decoder
//	├── text/        strict UTF-8 decoding of buffer strings
//	├── host/        build-selected adapters: native (Node-API style) or js (syscall/js)
//	└── cmd/smerr/   CLI to list kinds, explain persisted codes and preview messages
//
// # Flow
//
// A collaborator fails, the failure is converted once into an *errors.Error,
// it propagates unchanged through ordinary error returns, and at the public
// boundary host.Render turns it into the host's native error value:
//
//	segment, err := decoder.Next()
//	if err != nil {
//	    return errors.FromVLQ(err)
//	}
//	...
//	var smErr *errors.Error
//	if stderrors.As(err, &smErr) {
//	    return host.Render(smErr)
//	}
//
// Conversions return a nil *errors.Error for a nil input, which is not a nil
// error once returned through an error interface. Call them only inside the
// err != nil branch as above.
//
// Every rendered message has the form
//
//	[parcel-sourcemap] <phrase>[, <reason>]
//
// # Stability
//
// Kind codes are persisted by host bindings. They are append-only: a new kind
// gets the next free code and existing codes are never renumbered or reused.
// Code 0 is reserved for "no error".
package sourcemap
