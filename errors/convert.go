package errors

import (
	stderrors "errors"

	"github.com/wippyai/sourcemap/vlq"
)

// Conversions from collaborator failures. Each accepts the error exactly as
// the collaborator returned it and keeps only the kind; the foreign error's
// own text is not carried into the reason.
//
// A nil input yields a nil *Error. Returned through an error interface that
// is a non-nil value, so convert only on the failure path:
//
//	if err != nil {
//	    return errors.FromIO(err)
//	}

// FromVLQ converts a VLQ decoder failure. Errors that do not carry a
// *vlq.Error are treated as undecodable input.
func FromVLQ(err error) *Error {
	if err == nil {
		return nil
	}
	var vlqErr *vlq.Error
	if !stderrors.As(err, &vlqErr) {
		return New(KindVlqInvalidBase64)
	}
	switch vlqErr.Code {
	case vlq.UnexpectedEOF:
		return New(KindVlqUnexpectedEOF)
	case vlq.Overflow:
		return New(KindVlqOverflow)
	default:
		// InvalidBase64, and any code the decoder adds later: the input
		// could not be decoded as a VLQ digit.
		return New(KindVlqInvalidBase64)
	}
}

// FromIO converts a byte stream read or write failure, whatever its cause
func FromIO(err error) *Error {
	if err == nil {
		return nil
	}
	return New(KindIO)
}

// FromBuffer converts a failure of the buffer serialization layer
func FromBuffer(err error) *Error {
	if err == nil {
		return nil
	}
	return New(KindBuffer)
}

// FromUTF8 converts a text decoding failure. Any non-nil error from
// text.Decode is accepted as is, wrapped or not.
func FromUTF8(err error) *Error {
	if err == nil {
		return nil
	}
	return New(KindFromUTF8)
}
