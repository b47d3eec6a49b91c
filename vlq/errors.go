package vlq

import "fmt"

// Code identifies which decoding step failed
type Code uint8

const (
	UnexpectedEOF Code = iota + 1
	InvalidBase64
	Overflow
)

// Error is the failure type of the VLQ decoder
type Error struct {
	Code Code
	Char byte // offending byte, set for InvalidBase64
}

var (
	// ErrUnexpectedEOF is returned when input ends mid-value.
	ErrUnexpectedEOF = &Error{Code: UnexpectedEOF}
	// ErrOverflow is returned when a value exceeds 32 bits.
	ErrOverflow = &Error{Code: Overflow}
)

// InvalidBase64Char creates an error for a byte outside the base64 alphabet
func InvalidBase64Char(c byte) *Error {
	return &Error{Code: InvalidBase64, Char: c}
}

func (e *Error) Error() string {
	switch e.Code {
	case UnexpectedEOF:
		return "vlq: unexpected end of input"
	case InvalidBase64:
		return fmt.Sprintf("vlq: invalid base64 character %q", e.Char)
	case Overflow:
		return "vlq: value overflows 32 bits"
	default:
		return fmt.Sprintf("vlq: error code %d", e.Code)
	}
}

// Is reports whether target is a vlq error with the same code
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}
