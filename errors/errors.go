package errors

import (
	stderrors "errors"
	"fmt"
	"math"
	"strings"
)

// Tag prefixes every rendered message so its origin is obvious to host callers.
const Tag = "[parcel-sourcemap] "

// Error is the failure carrier used throughout the library.
// It is immutable once constructed.
type Error struct {
	reason    string
	kind      Kind
	hasReason bool
}

// New creates an error without a reason
func New(kind Kind) *Error {
	return &Error{kind: kind}
}

// NewWithReason creates an error with a human-readable detail.
// An empty reason is still a reason and is rendered.
func NewWithReason(kind Kind, reason string) *Error {
	return &Error{
		kind:      kind,
		reason:    strings.Clone(reason),
		hasReason: true,
	}
}

// Kind returns the failure kind
func (e *Error) Kind() Kind {
	return e.kind
}

// Reason returns the attached detail and whether one was supplied
func (e *Error) Reason() (string, bool) {
	return e.reason, e.hasReason
}

// Error implements the error interface. The result is the message every
// host adapter exposes: tag, kind phrase, then ", reason" if present.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(Tag)
	if phrase := e.kind.Phrase(); phrase != "" {
		b.WriteString(phrase)
	} else {
		b.WriteString(e.kind.String())
	}

	if e.hasReason {
		b.WriteString(", ")
		b.WriteString(e.reason)
	}

	return b.String()
}

// Is reports whether target is an *Error of the same kind
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.kind == t.kind
	}
	return false
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e.kind, true
	}
	return 0, false
}

// Convenience constructors for failures raised by the library itself

// NegativeNumber creates an error for a decoded field that was negative
func NegativeNumber(field string, value int64) *Error {
	return NewWithReason(KindUnexpectedNegativeNumber, fmt.Sprintf("%s = %d", field, value))
}

// BigNumber creates an error for a decoded field above math.MaxUint32
func BigNumber(field string, value int64) *Error {
	return NewWithReason(KindUnexpectedlyBigNumber, fmt.Sprintf("%s = %d", field, value))
}

// CheckU32 narrows a decoded line, column or index to uint32.
func CheckU32(field string, value int64) (uint32, error) {
	if value < 0 {
		return 0, NegativeNumber(field, value)
	}
	if value > math.MaxUint32 {
		return 0, BigNumber(field, value)
	}
	return uint32(value), nil
}

// NameOutOfRange creates an error for a name index past the name table
func NameOutOfRange(index, count int) *Error {
	return NewWithReason(KindNameOutOfRange, fmt.Sprintf("index %d >= %d names", index, count))
}

// SourceOutOfRange creates an error for a source index past the source table
func SourceOutOfRange(index, count int) *Error {
	return NewWithReason(KindSourceOutOfRange, fmt.Sprintf("index %d >= %d sources", index, count))
}

// InvalidFilePath creates an error for a path that cannot be used
func InvalidFilePath(path string) *Error {
	return NewWithReason(KindInvalidFilePath, path)
}
