package text

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// DecodeError reports a byte slice that is not valid UTF-8
type DecodeError struct {
	Valid int // length of the valid prefix
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("text: invalid utf-8 sequence after %d bytes", e.Valid)
}

// Decode returns b as a string if it is valid UTF-8.
// The returned error is always a *DecodeError.
func Decode(b []byte) (string, error) {
	out, n, err := transform.Bytes(encoding.UTF8Validator, b)
	if err != nil {
		return "", &DecodeError{Valid: n}
	}
	return string(out), nil
}
