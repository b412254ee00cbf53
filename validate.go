package mdhtml

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 reports invalid UTF-8 input.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports input that appears to be binary.
	ErrBinaryInput = errors.New("binary input detected")
)

const (
	minBinarySample = 64
	maxControlPct   = 2
)

// InputError locates the byte that made ValidateInput reject its input.
// Offset is -1 when the input as a whole looks binary.
type InputError struct {
	Offset int
	Err    error
}

func (e *InputError) Error() string {
	if e.Offset < 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v at byte %d", e.Err, e.Offset)
}

func (e *InputError) Unwrap() error { return e.Err }

// ValidateInput rejects source that is not UTF-8 text, or that carries a NUL
// byte or too many control characters to be Markdown. Errors are
// *InputError values wrapping ErrInvalidUTF8 or ErrBinaryInput.
func ValidateInput(src []byte) error {
	var control int
	for i := 0; i < len(src); {
		b := src[i]
		if b >= utf8.RuneSelf {
			r, size := utf8.DecodeRune(src[i:])
			if r == utf8.RuneError && size <= 1 {
				return &InputError{Offset: i, Err: ErrInvalidUTF8}
			}
			i += size
			continue
		}
		if b == 0x00 {
			return &InputError{Offset: i, Err: ErrBinaryInput}
		}
		if isControlByte(b) {
			control++
		}
		i++
	}
	if len(src) >= minBinarySample && control*100 >= len(src)*maxControlPct {
		return &InputError{Offset: -1, Err: ErrBinaryInput}
	}
	return nil
}

// isControlByte excludes tab, newline, vertical tab, form feed and CR.
func isControlByte(b byte) bool {
	return b < '\t' || (b > '\r' && b < ' ') || b == 0x7F
}
