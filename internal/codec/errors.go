package codec

import (
	"fmt"
	"github.com/pkg/errors"
	"unicode/utf8"
)

var (
	// ErrMisplacedPadding is returned by strict decoding if the padding marker is found anywhere
	// but at the end of the last quantum
	ErrMisplacedPadding = errors.New("padding found before the end of input")

	// ErrTruncatedInput is returned by strict decoding if a single character remains after the last
	// full quantum. One character does not carry enough bits for a byte.
	ErrTruncatedInput = errors.New("input ends with a dangling character")
)

// InvalidCharacterError reports a character that is not part of the Alphabet
type InvalidCharacterError struct {
	Offset int
	Char   byte
}

func (e *InvalidCharacterError) Error() string {
	if e.Char >= utf8.RuneSelf {
		return fmt.Sprintf("invalid character '\\x%02x' at offset %d", e.Char, e.Offset)
	}
	return fmt.Sprintf("invalid character %q at offset %d", e.Char, e.Offset)
}
