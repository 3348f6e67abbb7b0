package codec

import (
	"github.com/pkg/errors"
)

// PaddingMode defines how the decoder treats padding markers inside a full quantum
type PaddingMode string

const (
	// PaddingTruncate drops the bytes a padding marker stands for, e.g. "AA==" yields one byte.
	PaddingTruncate PaddingMode = "truncate"

	// PaddingPassthrough always reassembles three bytes from a full quantum, reading the padding
	// marker as zero. "AA==" yields three zero bytes. This is bit-compatible with the classic
	// `base64` file tool this project replaces.
	PaddingPassthrough PaddingMode = "passthrough"
)

// Options configure an Encoding
type Options struct {
	// Padding selects the treatment of the padding marker when decoding
	Padding PaddingMode

	// Strict decoding rejects unknown characters, misplaced padding and dangling characters
	// instead of silently producing garbage
	Strict bool
}

// DefaultOptions are used by the package-level Decode
var DefaultOptions = Options{
	Padding: PaddingTruncate,
	Strict:  false,
}

// Validate checks that all options have a known value. An empty padding mode means PaddingTruncate.
func (o Options) Validate() error {
	switch o.Padding {
	case "", PaddingTruncate, PaddingPassthrough:
		return nil
	default:
		return errors.Errorf("unknown padding mode '%s', expected '%s' or '%s'", o.Padding, PaddingTruncate, PaddingPassthrough)
	}
}
