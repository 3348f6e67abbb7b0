package codec

import (
	"fmt"
	"github.com/pkg/errors"
)

// Codec is anything that can turn bytes into text and back
type Codec interface {
	// Name is the user-friendly name of this codec
	Name() string

	// Encode will take an array of bytes and encode it using this codec
	Encode([]byte) string

	// Decode is the reverse process of encoding
	Decode(string) ([]byte, error)

	// BlocksizeRaw returns the block size (number of bytes) this codec takes at one time
	BlocksizeRaw() int

	// BlocksizeEncoded returns the block size (number of characters) output for every input block
	BlocksizeEncoded() int
}

// -------------------------------------------------------

// Encoding encodes 3 bytes to 4 characters. Decoding behaviour is driven by its Options.
type Encoding struct {
	options Options
}

// NewEncoding creates a new Encoding. It will fail if options are not valid.
func NewEncoding(options Options) (*Encoding, error) {
	if err := options.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}
	if options.Padding == "" {
		options.Padding = PaddingTruncate
	}
	return &Encoding{
		options: options,
	}, nil
}

// StdEncoding uses DefaultOptions
var StdEncoding = &Encoding{options: DefaultOptions}

// Name implements Codec
func (e *Encoding) Name() string {
	return "Base64"
}

// String describes the encoding and its options
func (e *Encoding) String() string {
	return fmt.Sprintf("%v(padding=%v,strict=%v)", e.Name(), e.options.Padding, e.options.Strict)
}

// Options returns the options the encoding was created with
func (e *Encoding) Options() Options {
	return e.options
}

// Encode implements Codec. Encoding does not depend on the options.
func (e *Encoding) Encode(data []byte) string {
	return Encode(data)
}

// BlocksizeRaw implements Codec
func (e *Encoding) BlocksizeRaw() int {
	return 3
}

// BlocksizeEncoded implements Codec
func (e *Encoding) BlocksizeEncoded() int {
	return 4
}
