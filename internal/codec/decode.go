package codec

import (
	"github.com/hashicorp/go-multierror"
)

// Decode returns the bytes represented by the Base64 string data, using DefaultOptions.
// Whitespace must be removed by the caller.
func Decode(data string) ([]byte, error) {
	return StdEncoding.Decode(data)
}

// DecodedLen returns the maximum length of the decoding of n characters
func DecodedLen(n int) int {
	return n/4*3 + (n%4*6)/8
}

// Decode converts data back into bytes. Characters are consumed in groups of four; a trailing
// group of two or three characters yields one or two bytes, a single trailing character is
// dropped. Unless the encoding is strict, characters outside the Alphabet read as zero.
func (e *Encoding) Decode(data string) ([]byte, error) {
	if e.options.Strict {
		if err := validate(data); err != nil {
			return nil, err
		}
	}

	out := make([]byte, 0, DecodedLen(len(data)))
	for len(data) >= 2 {
		n := 4
		if len(data) < n {
			n = len(data)
		}
		group := data[:n]
		data = data[n:]

		var s [4]byte
		for i := 0; i < n; i++ {
			s[i] = reverseTable[group[i]]
		}

		quantum := [3]byte{
			s[0]<<2 | s[1]>>4,
			(s[1]&0x0F)<<4 | s[2]>>2,
			(s[2]&0x03)<<6 | s[3],
		}

		symbols := n
		if e.options.Padding != PaddingPassthrough {
			for symbols > 0 && group[symbols-1] == Padding {
				symbols--
			}
		}
		if symbols < 2 {
			continue
		}
		out = append(out, quantum[:symbols-1]...)
	}

	return out, nil
}

// validate collects every problem of data so the user can fix the input in one go
func validate(data string) error {
	var errs *multierror.Error

	trailing := 0
	for trailing < len(data) && data[len(data)-1-trailing] == Padding {
		trailing++
	}
	misplaced := trailing > 2 || (trailing > 0 && len(data)%4 != 0)
	for i := 0; i < len(data)-trailing; i++ {
		c := data[i]
		if c == Padding {
			misplaced = true
		} else if !validTable[c] {
			errs = multierror.Append(errs, &InvalidCharacterError{Offset: i, Char: c})
		}
	}
	if misplaced {
		errs = multierror.Append(errs, ErrMisplacedPadding)
	}

	if len(data)%4 == 1 {
		errs = multierror.Append(errs, ErrTruncatedInput)
	}

	return errs.ErrorOrNil()
}
