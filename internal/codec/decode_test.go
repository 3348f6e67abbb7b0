package codec

import (
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
	"math/rand"
	"testing"
)

func mustEncoding(t *testing.T, options Options) *Encoding {
	e, err := NewEncoding(options)
	require.NoError(t, err)
	return e
}

func requireMultiError(t *testing.T, err error) []error {
	require.Error(t, err)
	merr, ok := err.(*multierror.Error)
	require.Truef(t, ok, "Expected a multierror, got %T", err)
	return merr.Errors
}

func Test_Decode_KnownVectors(t *testing.T) {
	vectors := []struct {
		in  string
		out []byte
	}{
		{"", []byte{}},
		{"TWFu", []byte("Man")},
		{"TWE=", []byte("Ma")},
		{"TQ==", []byte("M")},
		{"AA==", []byte{0x00}},
		{"AAA=", []byte{0x00, 0x00}},
		{"Zm9vYmFy", []byte("foobar")},
		{"aGVsbG8gd29ybGQ=", []byte("hello world")},
	}

	for _, v := range vectors {
		decoded, err := Decode(v.in)
		require.NoError(t, err)
		require.Equal(t, v.out, decoded, "Invalid decoding of %q", v.in)
	}
}

func Test_Decode_TrailingGroups(t *testing.T) {
	for _, mode := range []PaddingMode{PaddingTruncate, PaddingPassthrough} {
		e := mustEncoding(t, Options{Padding: mode})

		decoded, err := e.Decode("TWFuTWE")
		require.NoError(t, err)
		require.Equal(t, []byte("ManMa"), decoded)

		decoded, err = e.Decode("TWFuTQ")
		require.NoError(t, err)
		require.Equal(t, []byte("ManM"), decoded)

		decoded, err = e.Decode("TWFuT")
		require.NoError(t, err)
		require.Equal(t, []byte("Man"), decoded)

		decoded, err = e.Decode("T")
		require.NoError(t, err)
		require.Empty(t, decoded)
	}
}

func Test_Decode_RoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	strict := mustEncoding(t, Options{Strict: true})

	for n := 0; n < 256; n++ {
		data := make([]byte, n)
		r.Read(data)
		encoded := Encode(data)

		decoded, err := Decode(encoded)
		require.NoError(t, err)
		require.Equal(t, data, decoded)

		decoded, err = strict.Decode(encoded)
		require.NoError(t, err)
		require.Equal(t, data, decoded)
	}

	decoded, err := Decode(Encode(encoderTest))
	require.NoError(t, err)
	require.Equal(t, encoderTest, decoded)
}

func Test_Decode_Passthrough(t *testing.T) {
	e := mustEncoding(t, Options{Padding: PaddingPassthrough})

	decoded, err := e.Decode("AA==")
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x00, 0x00}, decoded)

	decoded, err = e.Decode("TWE=")
	require.NoError(t, err)
	require.Equal(t, []byte{'M', 'a', 0x00}, decoded)

	decoded, err = e.Decode("TWFu")
	require.NoError(t, err)
	require.Equal(t, []byte("Man"), decoded)

	// Padding in the middle is read as zero as well
	decoded, err = e.Decode("AA==TWFu")
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x00, 0x00, 'M', 'a', 'n'}, decoded)
}

func Test_Decode_Truncate(t *testing.T) {
	decoded, err := Decode("AA==TWFu")
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 'M', 'a', 'n'}, decoded)

	decoded, err = Decode("AA=")
	require.NoError(t, err)
	require.Equal(t, []byte{0x00}, decoded)
}

func Test_Decode_Permissive(t *testing.T) {
	// '$' is not in the alphabet and silently reads as 'A'
	decoded, err := Decode("TW$u")
	require.NoError(t, err)
	expected, err := Decode("TWAu")
	require.NoError(t, err)
	require.Equal(t, expected, decoded)
}

func Test_Decode_StrictInvalidCharacters(t *testing.T) {
	e := mustEncoding(t, Options{Strict: true})

	decoded, err := e.Decode("TW$u")
	require.Nil(t, decoded)
	errs := requireMultiError(t, err)
	require.Len(t, errs, 1)
	require.Equal(t, &InvalidCharacterError{Offset: 2, Char: '$'}, errs[0])
	require.Contains(t, err.Error(), "invalid character '$' at offset 2")

	_, err = e.Decode("T W\nFu")
	errs = requireMultiError(t, err)
	require.Len(t, errs, 2)
	require.Equal(t, &InvalidCharacterError{Offset: 1, Char: ' '}, errs[0])
	require.Equal(t, &InvalidCharacterError{Offset: 3, Char: '\n'}, errs[1])
}

func Test_Decode_StrictPadding(t *testing.T) {
	e := mustEncoding(t, Options{Strict: true})

	for _, in := range []string{"AA==TWFu", "A===", "TWE", "AA=", "=AAA", "A=AA"} {
		_, err := e.Decode(in)
		if in == "TWE" {
			require.NoError(t, err)
			continue
		}
		errs := requireMultiError(t, err)
		require.Contains(t, errs, ErrMisplacedPadding, "Expected misplaced padding for %q", in)
	}

	_, err := e.Decode("TWFuT")
	errs := requireMultiError(t, err)
	require.Equal(t, []error{ErrTruncatedInput}, errs)
}

func Test_NewEncoding(t *testing.T) {
	e, err := NewEncoding(Options{})
	require.NoError(t, err)
	require.Equal(t, PaddingTruncate, e.Options().Padding)
	require.Equal(t, 3, e.BlocksizeRaw())
	require.Equal(t, 4, e.BlocksizeEncoded())
	require.Equal(t, "Base64(padding=truncate,strict=false)", e.String())

	_, err = NewEncoding(Options{Padding: "sometimes"})
	require.Error(t, err)

	var c Codec = e
	require.Equal(t, "TWFu", c.Encode([]byte("Man")))
}

func Test_DecodedLen(t *testing.T) {
	for n := 0; n < 32; n++ {
		data := make([]byte, n)
		encoded := Encode(data)
		require.Equal(t, n, DecodedLen(len(encoded)-(3-n%3)%3))
	}
}

func Test_InvalidCharacterError(t *testing.T) {
	require.Equal(t, "invalid character '$' at offset 2", (&InvalidCharacterError{Offset: 2, Char: '$'}).Error())
	require.Equal(t, `invalid character '\n' at offset 0`, (&InvalidCharacterError{Offset: 0, Char: '\n'}).Error())
	require.Equal(t, `invalid character '\xff' at offset 4`, (&InvalidCharacterError{Offset: 4, Char: 0xff}).Error())
}
