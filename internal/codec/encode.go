package codec

// EncodedLen returns the length of the encoding of an input buffer of length n
func EncodedLen(n int) int {
	return (n + 2) / 3 * 4
}

// Encode returns the padded Base64 encoding of data. Every input is valid.
func Encode(data []byte) string {
	out := make([]byte, 0, EncodedLen(len(data)))

	for len(data) >= 3 {
		b0, b1, b2 := data[0], data[1], data[2]
		out = append(out,
			Alphabet[b0>>2],
			Alphabet[(b0&0x03)<<4|b1>>4],
			Alphabet[(b1&0x0F)<<2|b2>>6],
			Alphabet[b2&0x3F],
		)
		data = data[3:]
	}

	switch len(data) {
	case 2:
		b0, b1 := data[0], data[1]
		out = append(out,
			Alphabet[b0>>2],
			Alphabet[(b0&0x03)<<4|b1>>4],
			Alphabet[(b1&0x0F)<<2],
			Padding,
		)
	case 1:
		b0 := data[0]
		out = append(out,
			Alphabet[b0>>2],
			Alphabet[(b0&0x03)<<4],
			Padding,
			Padding,
		)
	}

	return string(out)
}
