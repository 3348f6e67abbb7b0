package util

import (
	"unicode"
	"unicode/utf8"
)

// StripWhitespace removes all (unicode) whitespace from the input. Base64 text is often wrapped at
// 64 or 76 columns and ends with a newline; the decoder itself does not want to see any of it.
// All other bytes, including invalid UTF-8, are copied unchanged.
func StripWhitespace(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !(r != utf8.RuneError && unicode.IsSpace(r)) {
			out = append(out, s[i:i+size]...)
		}
		i += size
	}
	return string(out)
}
