package codec

const (
	// Alphabet is the standard Base64 symbol table, indexed by 6-bit value
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

	// Padding fills up the last quantum of the output. It is not part of the Alphabet.
	Padding = '='
)

// reverseTable maps a character code back to its 6-bit value. Codes outside of the
// Alphabet map to 0. validTable tells which entries of the reverseTable are real.
var (
	reverseTable [256]byte
	validTable   [256]bool
)

func init() {
	for i := 0; i < len(Alphabet); i++ {
		reverseTable[Alphabet[i]] = byte(i)
		validTable[Alphabet[i]] = true
	}
}

// IsAlphabet returns true if c is one of the 64 Base64 symbols
func IsAlphabet(c byte) bool {
	return validTable[c]
}
