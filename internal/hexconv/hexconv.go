package hexconv

// Halfbyte maps an ASCII hex digit into its value. Non-hex characters map into 0xFF.
var Halfbyte = [256]byte{}

func init() {
	for i := range Halfbyte {
		Halfbyte[i] = 0xFF
	}

	for c := byte('0'); c <= '9'; c++ {
		Halfbyte[c] = c - '0'
	}

	for c := byte('a'); c <= 'f'; c++ {
		Halfbyte[c] = c - 'a' + 10
		Halfbyte[c-0x20] = c - 'a' + 10
	}
}

// IsHex tells whether the char is a valid hex digit.
func IsHex(char byte) bool {
	return Halfbyte[char] != 0xFF
}

// Value converts a hex digit into its value. Characters which are not hex digits are returned
// as they are, so the result of decoding a malformed escape is well-defined, though meaningless.
func Value(char byte) byte {
	if v := Halfbyte[char]; v != 0xFF {
		return v
	}

	return char
}

// Pair combines two hex digits into a single byte.
func Pair(hi, lo byte) byte {
	return Value(hi)<<4 + Value(lo)
}
