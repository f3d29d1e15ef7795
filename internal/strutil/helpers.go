package strutil

func LStripWS(str string) string {
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case ' ', '\t':
		default:
			return str[i:]
		}
	}

	return ""
}

func RStripWS(str string) string {
	for i := len(str); i > 0; i-- {
		switch str[i-1] {
		case ' ', '\t':
		default:
			return str[:i]
		}
	}

	return ""
}

// ReplaceByte substitutes every occurrence of old in b by new, in place.
func ReplaceByte(b []byte, old, new byte) {
	for i, c := range b {
		if c == old {
			b[i] = new
		}
	}
}
