package http

import "strings"

// Escape makes the text safe to be printed, replacing ASCII-nonprintable characters by their
// escape sequences (\r, \n, \t, etc.) Characters having no common escape sequence are
// replaced by \?. Returns the same string if there was nothing to escape.
func Escape(text string) string {
	var b strings.Builder

	offset := 0
	for i := 0; i < len(text); i++ {
		if isASCIIPrintable(text[i]) {
			continue
		}

		if b.Len() == 0 {
			b.Grow(len(text) + len(text)/2)
		}

		b.WriteString(text[offset:i])
		b.WriteByte('\\')
		b.WriteByte(escapeByte(text[i]))
		offset = i + 1
	}

	if offset == 0 {
		return text
	}

	b.WriteString(text[offset:])

	return b.String()
}

func isASCIIPrintable(c byte) bool {
	return c >= 0x20 && c <= 0x7e
}

func escapeByte(b byte) byte {
	switch b {
	case 0x0:
		return '0'
	case 0x7:
		return 'a'
	case 0x8:
		return 'b'
	case '\t':
		return 't'
	case '\n':
		return 'n'
	case 0xB:
		return 'v'
	case 0xC:
		return 'f'
	case '\r':
		return 'r'
	default:
		return '?'
	}
}
