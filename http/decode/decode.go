// Package decode implements the percent-decoding of URIs and urlencoded form values.
//
// Every function here decodes in a single left-to-right pass and never writes ahead of the
// read cursor, so the destination may be the source itself. When it is, the source is
// consumed by the decoding: its original content is lost.
package decode

import (
	"github.com/indigo-web/picohttp/internal/hexconv"
	"github.com/indigo-web/picohttp/internal/strutil"
)

// Decode writes src into dst, translating every %XX escape into the byte it encodes. The
// escapes are expected to be well-formed: non-hex digits are converted by their own value,
// and a trailing '%' with less than two characters after it is copied as is.
//
// dst may be src[:len(src)] in order to decode in-place. Returns the number of bytes written.
// If dst is too short, decoding stops at the first byte not fitting and ok is false.
func Decode(dst, src []byte) (n int, ok bool) {
	for i := 0; i < len(src); i++ {
		if n == len(dst) {
			return n, false
		}

		char := src[i]
		if char == '%' && i+2 < len(src) {
			char = hexconv.Pair(src[i+1], src[i+2])
			i += 2
		}

		dst[n] = char
		n++
	}

	return n, true
}

// Unescape decodes b in-place and returns the decoded part of it.
func Unescape(b []byte) []byte {
	n, _ := Decode(b, b)
	return b[:n]
}

// PlusToSpace replaces every '+' in b by a space, in-place.
func PlusToSpace(b []byte) {
	strutil.ReplaceByte(b, '+', ' ')
}

// FormValue decodes an urlencoded value in-place: escapes are decoded first, then pluses are
// replaced by spaces. Note that it implies that an escaped plus (%2B) results in a space too.
func FormValue(b []byte) []byte {
	b = Unescape(b)
	PlusToSpace(b)

	return b
}
