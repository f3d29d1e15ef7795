package strutil

import (
	"bytes"

	"github.com/indigo-web/utils/strcomp"
	"github.com/indigo-web/utils/uf"
)

// Mid returns the text strictly between the first occurrence of start and the first
// occurrence of end following it. The returned slice aliases src. If either of the markers
// is missing, found is false.
func Mid(src []byte, start, end string) (sub []byte, found bool) {
	begin := bytes.Index(src, uf.S2B(start))
	if begin == -1 {
		return nil, false
	}

	return cutUntil(src[begin+len(start):], end)
}

// MidFold behaves exactly as Mid, but matches the start marker case-insensitively. The end
// marker is still compared byte-wise.
func MidFold(src []byte, start, end string) (sub []byte, found bool) {
	begin := IndexFold(src, start)
	if begin == -1 {
		return nil, false
	}

	return cutUntil(src[begin+len(start):], end)
}

// IndexFold returns the index of the first case-insensitive occurrence of substr in b, or -1.
func IndexFold(b []byte, substr string) int {
	if len(substr) == 0 {
		return 0
	}

	first := substr[0] | 0x20
	for i := 0; i+len(substr) <= len(b); i++ {
		if b[i]|0x20 != first {
			continue
		}

		if strcomp.EqualFold(uf.B2S(b[i:i+len(substr)]), substr) {
			return i
		}
	}

	return -1
}

func cutUntil(src []byte, end string) ([]byte, bool) {
	stop := bytes.Index(src, uf.S2B(end))
	if stop == -1 {
		return nil, false
	}

	return src[:stop], true
}
