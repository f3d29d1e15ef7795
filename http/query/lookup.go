package query

import (
	"bytes"

	"github.com/indigo-web/picohttp/config"
	"github.com/indigo-web/picohttp/http/decode"
	"github.com/indigo-web/picohttp/http/status"
	"github.com/indigo-web/utils/uf"
)

const tokenDelimiters = "& \r\n\t"

// Lookup finds the parameter by its name in span (either a query string or an urlencoded
// body) and writes its decoded value into dst. The span itself stays intact. The name is
// looked up as a plain substring, which must be immediately followed by '='.
//
// If the parameter isn't presented, found is false. A present parameter with no value
// results in an empty value, unless the tokenized strategy is used, which reports it as
// absent. If the decoded value doesn't fit into dst, its beginning is returned together
// with status.ErrParamTooLong.
func Lookup(
	dst, span []byte, name string, strategy config.LookupStrategy,
) (value []byte, found bool, err error) {
	var raw []byte

	switch strategy {
	case config.LookupTokenized:
		raw, found = locateToken(span, name)
	default:
		raw, found = locateDelimited(span, name)
	}

	if !found {
		return nil, false, nil
	}

	n, ok := decode.Decode(dst, raw)
	value = dst[:n]
	decode.PlusToSpace(value)
	if !ok {
		return value, true, status.ErrParamTooLong
	}

	return value, true, nil
}

// valueStart returns the offset of the value of the first name occurrence followed by '='.
func valueStart(span []byte, name string) int {
	if len(name) == 0 {
		return -1
	}

	key := uf.S2B(name)
	for offset := 0; offset < len(span); {
		pos := bytes.Index(span[offset:], key)
		if pos == -1 {
			return -1
		}

		pos += offset + len(key)
		if pos < len(span) && span[pos] == '=' {
			return pos + 1
		}

		offset = pos - len(key) + 1
	}

	return -1
}

func locateDelimited(span []byte, name string) ([]byte, bool) {
	start := valueStart(span, name)
	if start == -1 {
		return nil, false
	}

	value := span[start:]
	if amp := bytes.IndexByte(value, '&'); amp != -1 {
		value = value[:amp]
	}

	return value, true
}

func locateToken(span []byte, name string) ([]byte, bool) {
	start := valueStart(span, name)
	if start == -1 {
		return nil, false
	}

	value := span[start:]
	for len(value) > 0 && bytes.IndexByte(uf.S2B(tokenDelimiters), value[0]) != -1 {
		value = value[1:]
	}

	if end := bytes.IndexAny(value, tokenDelimiters); end != -1 {
		value = value[:end]
	}

	return value, len(value) > 0
}
