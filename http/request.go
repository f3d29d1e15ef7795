package http

import (
	"bytes"

	"github.com/indigo-web/picohttp/http/method"
	"github.com/indigo-web/picohttp/internal/strutil"
	"github.com/indigo-web/utils/strcomp"
	"github.com/indigo-web/utils/uf"
)

// Request is the parsed representation of a single fully-buffered HTTP/1.x request. It holds
// no memory on its own: all the byte fields reference buffers owned by the parser, which
// overwrites them on the next call. Therefore, the request must be consumed before a next one
// is parsed, and must never be shared among parsers.
type Request struct {
	// Method is the request method. method.Error means the request was rejected, so the rest of
	// the fields are populated partially and must not be relied on.
	Method method.Method
	// URI is the request target without the leading slash, up to the space preceding the
	// protocol version. The query string isn't separated from it and stays a part of the URI.
	URI string
	// Headers is the raw headers block, every line including the last one is CRLF-terminated.
	// Empty if the request has no headers.
	Headers []byte
	// ContentLength is the length of the Body. It never exceeds the body buffer capacity.
	ContentLength int
	// Body holds the request body. It must be treated as a bytes slice, not as a string: when
	// Truncated is set, it holds only the beginning of the body.
	Body []byte
	// Truncated is set when the declared Content-Length exceeded the body buffer capacity, so
	// the body was cut to fit it.
	Truncated bool
	// Incomplete is set when the headers block isn't terminated by an empty line. The block
	// holds then everything after the request line, and the body is considered to be empty.
	Incomplete bool
}

// Reset brings the request into its initial state.
func (r *Request) Reset() {
	*r = Request{}
}

// Path returns the URI without the query string.
func (r *Request) Path() string {
	if q := bytes.IndexByte(uf.S2B(r.URI), '?'); q != -1 {
		return r.URI[:q]
	}

	return r.URI
}

// Query returns the raw query string of the URI (everything after the first '?'), or an
// empty string if there is none.
func (r *Request) Query() string {
	if q := bytes.IndexByte(uf.S2B(r.URI), '?'); q != -1 {
		return r.URI[q+1:]
	}

	return ""
}

// Header returns the value of the first header with the given key. Keys are compared
// case-insensitively, leading and trailing whitespaces of the value are stripped.
func (r *Request) Header(key string) (value string, found bool) {
	block := r.Headers

	for len(block) > 0 {
		var line []byte
		eol := bytes.Index(block, crlf)
		if eol == -1 {
			line, block = block, nil
		} else {
			line, block = block[:eol], block[eol+len(crlf):]
		}

		if len(line) <= len(key) || line[len(key)] != ':' {
			continue
		}

		if strcomp.EqualFold(uf.B2S(line[:len(key)]), key) {
			value = uf.B2S(line[len(key)+1:])
			return strutil.RStripWS(strutil.LStripWS(value)), true
		}
	}

	return "", false
}

// HeaderLines returns every header line of the block, without line terminators.
func (r *Request) HeaderLines() []string {
	var lines []string
	block := r.Headers

	for len(block) > 0 {
		eol := bytes.Index(block, crlf)
		if eol == -1 {
			lines = append(lines, string(block))
			break
		}

		lines = append(lines, string(block[:eol]))
		block = block[eol+len(crlf):]
	}

	return lines
}

var crlf = []byte("\r\n")
