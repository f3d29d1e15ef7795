package parser

import "github.com/indigo-web/picohttp/http"

// RequestParser is a general interface for every requests parser. A call parses exactly one
// fully-buffered request, overwriting the fields of the passed request. Nothing is retained
// among calls, except the memory the request's fields reference.
type RequestParser interface {
	Parse(request *http.Request, data []byte) error
}
