package method

import "github.com/indigo-web/utils/strcomp"

type Method uint8

const (
	// Error marks a request which could not be parsed. Other fields of such a request are
	// populated partially and must not be relied on.
	Error Method = iota
	GET
	HEAD
	POST
)

// List contains all the supported HTTP methods.
var List = []Method{GET, HEAD, POST}

func (m Method) String() string {
	switch m {
	case GET:
		return "GET"
	case HEAD:
		return "HEAD"
	case POST:
		return "POST"
	default:
		return "ERROR"
	}
}

// Parse recognizes the method by the token's prefix, ignoring the case. Only the prefix is
// compared, so trailing characters are permitted: "GETX" is parsed as GET. Error is returned
// if no method matched.
func Parse(token string) Method {
	for _, m := range List {
		name := m.String()
		if len(token) >= len(name) && strcomp.EqualFold(token[:len(name)], name) {
			return m
		}
	}

	return Error
}
