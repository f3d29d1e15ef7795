package dump

import (
	"github.com/indigo-web/picohttp/http"
	"github.com/indigo-web/picohttp/http/mime"
	"github.com/indigo-web/picohttp/http/status"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Request is a serializable snapshot of a parsed request. Unlike http.Request, it owns its
// memory, so it outlives the parser's buffers.
type Request struct {
	Method        string   `json:"method"`
	URI           string   `json:"uri"`
	Path          string   `json:"path"`
	Name          string   `json:"name"`
	Query         string   `json:"query,omitempty"`
	ContentType   string   `json:"content_type"`
	Headers       []string `json:"headers"`
	ContentLength int      `json:"content_length"`
	Body          string   `json:"body,omitempty"`
	Truncated     bool     `json:"truncated,omitempty"`
	Incomplete    bool     `json:"incomplete,omitempty"`
}

// Report is the document describing a single parsed request.
type Report struct {
	Request Request `json:"request"`
	// Error is set when the request was rejected.
	Error string `json:"error,omitempty"`
	// Params maps each looked up parameter to its value, or null if it isn't presented.
	Params map[string]*string `json:"params,omitempty"`
	// Status is the code the request would be replied with.
	Status     status.Code   `json:"status"`
	StatusText status.Status `json:"status_text"`
	// Head is the response head built for the requested resource.
	Head string `json:"response_head,omitempty"`
	// Peer is the remote IPv4 address, if known.
	Peer string `json:"peer,omitempty"`
}

func FromRequest(request *http.Request) Request {
	name := http.URIName(request.URI)

	return Request{
		Method:        request.Method.String(),
		URI:           request.URI,
		Path:          request.Path(),
		Name:          name,
		Query:         request.Query(),
		ContentType:   mime.Classify(name).String(),
		Headers:       request.HeaderLines(),
		ContentLength: request.ContentLength,
		Body:          string(request.Body),
		Truncated:     request.Truncated,
		Incomplete:    request.Incomplete,
	}
}

// JSON renders the report as an indented JSON document.
func JSON(report Report) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
