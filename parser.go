// Package picohttp parses fully-buffered HTTP/1.0 and HTTP/1.1 requests using only the memory
// allocated once, at construction time. It is meant for tiny servers that receive a whole
// request into a single buffer and reply with a static resource or a CGI-like handler output.
package picohttp

import (
	"github.com/indigo-web/picohttp/config"
	"github.com/indigo-web/picohttp/http"
	"github.com/indigo-web/picohttp/http/head"
	"github.com/indigo-web/picohttp/http/method"
	"github.com/indigo-web/picohttp/http/mime"
	"github.com/indigo-web/picohttp/http/query"
	"github.com/indigo-web/picohttp/internal/parser"
	"github.com/indigo-web/picohttp/internal/parser/http1"
	"k8s.io/klog/v2"
)

// Parser owns a request together with every buffer its fields reference. Anything it returns
// stays valid only until the next call to Parse (or Param, for parameter values).
//
// Parser isn't safe for concurrent use. Use one per goroutine instead.
type Parser struct {
	parser  parser.RequestParser
	finder  *query.Finder
	request *http.Request
	head    []byte
}

// New returns a parser with limits taken from cfg. Nil cfg means config.Default().
func New(cfg *config.Config) *Parser {
	if cfg == nil {
		cfg = config.Default()
	}

	return &Parser{
		parser:  http1.NewParser(cfg),
		finder:  query.NewFinder(cfg.Query),
		request: new(http.Request),
		head:    make([]byte, 0, head.MaxLength),
	}
}

// Parse parses data as a single complete request. The returned request is never nil: when
// the request is rejected, its method is method.Error and the error tells the reason.
func (p *Parser) Parse(data []byte) (*http.Request, error) {
	err := p.parser.Parse(p.request, data)
	if v := klog.V(3); err != nil && v.Enabled() {
		v.Infof("rejected request to %q: %s", http.Escape(p.request.URI), err)
	}

	return p.request, err
}

// Request returns the last parsed request.
func (p *Parser) Request() *http.Request {
	return p.request
}

// Param looks the parameter up in the query string first and falls back to the body
// for POST requests.
func (p *Parser) Param(name string) (value string, found bool, err error) {
	value, found, err = p.finder.Query(p.request, name)
	if found || p.request.Method != method.POST {
		return value, found, err
	}

	return p.finder.Form(p.request, name)
}

// ContentType classifies the requested resource by its name.
func (p *Parser) ContentType() mime.ContentType {
	return mime.Classify(http.URIName(p.request.URI))
}

// Head builds the response head for the requested resource, with the given length of the
// response body. The head is overwritten by the next call.
func (p *Parser) Head(length uint32) ([]byte, error) {
	return head.Append(p.head[:0], p.ContentType(), length)
}
