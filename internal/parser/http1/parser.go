package http1

import (
	"bytes"

	"github.com/indigo-web/picohttp/config"
	"github.com/indigo-web/picohttp/http"
	"github.com/indigo-web/picohttp/http/method"
	"github.com/indigo-web/picohttp/http/status"
	"github.com/indigo-web/picohttp/internal/buffer"
	"github.com/indigo-web/picohttp/internal/strutil"
	"github.com/indigo-web/utils/uf"
)

const contentLengthKey = "Content-Length: "

var (
	crlf      = []byte("\r\n")
	emptyLine = []byte("\r\n\r\n")
)

// Parser turns a fully-buffered HTTP/1.0 or HTTP/1.1 request into http.Request. All the
// memory it needs is allocated once, in NewParser. The parsed URI, headers and body reference
// it, therefore stay valid until the next call to Parse.
//
// Parser isn't safe for concurrent use.
type Parser struct {
	uriBuff     *buffer.Buffer
	headersBuff *buffer.Buffer
	bodyBuff    *buffer.Buffer
}

func NewParser(cfg *config.Config) *Parser {
	return &Parser{
		uriBuff:     buffer.New(cfg.URI.MaxLength),
		headersBuff: buffer.New(cfg.Headers.MaxSpace),
		bodyBuff:    buffer.New(cfg.Body.MaxSize),
	}
}

// Parse populates the request from data. On failure, the request's method is set to
// method.Error and the returned error tells the reason. A headers block that isn't terminated
// by an empty line is not a failure: the request is marked as incomplete instead.
func (p *Parser) Parse(request *http.Request, data []byte) error {
	request.Reset()
	p.uriBuff.Clear()
	p.headersBuff.Clear()
	p.bodyBuff.Clear()

	lineEnd, err := p.scanRequestLine(request, data)
	if err != nil {
		return fail(request, err)
	}

	bodyOffset, err := p.extractHeaders(request, data, lineEnd)
	if err != nil {
		return fail(request, err)
	}

	if request.Incomplete {
		return nil
	}

	if err = p.extractBody(request, data, bodyOffset); err != nil {
		return fail(request, err)
	}

	return nil
}

// scanRequestLine recognizes the method and copies the URI. Both delimiting spaces must lie
// within the request line. Returns the offset of the byte following the space after the URI.
func (p *Parser) scanRequestLine(request *http.Request, data []byte) (int, error) {
	line := data
	if eol := bytes.Index(data, crlf); eol != -1 {
		line = data[:eol]
	}

	sp := bytes.IndexByte(line, ' ')
	if sp == -1 {
		return 0, status.ErrBadRequest
	}

	request.Method = method.Parse(uf.B2S(line[:sp]))
	if request.Method == method.Error {
		return 0, status.ErrMethodNotImplemented
	}

	target := line[sp+1:]
	sp = bytes.IndexByte(target, ' ')
	if sp == -1 {
		return 0, status.ErrBadRequest
	}

	// the slash must belong to the request target, the one of the protocol doesn't count
	slash := bytes.IndexByte(target[:sp], '/')
	if slash == -1 {
		return 0, status.ErrBadRequest
	}

	if !p.uriBuff.Append(target[slash+1 : sp]) {
		return 0, status.ErrURITooLong
	}

	request.URI = uf.B2S(p.uriBuff.Finish())

	return len(line) - len(target) + sp + 1, nil
}

// extractHeaders isolates the headers block, which spans from the end of the request line
// up to the empty line. Returns the offset the body begins at.
func (p *Parser) extractHeaders(request *http.Request, data []byte, offset int) (int, error) {
	lineEnd := bytes.Index(data[offset:], crlf)
	if lineEnd == -1 {
		return 0, status.ErrBadRequest
	}

	lineEnd += offset
	begin := lineEnd + len(crlf)
	// the CRLF ending the request line may also be the beginning of the empty line,
	// which is the case for requests with no headers
	end := bytes.Index(data[lineEnd:], emptyLine)
	if end == -1 {
		request.Incomplete = true
		if !p.headersBuff.Append(data[begin:]) {
			return 0, status.ErrHeaderFieldsTooLarge
		}

		request.Headers = p.headersBuff.Finish()
		return len(data), nil
	}

	end += lineEnd
	if !p.headersBuff.Append(data[begin : end+len(crlf)]) {
		return 0, status.ErrHeaderFieldsTooLarge
	}

	request.Headers = p.headersBuff.Finish()

	return end + len(emptyLine), nil
}

// extractBody validates the received body length against the declared one and copies the
// body. Bodies longer than the buffer are truncated.
func (p *Parser) extractBody(request *http.Request, data []byte, offset int) error {
	value, found := strutil.MidFold(request.Headers, contentLengthKey, "\r\n")
	if !found || len(value) == 0 {
		return nil
	}

	declared, ok := strutil.Atoi(strutil.LStripWS(uf.B2S(value)), 10)
	if !ok {
		return status.ErrBadContentLength
	}

	if uint64(offset)+uint64(declared) != uint64(len(data)) {
		return status.ErrBodyLengthMismatch
	}

	request.Truncated = p.bodyBuff.AppendTrunc(data[offset:])
	request.Body = p.bodyBuff.Finish()
	request.ContentLength = len(request.Body)

	return nil
}

func fail(request *http.Request, err error) error {
	request.Method = method.Error
	return err
}
