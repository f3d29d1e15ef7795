package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/indigo-web/picohttp"
	"github.com/indigo-web/picohttp/config"
	"github.com/indigo-web/picohttp/http/method"
	"github.com/indigo-web/picohttp/http/status"
	"github.com/indigo-web/picohttp/internal/address"
	"github.com/indigo-web/picohttp/internal/dump"
	"k8s.io/klog/v2"
)

type options struct {
	Config      *config.Config
	Params      []string
	ReplyLength uint32
	Peer        string
	// CRLF enables the normalization of line terminators, as raw requests stored in text
	// files usually lack carriage returns.
	CRLF bool
}

// run parses the request read from src and writes the report into out. Rejected requests
// are reported too, and aren't an error.
func run(src io.Reader, out io.Writer, opts options) (rejected bool, err error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return false, fmt.Errorf("read request: %w", err)
	}

	if opts.CRLF {
		data = normalizeNewlines(data)
	}

	var report dump.Report

	if len(opts.Peer) > 0 {
		ip, err := address.ParseIPv4(opts.Peer)
		if err != nil {
			return false, fmt.Errorf("bad peer address: %w", err)
		}

		report.Peer = fmt.Sprintf("%d.%d.%d.%d", ip[0], ip[1], ip[2], ip[3])
	}

	parser := picohttp.New(opts.Config)
	request, err := parser.Parse(data)
	report.Request = dump.FromRequest(request)

	var headErr error

	if err != nil {
		report.Error = err.Error()
	} else {
		report.Params = make(map[string]*string, len(opts.Params))
		for _, name := range opts.Params {
			value, found, err := parser.Param(name)
			if err != nil {
				klog.Warningf("parameter %s: %s", name, err)
			}

			if found {
				// the value references the parser's buffer, overwritten by the next lookup
				owned := strings.Clone(value)
				report.Params[name] = &owned
			} else {
				report.Params[name] = nil
			}
		}

		var head []byte
		head, headErr = parser.Head(opts.ReplyLength)
		if v := klog.V(1); headErr != nil && v.Enabled() {
			v.Infof("no response head for %q: %s", request.Path(), headErr)
		}

		if headErr == nil {
			report.Head = string(head)
		}
	}

	report.Status = replyCode(err, headErr)
	report.StatusText = status.Text(report.Status)

	doc, err := dump.JSON(report)
	if err != nil {
		return false, fmt.Errorf("render report: %w", err)
	}

	if _, err = out.Write(append(doc, '\n')); err != nil {
		return false, fmt.Errorf("write report: %w", err)
	}

	return request.Method == method.Error, nil
}

func normalizeNewlines(data []byte) []byte {
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	return bytes.ReplaceAll(data, []byte("\n"), []byte("\r\n"))
}

// replyCode tells which status the request would be replied with. Resources of unknown type
// can't be served, so they are reported as missing.
func replyCode(parseErr, headErr error) status.Code {
	var httpErr status.HTTPError

	switch {
	case parseErr != nil:
		if errors.As(parseErr, &httpErr) {
			return httpErr.Code
		}

		return status.BadRequest
	case errors.Is(headErr, status.ErrUnknownContentType):
		return status.NotFound
	case headErr != nil:
		return status.InternalServerError
	default:
		return status.OK
	}
}
