// Package head composes response heads: a status line and the Content-Type and
// Content-Length headers, followed by the empty line.
package head

import (
	"strconv"

	"github.com/indigo-web/picohttp/http/mime"
	"github.com/indigo-web/picohttp/http/status"
	"k8s.io/klog/v2"
)

// Every template ends right before the numeric Content-Length value.
var templates = [...]string{
	mime.TypeHTML:  "HTTP/1.1 200 OK\r\nContent-Type: text/html\r\nContent-Length: ",
	mime.TypeGIF:   "HTTP/1.1 200 OK\r\nContent-Type: image/gif\r\nContent-Length: ",
	mime.TypeText:  "HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\nContent-Length: ",
	mime.TypeJPEG:  "HTTP/1.1 200 OK\r\nContent-Type: image/jpeg\r\nContent-Length: ",
	mime.TypeFlash: "HTTP/1.1 200 OK\r\nContent-Type: application/x-shockwave-flash\r\nContent-Length: ",
	mime.TypeXML:   "HTTP/1.1 200 OK\r\nContent-Type: text/xml\r\nContent-Length: ",
	mime.TypeCSS:   "HTTP/1.1 200 OK\r\nContent-Type: text/css\r\nContent-Length: ",
	mime.TypeJSON:  "HTTP/1.1 200 OK\r\nContent-Type: application/json\r\nContent-Length: ",
	mime.TypeJS:    "HTTP/1.1 200 OK\r\nContent-Type: application/javascript\r\nContent-Length: ",
	mime.TypeCGI:   "HTTP/1.1 200 OK\r\nContent-Type: text/html\r\nContent-Length: ",
	mime.TypePNG:   "HTTP/1.1 200 OK\r\nContent-Type: image/png\r\nContent-Length: ",
	mime.TypeICO:   "HTTP/1.1 200 OK\r\nContent-Type: image/x-icon\r\nContent-Length: ",
	mime.TypeTTF:   "HTTP/1.1 200 OK\r\nContent-Type: application/x-font-truetype\r\nContent-Length: ",
	mime.TypeOTF:   "HTTP/1.1 200 OK\r\nContent-Type: application/x-font-opentype\r\nContent-Length: ",
	mime.TypeWOFF:  "HTTP/1.1 200 OK\r\nContent-Type: application/font-woff\r\nContent-Length: ",
	mime.TypeEOT:   "HTTP/1.1 200 OK\r\nContent-Type: application/vnd.ms-fontobject\r\nContent-Length: ",
	mime.TypeSVG:   "HTTP/1.1 200 OK\r\nContent-Type: image/svg+xml\r\nContent-Length: ",
}

const terminator = "\r\n\r\n"

// MaxLength is the longest head Build may produce.
var MaxLength = func() (longest int) {
	for _, tmpl := range templates {
		if len(tmpl) > longest {
			longest = len(tmpl)
		}
	}

	return longest + len("4294967295") + len(terminator)
}()

// Template returns the head template for the content type. No template exists for
// mime.Unknown.
func Template(contentType mime.ContentType) (string, bool) {
	if int(contentType) >= len(templates) || len(templates[contentType]) == 0 {
		return "", false
	}

	return templates[contentType], true
}

// Build writes the response head into dst and returns how many bytes were written. Nothing
// is written if the content type is unknown or the head doesn't fit into dst.
func Build(dst []byte, contentType mime.ContentType, length uint32) (int, error) {
	tmpl, ok := Template(contentType)
	if !ok {
		if v := klog.V(2); v.Enabled() {
			v.Infof("no response head for content type %s", contentType)
		}
		return 0, status.ErrUnknownContentType
	}

	var digitsBuff [10]byte
	digits := strconv.AppendUint(digitsBuff[:0], uint64(length), 10)

	if len(tmpl)+len(digits)+len(terminator) > len(dst) {
		return 0, status.ErrShortBuffer
	}

	n := copy(dst, tmpl)
	n += copy(dst[n:], digits)
	n += copy(dst[n:], terminator)

	return n, nil
}

// Append is the same as Build, but appends the head to b, growing it if necessary.
func Append(b []byte, contentType mime.ContentType, length uint32) ([]byte, error) {
	tmpl, ok := Template(contentType)
	if !ok {
		if v := klog.V(2); v.Enabled() {
			v.Infof("no response head for content type %s", contentType)
		}
		return b, status.ErrUnknownContentType
	}

	b = append(b, tmpl...)
	b = strconv.AppendUint(b, uint64(length), 10)

	return append(b, terminator...), nil
}
