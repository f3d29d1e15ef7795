package requestgen

import (
	"strconv"
	"strings"
)

// Headers generates n header lines, the last one is always Host.
func Headers(n int) (hdrs []string) {
	for i := 0; i < n-1; i++ {
		hdrs = append(hdrs, "some-random-header-name-nobody-cares-about"+strconv.Itoa(i)+": "+strings.Repeat("b", 100))
	}

	return append(hdrs, "Host: localhost")
}

// HeadersBlock joins the lines, terminating each of them by CRLF.
func HeadersBlock(hdrs []string) (buff []byte) {
	for _, line := range hdrs {
		buff = append(buff, line+"\r\n"...)
	}

	return buff
}

// Generate composes a request. The Content-Length header is added if the body isn't empty.
func Generate(method, uri string, hdrs []string, body string) (request []byte) {
	request = append(request, method+" /"+uri+" HTTP/1.1\r\n"...)
	request = append(request, HeadersBlock(hdrs)...)
	if len(body) > 0 {
		request = append(request, "Content-Length: "+strconv.Itoa(len(body))+"\r\n"...)
	}

	request = append(request, '\r', '\n')

	return append(request, body...)
}
