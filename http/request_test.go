package http

import (
	"testing"

	"github.com/indigo-web/picohttp/http/method"
	"github.com/stretchr/testify/require"
)

func TestRequest(t *testing.T) {
	t.Run("path and query", func(t *testing.T) {
		request := &Request{URI: "hello.txt?key=value&a=b"}
		require.Equal(t, "hello.txt", request.Path())
		require.Equal(t, "key=value&a=b", request.Query())
	})

	t.Run("no query", func(t *testing.T) {
		request := &Request{URI: "index.html"}
		require.Equal(t, "index.html", request.Path())
		require.Empty(t, request.Query())
	})

	t.Run("empty query", func(t *testing.T) {
		request := &Request{URI: "?"}
		require.Empty(t, request.Path())
		require.Empty(t, request.Query())
	})

	t.Run("header", func(t *testing.T) {
		request := &Request{
			Headers: []byte("Host: localhost\r\nContent-Type:  text/plain \r\nX-Empty:\r\n"),
		}

		value, found := request.Header("host")
		require.True(t, found)
		require.Equal(t, "localhost", value)

		value, found = request.Header("CONTENT-TYPE")
		require.True(t, found)
		require.Equal(t, "text/plain", value)

		value, found = request.Header("X-Empty")
		require.True(t, found)
		require.Empty(t, value)

		_, found = request.Header("Content")
		require.False(t, found)
		_, found = request.Header("Accept")
		require.False(t, found)
	})

	t.Run("header in unterminated block", func(t *testing.T) {
		request := &Request{Headers: []byte("Host: a\r\nAccept: */*")}
		value, found := request.Header("accept")
		require.True(t, found)
		require.Equal(t, "*/*", value)
	})

	t.Run("header lines", func(t *testing.T) {
		request := &Request{Headers: []byte("Host: a\r\nAccept: */*\r\n")}
		require.Equal(t, []string{"Host: a", "Accept: */*"}, request.HeaderLines())
		require.Empty(t, (&Request{}).HeaderLines())
	})

	t.Run("reset", func(t *testing.T) {
		request := &Request{
			Method:        method.POST,
			URI:           "a",
			Headers:       []byte("Host: a\r\n"),
			ContentLength: 1,
			Body:          []byte("b"),
			Truncated:     true,
			Incomplete:    true,
		}
		request.Reset()
		require.Equal(t, Request{}, *request)
		require.Equal(t, method.Error, request.Method)
	})
}

func TestURIName(t *testing.T) {
	for uri, want := range map[string]string{
		"/index.html":             "index.html",
		"/hello.txt?key=value":    "hello.txt",
		"/dir/page.htm HTTP/1.1":  "dir/page.htm",
		"/":                       "/",
		"/?x=1":                   "/",
		"index.html":              "index.html",
		"":                        "",
		"?":                       "",
		"?file=style.css":         "",
		" /index.html":            "",
		"?/after/delimiters.html": "",
	} {
		require.Equal(t, want, URIName(uri), uri)
	}
}

func TestEscape(t *testing.T) {
	require.Equal(t, "index.html", Escape("index.html"))
	require.Equal(t, `GET /\r\n`, Escape("GET /\r\n"))
	require.Equal(t, `\0a\?`, Escape("\x00a\x01"))
	require.Equal(t, `\?`, Escape("\xff"))
}
