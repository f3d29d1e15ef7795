package http1

import (
	"testing"

	"github.com/indigo-web/picohttp/config"
	"github.com/indigo-web/picohttp/http"
	"github.com/indigo-web/picohttp/internal/requestgen"
	"github.com/stretchr/testify/require"
)

var (
	simpleGET = []byte("GET /index.html HTTP/1.1\r\nHost: localhost\r\nAccept: */*\r\n\r\n")
	formPOST  = []byte("POST /cgi-bin/set.cgi HTTP/1.1\r\nHost: localhost\r\n" +
		"Content-Type: application/x-www-form-urlencoded\r\nContent-Length: 26\r\n\r\n" +
		"name=hello+world&value=%21")
)

func BenchmarkParser(b *testing.B) {
	cfg := config.Default()
	cfg.Headers.MaxSpace = 8192
	parser, request := NewParser(cfg), new(http.Request)

	bench := func(data []byte) func(b *testing.B) {
		return func(b *testing.B) {
			require.NoError(b, parser.Parse(request, data))
			b.SetBytes(int64(len(data)))
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_ = parser.Parse(request, data)
			}
		}
	}

	b.Run("simple GET", bench(simpleGET))
	b.Run("form POST", bench(formPOST))
	b.Run("5 headers", bench(requestgen.Generate("GET", "", requestgen.Headers(5), "")))
	b.Run("50 headers", bench(requestgen.Generate("GET", "", requestgen.Headers(50), "")))
	b.Run("full body", bench(requestgen.Generate("POST", "upload.cgi", requestgen.Headers(1), string(make([]byte, cfg.Body.MaxSize)))))
}
