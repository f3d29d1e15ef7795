package dump

import (
	"testing"

	"github.com/indigo-web/picohttp/http"
	"github.com/indigo-web/picohttp/http/method"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
)

func TestFromRequest(t *testing.T) {
	request := &http.Request{
		Method:        method.POST,
		URI:           "cgi-bin/set.cgi?mode=1",
		Headers:       []byte("Host: x\r\nContent-Length: 4\r\n"),
		ContentLength: 4,
		Body:          []byte("a=bc"),
	}

	snapshot := FromRequest(request)
	require.Equal(t, "POST", snapshot.Method)
	require.Equal(t, "cgi-bin/set.cgi", snapshot.Path)
	require.Equal(t, "cgi-bin/set.cgi", snapshot.Name)
	require.Equal(t, "mode=1", snapshot.Query)
	require.Equal(t, "cgi", snapshot.ContentType)
	require.Equal(t, []string{"Host: x", "Content-Length: 4"}, snapshot.Headers)
	require.Equal(t, "a=bc", snapshot.Body)

	request.Body[0] = 'z'
	require.Equal(t, "a=bc", snapshot.Body)
}

func TestJSON(t *testing.T) {
	value := "on"
	report := Report{
		Request: FromRequest(&http.Request{Method: method.GET, URI: "index.html"}),
		Params:  map[string]*string{"led": &value, "missing": nil},
		Head:    "HTTP/1.1 200 OK\r\n",
	}

	data, err := JSON(report)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, jsoniter.Unmarshal(data, &decoded))
	require.Equal(t, "GET", decoded["request"].(map[string]any)["method"])
	require.Equal(t, "html", decoded["request"].(map[string]any)["content_type"])
	params := decoded["params"].(map[string]any)
	require.Equal(t, "on", params["led"])
	require.Contains(t, params, "missing")
	require.Nil(t, params["missing"])
	require.NotContains(t, decoded, "error")
}
