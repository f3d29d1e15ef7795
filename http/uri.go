package http

import (
	"strings"

	"k8s.io/klog/v2"
)

// URIName returns the name of the resource a request URI refers to: the text up to the first
// space or '?', without the leading slash. A root URI results in "/".
func URIName(uri string) string {
	name := uri
	if end := strings.IndexAny(name, " ?"); end != -1 {
		name = name[:end]
	}

	if name != "/" && strings.HasPrefix(name, "/") {
		name = name[1:]
	}

	if v := klog.V(5); v.Enabled() {
		v.Infof("uri_name = %s", Escape(name))
	}

	return name
}
