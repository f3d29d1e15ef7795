package query

import (
	"github.com/indigo-web/picohttp/config"
	"github.com/indigo-web/picohttp/http"
	"github.com/indigo-web/utils/uf"
	"k8s.io/klog/v2"
)

// Finder looks parameters up, decoding their values into its own scratch buffer. The buffer
// is allocated once and overwritten by every lookup, so a returned value is valid only until
// the next call. Finder isn't safe for concurrent use, every goroutine must own its own one.
type Finder struct {
	scratch  []byte
	strategy config.LookupStrategy
}

func NewFinder(cfg config.Query) *Finder {
	return &Finder{
		scratch:  make([]byte, cfg.ScratchSize),
		strategy: cfg.Strategy,
	}
}

// Value looks the parameter up in an arbitrary span.
func (f *Finder) Value(span []byte, name string) (value string, found bool, err error) {
	decoded, found, err := Lookup(f.scratch, span, name, f.strategy)
	value = uf.B2S(decoded)
	if v := klog.V(5); found && v.Enabled() {
		v.Infof("  %s=%s", name, http.Escape(value))
	}

	return value, found, err
}

// Query looks the parameter up in the query string of the request URI.
func (f *Finder) Query(request *http.Request, name string) (string, bool, error) {
	return f.Value(uf.S2B(request.Query()), name)
}

// Form looks the parameter up in the urlencoded request body. Truncated bodies are searched
// as they are.
func (f *Finder) Form(request *http.Request, name string) (string, bool, error) {
	return f.Value(request.Body, name)
}
