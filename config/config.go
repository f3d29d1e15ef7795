package config

// LookupStrategy selects how a query parameter value is delimited.
type LookupStrategy uint8

const (
	// LookupDelimited ends the value at the first '&' or at the end of the span. A parameter
	// present with no value results in an empty value.
	LookupDelimited LookupStrategy = iota + 1
	// LookupTokenized is the legacy strategy: leading delimiters are skipped and the value ends
	// at any of '&', ' ', '\r', '\n' or '\t'. A parameter present with no value is reported
	// as absent.
	LookupTokenized
)

func (l LookupStrategy) String() string {
	switch l {
	case LookupDelimited:
		return "delimited"
	case LookupTokenized:
		return "tokenized"
	default:
		return "unknown"
	}
}

type (
	URI struct {
		// MaxLength is the capacity of the buffer storing the request URI (without the leading
		// slash, but with the query string if any). Longer URIs are rejected.
		MaxLength int
	}

	Headers struct {
		// MaxSpace is the capacity of the buffer storing the headers block, including the
		// terminating CRLF of the last header line. Larger blocks are rejected.
		MaxSpace int
	}

	Body struct {
		// MaxSize is the capacity of the buffer storing the request body. Bodies declaring a
		// longer Content-Length are still accepted, but truncated to this size.
		MaxSize int
	}

	Query struct {
		// ScratchSize is the capacity of the buffer every query.Finder writes decoded values into.
		ScratchSize int
		// Strategy chooses how parameter values are delimited.
		Strategy LookupStrategy
	}
)

// Config holds the limits of every fixed-size buffer. All the memory is allocated once, when
// a parser or a finder is constructed, so the config must not be modified afterwards.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because zero capacities reject every request.
type Config struct {
	URI     URI
	Headers Headers
	Body    Body
	Query   Query
}

// Default returns default config. Limits are small enough for an embedded target with a
// couple of kilobytes per connection.
func Default() *Config {
	return &Config{
		URI: URI{
			MaxLength: 256,
		},
		Headers: Headers{
			MaxSpace: 1024,
		},
		Body: Body{
			MaxSize: 1024,
		},
		Query: Query{
			ScratchSize: 256,
			Strategy:    LookupDelimited,
		},
	}
}
