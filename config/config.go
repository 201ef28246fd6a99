package config

import (
	"github.com/indigo-web/multipart/http/mime"
)

type (
	HeadersNumber struct {
		Default, Maximal int
	}

	HeadersSpace struct {
		Default, Maximal int
	}
)

type (
	Boundary struct {
		// CaseInsensitive enables ASCII case-insensitive boundary matching. Boundaries are
		// case-sensitive as per RFC 2046, however some peers are known to mangle the case,
		// so this option exists for compatibility.
		CaseInsensitive bool `test:"nullable"`
	}

	Headers struct {
		// Number is responsible for part headers storage size.
		// Default value is an initial size of allocated headers storage.
		// Maximal value is maximum number of headers allowed to be presented in a single part.
		Number HeadersNumber
		// Space limits the amount of memory occupied by a single part's headers section.
		// Default value is the initially allocated size.
		Space HeadersSpace
	}

	Form struct {
		// EntriesPrealloc is the number of preallocated seats for form.Form.
		EntriesPrealloc int
		// DefaultCoding sets the default charset unless one is explicitly set.
		DefaultCoding mime.Charset
		// DefaultContentType sets the default part MIME unless one is explicitly set.
		DefaultContentType mime.MIME
	}

	Chunked struct {
		// MaxChunkSize limits the size of a single chunk in chunked transfer encoding.
		MaxChunkSize int64
		// Trailer enables trailer fields (footers) after the last chunk.
		Trailer bool `test:"nullable"`
	}

	Read struct {
		// BufferSize is the size of a buffer used to read the body from an io.Reader.
		BufferSize int
	}
)

// Config holds settings used across the multipart parser and its helpers, mainly
// restrictions, limitations and pre-allocations.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	Boundary Boundary
	Headers  Headers
	Form     Form
	Chunked  Chunked
	Read     Read
}

// Default returns default config. Those are initially well-balanced, however maximal defaults
// are pretty permitting.
func Default() *Config {
	return &Config{
		Boundary: Boundary{
			CaseInsensitive: false,
		},
		Headers: Headers{
			Number: HeadersNumber{
				Default: 4,
				Maximal: 32,
			},
			Space: HeadersSpace{
				Default: 512,      // usually a part has just Content-Disposition and Content-Type
				Maximal: 8 * 1024, // but filenames might be pretty long.
			},
		},
		Form: Form{
			EntriesPrealloc:    8,
			DefaultCoding:      mime.UTF8,
			DefaultContentType: mime.Plain,
		},
		Chunked: Chunked{
			MaxChunkSize: 1 * 1024 * 1024, // 1mb
			Trailer:      false,
		},
		Read: Read{
			BufferSize: 4 * 1024,
		},
	}
}
