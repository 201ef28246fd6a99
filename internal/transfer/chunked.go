package transfer

import (
	"io"

	"github.com/indigo-web/chunkedbody"
	"github.com/indigo-web/multipart/config"
	"github.com/indigo-web/multipart/http/status"
)

// ChunkedReader decodes a body in chunked transfer encoding, as is common for streamed
// multipart requests.
type ChunkedReader struct {
	r       io.Reader
	parser  *chunkedbody.Parser
	trailer bool
	raw     []byte
	// pending is the read, but not yet decoded data.
	pending []byte
	// chunk is the decoded, but not yet returned data.
	chunk []byte
	done  bool
}

func NewChunkedReader(r io.Reader, cfg *config.Config) *ChunkedReader {
	settings := chunkedbody.DefaultSettings()
	settings.MaxChunkSize = cfg.Chunked.MaxChunkSize

	return &ChunkedReader{
		r:       r,
		parser:  chunkedbody.NewParser(settings),
		trailer: cfg.Chunked.Trailer,
		raw:     make([]byte, cfg.Read.BufferSize),
	}
}

func (c *ChunkedReader) Read(b []byte) (n int, err error) {
	for len(c.chunk) == 0 {
		if c.done {
			return 0, io.EOF
		}

		if len(c.pending) == 0 {
			n, err := c.r.Read(c.raw)
			switch {
			case n > 0:
			case err == io.EOF:
				return 0, io.ErrUnexpectedEOF
			case err != nil:
				return 0, err
			default:
				continue
			}

			c.pending = c.raw[:n]
		}

		chunk, extra, err := c.parser.Parse(c.pending, c.trailer)
		switch err {
		case nil:
		case io.EOF:
			c.done = true
		default:
			return 0, status.ErrBadChunk
		}

		c.chunk, c.pending = chunk, extra
	}

	n = copy(b, c.chunk)
	c.chunk = c.chunk[n:]

	return n, nil
}

// Extra returns the data read beyond the end of the chunked body. It's meaningful only
// after Read returned io.EOF.
func (c *ChunkedReader) Extra() []byte {
	return c.pending
}
