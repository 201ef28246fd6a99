// Package transfer connects byte sources to the multipart parser.
package transfer

import (
	"io"

	"github.com/indigo-web/multipart/http/multipart"
	"github.com/indigo-web/multipart/http/status"
)

// Feed reads the body from r into buff piece by piece and passes every piece to the
// parser, until the closing delimiter is met. The bytes read beyond the body are returned
// as extra, which references buff's memory.
//
// If the reader is exhausted before the body is complete, status.ErrIncompleteBody is
// returned.
func Feed(r io.Reader, p *multipart.Parser, buff []byte) (extra []byte, err error) {
	for {
		n, readErr := r.Read(buff)
		if n > 0 {
			consumed, err := p.Parse(buff[:n])
			if err != nil {
				return nil, err
			}

			if p.Done() {
				return buff[consumed:n], nil
			}
		}

		switch readErr {
		case nil:
		case io.EOF:
			return nil, status.ErrIncompleteBody
		default:
			return nil, readErr
		}
	}
}
