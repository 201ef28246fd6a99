// Package multipart implements a streaming parser of MIME multipart bodies, as used in
// multipart/form-data requests. The parser is fed with arbitrarily sliced pieces of the
// body and reports parts to a Listener as soon as they are recognized, never buffering
// part bodies.
package multipart

import (
	"bytes"

	"github.com/indigo-web/multipart/config"
	"github.com/indigo-web/multipart/http/mime"
	"github.com/indigo-web/multipart/http/status"
	"github.com/indigo-web/multipart/internal/buffer"
	"github.com/indigo-web/multipart/internal/mimeheader"
	"github.com/indigo-web/multipart/internal/strutil"
	"github.com/indigo-web/multipart/kv"
)

var headersSectionEnd = [4]byte{'\r', '\n', '\r', '\n'}

// Parser is a single-use automaton parsing exactly one multipart body. It isn't safe for
// concurrent use.
type Parser struct {
	state    parserState
	listener Listener
	foldCase bool
	err      error

	// first is the delimiter preceding the very first part, next precedes every other one.
	first, next []byte
	// matched is the number of bytes of the current delimiter matched so far.
	matched int
	// pending holds the actually matched bytes while the delimiter is compared
	// case-insensitively, as they might differ from the delimiter itself.
	pending []byte
	// readingBody is set when a delimiter candidate is met inside a part body, so a mismatch
	// means the bytes were just data.
	readingBody bool
	// checkForBoundary is unset when the data scanner resumes right at the byte that began
	// a false delimiter candidate.
	checkForBoundary bool
	// finishing is set if the delimiter is followed by a dash, i.e. it's the closing one.
	finishing bool
	// sawFirstByte is set if the first byte after the delimiter is already processed.
	sawFirstByte bool

	partIndex   int
	part        Part
	headersBuff *buffer.Buffer
	headers     *kv.Storage
	maxHeaders  int
	headerEnd   [4]byte
}

// NewParser returns a parser for a body delimited by the boundary. The boundary is the
// token as met in the Content-Type parameter, without leading dashes.
func NewParser(cfg *config.Config, boundary string, listener Listener) (*Parser, error) {
	if !mime.ValidBoundary(boundary) {
		return nil, status.ErrBadBoundary
	}

	first := make([]byte, 0, len("--")+len(boundary))
	first = append(append(first, "--"...), boundary...)
	next := make([]byte, 0, len("\r\n")+len(first))
	next = append(append(next, "\r\n"...), first...)

	p := &Parser{
		state:    eBoundary,
		listener: listener,
		foldCase: cfg.Boundary.CaseInsensitive,
		first:    first,
		next:     next,
		// the terminator itself is written into the buffer before being cut off, so it
		// must be taken into account
		headersBuff: buffer.New(cfg.Headers.Space.Default, cfg.Headers.Space.Maximal+len(headersSectionEnd)),
		headers:     kv.NewPrealloc(cfg.Headers.Number.Default),
		maxHeaders:  cfg.Headers.Number.Maximal,
	}

	if p.foldCase {
		p.pending = make([]byte, 0, len(next))
	}

	return p, nil
}

// Parse processes the data and returns the number of consumed bytes. All the data is
// consumed unless the closing delimiter is met, in which case the rest is left untouched.
// Any returned error is fatal: the body must be rejected, and all subsequent calls
// return the same error.
func (p *Parser) Parse(data []byte) (n int, err error) {
	if p.err != nil {
		return 0, p.err
	}

	for n < len(data) {
		var consumed int

		switch p.state {
		case eBoundary:
			consumed, err = p.parseBoundary(data[n:])
		case eAfterBoundary:
			consumed, err = p.parseAfterBoundary(data[n:])
		case eHeaders:
			consumed, err = p.parseHeaders(data[n:])
		case eData:
			consumed, err = p.parseData(data[n:])
		case eDone:
			return n, nil
		default:
			err = status.ErrInvalidDispatchState
		}

		n += consumed

		if err != nil {
			p.err = err
			return n, err
		}
	}

	return n, nil
}

// Done reports whether the closing delimiter was met.
func (p *Parser) Done() bool {
	return p.state == eDone
}

// Parts returns the number of parts whose headers were already reported.
func (p *Parser) Parts() int {
	return p.partIndex
}

func (p *Parser) parseBoundary(data []byte) (int, error) {
	sample := p.next
	if p.partIndex == 0 {
		sample = p.first
	}

	checkSize := len(sample) - p.matched
	if checkSize > len(data) {
		checkSize = len(data)
	}

	if p.compare(data[:checkSize], sample[p.matched:p.matched+checkSize]) {
		if p.foldCase && p.readingBody {
			p.pending = append(p.pending, data[:checkSize]...)
		}

		p.matched += checkSize

		if p.matched == len(sample) {
			p.state = eAfterBoundary
			p.matched = 0
			p.pending = p.pending[:0]
			p.readingBody = false
		}

		return checkSize, nil
	}

	if !p.readingBody {
		return 0, status.ErrUnexpectedPrologue
	}

	// so it was just a part of the body, that looks similar to the delimiter. If the
	// candidate began in previous calls, the matched bytes are already consumed, so they
	// must be reported from here. Otherwise, the data begins with the candidate's leading
	// byte, which the data scanner must step over.
	if p.matched > 0 {
		falseMatch := sample[:p.matched]
		if p.foldCase {
			falseMatch = p.pending
		}

		if err := p.listener.OnData(p.part, falseMatch); err != nil {
			return 0, err
		}
	}

	p.checkForBoundary = p.matched > 0
	p.state = eData
	p.matched = 0
	p.pending = p.pending[:0]

	return 0, nil
}

func (p *Parser) parseAfterBoundary(data []byte) (int, error) {
	var offset int

	if !p.sawFirstByte {
		switch data[0] {
		case '-':
			p.finishing = true
		case '\r':
		default:
			return 0, status.ErrInvalidTrailingByte
		}

		p.sawFirstByte = true
		offset++

		if len(data) == 1 {
			return offset, nil
		}
	}

	switch c := data[offset]; {
	case p.finishing && c == '-':
		p.state = eDone
	case !p.finishing && c == '\n':
		p.state = eHeaders
		p.headersBuff.Clear()
		p.headerEnd = [4]byte{}
	default:
		return offset, status.ErrInvalidTrailingByte
	}

	p.sawFirstByte = false

	return offset + 1, nil
}

func (p *Parser) parseHeaders(data []byte) (int, error) {
	for i, c := range data {
		p.headerEnd = [4]byte{p.headerEnd[1], p.headerEnd[2], p.headerEnd[3], c}
		if p.headerEnd != headersSectionEnd {
			continue
		}

		if !p.headersBuff.Append(data[:i+1]) {
			return i + 1, status.ErrHeaderFieldsTooLarge
		}

		// the terminator might have been split among multiple calls, therefore it's
		// cut off only after being written completely
		p.headersBuff.Trunc(len(headersSectionEnd))

		return i + 1, p.onHeaders()
	}

	if !p.headersBuff.Append(data) {
		return len(data), status.ErrHeaderFieldsTooLarge
	}

	return len(data), nil
}

func (p *Parser) onHeaders() error {
	p.headers.Clear()
	if err := mimeheader.Parse(p.headers, p.headersBuff.Preview(), p.maxHeaders); err != nil {
		return err
	}

	name, err := DispositionName(p.headers)
	if err != nil {
		return err
	}

	p.part = Part{
		Index:   p.partIndex,
		Name:    name,
		Headers: p.headers,
	}

	if err = p.listener.OnHeaders(p.part); err != nil {
		return err
	}

	p.partIndex++
	p.state = eData
	p.checkForBoundary = true

	return nil
}

func (p *Parser) parseData(data []byte) (int, error) {
	cr := bytes.IndexByte(data, '\r')
	if cr == 0 && !p.checkForBoundary {
		cr = bytes.IndexByte(data[1:], '\r')
		if cr != -1 {
			cr++
		}
	}

	p.checkForBoundary = true

	if cr == -1 {
		return len(data), p.listener.OnData(p.part, data)
	}

	if cr > 0 {
		if err := p.listener.OnData(p.part, data[:cr]); err != nil {
			return cr, err
		}
	}

	p.state = eBoundary
	p.readingBody = true

	return cr, nil
}

func (p *Parser) compare(data, sample []byte) bool {
	if p.foldCase {
		return strutil.CmpFoldBytes(data, sample)
	}

	return bytes.Equal(data, sample)
}
