package multipart

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/multipart/http/mime"
	"github.com/indigo-web/multipart/http/status"
	"github.com/indigo-web/multipart/kv"
)

var (
	ErrWriterClosed = errors.New("multipart: writer is closed")
	ErrLateBoundary = errors.New("multipart: boundary can't be changed after writing a part")
)

// Writer serializes parts into a multipart body, which Parser is able to read.
type Writer struct {
	w        io.Writer
	boundary string
	parts    int
	closed   bool
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w:        w,
		boundary: randomBoundary(),
	}
}

func randomBoundary() string {
	return "indigo" + uniuri.NewLen(24)
}

func (w *Writer) Boundary() string {
	return w.boundary
}

// SetBoundary overrides the randomly generated boundary. It must be called before the
// first part is created.
func (w *Writer) SetBoundary(boundary string) error {
	if w.parts > 0 {
		return ErrLateBoundary
	}

	if !mime.ValidBoundary(boundary) {
		return status.ErrBadBoundary
	}

	w.boundary = boundary
	return nil
}

// FormDataContentType returns the Content-Type value for the body.
func (w *Writer) FormDataContentType() string {
	boundary := w.boundary
	if strings.ContainsAny(boundary, `()<>@,;:\"/[]?= `) {
		boundary = `"` + boundary + `"`
	}

	return mime.Multipart + "; boundary=" + boundary
}

// CreatePart writes the delimiter and the headers, returning a writer for the part body.
// The body writer stays valid until the next part is created or the Writer is closed.
func (w *Writer) CreatePart(headers *kv.Storage) (io.Writer, error) {
	if w.closed {
		return nil, ErrWriterClosed
	}

	var sb strings.Builder
	if w.parts > 0 {
		sb.WriteString("\r\n")
	}

	sb.WriteString("--")
	sb.WriteString(w.boundary)
	sb.WriteString("\r\n")

	for key, value := range headers.Pairs() {
		sb.WriteString(key)
		sb.WriteString(": ")
		sb.WriteString(value)
		sb.WriteString("\r\n")
	}

	sb.WriteString("\r\n")
	w.parts++

	if _, err := io.WriteString(w.w, sb.String()); err != nil {
		return nil, err
	}

	return w.w, nil
}

// CreateFormField creates a part carrying a plain form value.
func (w *Writer) CreateFormField(name string) (io.Writer, error) {
	headers := kv.New().
		Add("Content-Disposition", fmt.Sprintf(`form-data; name="%s"`, escapeQuotes(name)))

	return w.CreatePart(headers)
}

// CreateFormFile creates a part carrying a file. Empty content type is guessed by
// the filename extension.
func (w *Writer) CreateFormFile(name, filename, contentType string) (io.Writer, error) {
	if len(contentType) == 0 {
		contentType = mime.Guess(filename, mime.OctetStream)
	}

	disposition := fmt.Sprintf(
		`form-data; name="%s"; filename="%s"`, escapeQuotes(name), escapeQuotes(filename),
	)
	headers := kv.New().
		Add("Content-Disposition", disposition).
		Add("Content-Type", contentType)

	return w.CreatePart(headers)
}

// Close writes the closing delimiter. No parts can be created afterwards.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}

	w.closed = true

	var prefix string
	if w.parts > 0 {
		prefix = "\r\n"
	}

	_, err := io.WriteString(w.w, prefix+"--"+w.boundary+"--\r\n")
	return err
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
