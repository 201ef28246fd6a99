package transfer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/indigo-web/multipart/config"
	"github.com/indigo-web/multipart/http/multipart"
	"github.com/indigo-web/multipart/http/status"
	"github.com/stretchr/testify/require"
)

func encodeChunked(data []byte, size int) []byte {
	var buff bytes.Buffer

	for len(data) > 0 {
		n := min(size, len(data))
		_, _ = fmt.Fprintf(&buff, "%x\r\n", n)
		buff.Write(data[:n])
		buff.WriteString("\r\n")
		data = data[n:]
	}

	buff.WriteString("0\r\n\r\n")
	return buff.Bytes()
}

type part struct {
	Name, Value string
}

func newParser(t *testing.T, boundary string, parts *[]part) *multipart.Parser {
	p, err := multipart.NewParser(config.Default(), boundary, multipart.Funcs{
		Headers: func(pt multipart.Part) error {
			*parts = append(*parts, part{Name: strings.Clone(pt.Name)})
			return nil
		},
		Data: func(_ multipart.Part, data []byte) error {
			(*parts)[len(*parts)-1].Value += string(data)
			return nil
		},
	})
	require.NoError(t, err)

	return p
}

func sampleBody(t *testing.T) (body []byte, boundary string) {
	var buff bytes.Buffer
	w := multipart.NewWriter(&buff)
	for i := range 5 {
		field, err := w.CreateFormField(fmt.Sprintf("field%d", i))
		require.NoError(t, err)
		_, _ = field.Write(bytes.Repeat([]byte("data\r\n"), i*50))
	}

	require.NoError(t, w.Close())
	return buff.Bytes(), w.Boundary()
}

func wantParts() (parts []part) {
	for i := range 5 {
		parts = append(parts, part{fmt.Sprintf("field%d", i), strings.Repeat("data\r\n", i*50)})
	}

	return parts
}

func TestFeed(t *testing.T) {
	t.Run("plain body with extra", func(t *testing.T) {
		body, boundary := sampleBody(t)
		var parts []part
		p := newParser(t, boundary, &parts)

		extra, err := Feed(bytes.NewReader(append(body, "GET / HTTP/1.1"...)), p, make([]byte, 16*1024))
		require.NoError(t, err)
		require.Equal(t, wantParts(), parts)
		require.Equal(t, "\r\nGET / HTTP/1.1", string(extra))
	})

	t.Run("one byte reader", func(t *testing.T) {
		body, boundary := sampleBody(t)
		var parts []part
		p := newParser(t, boundary, &parts)

		_, err := Feed(iotest.OneByteReader(bytes.NewReader(body)), p, make([]byte, 64))
		require.NoError(t, err)
		require.True(t, p.Done())
		require.Equal(t, wantParts(), parts)
	})

	t.Run("incomplete body", func(t *testing.T) {
		body, boundary := sampleBody(t)
		var parts []part
		p := newParser(t, boundary, &parts)

		_, err := Feed(bytes.NewReader(body[:len(body)/2]), p, make([]byte, 64))
		require.ErrorIs(t, err, status.ErrIncompleteBody)
	})

	t.Run("reader error", func(t *testing.T) {
		errBroken := errors.New("broken pipe")
		var parts []part
		p := newParser(t, "XYZ", &parts)

		_, err := Feed(iotest.ErrReader(errBroken), p, make([]byte, 64))
		require.ErrorIs(t, err, errBroken)
	})

	t.Run("parser error", func(t *testing.T) {
		var parts []part
		p := newParser(t, "XYZ", &parts)

		_, err := Feed(strings.NewReader("--ABC\r\n"), p, make([]byte, 64))
		require.ErrorIs(t, err, status.ErrUnexpectedPrologue)
	})
}

func TestChunkedReader(t *testing.T) {
	t.Run("decode", func(t *testing.T) {
		data := []byte("Hello, world! But what's wrong with you?")
		for _, size := range []int{1, 5, 16, 100} {
			reader := NewChunkedReader(bytes.NewReader(encodeChunked(data, size)), config.Default())
			decoded, err := io.ReadAll(reader)
			require.NoError(t, err)
			require.Equal(t, string(data), string(decoded))
		}
	})

	t.Run("multipart over chunked", func(t *testing.T) {
		body, boundary := sampleBody(t)
		encoded := encodeChunked(body, 37)
		var parts []part
		p := newParser(t, boundary, &parts)

		reader := NewChunkedReader(iotest.HalfReader(bytes.NewReader(encoded)), config.Default())
		_, err := Feed(reader, p, make([]byte, 100))
		require.NoError(t, err)
		require.Equal(t, wantParts(), parts)
	})

	t.Run("extra after the body", func(t *testing.T) {
		encoded := append(encodeChunked([]byte("body"), 2), "next request"...)
		reader := NewChunkedReader(bytes.NewReader(encoded), config.Default())
		decoded, err := io.ReadAll(reader)
		require.NoError(t, err)
		require.Equal(t, "body", string(decoded))
		require.Equal(t, "next request", string(reader.Extra()))
	})

	t.Run("malformed", func(t *testing.T) {
		reader := NewChunkedReader(strings.NewReader("zz\r\nbody\r\n0\r\n\r\n"), config.Default())
		_, err := io.ReadAll(reader)
		require.ErrorIs(t, err, status.ErrBadChunk)
	})

	t.Run("truncated", func(t *testing.T) {
		reader := NewChunkedReader(strings.NewReader("4\r\nbo"), config.Default())
		_, err := io.ReadAll(reader)
		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})
}
