package multipart

import (
	"bytes"
	"strings"
	"testing"

	"github.com/indigo-web/multipart/config"
	"github.com/indigo-web/multipart/http/mime"
	"github.com/indigo-web/multipart/http/status"
	"github.com/indigo-web/multipart/kv"
	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	t.Run("random boundary", func(t *testing.T) {
		a, b := NewWriter(nil), NewWriter(nil)
		require.NotEqual(t, a.Boundary(), b.Boundary())
		require.True(t, mime.ValidBoundary(a.Boundary()))

		boundary, ok := mime.Boundary(a.FormDataContentType())
		require.True(t, ok)
		require.Equal(t, a.Boundary(), boundary)
	})

	t.Run("quoted content type", func(t *testing.T) {
		w := NewWriter(nil)
		require.NoError(t, w.SetBoundary("a=b c"))
		require.Equal(t, `multipart/form-data; boundary="a=b c"`, w.FormDataContentType())

		boundary, ok := mime.Boundary(w.FormDataContentType())
		require.True(t, ok)
		require.Equal(t, "a=b c", boundary)
	})

	t.Run("wire format", func(t *testing.T) {
		var buff bytes.Buffer
		w := NewWriter(&buff)
		require.NoError(t, w.SetBoundary("XYZ"))
		field, err := w.CreateFormField("a")
		require.NoError(t, err)
		_, _ = field.Write([]byte("AAA"))
		file, err := w.CreateFormFile("b", "b.png", "")
		require.NoError(t, err)
		_, _ = file.Write([]byte("BBB"))
		require.NoError(t, w.Close())

		want := "--XYZ\r\nContent-Disposition: form-data; name=\"a\"\r\n\r\nAAA\r\n" +
			"--XYZ\r\nContent-Disposition: form-data; name=\"b\"; filename=\"b.png\"\r\n" +
			"Content-Type: image/png\r\n\r\nBBB\r\n--XYZ--\r\n"
		require.Equal(t, want, buff.String())
	})

	t.Run("no parts", func(t *testing.T) {
		var buff bytes.Buffer
		w := NewWriter(&buff)
		require.NoError(t, w.SetBoundary("XYZ"))
		require.NoError(t, w.Close())
		require.NoError(t, w.Close())
		require.Equal(t, "--XYZ--\r\n", buff.String())

		_, err := w.CreateFormField("late")
		require.ErrorIs(t, err, ErrWriterClosed)
	})

	t.Run("boundary after a part", func(t *testing.T) {
		w := NewWriter(new(bytes.Buffer))
		_, err := w.CreatePart(kv.New())
		require.NoError(t, err)
		require.ErrorIs(t, w.SetBoundary("XYZ"), ErrLateBoundary)
	})

	t.Run("invalid boundary", func(t *testing.T) {
		w := NewWriter(nil)
		require.ErrorIs(t, w.SetBoundary(strings.Repeat("a", 100)), status.ErrBadBoundary)
	})

	t.Run("round trip with escaped names", func(t *testing.T) {
		var buff bytes.Buffer
		w := NewWriter(&buff)
		for _, name := range []string{`say "hi"`, `back\slash`, "plain"} {
			body, err := w.CreateFormField(name)
			require.NoError(t, err)
			_, _ = body.Write([]byte(name))
		}
		require.NoError(t, w.Close())

		p, rec := newParser(t, config.Default(), w.Boundary())
		_, err := p.Parse(buff.Bytes())
		require.NoError(t, err)
		require.True(t, p.Done())
		require.Equal(t, []recordedPart{
			{`say "hi"`, `say "hi"`},
			{`back\slash`, `back\slash`},
			{"plain", "plain"},
		}, rec.parts)
	})
}
