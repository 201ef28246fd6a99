package multipart

import (
	"testing"

	"github.com/indigo-web/multipart/http/status"
	"github.com/indigo-web/multipart/kv"
	"github.com/stretchr/testify/require"
)

func TestDispositionName(t *testing.T) {
	for _, tc := range []struct {
		Disposition, Name string
	}{
		{`form-data; name="a b"`, "a b"},
		{`form-data; name='a b'`, "a b"},
		{`form-data; name=abc `, "abc"},
		{`form-data; name=abc`, "abc"},
		{`form-data; name=abc; filename="x.txt"`, "abc"},
		{`form-data; filename="x.txt"; name="file"`, "file"},
		{`form-data; NAME="upper"`, "upper"},
		{`form-data; name="say \"hi\""`, `say "hi"`},
		{`form-data; name='it\'s'`, "it's"},
		{`form-data; name="back\\slash"`, `back\slash`},
		{`form-data; name=""`, ""},
		{`name=first`, "first"},
	} {
		t.Run(tc.Disposition, func(t *testing.T) {
			name, err := DispositionName(kv.New().Add("Content-Disposition", tc.Disposition))
			require.NoError(t, err)
			require.Equal(t, tc.Name, name)
		})
	}

	t.Run("missing header", func(t *testing.T) {
		_, err := DispositionName(kv.New().Add("Content-Type", "text/plain"))
		require.ErrorIs(t, err, status.ErrMissingDisposition)
	})

	t.Run("missing name", func(t *testing.T) {
		for _, disposition := range []string{
			"form-data", `form-data; filename="name=x"`, "form-data; name=", "form-data; name= x",
		} {
			_, err := DispositionName(kv.New().Add("Content-Disposition", disposition))
			require.ErrorIs(t, err, status.ErrMissingName, disposition)
		}
	})

	t.Run("unterminated", func(t *testing.T) {
		for _, disposition := range []string{
			`form-data; name="abc`, `form-data; name='abc"`, `form-data; name="abc\"`,
		} {
			_, err := DispositionName(kv.New().Add("Content-Disposition", disposition))
			require.ErrorIs(t, err, status.ErrUnterminatedName, disposition)
		}
	})
}
