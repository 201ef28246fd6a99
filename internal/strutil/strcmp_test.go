package strutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFold(t *testing.T) {
	require.True(t, CmpFold("HELLO", "hello"))
	require.True(t, CmpFold("Content-Disposition", "content-disposition"))
	require.True(t, CmpFold("\r\n\r\n", "\r\n\r\n"))
	require.False(t, CmpFold("\v\t", "\r\t"))
	require.False(t, CmpFold("\r", "-"))
	require.False(t, CmpFold("hello", "hell"))
}

func TestFoldBytes(t *testing.T) {
	require.True(t, CmpFoldBytes([]byte("\r\n--XyZ"), []byte("\r\n--xYz")))
	require.False(t, CmpFoldBytes([]byte("-\n--XYZ"), []byte("\r\n--XYZ")))
	require.True(t, CmpFoldBytes(nil, []byte{}))
}
