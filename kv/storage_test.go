package kv

import (
	"slices"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestStorage(t *testing.T) {
	getHeaders := func() *Storage {
		return New().
			Add("Foo", "bar").
			Add("Hello", "World").
			Add("Lorem", "ipsum").
			Add("hello", "Pavlo")
	}

	t.Run("get", func(t *testing.T) {
		kv := getHeaders()
		value, found := kv.Get("HELLO")
		require.True(t, found)
		require.Equal(t, "World", value)
		require.Equal(t, "ipsum", kv.Value("lorem"))

		_, found = kv.Get("ipsum")
		require.False(t, found)
		require.Empty(t, kv.Value("missing"))
	})

	t.Run("values", func(t *testing.T) {
		kv := getHeaders()
		require.Equal(t, []string{"World", "Pavlo"}, slices.Collect(kv.Values("hello")))
		require.Empty(t, slices.Collect(kv.Values("missing")))
	})

	t.Run("pairs preserve order", func(t *testing.T) {
		var keys []string
		for key := range getHeaders().Pairs() {
			keys = append(keys, key)
		}

		require.Equal(t, []string{"Foo", "Hello", "Lorem", "hello"}, keys)
	})

	t.Run("clone and clear", func(t *testing.T) {
		kv := getHeaders()
		clone := kv.Clone()
		kv.Clear()
		require.Zero(t, kv.Len())
		require.Equal(t, 4, clone.Len())
		require.Equal(t, "bar", clone.Value("foo"))
	})

	t.Run("clone copies strings", func(t *testing.T) {
		value := []byte("multipart/mixed")
		kv := New().Add("Content-Type", unsafe.String(&value[0], len(value)))
		clone := kv.Clone()
		copy(value, "xxxxxxxxxxxxxxx")
		require.Equal(t, "multipart/mixed", clone.Value("content-type"))
	})
}
