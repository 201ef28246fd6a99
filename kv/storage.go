// Package kv implements the header storage of a part.
package kv

import (
	"iter"
	"strings"

	"github.com/indigo-web/utils/strcomp"
)

type Pair struct {
	Key, Value string
}

// Storage is an ordered multimap of (string, string) pairs with case-insensitive keys. It
// uses linear search, which beats a map on the handful of headers a part usually has.
type Storage struct {
	pairs []Pair
}

func New() *Storage {
	return new(Storage)
}

// NewPrealloc returns a Storage with room for n pairs.
func NewPrealloc(n int) *Storage {
	return &Storage{
		pairs: make([]Pair, 0, n),
	}
}

// Add appends a pair. Existing pairs of the same key are kept.
func (s *Storage) Add(key, value string) *Storage {
	s.pairs = append(s.pairs, Pair{Key: key, Value: value})
	return s
}

// Get returns the first value of the key.
func (s *Storage) Get(key string) (value string, found bool) {
	for value := range s.Values(key) {
		return value, true
	}

	return "", false
}

// Value is Get without the presence flag.
func (s *Storage) Value(key string) string {
	value, _ := s.Get(key)
	return value
}

// Values iterates over all values of the key.
func (s *Storage) Values(key string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, pair := range s.pairs {
			if strcomp.EqualFold(pair.Key, key) && !yield(pair.Value) {
				return
			}
		}
	}
}

// Pairs iterates over all pairs in insertion order.
func (s *Storage) Pairs() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, pair := range s.pairs {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

func (s *Storage) Len() int {
	return len(s.pairs)
}

// Clone returns a deep copy, not sharing any memory with the original. Stored strings
// may reference a reused buffer, so they are copied too.
func (s *Storage) Clone() *Storage {
	clone := NewPrealloc(len(s.pairs))
	for _, pair := range s.pairs {
		clone.Add(strings.Clone(pair.Key), strings.Clone(pair.Value))
	}

	return clone
}

// Clear drops all the pairs, keeping the allocated memory.
func (s *Storage) Clear() *Storage {
	s.pairs = s.pairs[:0]
	return s
}
