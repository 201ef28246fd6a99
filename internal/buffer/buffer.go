// Package buffer provides the bounded accumulator for data spread over multiple reads,
// e.g. a multipart header section.
package buffer

// Buffer accumulates bytes up to a fixed limit. A write exceeding the limit is discarded
// entirely and reported. The memory is reused among Clear calls.
type Buffer struct {
	memory  []byte
	maxSize int
}

func New(initialSize, maxSize int) *Buffer {
	return &Buffer{
		memory:  make([]byte, 0, initialSize),
		maxSize: maxSize,
	}
}

// Append writes the data unless it makes the buffer exceed the limit.
func (b *Buffer) Append(data []byte) (ok bool) {
	if len(data) > b.maxSize-len(b.memory) {
		return false
	}

	b.memory = append(b.memory, data...)
	return true
}

// Trunc truncates the last n bytes.
func (b *Buffer) Trunc(n int) {
	b.memory = b.memory[:len(b.memory)-min(n, len(b.memory))]
}

// Preview returns the accumulated data. It stays valid until the next Clear.
func (b *Buffer) Preview() []byte {
	return b.memory
}

func (b *Buffer) Len() int {
	return len(b.memory)
}

// Clear empties the buffer. Previously previewed data may get overwritten afterwards.
func (b *Buffer) Clear() {
	b.memory = b.memory[:0]
}
