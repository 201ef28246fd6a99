package multipart

import (
	"strings"

	"github.com/indigo-web/multipart/kv"
)

// Part describes the part currently being parsed. Its Name and Headers reference the
// parser's internal memory and are valid until the next OnHeaders call. Use Clone in
// order to retain them longer.
type Part struct {
	// Index is the zero-based ordinal of the part within the body.
	Index int
	// Name is the name parameter of the Content-Disposition header.
	Name    string
	Headers *kv.Storage
}

// Clone returns a deep copy of the part, safe to be stored.
func (p Part) Clone() Part {
	return Part{
		Index:   p.Index,
		Name:    strings.Clone(p.Name),
		Headers: p.Headers.Clone(),
	}
}

// Listener receives parsed parts. Methods are called synchronously from within
// Parser.Parse, in the order of the stream. Returning an error aborts the parsing: the
// error is returned from Parse as-is.
type Listener interface {
	// OnHeaders is called exactly once per part, when its headers section is complete.
	OnHeaders(part Part) error
	// OnData is called zero or more times per part with subsequent pieces of its body.
	// The data is valid only during the call.
	OnData(part Part, data []byte) error
}

// Funcs adapts a pair of functions to the Listener interface. Nil functions are no-ops.
type Funcs struct {
	Headers func(part Part) error
	Data    func(part Part, data []byte) error
}

func (f Funcs) OnHeaders(part Part) error {
	if f.Headers == nil {
		return nil
	}

	return f.Headers(part)
}

func (f Funcs) OnData(part Part, data []byte) error {
	if f.Data == nil {
		return nil
	}

	return f.Data(part, data)
}
