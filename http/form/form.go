// Package form holds the result of parsing a multipart/form-data body.
package form

import "iter"

// Data is a single form entry. A file upload has a non-empty Filename.
type Data struct {
	Name     string
	Filename string
	Type     string
	Charset  string
	Value    string
}

func (d Data) IsFile() bool {
	return len(d.Filename) > 0
}

// Form lists entries in the order they were met in the body. The same name may occur
// multiple times.
type Form []Data

// Name returns the first entry with the name.
func (f Form) Name(name string) (Data, bool) {
	return first(f.Names(name))
}

// Names iterates over all entries with the name.
func (f Form) Names(name string) iter.Seq[Data] {
	return f.filter(func(d Data) bool { return d.Name == name })
}

// File returns the first upload with the filename.
func (f Form) File(filename string) (Data, bool) {
	return first(f.Files(filename))
}

// Files iterates over all uploads with the filename.
func (f Form) Files(filename string) iter.Seq[Data] {
	return f.filter(func(d Data) bool { return d.IsFile() && d.Filename == filename })
}

// Uploads iterates over all entries submitted as files.
func (f Form) Uploads() iter.Seq[Data] {
	return f.filter(Data.IsFile)
}

func (f Form) filter(match func(Data) bool) iter.Seq[Data] {
	return func(yield func(Data) bool) {
		for _, entry := range f {
			if match(entry) && !yield(entry) {
				return
			}
		}
	}
}

func first(seq iter.Seq[Data]) (Data, bool) {
	for data := range seq {
		return data, true
	}

	return Data{}, false
}
