package main

import (
	"encoding/hex"
	"hash"
	"strings"

	"github.com/indigo-web/multipart/http/mime"
	"github.com/indigo-web/multipart/http/multipart"
	"github.com/indigo-web/multipart/internal/strutil"
	"golang.org/x/crypto/blake2b"
)

type entry struct {
	Index       int    `json:"index"`
	Name        string `json:"name"`
	Filename    string `json:"filename,omitempty"`
	ContentType string `json:"content_type,omitempty"`
	Charset     string `json:"charset,omitempty"`
	Size        int    `json:"size"`
	Body        string `json:"body,omitempty"`
	Digest      string `json:"blake2b,omitempty"`
}

// dumper is a multipart.Listener, recording parts' metadata and either their bodies or
// digests of them. Digests are computed streamingly, so bodies aren't kept in memory.
type dumper struct {
	entries []entry
	hash    hash.Hash
	body    []byte
	open    bool
}

func newDumper(digest bool) (*dumper, error) {
	d := new(dumper)
	if digest {
		h, err := blake2b.New256(nil)
		if err != nil {
			return nil, err
		}

		d.hash = h
	}

	return d, nil
}

func (d *dumper) OnHeaders(part multipart.Part) error {
	d.finish()

	contentType := part.Headers.Value("Content-Type")
	mediaType, _ := strutil.CutHeader(contentType)
	charset, _ := mime.CharsetOf(contentType)
	e := entry{
		Index:       part.Index,
		Name:        strings.Clone(part.Name),
		ContentType: strings.Clone(mediaType),
		Charset:     strings.Clone(charset),
	}

	_, params := strutil.CutHeader(part.Headers.Value("Content-Disposition"))
	for key, value := range strutil.WalkKV(params) {
		if strutil.CmpFold(key, "filename") {
			e.Filename = strings.Clone(value)
		}
	}

	d.entries = append(d.entries, e)
	d.open = true

	return nil
}

func (d *dumper) OnData(_ multipart.Part, data []byte) error {
	d.entries[len(d.entries)-1].Size += len(data)

	if d.hash != nil {
		_, err := d.hash.Write(data)
		return err
	}

	d.body = append(d.body, data...)
	return nil
}

func (d *dumper) finish() {
	if !d.open {
		return
	}

	d.open = false
	last := &d.entries[len(d.entries)-1]

	if d.hash != nil {
		last.Digest = hex.EncodeToString(d.hash.Sum(nil))
		d.hash.Reset()
		return
	}

	last.Body = string(d.body)
	d.body = d.body[:0]
}

// Entries completes the last part and returns all the recorded ones.
func (d *dumper) Entries() []entry {
	d.finish()

	if d.entries == nil {
		return []entry{}
	}

	return d.entries
}
