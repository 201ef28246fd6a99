// Package mimeheader parses the header section of a MIME entity, as met in multipart
// bodies, into a kv.Storage.
package mimeheader

import (
	"bytes"

	"github.com/indigo-web/multipart/http/status"
	"github.com/indigo-web/multipart/kv"
	"github.com/indigo-web/utils/uf"
)

// Parse splits the block into header lines and adds every one of them into the storage.
// The block must not include the terminating empty line. Both CRLF and bare LF are
// accepted as line terminators.
//
// Keys and values are NOT copied: they reference the block's memory directly, so they
// stay valid only as long as the block itself does.
func Parse(into *kv.Storage, block []byte, maxHeaders int) error {
	var headersNumber int

	for len(block) > 0 {
		var line []byte

		lf := bytes.IndexByte(block, '\n')
		if lf == -1 {
			line, block = block, nil
		} else {
			line, block = block[:lf], block[lf+1:]
		}

		line = stripCR(line)
		if len(line) == 0 {
			continue
		}

		colon := bytes.IndexByte(line, ':')
		if colon <= 0 {
			return status.ErrBadHeader
		}

		key := line[:colon]
		for _, c := range key {
			if isProhibitedKeyChar(c) {
				return status.ErrBadHeader
			}
		}

		if headersNumber++; headersNumber > maxHeaders {
			return status.ErrTooManyHeaders
		}

		into.Add(uf.B2S(key), uf.B2S(trimSpaces(line[colon+1:])))
	}

	return nil
}

func trimSpaces(b []byte) []byte {
	for len(b) > 0 && (b[0] == ' ' || b[0] == '\t') {
		b = b[1:]
	}

	for len(b) > 0 && (b[len(b)-1] == ' ' || b[len(b)-1] == '\t') {
		b = b[:len(b)-1]
	}

	return b
}

func stripCR(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == '\r' {
		return b[:len(b)-1]
	}

	return b
}

func isProhibitedKeyChar(c byte) bool {
	return c <= ' ' || c > 0x7e
}
