package mime

import (
	"strings"

	"github.com/indigo-web/multipart/internal/strutil"
)

// MaxBoundaryLength is the limit for a boundary token, as set by RFC 2046, 5.1.1.
const MaxBoundaryLength = 70

// Boundary extracts the boundary parameter from a multipart Content-Type value, e.g.
// `multipart/form-data; boundary="----abc"`. The boundary is returned without framing
// dashes and quotes. False is returned if the media type isn't multipart or the parameter
// is absent, malformed or longer than MaxBoundaryLength.
func Boundary(contentType string) (string, bool) {
	value, params := strutil.CutHeader(contentType)
	if len(value) < len("multipart/") || !strutil.CmpFold(value[:len("multipart/")], "multipart/") {
		return "", false
	}

	for key, param := range strutil.WalkKV(params) {
		if len(key) == 0 {
			return "", false
		}

		if strutil.CmpFold(key, "boundary") {
			return param, ValidBoundary(param)
		}
	}

	return "", false
}

// ValidBoundary reports whether the token may be used as a multipart boundary. The
// trailing character must not be a space.
func ValidBoundary(boundary string) bool {
	if len(boundary) == 0 || len(boundary) > MaxBoundaryLength {
		return false
	}

	if boundary[len(boundary)-1] == ' ' {
		return false
	}

	for i := 0; i < len(boundary); i++ {
		if !isBoundaryChar(boundary[i]) {
			return false
		}
	}

	return true
}

func isBoundaryChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}

	return strings.IndexByte("'()+_,-./:=? ", c) != -1
}
