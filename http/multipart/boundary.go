package multipart

import (
	"github.com/indigo-web/multipart/http/mime"
	"github.com/indigo-web/multipart/http/status"
	"github.com/indigo-web/multipart/internal/strutil"
)

// BoundaryOf extracts the boundary of a multipart body from its Content-Type value.
func BoundaryOf(contentType string) (string, error) {
	value, _ := strutil.CutHeader(contentType)
	if len(value) < len("multipart/") || !strutil.CmpFold(value[:len("multipart/")], "multipart/") {
		return "", status.ErrNotMultipart
	}

	boundary, ok := mime.Boundary(contentType)
	if !ok {
		return "", status.ErrBadBoundary
	}

	return boundary, nil
}
