package status

import "fmt"

type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

// String renders the error together with its status, e.g. "400 Bad Request: bad boundary".
func (h HTTPError) String() string {
	return fmt.Sprintf("%d %s: %s", h.Code, Text(h.Code), h.Message)
}

// CodeOf returns the status code carried by the error, or InternalServerError if the
// error isn't an HTTPError.
func CodeOf(err error) Code {
	if httpErr, ok := err.(HTTPError); ok {
		return httpErr.Code
	}

	return InternalServerError
}

var (
	ErrBadRequest          = NewError(BadRequest, "bad request")
	ErrBadBoundary         = NewError(BadRequest, "missing or malformed multipart boundary")
	ErrNotMultipart        = NewError(UnsupportedMediaType, "content type is not multipart")
	ErrBadChunk            = NewError(BadRequest, "malformed chunk-encoded data")
	ErrBadHeader           = NewError(BadRequest, "malformed part header line")
	ErrMissingDisposition  = NewError(BadRequest, "part has no Content-Disposition header")
	ErrMissingName         = NewError(BadRequest, "part name is missing")
	ErrUnterminatedName    = NewError(BadRequest, "part name is an unterminated quoted string")
	ErrUnexpectedPrologue  = NewError(BadRequest, "unexpected byte where a boundary was expected")
	ErrInvalidTrailingByte = NewError(BadRequest, "invalid byte after a boundary")
	ErrIncompleteBody      = NewError(BadRequest, "multipart body ended before the closing boundary")

	ErrHeaderFieldsTooLarge = NewError(RequestHeaderFieldsTooLarge, "too large part headers section")
	ErrTooManyHeaders       = NewError(RequestHeaderFieldsTooLarge, "too many part headers")

	ErrInvalidDispatchState = NewError(InternalServerError, "multipart parser reached an invalid state")
)
