package status

import "strconv"

type Code uint16

// Status codes the multipart machinery may report. A caller serving HTTP is expected
// to respond with the code carried by the returned error.
const (
	BadRequest                  Code = 400 // RFC 9110, 15.5.1
	UnsupportedMediaType        Code = 415 // RFC 9110, 15.5.16
	RequestHeaderFieldsTooLarge Code = 431 // RFC 6585, 5
	InternalServerError         Code = 500 // RFC 9110, 15.6.1
)

var KnownCodes = []Code{
	BadRequest, UnsupportedMediaType, RequestHeaderFieldsTooLarge, InternalServerError,
}

// Text returns a text for the status code. It returns the empty
// string if the code is unknown.
func Text(code Code) string {
	switch code {
	case BadRequest:
		return "Bad Request"
	case UnsupportedMediaType:
		return "Unsupported Media Type"
	case RequestHeaderFieldsTooLarge:
		return "Request Header Fields Too Large"
	case InternalServerError:
		return "Internal Server Error"
	}

	return ""
}

func StringCode(code Code) string {
	return strconv.Itoa(int(code))
}
