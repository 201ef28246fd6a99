package multipart

import (
	"strings"

	"github.com/indigo-web/multipart/http/status"
	"github.com/indigo-web/multipart/internal/strutil"
	"github.com/indigo-web/multipart/kv"
)

// DispositionName extracts the name parameter from the Content-Disposition header. The
// value may be double-quoted, single-quoted (backslash escapes are honored inside quotes)
// or a bare token ending at a whitespace or semicolon.
func DispositionName(headers *kv.Storage) (string, error) {
	value, found := headers.Get("Content-Disposition")
	if !found {
		return "", status.ErrMissingDisposition
	}

	param := findParam(value, "name=")
	if param == -1 {
		return "", status.ErrMissingName
	}

	value = value[param+len("name="):]
	if len(value) > 0 && (value[0] == '"' || value[0] == '\'') {
		return unquote(value)
	}

	end := strings.IndexAny(value, " \t\n\r\f;")
	if end != -1 {
		value = value[:end]
	}

	if len(value) == 0 {
		return "", status.ErrMissingName
	}

	return value, nil
}

// findParam returns the offset of the parameter key, which must not be a suffix of
// another parameter (like name= in filename=.) Parameter keys are case-insensitive.
func findParam(value, key string) int {
	for i := 0; i+len(key) <= len(value); i++ {
		if i > 0 {
			switch value[i-1] {
			case ';', ' ', '\t':
			default:
				continue
			}
		}

		if strutil.CmpFold(value[i:i+len(key)], key) {
			return i
		}
	}

	return -1
}

func unquote(value string) (string, error) {
	quote := value[0]
	value = value[1:]
	escaped := false

	for i := 0; i < len(value); i++ {
		switch value[i] {
		case '\\':
			escaped = true
			i++
		case quote:
			if !escaped {
				return value[:i], nil
			}

			return unescape(value[:i]), nil
		}
	}

	return "", status.ErrUnterminatedName
}

func unescape(value string) string {
	var sb strings.Builder
	sb.Grow(len(value))

	for i := 0; i < len(value); i++ {
		if value[i] == '\\' && i+1 < len(value) {
			i++
		}

		sb.WriteByte(value[i])
	}

	return sb.String()
}
