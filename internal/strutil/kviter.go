package strutil

import (
	"iter"
	"strings"
)

// a-z A-Z 0-9 and the printable punctuation except semicolon, backslash and space.
// % is included, as WalkKV does not decode key or value, therefore urlencoded values must
// not appear as unsafe characters
var safeChars = [256]bool{
	false, false, false, false, false, false, false, false, false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false, false, false, false, false, false, false, false, false,
	false, true, true, true, true, true, true, true, true, true, true, true, true, true, true, true,
	true, true, true, true, true, true, true, true, true, true, true, false, true, true, true, true,
	true, true, true, true, true, true, true, true, true, true, true, true, true, true, true, true,
	true, true, true, true, true, true, true, true, true, true, true, true, false, true, true, true,
	true, true, true, true, true, true, true, true, true, true, true, true, true, true, true, true,
	true, true, true, true, true, true, true, true, true, true, true, true, true, true, true, false,
	false, false, false, false, false, false, false, false, false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false, false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false, false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false, false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false, false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false, false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false, false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false, false, false, false, false, false, false, false, false,
}

// WalkKV iterates over semicolon-separated key=value parameters, as met in header values
// like Content-Type or Content-Disposition. Values may be double-quoted, in which case
// they may contain any characters except an unescaped quote; quotes are stripped, but
// escape sequences are left as-is. An error is reported as the empty pair, which is
// always the last one.
func WalkKV(data string) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for len(data) > 0 {
			var key, value string

			eq := -1
			for i := 0; i < len(data); i++ {
				c := data[i]
				if c == '=' {
					eq = i
					break
				}

				if c == ';' {
					break
				}

				if !safeChars[c] {
					yield("", "")
					return
				}
			}

			if eq == -1 {
				// a flag-like parameter without value
				end := strings.IndexByte(data, ';')
				if end == -1 {
					end = len(data)
				}

				key, data = RStripWS(data[:end]), data[end:]
			} else {
				key, data = data[:eq], data[eq+1:]

				var ok bool
				value, data, ok = cutValue(data)
				if !ok {
					yield("", "")
					return
				}
			}

			if len(data) > 0 {
				// cutValue guarantees the rest begins with a semicolon
				data = LStripWS(data[1:])
			}

			if !yield(key, value) {
				return
			}
		}
	}
}

func cutValue(data string) (value, rest string, ok bool) {
	if len(data) > 0 && data[0] == '"' {
		for i := 1; i < len(data); i++ {
			switch data[i] {
			case '\\':
				i++
			case '"':
				value, rest = data[1:i], LStripWS(data[i+1:])
				return value, rest, len(rest) == 0 || rest[0] == ';'
			}
		}

		return "", "", false
	}

	for i := 0; i < len(data); i++ {
		c := data[i]

		if c == ';' {
			return RStripWS(data[:i]), data[i:], true
		}

		if !safeChars[c] && c != ' ' && c != '\t' {
			return "", "", false
		}
	}

	return RStripWS(data), "", true
}
