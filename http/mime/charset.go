package mime

import "github.com/indigo-web/multipart/internal/strutil"

type Charset = string

const (
	UTF8   Charset = "utf8"
	UTF16  Charset = "utf16"
	UTF32  Charset = "utf32"
	ASCII  Charset = "ascii"
	CP1251 Charset = "cp1251"
	CP1252 Charset = "cp1252"
)

// CharsetOf returns the charset parameter of the Content-Type value, if present.
func CharsetOf(contentType string) (charset Charset, found bool) {
	for key, value := range strutil.WalkKV(strutil.CutParams(contentType)) {
		if len(key) == 0 {
			return "", false
		}

		if strutil.CmpFold(key, "charset") {
			return value, true
		}
	}

	return "", false
}
