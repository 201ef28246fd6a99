package mime

import (
	"path"
	"strings"
)

// Extension maps lowercase file extensions to their media types.
var Extension = map[string]MIME{
	".avif": AVIF,
	".css":  CSS,
	".gif":  GIF,
	".htm":  HTML,
	".html": HTML,
	".jpeg": JPEG,
	".jpg":  JPEG,
	".js":   JS,
	".mjs":  JS,
	".json": JSON,
	".pdf":  PDF,
	".png":  PNG,
	".svg":  SVG,
	".txt":  Plain,
	".wasm": WASM,
	".webp": WEBP,
	".xml":  XML,
	".gz":   GZIP,
	".yaml": YAML,
	".zip":  ZIP,
	".ico":  ICO,
}

// Guess returns the MIME of a file by its extension, or fallback if unknown.
func Guess(filename string, fallback MIME) MIME {
	if m, ok := Extension[strings.ToLower(path.Ext(filename))]; ok {
		return m
	}

	return fallback
}
