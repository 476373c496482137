// Package domain defines the core routing model for simple-http-server.
package domain

import "path/filepath"

// DefaultMediaType is served when the extension is not recognized and no
// explicit type is configured.
const DefaultMediaType = "application/octet-stream"

// mediaTypes maps file extensions (without the dot) to media types.
// Matching is case-sensitive on the literal suffix after the last dot.
// Extend by adding entries; the lookup algorithm never changes.
var mediaTypes = map[string]string{
	"txt":  "text/plain",
	"html": "text/html",
	"css":  "text/css",
	"js":   "text/javascript",
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"jxl":  "image/jxl",
	"svg":  "image/svg",
	"mp4":  "video/mp4",
	"m4v":  "video/mp4",
	// not an official media type, but the one suggested by matroska.org
	"mkv":  "video/x-matroska",
	"pdf":  "application/pdf",
	"wasm": "application/wasm",
}

// MediaTypeByExtension infers the media type for a file name from its
// extension. The second return value reports whether the extension was
// recognized; an unrecognized or missing extension is never an error,
// callers fall back to DefaultMediaType.
func MediaTypeByExtension(name string) (string, bool) {
	ext := filepath.Ext(name)
	if len(ext) < 2 {
		return "", false
	}
	mt, ok := mediaTypes[ext[1:]]
	return mt, ok
}
