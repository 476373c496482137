// Package domain defines the core routing model for simple-http-server.
package domain

import "testing"

func TestMediaTypeByExtension(t *testing.T) {
	tests := []struct {
		name string
		want string
		ok   bool
	}{
		{"notes.txt", "text/plain", true},
		{"index.html", "text/html", true},
		{"main.css", "text/css", true},
		{"app.js", "text/javascript", true},
		{"logo.png", "image/png", true},
		{"photo.jpg", "image/jpeg", true},
		{"photo.jpeg", "image/jpeg", true},
		{"photo.jxl", "image/jxl", true},
		{"x.svg", "image/svg", true},
		{"clip.mp4", "video/mp4", true},
		{"clip.m4v", "video/mp4", true},
		{"movie.mkv", "video/x-matroska", true},
		{"paper.pdf", "application/pdf", true},
		{"lib.wasm", "application/wasm", true},
		{"x.unknownext", "", false},
		{"noext", "", false},
		{"trailingdot.", "", false},
		{"", "", false},
		// matching is case-sensitive on the literal suffix
		{"shouting.HTML", "", false},
		// only the last extension counts
		{"archive.tar.txt", "text/plain", true},
		{"dir.d/noext", "", false},
	}

	for _, tt := range tests {
		got, ok := MediaTypeByExtension(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Errorf("MediaTypeByExtension(%q) = (%q, %v), want (%q, %v)",
				tt.name, got, ok, tt.want, tt.ok)
		}
	}
}
