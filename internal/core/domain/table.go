// Package domain defines the core routing model for simple-http-server.
package domain

import "strings"

// ResolvedFile is the final form of a route target: an absolute file path
// and the media type to serve it with.
type ResolvedFile struct {
	// Path is absolute; relative config paths were joined against the
	// config file's directory.
	Path string

	// MediaType is the explicitly configured type, the inferred type, or
	// DefaultMediaType.
	MediaType string
}

// Table maps route keys (URL paths without the leading slash; the empty
// string is the root path) to resolved files. It is built once at startup
// and read-only thereafter, so concurrent lookups need no locking.
type Table map[string]ResolvedFile

// Lookup resolves a request URL path against the table. Matching is
// exact: no patterns, no trailing-slash normalization.
func (t Table) Lookup(urlPath string) (ResolvedFile, bool) {
	key := strings.TrimPrefix(urlPath, "/")
	rf, ok := t[key]
	return rf, ok
}

// Len returns the number of routes in the table.
func (t Table) Len() int {
	return len(t)
}
