// Package httpserver provides the HTTP server for simple-http-server.
//
// It uses the Go standard library net/http for implementation. The
// request surface is deliberately small: exact-match GET lookups against
// an immutable route table compiled at startup, a 404 page, and nothing
// else. Binding is separated from serving so the configured failsafe
// address list can be walked before the server starts.
package httpserver
