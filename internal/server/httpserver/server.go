// Package httpserver provides the HTTP server for simple-http-server.
package httpserver

import (
	"context"
	"net"
	"net/http"
)

// Server wraps http.Server. The listener is bound separately (see
// Listen) so bind failures are surfaced before serving starts.
type Server struct {
	httpServer *http.Server
}

// New creates a new HTTP server around the given handler.
func New(handler http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Handler: handler,
		},
	}
}

// Serve accepts connections on l until Shutdown is called.
func (s *Server) Serve(l net.Listener) error {
	return s.httpServer.Serve(l)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
