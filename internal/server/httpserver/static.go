// Package httpserver provides the HTTP server for simple-http-server.
package httpserver

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"

	"github.com/T0mstone/simple-http-server/internal/core/domain"
	"github.com/T0mstone/simple-http-server/internal/telemetry/logger"
)

// StaticHandler serves GET requests by exact-match lookup in the compiled
// route table. The table is immutable, so the handler is safe for any
// number of concurrent requests without locking.
type StaticHandler struct {
	table   domain.Table
	baseDir string
	log     logger.Logger

	// notFoundPage is the preloaded custom 404 body; nil means a bare
	// 404 response.
	notFoundPage []byte
}

// StaticHandlerConfig holds the dependencies of a StaticHandler.
type StaticHandlerConfig struct {
	Table   domain.Table
	BaseDir string
	Logger  logger.Logger

	// NotFoundPage is the raw custom 404 page, or nil.
	NotFoundPage []byte
}

// NewStaticHandler creates the request handler for a compiled route table.
func NewStaticHandler(cfg *StaticHandlerConfig) *StaticHandler {
	log := cfg.Logger
	if log == nil {
		log = logger.Default()
	}
	return &StaticHandler{
		table:        cfg.Table,
		baseDir:      cfg.BaseDir,
		log:          log,
		notFoundPage: cfg.NotFoundPage,
	}
}

// ServeHTTP implements http.Handler.
func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := h.log.WithContext(r.Context()).With(
		"request_id", logger.RequestIDFromContext(r.Context()),
	)

	if r.Method != http.MethodGet {
		log.Info("unsupported request", "method", r.Method, "path", r.URL.Path)
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rf, ok := h.table.Lookup(r.URL.Path)
	if !ok {
		log.Info("blocked (no configured route)", "path", r.URL.Path)
		h.writeNotFound(w)
		return
	}

	// Paths are logged relative to the base directory where possible, to
	// keep server-side layout out of the logs.
	logPath := rf.Path
	if rel, err := filepath.Rel(h.baseDir, rf.Path); err == nil {
		logPath = rel
	}
	log.Info("open", "path", r.URL.Path, "file", logPath)

	// Existence is decided here, per request: a route may point at a
	// file created after startup.
	body, err := os.ReadFile(rf.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			h.writeNotFound(w)
			return
		}
		log.Error("I/O error", "file", rf.Path, "error", err)
		// The client gets no details about server-side failures.
		http.Error(w, "I/O error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", rf.MediaType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (h *StaticHandler) writeNotFound(w http.ResponseWriter) {
	if h.notFoundPage == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write(h.notFoundPage)
}

// LoadNotFoundPage reads the configured custom 404 page once at startup.
// A load failure is logged and degrades to the bare 404 response; it does
// not abort startup.
func LoadNotFoundPage(rf *domain.ResolvedFile, log logger.Logger) []byte {
	if rf == nil {
		log.Info("proceeding without 404 file")
		return nil
	}

	data, err := os.ReadFile(rf.Path)
	if err != nil {
		log.Error("failed to load 404 file", "file", rf.Path, "error", err)
		return nil
	}
	log.Info("loaded 404 file", "file", rf.Path)
	return data
}
