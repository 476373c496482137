// Package main provides the entry point for simple-http-server.
//
// simple-http-server is a configuration-driven static HTTP server: one
// TOML file declares where to bind and which files to serve under which
// URL paths. The config is compiled into an immutable route table before
// the listener is bound; any configuration error aborts startup.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	simplehttpserver "github.com/T0mstone/simple-http-server"
	"github.com/T0mstone/simple-http-server/internal/core/domain"
	"github.com/T0mstone/simple-http-server/internal/core/service"
	"github.com/T0mstone/simple-http-server/internal/infra/buildinfo"
	"github.com/T0mstone/simple-http-server/internal/infra/confloader"
	"github.com/T0mstone/simple-http-server/internal/infra/shutdown"
	"github.com/T0mstone/simple-http-server/internal/server/config"
	"github.com/T0mstone/simple-http-server/internal/server/httpserver"
	"github.com/T0mstone/simple-http-server/internal/telemetry/logger"
	"github.com/T0mstone/simple-http-server/internal/telemetry/metric"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "simple-http-server",
		Usage:     "configuration-driven static HTTP server",
		ArgsUsage: "<path to config file>",
		Version:   buildinfo.String(),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "print-readme",
				Usage: "write out this software's documentation (README.md) to stdout",
			},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	if c.Bool("print-readme") {
		// Program output proper goes to stdout; all logging goes to
		// stderr.
		fmt.Print(simplehttpserver.README)
		return nil
	}

	switch {
	case c.NArg() == 0:
		return fmt.Errorf("missing config argument")
	case c.NArg() > 1:
		return fmt.Errorf("too many arguments")
	}
	configPath := c.Args().First()

	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	logger.SetDefault(log)

	log.Info("starting simple-http-server",
		"version", buildinfo.Version,
		"commit", buildinfo.Commit,
		"config", configPath)

	base, err := config.BaseDir(configPath)
	if err != nil {
		return err
	}

	// Compile the route table. This either yields a complete, consistent
	// table or fails startup; the server never serves a partial config.
	routes, err := config.ParseRoutes(cfg.GetRoutes)
	if err != nil {
		return err
	}
	table, err := service.BuildTable(routes, base)
	if err != nil {
		return err
	}
	log.Info("route table built", "routes", table.Len(), "base", base)

	notFoundPage, err := loadNotFound(cfg, base, log)
	if err != nil {
		return err
	}

	metrics := metric.New()
	metrics.SetRouteCount(table.Len())

	handler := buildHandler(cfg, table, base, notFoundPage, log, metrics)

	ctx := context.Background()
	listener, err := httpserver.Listen(ctx, cfg.Addresses(), log)
	if err != nil {
		return err
	}

	srv := httpserver.New(handler)

	shutdownHandler := shutdown.NewHandler(shutdownTimeout)
	shutdownHandler.OnShutdown(func(ctx context.Context) error {
		log.Info("shutting down HTTP server")
		return srv.Shutdown(ctx)
	})

	if cfg.MetricsAddr != "" {
		metricsSrv := startMetricsServer(ctx, cfg.MetricsAddr, metrics, log)
		if metricsSrv != nil {
			shutdownHandler.OnShutdown(func(ctx context.Context) error {
				return metricsSrv.Shutdown(ctx)
			})
		}
	}

	go func() {
		if err := srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error("server failed", "error", err)
		}
	}()

	if err := shutdownHandler.Wait(); err != nil {
		log.Error("shutdown error", "error", err)
		return err
	}

	log.Info("server stopped gracefully")
	return nil
}

// loadConfig loads configuration from file and environment.
func loadConfig(configPath string) (*config.Config, error) {
	cfg := config.Default()

	loader := confloader.NewLoader(confloader.WithConfigFile(configPath))
	if err := loader.Load(cfg); err != nil {
		return nil, err
	}

	if err := config.Verify(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// loadNotFound resolves and preloads the optional custom 404 page.
func loadNotFound(cfg *config.Config, base string, log logger.Logger) ([]byte, error) {
	if cfg.NotFound == "" {
		return httpserver.LoadNotFoundPage(nil, log), nil
	}

	rf, err := service.Resolve(domain.FileObject{Path: cfg.NotFound}, base, true)
	if err != nil {
		if ce, ok := err.(*domain.ConfigError); ok {
			return nil, ce.In("404")
		}
		return nil, err
	}
	return httpserver.LoadNotFoundPage(&rf, log), nil
}

// buildHandler assembles the middleware chain around the static handler.
func buildHandler(cfg *config.Config, table domain.Table, base string, notFoundPage []byte, log logger.Logger, metrics *metric.Metrics) http.Handler {
	static := httpserver.NewStaticHandler(&httpserver.StaticHandlerConfig{
		Table:        table,
		BaseDir:      base,
		Logger:       log,
		NotFoundPage: notFoundPage,
	})

	middlewares := []httpserver.Middleware{
		httpserver.Recover(log),
		httpserver.RequestID(),
		httpserver.Observe(metrics),
	}
	if cfg.RateLimit > 0 {
		middlewares = append(middlewares, httpserver.RateLimit(cfg.RateLimit))
	}

	return httpserver.Chain(static, middlewares...)
}

// startMetricsServer serves the Prometheus registry on its own listener.
// Metrics are best-effort: a bind failure is logged, not fatal.
func startMetricsServer(ctx context.Context, addr string, metrics *metric.Metrics, log logger.Logger) *httpserver.Server {
	listener, err := httpserver.Listen(ctx, []string{addr}, log)
	if err != nil {
		log.Error("failed to bind metrics address", "addr", addr, "error", err)
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("GET /metrics", metrics.Handler())

	srv := httpserver.New(mux)
	go func() {
		if err := srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error("metrics server failed", "error", err)
		}
	}()

	return srv
}
