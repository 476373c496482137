// Package httpserver provides the HTTP server for simple-http-server.
package httpserver

import (
	"context"
	"fmt"
	"net"
	"strings"

	"github.com/T0mstone/simple-http-server/internal/core/domain"
	"github.com/T0mstone/simple-http-server/internal/telemetry/logger"
)

// Listen walks the configured address list (the primary addr followed by
// the failsafe addrs), resolving each entry through the system resolver
// and binding the first socket address that works. Every hostname may
// resolve to several socket addresses; all of them are tried, in order,
// before moving on to the next configured entry.
//
// Failures along the way are warnings; only exhausting the whole list is
// an error, and that error names every address attempted.
func Listen(ctx context.Context, addrs []string, log logger.Logger) (net.Listener, error) {
	var lc net.ListenConfig
	var attempted []string

	for _, addr := range addrs {
		candidates, err := expand(ctx, addr)
		if err != nil {
			log.Warn("no socket address found", "addr", addr, "error", err)
			attempted = append(attempted, addr)
			continue
		}

		for _, candidate := range candidates {
			l, err := lc.Listen(ctx, "tcp", candidate)
			if err != nil {
				log.Warn("failed to bind", "addr", addr, "resolved", candidate, "error", err)
				attempted = append(attempted, candidate)
				continue
			}
			log.Info("listening", "addr", addr, "resolved", l.Addr().String())
			return l, nil
		}
	}

	return nil, domain.ErrBindFailed.
		WithCause(fmt.Errorf("attempted: %s", strings.Join(attempted, ", ")))
}

// expand resolves one configured host:port entry into the list of
// concrete socket addresses it names.
func expand(ctx context.Context, addr string) ([]string, error) {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, err
	}

	// An empty host means the wildcard address; literal IPs need no
	// lookup.
	if host == "" || net.ParseIP(host) != nil {
		return []string{addr}, nil
	}

	ips, err := net.DefaultResolver.LookupHost(ctx, host)
	if err != nil {
		return nil, err
	}

	candidates := make([]string, len(ips))
	for i, ip := range ips {
		candidates[i] = net.JoinHostPort(ip, port)
	}
	return candidates, nil
}
