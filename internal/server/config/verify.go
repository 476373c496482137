// Package config defines the server configuration structure.
package config

import (
	"github.com/T0mstone/simple-http-server/internal/core/domain"
)

// Verify validates the configuration. Route-level validation happens
// later, in ParseRoutes and the table builder; this only checks the
// scalar fields.
func Verify(cfg *Config) error {
	if cfg.Addr == "" {
		return domain.ErrMissingAddr
	}
	if cfg.RateLimit < 0 {
		return domain.ErrBadRateLimit
	}
	return nil
}
