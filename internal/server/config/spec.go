// Package config defines the server configuration structure.
package config

// Config is the root configuration for simple-http-server.
type Config struct {
	// Addr is the primary bind address (host:port). Required.
	Addr string `koanf:"addr"`

	// FailsafeAddrs are tried in order when binding Addr fails.
	FailsafeAddrs []string `koanf:"failsafe_addrs"`

	// NotFound is an optional path to a custom 404 page, resolved like
	// any route target.
	NotFound string `koanf:"404"`

	// MetricsAddr, when set, serves Prometheus metrics on a separate
	// listener so the exact-match route table is never shadowed.
	MetricsAddr string `koanf:"metrics_addr"`

	// RateLimit is the global request rate limit in requests/second.
	// Zero disables limiting.
	RateLimit int `koanf:"rate_limit"`

	// Log configures logging.
	Log LogSection `koanf:"log"`

	// GetRoutes is the raw routing table as deserialized from TOML.
	// Use ParseRoutes to split it into typed sections.
	GetRoutes map[string]any `koanf:"get_routes"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Addresses returns the full bind candidate list: the primary address
// followed by the failsafe addresses in configured order.
func (c *Config) Addresses() []string {
	addrs := make([]string, 0, 1+len(c.FailsafeAddrs))
	addrs = append(addrs, c.Addr)
	return append(addrs, c.FailsafeAddrs...)
}
