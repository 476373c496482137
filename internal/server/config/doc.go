// Package config defines the server configuration structure.
//
// The schema mirrors the TOML config file: a bind address with optional
// fallbacks, an optional 404 page, the get_routes section, and ambient
// settings (logging, metrics, rate limiting). The raw get_routes table is
// carried as map[string]any and split into its typed routing sections by
// ParseRoutes; everything downstream of that works on domain types only.
package config
