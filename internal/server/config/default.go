// Package config defines the server configuration structure.
package config

// Default configuration values.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Default returns the default server configuration. Addr deliberately has
// no default: serving on an address nobody asked for would be a silent
// misconfiguration, so a missing addr fails verification instead.
func Default() *Config {
	return &Config{
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
