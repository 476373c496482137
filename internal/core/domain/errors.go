// Package domain defines the core routing model for simple-http-server.
package domain

import (
	"errors"
	"fmt"
)

// ConfigError represents a configuration error with a structured code.
// Every error the route compiler can produce carries enough context
// (section, key) to locate the offending line in the config file.
type ConfigError struct {
	Code    string // Error code (e.g., "SH-ROUTE-0003")
	Message string // Human-readable message
	Section string // Config section the error originates from (e.g., "get_routes.direct")
	Key     string // Offending key or path, when known
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Section != "" {
		msg += fmt.Sprintf(" (in %s)", e.Section)
	}
	if e.Key != "" {
		msg += fmt.Sprintf(": %q", e.Key)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support, comparing by code.
func (e *ConfigError) Is(target error) bool {
	t, ok := target.(*ConfigError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewConfigError creates a new ConfigError with the given code and message.
func NewConfigError(code, message string) *ConfigError {
	return &ConfigError{
		Code:    code,
		Message: message,
	}
}

// In returns a copy of the error annotated with the config section.
func (e *ConfigError) In(section string) *ConfigError {
	c := *e
	c.Section = section
	return &c
}

// ForKey returns a copy of the error annotated with the offending key.
func (e *ConfigError) ForKey(key string) *ConfigError {
	c := *e
	c.Key = key
	return &c
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *ConfigError) WithCause(cause error) *ConfigError {
	c := *e
	c.Cause = cause
	return &c
}

// GetErrorCode extracts the code from an error if it is a ConfigError.
func GetErrorCode(err error) string {
	var ce *ConfigError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}

// Configuration errors (CONF).
var (
	// ErrMissingAddr indicates the required addr field is absent.
	ErrMissingAddr = NewConfigError("SH-CONF-0001", "missing required field \"addr\"")

	// ErrBadType indicates a config value has the wrong TOML type.
	ErrBadType = NewConfigError("SH-CONF-0002", "wrong type for key")

	// ErrBadRateLimit indicates a negative rate_limit value.
	ErrBadRateLimit = NewConfigError("SH-CONF-0003", "rate_limit must not be negative")
)

// Route compilation errors (ROUTE).
var (
	// ErrEmptyPath indicates a file object with an empty path string.
	ErrEmptyPath = NewConfigError("SH-ROUTE-0001", "file object has an empty path")

	// ErrReservedKey indicates `direct` or `unspecial` was used as a
	// literal route path; such routes can only go through the unspecial
	// table.
	ErrReservedKey = NewConfigError("SH-ROUTE-0002", "reserved key cannot be used as a route path")

	// ErrDuplicateRoute indicates the same route key was defined by more
	// than one source.
	ErrDuplicateRoute = NewConfigError("SH-ROUTE-0003", "duplicate route key")

	// ErrEscapingPath indicates a direct entry pointing outside the
	// config file's directory.
	ErrEscapingPath = NewConfigError("SH-ROUTE-0004", "path escapes the served directory")
)

// Startup errors (BIND).
var (
	// ErrBindFailed indicates no configured address could be bound.
	ErrBindFailed = NewConfigError("SH-BIND-0001", "could not bind any configured address")
)
