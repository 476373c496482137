// Package confloader provides the configuration loading mechanism.
//
// This package implements a flexible configuration loader that supports
// multiple sources using koanf as the underlying library.
//
// Features:
//
//   - Multiple Sources: TOML files, environment variables, maps
//   - Type Safety: Unmarshaling into typed structs
//   - Defaults: pre-populated target structs act as default values
//
// Priority (highest to lowest):
//
//  1. Environment variables (SHS_ prefix)
//  2. Configuration file
//  3. Default values
//
// The internal key delimiter is "::" instead of the usual "." because
// configured route keys may themselves contain dots.
package confloader
