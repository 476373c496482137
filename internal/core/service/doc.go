// Package service implements the configuration-to-routing-table compiler.
//
// It contains pure functions that turn the typed routing sections of a
// parsed config file into the immutable route table the HTTP layer serves
// from. Compilation happens exactly once, before any request is handled,
// and is atomic: either a complete, unambiguous table is produced or the
// whole operation fails with a configuration error.
package service
