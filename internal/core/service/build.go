// Package service implements the configuration-to-routing-table compiler.
package service

import (
	"sort"

	"github.com/T0mstone/simple-http-server/internal/core/domain"
)

// Config section names, used to annotate errors.
const (
	sectionRoutes    = "get_routes"
	sectionDirect    = "get_routes.direct"
	sectionUnspecial = "get_routes.unspecial"
)

// BuildTable compiles the routing sections of a config file into the
// final route table. base is the absolute directory of the config file.
//
// Every insertion must target a fresh key. A collision between any two
// sources is a configuration error surfaced at startup, never resolved
// by silent override.
func BuildTable(rc domain.RouteConfig, base string) (domain.Table, error) {
	table := make(domain.Table, len(rc.Explicit)+len(rc.Direct)+len(rc.Unspecial))

	insert := func(key string, rf domain.ResolvedFile, section string) error {
		if _, exists := table[key]; exists {
			return domain.ErrDuplicateRoute.In(section).ForKey(key)
		}
		table[key] = rf
		return nil
	}

	// Explicit routes. The reserved names were split off during parsing,
	// but a programmatically built RouteConfig gets the same guarantee.
	for _, key := range sortedKeys(rc.Explicit) {
		if domain.IsReservedKey(key) {
			return nil, domain.ErrReservedKey.In(sectionRoutes).ForKey(key)
		}
		rf, err := Resolve(rc.Explicit[key], base, true)
		if err != nil {
			return nil, annotate(err, sectionRoutes, key)
		}
		if err := insert(key, rf, sectionRoutes); err != nil {
			return nil, err
		}
	}

	// Unspecial routes: literal keys, reserved names allowed. Any key is
	// accepted here; using the table for non-reserved names is redundant
	// but not an error.
	for _, key := range sortedKeys(rc.Unspecial) {
		rf, err := Resolve(rc.Unspecial[key], base, true)
		if err != nil {
			return nil, annotate(err, sectionUnspecial, key)
		}
		if err := insert(key, rf, sectionUnspecial); err != nil {
			return nil, err
		}
	}

	// Direct shorthand: the route key is the file's own path relative to
	// base, so escaping paths are rejected outright.
	for _, obj := range rc.Direct {
		rf, err := Resolve(obj, base, false)
		if err != nil {
			return nil, annotate(err, sectionDirect, obj.Path)
		}
		key, err := RouteKey(rf, base)
		if err != nil {
			return nil, annotate(err, sectionDirect, obj.Path)
		}
		if err := insert(key, rf, sectionDirect); err != nil {
			return nil, err
		}
	}

	return table, nil
}

// annotate attaches section/key context to resolver errors that lack it.
func annotate(err error, section, key string) error {
	if ce, ok := err.(*domain.ConfigError); ok {
		if ce.Section == "" {
			ce = ce.In(section)
		}
		if ce.Key == "" {
			ce = ce.ForKey(key)
		}
		return ce
	}
	return err
}

// sortedKeys returns the map's keys in lexical order, so build failures
// are deterministic no matter the map iteration order.
func sortedKeys(m map[string]domain.FileObject) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
