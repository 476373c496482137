// Package config defines the server configuration structure.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/T0mstone/simple-http-server/internal/core/domain"
)

// ParseRoutes splits the raw get_routes table into its typed routing
// sections. The two reserved keys are extracted first; whatever remains
// is the literal route map, so the builder never has to compare key
// strings against reserved names.
//
// A reserved key whose value does not have its structural shape (a list
// for direct, a table for unspecial) means someone tried to use it as a
// plain route, which only the unspecial table can express.
func ParseRoutes(raw map[string]any) (domain.RouteConfig, error) {
	rc := domain.RouteConfig{
		Explicit:  make(map[string]domain.FileObject),
		Unspecial: make(map[string]domain.FileObject),
	}
	if raw == nil {
		return rc, nil
	}

	for key, val := range raw {
		switch key {
		case domain.ReservedDirect:
			entries, ok := asList(val)
			if !ok {
				return domain.RouteConfig{}, domain.ErrReservedKey.
					In("get_routes").ForKey(key).
					WithCause(fmt.Errorf("expected a list of file objects; a literal %q route must go through the unspecial table", key))
			}
			for i, e := range entries {
				obj, err := domain.ParseFileObject(e)
				if err != nil {
					return domain.RouteConfig{}, annotate(err, "get_routes.direct", fmt.Sprintf("entry %d", i))
				}
				rc.Direct = append(rc.Direct, obj)
			}
		case domain.ReservedUnspecial:
			table, ok := val.(map[string]any)
			if !ok {
				return domain.RouteConfig{}, domain.ErrReservedKey.
					In("get_routes").ForKey(key).
					WithCause(fmt.Errorf("expected a table of routes; a literal %q route must go through the unspecial table", key))
			}
			for k, v := range table {
				obj, err := domain.ParseFileObject(v)
				if err != nil {
					return domain.RouteConfig{}, annotate(err, "get_routes.unspecial", k)
				}
				rc.Unspecial[k] = obj
			}
		default:
			obj, err := domain.ParseFileObject(val)
			if err != nil {
				return domain.RouteConfig{}, annotate(err, "get_routes", key)
			}
			rc.Explicit[key] = obj
		}
	}

	return rc, nil
}

// BaseDir returns the absolute directory containing the config file; all
// relative paths in the config are anchored there.
func BaseDir(configPath string) (string, error) {
	abs, err := filepath.Abs(configPath)
	if err != nil {
		wd, _ := os.Getwd()
		return "", fmt.Errorf("resolve config path against %q: %w", wd, err)
	}
	return filepath.Dir(abs), nil
}

// asList normalizes the deserialized forms a TOML array can surface as.
func asList(v any) ([]any, bool) {
	switch x := v.(type) {
	case []any:
		return x, true
	case []string:
		out := make([]any, len(x))
		for i, s := range x {
			out[i] = s
		}
		return out, true
	case []map[string]any:
		out := make([]any, len(x))
		for i, m := range x {
			out[i] = m
		}
		return out, true
	default:
		return nil, false
	}
}

// annotate attaches section/key context to parse errors that lack it.
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
