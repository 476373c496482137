// Package domain defines the core routing model for simple-http-server.
package domain

import "fmt"

// Reserved structural keys inside the get_routes table. They name the
// shorthand list and the escape table, so they are not usable as plain
// route paths; a literal route under one of these names goes through the
// unspecial table instead.
const (
	ReservedDirect    = "direct"
	ReservedUnspecial = "unspecial"
)

// IsReservedKey reports whether key is one of the reserved structural
// names of the get_routes section.
func IsReservedKey(key string) bool {
	return key == ReservedDirect || key == ReservedUnspecial
}

// FileObject is a configured reference to a served file. It comes in two
// textual shapes: a bare path string, or a { type, path } table. MediaType
// is empty when the type should be inferred from the path's extension.
type FileObject struct {
	Path      string
	MediaType string
}

// ParseFileObject converts a raw deserialized config value (string or
// table) into a FileObject. The two shapes are disambiguated here, during
// deserialization, so the route compiler never inspects raw values.
func ParseFileObject(v any) (FileObject, error) {
	switch x := v.(type) {
	case string:
		if x == "" {
			return FileObject{}, ErrEmptyPath
		}
		return FileObject{Path: x}, nil
	case map[string]any:
		var obj FileObject
		for k, fv := range x {
			s, ok := fv.(string)
			if !ok {
				return FileObject{}, ErrBadType.ForKey(k).
					WithCause(fmt.Errorf("expected a string, got %T", fv))
			}
			switch k {
			case "path":
				obj.Path = s
			case "type":
				obj.MediaType = s
			default:
				return FileObject{}, ErrBadType.ForKey(k).
					WithCause(fmt.Errorf("unknown file object field"))
			}
		}
		if obj.Path == "" {
			return FileObject{}, ErrEmptyPath
		}
		return obj, nil
	default:
		return FileObject{}, ErrBadType.
			WithCause(fmt.Errorf("file object must be a path string or a { type, path } table, got %T", v))
	}
}

// RouteConfig holds the typed routing sections of a config file, after
// the reserved keys have been split off the raw get_routes table.
type RouteConfig struct {
	// Explicit maps literal route paths to files. Never contains the
	// reserved keys.
	Explicit map[string]FileObject

	// Direct is the shorthand list: each file is routed at its own
	// path relative to the base directory.
	Direct []FileObject

	// Unspecial maps literal route paths to files, bypassing the
	// reserved-name check. Its purpose is registering routes named
	// "direct" or "unspecial"; other keys are accepted but redundant.
	Unspecial map[string]FileObject
}
