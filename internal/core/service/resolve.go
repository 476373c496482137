// Package service implements the configuration-to-routing-table compiler.
package service

import (
	"path/filepath"
	"strings"

	"github.com/T0mstone/simple-http-server/internal/core/domain"
)

// Resolve normalizes a FileObject into a ResolvedFile. Relative paths are
// joined against base (the config file's directory, always absolute).
//
// When allowEscape is false (the rule for entries of the `direct`
// shorthand list, whose route key is derived from the path), absolute
// paths and relative paths resolving outside base are configuration
// errors.
//
// The filesystem is not consulted: whether the target exists is checked
// lazily, per request, so a route may point at a file created after
// startup.
func Resolve(obj domain.FileObject, base string, allowEscape bool) (domain.ResolvedFile, error) {
	if obj.Path == "" {
		return domain.ResolvedFile{}, domain.ErrEmptyPath
	}

	var abs string
	if filepath.IsAbs(obj.Path) {
		if !allowEscape {
			return domain.ResolvedFile{}, domain.ErrEscapingPath.ForKey(obj.Path)
		}
		abs = filepath.Clean(obj.Path)
	} else {
		abs = filepath.Join(base, obj.Path)
		if !allowEscape && escapes(base, abs) {
			return domain.ResolvedFile{}, domain.ErrEscapingPath.ForKey(obj.Path)
		}
	}

	mt := obj.MediaType
	if mt == "" {
		// Explicit types always win, even over recognized extensions;
		// inference only fills the gap.
		inferred, ok := domain.MediaTypeByExtension(abs)
		if !ok {
			inferred = domain.DefaultMediaType
		}
		mt = inferred
	}

	return domain.ResolvedFile{Path: abs, MediaType: mt}, nil
}

// RouteKey derives the shorthand route key for a resolved direct entry:
// the file's path relative to base, with forward-slash separators.
func RouteKey(rf domain.ResolvedFile, base string) (string, error) {
	rel, err := filepath.Rel(base, rf.Path)
	if err != nil || escapesRel(rel) {
		return "", domain.ErrEscapingPath.ForKey(rf.Path).WithCause(err)
	}
	return filepath.ToSlash(rel), nil
}

// escapes reports whether abs lies outside the base directory tree.
func escapes(base, abs string) bool {
	rel, err := filepath.Rel(base, abs)
	return err != nil || escapesRel(rel)
}

func escapesRel(rel string) bool {
	return rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
