// Package simplehttpserver holds the embedded documentation for the
// --print-readme flag.
package simplehttpserver

import _ "embed"

// README is the project documentation, embedded so the binary can
// reproduce it on demand.
//
//go:embed README.md
var README string
