// Package domain defines the core routing model for simple-http-server.
//
// Domain models are pure value objects without any IO dependencies or
// framework coupling. This package contains:
//
//   - FileObject: a configured file reference, with optional media type
//   - ResolvedFile: an absolute path plus final media type
//   - Table: the immutable URL path -> file mapping served at runtime
//   - RouteConfig: the typed routing sections of a parsed config file
//   - Errors: configuration error definitions with stable codes
//
// Nothing in this package touches the filesystem; whether a routed file
// exists is decided per request by the HTTP layer.
package domain
