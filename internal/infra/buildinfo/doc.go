// Package buildinfo exposes build-time version information for
// simple-http-server.
//
// The values are injected via ldflags:
//
//	go build -ldflags "-X github.com/T0mstone/simple-http-server/internal/infra/buildinfo.Version=v1.0.0"
package buildinfo
