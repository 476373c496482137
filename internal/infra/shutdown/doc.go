// Package shutdown provides graceful shutdown handling.
//
// The server registers teardown hooks (drain the HTTP listener, stop the
// metrics listener) and blocks in Wait until SIGINT or SIGTERM arrives;
// hooks then run in reverse registration order under a shared timeout.
package shutdown
