// Package server runs the application's HTTP transport.
//
// It owns the [net/http.Server] lifecycle: startup, signal handling, and a
// graceful shutdown bounded by the configured timeout.
package server
