// Package http implements the HTTP transport layer of the fluxrouter
// backend.
//
// It exposes route wiring, request handlers, and middleware used by the
// JSON API. Cross-cutting concerns such as security headers, request
// tracing, access logging, panic recovery, and uniform error rendering are
// handled in this package before requests are delegated to the service
// layer.
package http
