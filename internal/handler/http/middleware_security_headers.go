package http

import "net/http"

// securityHeaders are set on every response, success or error.
var securityHeaders = map[string]string{
	"X-Content-Type-Options": "nosniff",
	"X-XSS-Protection":       "1; mode=block",
	"X-Frame-Options":        "DENY",
	"Referrer-Policy":        "strict-origin-when-cross-origin",
}

// serverHeader identifies the server software and is never sent.
const serverHeader = "Server"

func applySecurityHeaders(header http.Header) {
	for name, value := range securityHeaders {
		header.Set(name, value)
	}
	header.Del(serverHeader)
}

// withSecurityHeaders decorates every response with [securityHeaders] and
// strips the Server header.
//
// Headers are applied before the handler runs, for responses the handler
// never writes explicitly, and again when the status line is written, so a
// handler cannot override or remove them.
func withSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		applySecurityHeaders(w.Header())
		next.ServeHTTP(&securityHeadersWriter{ResponseWriter: w}, r)
	})
}

type securityHeadersWriter struct {
	http.ResponseWriter

	wroteHeader bool
}

func (w *securityHeadersWriter) WriteHeader(statusCode int) {
	if !w.wroteHeader {
		applySecurityHeaders(w.Header())
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *securityHeadersWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

// Unwrap exposes the underlying writer to [http.ResponseController].
func (w *securityHeadersWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
