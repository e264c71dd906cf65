package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithSecurityHeaders_TableTest(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		status  int
	}{
		{
			name: "explicit status and body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte("created"))
			},
			status: http.StatusCreated,
		},
		{
			name: "implicit 200 on write",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("ok"))
			},
			status: http.StatusOK,
		},
		{
			name:    "handler writes nothing",
			handler: func(w http.ResponseWriter, r *http.Request) {},
			status:  http.StatusOK,
		},
		{
			name: "handler sets a Server header",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Server", "nginx/1.25")
				w.WriteHeader(http.StatusNoContent)
			},
			status: http.StatusNoContent,
		},
		{
			name: "handler overrides a security header",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("X-Frame-Options", "SAMEORIGIN")
				w.WriteHeader(http.StatusNotFound)
			},
			status: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			withSecurityHeaders(tt.handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.status, rec.Code)
			assertSecurityHeaders(t, rec.Header())
		})
	}
}

func TestWithSecurityHeaders_PreservesBody(t *testing.T) {
	rec := httptest.NewRecorder()
	withSecurityHeaders(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("first,"))
		_, _ = w.Write([]byte("second"))
	})).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "first,second", rec.Body.String())
}

func TestSecurityHeadersWriter_Unwrap(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &securityHeadersWriter{ResponseWriter: rec}

	assert.Same(t, rec, w.Unwrap())
}
