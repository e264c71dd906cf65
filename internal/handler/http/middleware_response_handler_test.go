package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter_WriteHeader_CalledTwice_IgnoresSecond(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusNotFound)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusNotFound, w.statusCode())
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestResponseWriter_Write_ImplicitOK(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	n, err := w.Write([]byte(`{"status":"ok"}`))
	require.NoError(t, err)
	_, err = w.Write([]byte("\n"))
	require.NoError(t, err)

	assert.Equal(t, 15, n)
	assert.Equal(t, 16, w.size)
	assert.Equal(t, http.StatusOK, w.statusCode())
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestResponseWriter_StatusCode_NothingWritten(t *testing.T) {
	w := &responseWriter{ResponseWriter: httptest.NewRecorder()}

	assert.Equal(t, http.StatusOK, w.statusCode())
	assert.Zero(t, w.size)
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	assert.Same(t, rr, w.Unwrap())
}
