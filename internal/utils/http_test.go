package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_Success(t *testing.T) {
	rec := httptest.NewRecorder()

	n, err := WriteJSON(rec, map[string]string{"status": "ok"}, http.StatusCreated)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.Equal(t, rec.Body.Len(), n)
}

func TestWriteJSON_NilData(t *testing.T) {
	rec := httptest.NewRecorder()

	_, err := WriteJSON(rec, nil, http.StatusOK)

	require.NoError(t, err)
	assert.Equal(t, "null", rec.Body.String())
}

func TestWriteJSON_MarshalError(t *testing.T) {
	rec := httptest.NewRecorder()

	n, err := WriteJSON(rec, map[string]any{"bad": make(chan int)}, http.StatusOK)

	require.Error(t, err)
	assert.Zero(t, n)
	assert.Empty(t, rec.Header().Get("Content-Type"))
	assert.Zero(t, rec.Body.Len())
}
