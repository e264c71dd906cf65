package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ContentTypeJSON is the exact Content-Type of every API response.
const ContentTypeJSON = "application/json"

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, nothing is written and a wrapped error is returned
// so the caller can render its own error response.
//
// Example usage:
//
//	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
