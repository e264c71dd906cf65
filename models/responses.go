// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorRecord is the uniform body of every non-2xx response produced at the
// dispatch boundary (404, 405, 500 and any passthrough HTTP error).
type ErrorRecord struct {
	// Error is the name of the HTTP condition (e.g. "Not Found").
	Error string `json:"error"`

	// Message is a human-readable description of the condition.
	Message string `json:"message"`

	// StatusCode duplicates the HTTP status code of the response.
	StatusCode int `json:"status_code"`
}
