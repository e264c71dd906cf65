package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrMethodNotAllowed    = errors.New("method not allowed")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrUnhealthy is returned when the backend answers the health check
	// with a status other than "ok".
	ErrUnhealthy = errors.New("backend is unhealthy")
)

// APIError is a decoded error body returned by the backend.
type APIError struct {
	StatusCode int
	Name       string
	Message    string

	sentinel error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("http %d %s: %s", e.StatusCode, e.Name, e.Message)
}

// Unwrap exposes the sentinel matching the status code, if any.
func (e *APIError) Unwrap() error {
	return e.sentinel
}
