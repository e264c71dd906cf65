// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/fluxrouter-backend/models"
)

// HTTPError is an HTTP-level failure rendered as a [models.ErrorRecord].
// Two HTTPErrors match under [errors.Is] when their codes are equal.
type HTTPError struct {
	// Code is the HTTP status code, 400-599.
	Code int

	// Name is the standard status text (e.g. "Not Found").
	Name string

	// Description is a human-readable explanation of the failure.
	Description string
}

// Sentinel errors for the conditions handled at the dispatch boundary.
// Callers can match against them with [errors.Is].
var (
	ErrNotFound = &HTTPError{
		Code:        http.StatusNotFound,
		Name:        http.StatusText(http.StatusNotFound),
		Description: "The requested resource was not found",
	}

	ErrMethodNotAllowed = &HTTPError{
		Code:        http.StatusMethodNotAllowed,
		Name:        http.StatusText(http.StatusMethodNotAllowed),
		Description: "The method is not allowed for this resource",
	}

	ErrInternalServerError = &HTTPError{
		Code:        http.StatusInternalServerError,
		Name:        http.StatusText(http.StatusInternalServerError),
		Description: "An internal server error occurred",
	}
)

// descriptions holds the explanation of passthrough codes that have no
// sentinel.
var descriptions = map[int]string{
	http.StatusBadRequest:            "The browser (or proxy) sent a request that this server could not understand.",
	http.StatusUnauthorized:          "The server could not verify that you are authorized to access the URL requested.",
	http.StatusForbidden:             "You don't have the permission to access the requested resource.",
	http.StatusNotAcceptable:         "The resource identified by the request is only capable of generating response entities which have content characteristics not acceptable according to the accept headers sent in the request.",
	http.StatusRequestTimeout:        "The server closed the network connection because the browser didn't finish the request within the specified time.",
	http.StatusConflict:              "A conflict happened while processing the request.",
	http.StatusGone:                  "The requested URL is no longer available on this server and there is no forwarding address.",
	http.StatusRequestEntityTooLarge: "The data value transmitted exceeds the capacity limit.",
	http.StatusUnsupportedMediaType:  "The server does not support the media type transmitted in the request.",
	http.StatusTooManyRequests:       "This user has exceeded an allotted request count. Try again later.",
	http.StatusNotImplemented:        "The server does not support the action requested by the browser.",
	http.StatusBadGateway:            "The proxy server received an invalid response from an upstream server.",
	http.StatusServiceUnavailable:    "The server is temporarily unable to service your request due to maintenance downtime or capacity problems. Please try again later.",
	http.StatusGatewayTimeout:        "The connection to an upstream server timed out.",
}

// NewHTTPError returns the error for code. Sentinel codes return the
// sentinel itself; codes outside 400-599 or unknown to net/http collapse to
// [ErrInternalServerError].
func NewHTTPError(code int) *HTTPError {
	switch code {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusMethodNotAllowed:
		return ErrMethodNotAllowed
	case http.StatusInternalServerError:
		return ErrInternalServerError
	}

	name := http.StatusText(code)
	if code < 400 || code > 599 || name == "" {
		return ErrInternalServerError
	}

	description, ok := descriptions[code]
	if !ok {
		description = name
	}

	return &HTTPError{Code: code, Name: name, Description: description}
}

// Abort stops the current handler with the HTTP error for code. The panic
// is converted into an error response by the recovery middleware.
func Abort(code int) {
	panic(NewHTTPError(code))
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Code, e.Name, e.Description)
}

// Is reports whether target is an *HTTPError with the same code.
func (e *HTTPError) Is(target error) bool {
	t, ok := target.(*HTTPError)
	return ok && t.Code == e.Code
}

// Record converts e into the response body shape.
func (e *HTTPError) Record() models.ErrorRecord {
	return models.ErrorRecord{
		Error:      e.Name,
		Message:    e.Description,
		StatusCode: e.Code,
	}
}
