// Package utils provides general-purpose helper utilities used across
// different parts of the application: JSON response writing, trace ID
// generation and HTTP client initialization.
package utils
