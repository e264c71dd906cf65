package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://127.0.0.1:5000", 3*time.Second)
//	resp, err := client.R().Get("/api/health")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client bound to baseURL with the given request
// timeout. Every request asks for JSON.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", ContentTypeJSON)

	return &HTTPClient{Client: client}
}
