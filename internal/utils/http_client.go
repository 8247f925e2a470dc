// Package utils provides small helpers shared across the application:
// HTTP client construction and identifier generation.
package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client. Embedding exposes the full resty API while
// leaving room for application-specific defaults in one place.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a new HTTPClient with its own underlying
// resty.Client. Callers configure the base URL and timeout themselves; each
// instance owns its own connection pool and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
