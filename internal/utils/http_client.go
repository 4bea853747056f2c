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
//	client := utils.NewHTTPClient("http://auth.internal:9000", 5*time.Second)
//	resp, err := client.R().SetHeader("Token", token).Post("/verify")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient bound to baseURL whose requests are
// cut off after timeout. Retries are disabled: every R() call results in at
// most one request on the wire. A zero timeout leaves requests unbounded.
//
// Each call returns an independent client instance with its own
// configuration and connection pool. The client is safe for concurrent use.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0)

	return &HTTPClient{Client: client}
}
