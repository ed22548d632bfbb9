// Package livingsupport is the typed client for the living-support service:
// laundry orders, catering orders and notifications.
package livingsupport

import (
	"time"

	"koshub/clients/rest"

	"go.uber.org/zap"
)

// Client wraps the living-support service REST API.
type Client struct {
	rest *rest.Client
}

// NewClient creates a client for the given base URL.
func NewClient(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	return &Client{rest: rest.NewClient(baseURL, timeout, log)}
}
