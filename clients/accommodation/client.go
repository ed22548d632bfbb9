// Package accommodation is the typed client for the accommodation service:
// auth, user profiles, kos listings and bookings.
package accommodation

import (
	"time"

	"koshub/clients/rest"

	"go.uber.org/zap"
)

// Client wraps the accommodation service REST API.
type Client struct {
	rest *rest.Client
}

// NewClient creates a client for the given base URL.
func NewClient(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	return &Client{rest: rest.NewClient(baseURL, timeout, log)}
}
