package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Client is the shared HTTP plumbing for both upstream services. Every
// request carries a JSON content type; when a token is supplied it is
// attached as a bearer Authorization header. Responses are logged as an
// observable side effect only; errors are passed through to the caller with
// the upstream status and message preserved. The client never retries,
// caches, or dedupes requests.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

// NewClient creates a client for one upstream base URL.
func NewClient(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// errorBody is the upstream error payload. Some endpoints use "message",
// others "error"; the first non-empty one wins.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Do issues a JSON request against the upstream. A non-nil out is decoded
// from the response body on success.
func (c *Client) Do(ctx context.Context, method, path, token string, query url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request body: %v", ErrTransport, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.log.Debug("API Request", zap.String("method", method), zap.String("url", u))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("Request Error", zap.String("url", u), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		raw, _ := io.ReadAll(resp.Body)
		var eb errorBody
		_ = json.Unmarshal(raw, &eb)
		message := eb.Message
		if message == "" {
			message = eb.Error
		}
		if message == "" {
			message = strings.TrimSpace(string(raw))
		}
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: message}
		c.log.Error("API Error",
			zap.String("url", u),
			zap.Int("status", resp.StatusCode),
			zap.String("message", message))
		return apiErr
	}

	c.log.Debug("API Response", zap.Int("status", resp.StatusCode), zap.String("url", u))

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

// Get is shorthand for a GET request.
func (c *Client) Get(ctx context.Context, path, token string, query url.Values, out interface{}) error {
	return c.Do(ctx, http.MethodGet, path, token, query, nil, out)
}

// Post is shorthand for a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path, token string, body, out interface{}) error {
	return c.Do(ctx, http.MethodPost, path, token, nil, body, out)
}

// Put is shorthand for a PUT request with an optional JSON body.
func (c *Client) Put(ctx context.Context, path, token string, body, out interface{}) error {
	return c.Do(ctx, http.MethodPut, path, token, nil, body, out)
}

// Delete is shorthand for a DELETE request.
func (c *Client) Delete(ctx context.Context, path, token string, out interface{}) error {
	return c.Do(ctx, http.MethodDelete, path, token, nil, nil, out)
}
