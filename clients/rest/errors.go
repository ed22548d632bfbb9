package rest

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport is returned when the request never produced an HTTP response.
	ErrTransport = errors.New("upstream request failed")

	// ErrInvalidResponse is returned when the upstream response cannot be decoded.
	ErrInvalidResponse = errors.New("invalid upstream response")
)

// APIError carries an upstream HTTP error unchanged: the status code and the
// backend-provided message field. Callers extract Message for display.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.StatusCode, e.Message)
}

// AsAPIError unwraps err into an *APIError if it is one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// ErrorMessage returns the backend-provided message when err is an APIError,
// falling back to the given generic string. Pages use this to surface a
// human-readable banner without inspecting the error shape themselves.
func ErrorMessage(err error, fallback string) string {
	if apiErr, ok := AsAPIError(err); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
