// Package session holds the server-side authentication state. A session is
// created on login/register success, read on every request via the cookie,
// and destroyed on logout. The store is injected explicitly; there is no
// ambient singleton.
package session

import (
	"errors"
	"time"

	"koshub/models"
)

// CookieName is the HTTP-only cookie carrying the session ID.
const CookieName = "koshub_session"

// ErrNotFound is returned when no session exists for the given ID.
var ErrNotFound = errors.New("session not found")

// Session pairs the upstream access token with the cached user profile.
type Session struct {
	ID          string      `json:"id"`
	AccessToken string      `json:"access_token"`
	ExpiresIn   int         `json:"expires_in"`
	User        models.User `json:"user"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Store is the session persistence boundary.
type Store interface {
	// Create persists a new session for a successful auth response and
	// returns it with a fresh ID.
	Create(auth *models.AuthResponse) (*Session, error)

	// Get retrieves a session by ID, or ErrNotFound.
	Get(id string) (*Session, error)

	// Save rewrites an existing session (e.g. after a profile refresh).
	Save(s *Session) error

	// Delete removes a session. Deleting a missing session is not an error.
	Delete(id string) error
}
