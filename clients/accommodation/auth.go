package accommodation

import (
	"context"

	"koshub/models"
)

// sessionWrapper is the nested response shape some auth endpoints return.
type sessionWrapper struct {
	AccessToken string      `json:"access_token"`
	ExpiresIn   int         `json:"expires_in"`
	User        models.User `json:"user"`
}

// authEnvelope decodes both the flat and the session-wrapped auth response.
type authEnvelope struct {
	AccessToken string          `json:"access_token"`
	ExpiresIn   int             `json:"expires_in"`
	User        models.User     `json:"user"`
	Session     *sessionWrapper `json:"session"`
}

// normalize collapses the two shapes into the canonical AuthResponse. When
// the wrapper omits expires_in it defaults to 3600.
func (e *authEnvelope) normalize() *models.AuthResponse {
	if e.Session != nil && e.Session.AccessToken != "" {
		expiresIn := e.Session.ExpiresIn
		if expiresIn == 0 {
			expiresIn = 3600
		}
		return &models.AuthResponse{
			AccessToken: e.Session.AccessToken,
			ExpiresIn:   expiresIn,
			User:        e.Session.User,
		}
	}
	return &models.AuthResponse{
		AccessToken: e.AccessToken,
		ExpiresIn:   e.ExpiresIn,
		User:        e.User,
	}
}

// Login authenticates the user and returns the normalized auth response.
func (c *Client) Login(ctx context.Context, creds models.LoginCredentials) (*models.AuthResponse, error) {
	var envelope authEnvelope
	if err := c.rest.Post(ctx, "/auth/login", "", creds, &envelope); err != nil {
		return nil, err
	}
	return envelope.normalize(), nil
}

// Register creates a new account and returns the normalized auth response.
func (c *Client) Register(ctx context.Context, data models.RegisterData) (*models.AuthResponse, error) {
	var envelope authEnvelope
	if err := c.rest.Post(ctx, "/auth/register", "", data, &envelope); err != nil {
		return nil, err
	}
	return envelope.normalize(), nil
}

// ChangePassword updates the authenticated user's password.
func (c *Client) ChangePassword(ctx context.Context, token, newPassword string) error {
	body := map[string]string{"new_password": newPassword}
	return c.rest.Put(ctx, "/auth/change-password", token, body, nil)
}

// GetUserByID fetches a user profile.
func (c *Client) GetUserByID(ctx context.Context, token, userID string) (*models.User, error) {
	var user models.User
	if err := c.rest.Get(ctx, "/users/"+userID, token, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
