package api

import (
	"context"
	"net/http"

	"github.com/barhopapp/barhop/internal/errors"
)

// Login authenticates with email and password and returns the bearer token
// plus the resolved user profile. A 401 here means the credentials were
// rejected, not that a session expired.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/auth/login", LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var authResp AuthResponse
	if err := parseResponse(resp, &authResp); err != nil {
		if errors.IsCode(err, errors.ErrCodeAuthExpired) {
			return nil, errors.NewInvalidCredentialsError()
		}
		return nil, err
	}

	return &authResp, nil
}

// Register creates a new account. On success the backend returns a token and
// profile directly, matching login.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/auth/register", req)
	if err != nil {
		return nil, err
	}

	var authResp AuthResponse
	if err := parseResponse(resp, &authResp); err != nil {
		return nil, err
	}

	return &authResp, nil
}

// CurrentUser retrieves the profile belonging to the stored token.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/users/me", nil)
	if err != nil {
		return nil, err
	}

	var user User
	if err := parseResponse(resp, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// Logout notifies the backend that the session is ending. Sign-out is a
// local operation; callers treat failures here as best-effort.
func (c *Client) Logout(ctx context.Context) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "/auth/logout", nil)
	if err != nil {
		return err
	}

	return parseResponse(resp, nil)
}
