package api

import (
	"context"
	"fmt"
	"strings"

	"github.com/cashstate/cashstate-go/pkg/domain"
)

type tokenReply struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	UserID       string `json:"user_id"`
}

func (t *tokenReply) identity() *domain.Identity {
	return domain.NewIdentity(t.UserID, t.AccessToken, t.RefreshToken, t.ExpiresIn)
}

func (t *tokenReply) Validate() error {
	if t.AccessToken == "" || t.UserID == "" {
		return fmt.Errorf("token reply missing access token or user id")
	}
	return nil
}

// Register creates a new account and returns its identity. The caller
// decides whether to store it in the session.
func (c *Client) Register(ctx context.Context, username, password string) (*domain.Identity, error) {
	if err := required("username", username); err != nil {
		return nil, err
	}
	if err := required("password", password); err != nil {
		return nil, err
	}

	out := tokenReply{}
	err := c.call(ctx, &operation{
		fn:   "auth:register",
		kind: opAction,
		args: map[string]any{"username": username, "password": password},

		method: "POST",
		path:   "/auth/register",
		body:   map[string]string{"username": username, "password": password},

		skipIdentity: true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return out.identity(), nil
}

// Login authenticates with username and password.
func (c *Client) Login(ctx context.Context, username, password string) (*domain.Identity, error) {
	if err := required("username", username); err != nil {
		return nil, err
	}
	if err := required("password", password); err != nil {
		return nil, err
	}

	out := tokenReply{}
	err := c.call(ctx, &operation{
		fn:   "auth:login",
		kind: opAction,
		args: map[string]any{"username": username, "password": password},

		method: "POST",
		path:   "/auth/login",
		body:   map[string]string{"username": username, "password": password},

		skipIdentity: true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return out.identity(), nil
}

// Refresh exchanges the stored refresh token for a fresh identity.
func (c *Client) Refresh(ctx context.Context) (*domain.Identity, error) {
	id := c.session.Current()
	if id == nil || id.RefreshToken == "" {
		return nil, errNotLoggedIn()
	}

	out := tokenReply{}
	err := c.call(ctx, &operation{
		fn:   "auth:refresh",
		kind: opAction,
		args: map[string]any{"refreshToken": id.RefreshToken},

		method: "POST",
		path:   "/auth/refresh",
		body:   map[string]string{"refresh_token": id.RefreshToken},

		skipIdentity: true, // authenticates by refresh token, not bearer
	}, &out)
	if err != nil {
		return nil, err
	}
	return out.identity(), nil
}

// Me returns the current identity's profile.
func (c *Client) Me(ctx context.Context) (*domain.Profile, error) {
	out := domain.Profile{}
	err := c.call(ctx, &operation{
		fn:   "users:me",
		kind: opQuery,

		method: "GET",
		path:   "/auth/me",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}
