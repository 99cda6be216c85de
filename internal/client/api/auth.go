package api

import (
	"context"
	"errors"
	"net/url"
	"strconv"

	"github.com/teamup-uiuc/teamup-cli/internal/client/models"
)

// ErrNoIdentity is returned by CurrentUser before any network call when
// neither a user id nor an identifier is available.
var ErrNoIdentity = errors.New("user_id or identifier is required")

// RegisterPayload is the request body for account creation.
type RegisterPayload struct {
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	NetID       string `json:"netid"`
	Password    string `json:"password"`
}

// LoginPayload carries the login identifier (email or netid) and password.
type LoginPayload struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// Register creates an account and returns the fresh session material.
func (c *Client) Register(ctx context.Context, p RegisterPayload) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.post(ctx, "/auth/register", nil, p, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login authenticates and returns the fresh session material.
func (c *Client) Login(ctx context.Context, p LoginPayload) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.post(ctx, "/auth/login", nil, p, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout tells the server to drop the session. Best-effort: callers must
// clear their local session even when this fails.
func (c *Client) Logout(ctx context.Context) error {
	return c.post(ctx, "/auth/logout", nil, nil, nil)
}

// CurrentUser re-validates the cached identity, by user id when present,
// falling back to the email/netid identifier.
func (c *Client) CurrentUser(ctx context.Context, userID int64, identifier string) (*models.UserSummary, error) {
	if userID == 0 && identifier == "" {
		return nil, ErrNoIdentity
	}

	q := url.Values{}
	if userID != 0 {
		q.Set("user_id", strconv.FormatInt(userID, 10))
	} else {
		q.Set("identifier", identifier)
	}

	var user models.UserSummary
	if err := c.get(ctx, "/auth/me", q, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
