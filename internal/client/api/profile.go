package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/teamup-uiuc/teamup-cli/internal/client/models"
)

// Profile fetches the aggregated profile bundle for a user.
func (c *Client) Profile(ctx context.Context, userID int64) (*models.ProfileBundle, error) {
	q := url.Values{}
	q.Set("user_id", strconv.FormatInt(userID, 10))

	var bundle models.ProfileBundle
	if err := c.get(ctx, "/profile/me", q, &bundle); err != nil {
		return nil, err
	}
	return &bundle, nil
}

// UpdateProfile updates the mutable profile fields of a user.
func (c *Client) UpdateProfile(ctx context.Context, userID int64, up models.ProfileUpdate) error {
	q := url.Values{}
	q.Set("user_id", strconv.FormatInt(userID, 10))
	return c.put(ctx, "/profile/me", q, up, nil)
}
