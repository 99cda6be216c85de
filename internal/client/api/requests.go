package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/teamup-uiuc/teamup-cli/internal/client/models"
)

// CreateJoinRequest sends a join request for a post. Self-requests are
// screened out by the post controller before this is called; the backend
// enforces the same rule.
func (c *Client) CreateJoinRequest(ctx context.Context, rc models.JoinRequestCreate) error {
	return c.post(ctx, "/requests", nil, rc, nil)
}

// OutgoingRequests lists a user's sent join requests, optionally filtered
// by status.
func (c *Client) OutgoingRequests(ctx context.Context, userID int64, status string) ([]models.JoinRequest, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}

	var reqs []models.JoinRequest
	if err := c.get(ctx, fmt.Sprintf("/users/%d/match-requests", userID), q, &reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

// ReceivedRequests lists join requests targeting the user's posts,
// optionally filtered by status.
func (c *Client) ReceivedRequests(ctx context.Context, userID int64, status string) ([]models.JoinRequest, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}

	var reqs []models.JoinRequest
	if err := c.get(ctx, fmt.Sprintf("/users/%d/received-requests", userID), q, &reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

// AcceptRequest accepts a received join request. Team membership changes
// are a server-side effect; the client observes them by re-fetching.
func (c *Client) AcceptRequest(ctx context.Context, userID, requestID int64) error {
	return c.put(ctx, fmt.Sprintf("/users/%d/requests/%d/accept", userID, requestID), nil, nil, nil)
}

// RejectRequest rejects a received join request, with an optional
// free-text reason carried as rejection_reason.
func (c *Client) RejectRequest(ctx context.Context, userID, requestID int64, reason string) error {
	var body any
	if reason != "" {
		body = map[string]string{"rejection_reason": reason}
	}
	return c.put(ctx, fmt.Sprintf("/users/%d/requests/%d/reject", userID, requestID), nil, body, nil)
}
