package api

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/teamup-uiuc/teamup-cli/internal/client/models"
)

// ErrSearchScope is returned by SearchPosts before any network call when
// the term or course identifier is missing; post search is an exact
// term+course pair.
var ErrSearchScope = errors.New("both term_id and course_id are required")

// PopularPosts fetches the popular posts, optionally scoped to a term.
// limit <= 0 falls back to the server default.
func (c *Client) PopularPosts(ctx context.Context, termID string, limit int) ([]models.Post, error) {
	q := url.Values{}
	if termID != "" {
		q.Set("term_id", termID)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var posts []models.Post
	if err := c.get(ctx, "/posts/popular", q, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// SearchPosts fetches posts for an exact term+course pair. Fails fast if
// either identifier is absent.
func (c *Client) SearchPosts(ctx context.Context, termID, courseID string, limit int) ([]models.Post, error) {
	if termID == "" || courseID == "" {
		return nil, ErrSearchScope
	}
	if limit <= 0 {
		limit = 100
	}

	q := url.Values{}
	q.Set("term_id", termID)
	q.Set("course_id", courseID)
	q.Set("limit", strconv.Itoa(limit))

	var posts []models.Post
	if err := c.get(ctx, "/posts/search", q, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPost fetches a single post by id.
func (c *Client) GetPost(ctx context.Context, postID int64) (*models.Post, error) {
	var post models.Post
	if err := c.get(ctx, fmt.Sprintf("/posts/%d", postID), nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// CreatePost creates a recruiting post owned by the calling user.
func (c *Client) CreatePost(ctx context.Context, pc models.PostCreate) (*models.Post, error) {
	var post models.Post
	if err := c.post(ctx, "/posts", nil, pc, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdatePost updates a post; the backend rejects callers other than the
// author, identified by the user_id query parameter.
func (c *Client) UpdatePost(ctx context.Context, postID, userID int64, up models.PostUpdate) error {
	q := url.Values{}
	q.Set("user_id", strconv.FormatInt(userID, 10))
	return c.put(ctx, fmt.Sprintf("/posts/%d", postID), q, up, nil)
}

// DeletePost deletes a post; author-only, like UpdatePost.
func (c *Client) DeletePost(ctx context.Context, postID, userID int64) error {
	q := url.Values{}
	q.Set("user_id", strconv.FormatInt(userID, 10))
	return c.delete(ctx, fmt.Sprintf("/posts/%d", postID), q)
}

// UserPosts fetches the posts a user has written or commented on.
func (c *Client) UserPosts(ctx context.Context, userID int64, limit int) ([]models.Post, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var posts []models.Post
	if err := c.get(ctx, fmt.Sprintf("/users/%d/posts", userID), q, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}
