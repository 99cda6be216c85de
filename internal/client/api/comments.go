package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/teamup-uiuc/teamup-cli/internal/client/models"
)

// ListComments fetches a post's comments, oldest first.
func (c *Client) ListComments(ctx context.Context, postID int64) ([]models.Comment, error) {
	var comments []models.Comment
	if err := c.get(ctx, fmt.Sprintf("/posts/%d/comments", postID), nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// CreateComment adds a comment to a post.
func (c *Client) CreateComment(ctx context.Context, postID int64, cc models.CommentCreate) (*models.Comment, error) {
	var comment models.Comment
	if err := c.post(ctx, fmt.Sprintf("/posts/%d/comments", postID), nil, cc, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// UpdateComment rewrites a comment's content; the backend rejects callers
// other than the comment's owner.
func (c *Client) UpdateComment(ctx context.Context, postID, commentID, userID int64, content string) error {
	q := url.Values{}
	q.Set("user_id", strconv.FormatInt(userID, 10))

	body := map[string]string{"content": content}
	return c.put(ctx, fmt.Sprintf("/posts/%d/comments/%d", postID, commentID), q, body, nil)
}

// DeleteComment removes a comment; owner-only, like UpdateComment.
func (c *Client) DeleteComment(ctx context.Context, postID, commentID, userID int64) error {
	q := url.Values{}
	q.Set("user_id", strconv.FormatInt(userID, 10))
	return c.delete(ctx, fmt.Sprintf("/posts/%d/comments/%d", postID, commentID), q)
}
