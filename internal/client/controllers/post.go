package controllers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/teamup-uiuc/teamup-cli/internal/client/api"
	"github.com/teamup-uiuc/teamup-cli/internal/client/models"
	"github.com/teamup-uiuc/teamup-cli/internal/logging"
)

// Client-side validation failures; reported inline without a network call.
var (
	ErrEmptyMessage    = errors.New("please enter a message")
	ErrEmptyComment    = errors.New("please enter a comment before submitting")
	ErrOwnPost         = errors.New("you cannot send a join request to your own post")
	ErrNotSignedIn     = errors.New("please sign in first")
	ErrNotPostAuthor   = errors.New("only the author can modify this post")
	ErrNotCommentOwner = errors.New("only the comment's owner can modify it")
)

// Post drives the post-detail page: the post itself, its comments, the
// join-request form and the author-only mutations.
type Post struct {
	api  *api.Client
	log  logging.Logger
	user *models.UserSummary // nil when browsing unauthenticated

	post        *models.Post
	comments    []models.Comment
	loadErr     string
	commentErr  string
	requestSent bool
}

// NewPost builds the controller. user may be nil; mutations then fail with
// ErrNotSignedIn instead of reaching the network.
func NewPost(c *api.Client, log logging.Logger, user *models.UserSummary) *Post {
	return &Post{api: c, log: log, user: user}
}

// Load fetches the post and its comments. A comments failure degrades to
// an empty list; a post failure is the page's primary error.
func (p *Post) Load(ctx context.Context, postID int64) {
	post, err := p.api.GetPost(ctx, postID)
	if err != nil {
		p.log.Error(ctx, "failed to load post", "post_id", postID, "error", err)
		p.post = nil
		p.loadErr = "Failed to load post. Please try again later."
		return
	}
	p.post = post
	p.loadErr = ""

	comments, err := p.api.ListComments(ctx, postID)
	if err != nil {
		p.log.Warn(ctx, "failed to load comments", "post_id", postID, "error", err)
		comments = nil
	}
	p.comments = comments
}

// reloadComments resyncs the comment list after a successful mutation.
func (p *Post) reloadComments(ctx context.Context) {
	comments, err := p.api.ListComments(ctx, p.post.PostID)
	if err != nil {
		p.log.Warn(ctx, "failed to reload comments", "error", err)
		return
	}
	p.comments = comments
}

// SendJoinRequest validates and sends a join request for the loaded post.
// Blank messages, missing sessions and self-requests are rejected before
// any network call.
func (p *Post) SendJoinRequest(ctx context.Context, message string) error {
	message = strings.TrimSpace(message)
	if message == "" {
		return ErrEmptyMessage
	}
	if p.user == nil {
		return ErrNotSignedIn
	}
	if p.post == nil {
		return fmt.Errorf("no post loaded")
	}
	if p.post.AuthorID == p.user.UserID {
		return ErrOwnPost
	}

	err := p.api.CreateJoinRequest(ctx, models.JoinRequestCreate{
		PostID:     p.post.PostID,
		FromUserID: p.user.UserID,
		Message:    message,
	})
	if err != nil {
		return err
	}
	p.requestSent = true
	return nil
}

// AddComment validates and posts a comment, then resyncs the list.
// Empty trimmed content never reaches the network.
func (p *Post) AddComment(ctx context.Context, content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		p.commentErr = ErrEmptyComment.Error()
		return ErrEmptyComment
	}
	if p.user == nil {
		return ErrNotSignedIn
	}
	if p.post == nil {
		return fmt.Errorf("no post loaded")
	}

	p.commentErr = ""
	_, err := p.api.CreateComment(ctx, p.post.PostID, models.CommentCreate{
		UserID:  p.user.UserID,
		Content: content,
	})
	if err != nil {
		p.commentErr = "Failed to post comment. Please try again."
		return err
	}
	p.reloadComments(ctx)
	return nil
}

// EditComment rewrites one of the caller's own comments, then resyncs.
func (p *Post) EditComment(ctx context.Context, commentID int64, content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return ErrEmptyComment
	}
	if p.user == nil {
		return ErrNotSignedIn
	}
	comment := p.findComment(commentID)
	if comment == nil || comment.UserID != p.user.UserID {
		return ErrNotCommentOwner
	}

	if err := p.api.UpdateComment(ctx, p.post.PostID, commentID, p.user.UserID, content); err != nil {
		return err
	}
	p.reloadComments(ctx)
	return nil
}

// DeleteComment removes one of the caller's own comments, then resyncs.
func (p *Post) DeleteComment(ctx context.Context, commentID int64) error {
	if p.user == nil {
		return ErrNotSignedIn
	}
	comment := p.findComment(commentID)
	if comment == nil || comment.UserID != p.user.UserID {
		return ErrNotCommentOwner
	}

	if err := p.api.DeleteComment(ctx, p.post.PostID, commentID, p.user.UserID); err != nil {
		return err
	}
	p.reloadComments(ctx)
	return nil
}

// EditPost updates the loaded post; author-only, checked client-side and
// enforced again by the backend. Resyncs the post on success.
func (p *Post) EditPost(ctx context.Context, up models.PostUpdate) error {
	if p.user == nil {
		return ErrNotSignedIn
	}
	if p.post == nil || p.post.AuthorID != p.user.UserID {
		return ErrNotPostAuthor
	}

	if err := p.api.UpdatePost(ctx, p.post.PostID, p.user.UserID, up); err != nil {
		return err
	}
	post, err := p.api.GetPost(ctx, p.post.PostID)
	if err != nil {
		p.log.Warn(ctx, "failed to reload post after edit", "error", err)
		return nil
	}
	p.post = post
	return nil
}

// DeletePost removes the loaded post; author-only.
func (p *Post) DeletePost(ctx context.Context) error {
	if p.user == nil {
		return ErrNotSignedIn
	}
	if p.post == nil || p.post.AuthorID != p.user.UserID {
		return ErrNotPostAuthor
	}

	if err := p.api.DeletePost(ctx, p.post.PostID, p.user.UserID); err != nil {
		return err
	}
	p.post = nil
	p.comments = nil
	return nil
}

func (p *Post) findComment(commentID int64) *models.Comment {
	for i := range p.comments {
		if p.comments[i].CommentID == commentID {
			return &p.comments[i]
		}
	}
	return nil
}

func (p *Post) Current() *models.Post      { return p.post }
func (p *Post) Comments() []models.Comment { return p.comments }
func (p *Post) Err() string                { return p.loadErr }
func (p *Post) CommentErr() string         { return p.commentErr }
func (p *Post) RequestSent() bool          { return p.requestSent }

// IsAuthor reports whether the signed-in user owns the loaded post.
func (p *Post) IsAuthor() bool {
	return p.user != nil && p.post != nil && p.post.AuthorID == p.user.UserID
}
