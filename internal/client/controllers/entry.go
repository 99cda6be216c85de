// Package controllers holds the per-page orchestration: each controller
// sequences resource fetches after the session guard resolves, keeps the
// page's view state, and re-fetches after user actions. Mutations never
// update view state optimistically; failures leave prior state intact.
//
// Controllers are driven from the single REPL loop and are not safe for
// concurrent use, except where noted.
package controllers

import (
	"context"

	"github.com/teamup-uiuc/teamup-cli/internal/client/api"
	"github.com/teamup-uiuc/teamup-cli/internal/client/models"
	"github.com/teamup-uiuc/teamup-cli/internal/logging"
)

// Entry drives the public entry/search page: popular posts plus the term
// list. Unlike the dashboard pages, its primary purpose includes showing
// fetch errors, so they surface inline instead of degrading silently.
type Entry struct {
	api *api.Client
	log logging.Logger

	posts   []models.Post
	terms   []models.Term
	loadErr string
	loading bool
}

func NewEntry(c *api.Client, log logging.Logger) *Entry {
	return &Entry{api: c, log: log}
}

// Load fetches the popular posts, optionally scoped to a term. The term
// list failing is non-critical and falls back to empty.
func (e *Entry) Load(ctx context.Context, termID string) {
	e.loading = true
	defer func() { e.loading = false }()

	posts, err := e.api.PopularPosts(ctx, termID, 0)
	if err != nil {
		e.log.Error(ctx, "failed to load popular posts", "error", err)
		e.loadErr = "Failed to load popular posts. Please try again later."
		return
	}
	e.posts = posts
	e.loadErr = ""

	terms, err := e.api.ListTerms(ctx)
	if err != nil {
		e.log.Warn(ctx, "failed to load terms", "error", err)
		terms = nil
	}
	e.terms = terms
}

func (e *Entry) Posts() []models.Post { return e.posts }
func (e *Entry) Terms() []models.Term { return e.terms }
func (e *Entry) Err() string          { return e.loadErr }
func (e *Entry) Loading() bool        { return e.loading }
