package controllers

import (
	"context"

	"github.com/teamup-uiuc/teamup-cli/internal/client/api"
	"github.com/teamup-uiuc/teamup-cli/internal/client/models"
	"github.com/teamup-uiuc/teamup-cli/internal/logging"
)

// Teams drives the teams page: the user's team list and per-team detail.
// Membership is server-driven; this page only reads.
type Teams struct {
	api  *api.Client
	log  logging.Logger
	user *models.UserSummary

	teams    []models.Team
	selected *models.Team
	loadErr  string
}

func NewTeams(c *api.Client, log logging.Logger, user *models.UserSummary) *Teams {
	return &Teams{api: c, log: log, user: user}
}

// Load fetches the user's teams; failure degrades to an empty list with
// an inline note.
func (t *Teams) Load(ctx context.Context) {
	teams, err := t.api.UserTeams(ctx, t.user.UserID)
	if err != nil {
		t.log.Warn(ctx, "failed to load teams", "error", err)
		t.teams = nil
		t.loadErr = "Failed to load your teams. Please try again later."
		return
	}
	t.teams = teams
	t.loadErr = ""
}

// Select fetches one team with its member list.
func (t *Teams) Select(ctx context.Context, teamID int64) error {
	team, err := t.api.Team(ctx, teamID)
	if err != nil {
		return err
	}
	t.selected = team
	return nil
}

func (t *Teams) Teams() []models.Team   { return t.teams }
func (t *Teams) Selected() *models.Team { return t.selected }
func (t *Teams) Err() string            { return t.loadErr }
