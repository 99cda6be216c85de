package controllers

import (
	"context"

	"github.com/teamup-uiuc/teamup-cli/internal/client/api"
	"github.com/teamup-uiuc/teamup-cli/internal/client/models"
	"github.com/teamup-uiuc/teamup-cli/internal/logging"
)

// Messages drives the messages dashboard. Like notifications it is backed
// by the profile bundle's recent activity; a failed fetch silently falls
// back to an empty feed.
type Messages struct {
	api  *api.Client
	log  logging.Logger
	user *models.UserSummary

	activity []models.ActivityItem
}

func NewMessages(c *api.Client, log logging.Logger, user *models.UserSummary) *Messages {
	return &Messages{api: c, log: log, user: user}
}

func (m *Messages) Load(ctx context.Context) {
	bundle, err := m.api.Profile(ctx, m.user.UserID)
	if err != nil {
		m.log.Warn(ctx, "failed to load activity feed", "error", err)
		m.activity = nil
		return
	}
	m.activity = bundle.RecentActivity
}

func (m *Messages) Activity() []models.ActivityItem { return m.activity }
