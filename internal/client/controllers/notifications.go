package controllers

import (
	"context"

	"github.com/teamup-uiuc/teamup-cli/internal/client/api"
	"github.com/teamup-uiuc/teamup-cli/internal/client/models"
	"github.com/teamup-uiuc/teamup-cli/internal/logging"
)

// Notifications drives the join-request workflow: listing the pending
// requests received on the user's posts and accepting or rejecting them.
// Status transitions are server-owned; the controller only observes them
// by re-fetching the pending list after each successful action.
type Notifications struct {
	api  *api.Client
	log  logging.Logger
	user *models.UserSummary

	pending  []models.JoinRequest
	outgoing []models.JoinRequest
	loadErr  string
}

func NewNotifications(c *api.Client, log logging.Logger, user *models.UserSummary) *Notifications {
	return &Notifications{api: c, log: log, user: user}
}

// Load fetches the pending received requests plus the user's outgoing
// requests. The outgoing list is secondary and degrades to empty.
func (n *Notifications) Load(ctx context.Context) {
	pending, err := n.api.ReceivedRequests(ctx, n.user.UserID, models.RequestStatusPending)
	if err != nil {
		n.log.Error(ctx, "failed to load received requests", "error", err)
		n.pending = nil
		n.loadErr = "Failed to load notifications. Please try again later."
		return
	}
	n.pending = pending
	n.loadErr = ""

	outgoing, err := n.api.OutgoingRequests(ctx, n.user.UserID, "")
	if err != nil {
		n.log.Warn(ctx, "failed to load outgoing requests", "error", err)
		outgoing = nil
	}
	n.outgoing = outgoing
}

// Accept accepts a pending request. On success the pending list is
// re-fetched; on failure prior state stays and the error is reported.
func (n *Notifications) Accept(ctx context.Context, requestID int64) error {
	if err := n.api.AcceptRequest(ctx, n.user.UserID, requestID); err != nil {
		return err
	}
	n.Load(ctx)
	return nil
}

// Reject rejects a pending request with an optional free-text reason.
func (n *Notifications) Reject(ctx context.Context, requestID int64, reason string) error {
	if err := n.api.RejectRequest(ctx, n.user.UserID, requestID, reason); err != nil {
		return err
	}
	n.Load(ctx)
	return nil
}

func (n *Notifications) Pending() []models.JoinRequest  { return n.pending }
func (n *Notifications) Outgoing() []models.JoinRequest { return n.outgoing }
func (n *Notifications) Err() string                    { return n.loadErr }
