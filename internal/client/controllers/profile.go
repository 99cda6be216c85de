package controllers

import (
	"context"

	"github.com/teamup-uiuc/teamup-cli/internal/client/api"
	"github.com/teamup-uiuc/teamup-cli/internal/client/models"
	"github.com/teamup-uiuc/teamup-cli/internal/client/services"
	"github.com/teamup-uiuc/teamup-cli/internal/logging"
)

// fallbackBundle stands in when the profile endpoint is unreachable so the
// dashboard pages can still render. Mirrors the server's own sample shape.
func fallbackBundle(user *models.UserSummary) *models.ProfileBundle {
	name := "TeamUp Member"
	if user != nil && user.DisplayName != "" {
		name = user.DisplayName
	}
	return &models.ProfileBundle{
		User:    user,
		Profile: &models.ProfileInfo{Name: name},
		Skills:  &models.ProfileSkills{},
	}
}

// Profile drives the profile page: the aggregated bundle, profile edits
// and sign-out.
type Profile struct {
	api  *api.Client
	auth services.AuthService
	log  logging.Logger
	user *models.UserSummary

	bundle  *models.ProfileBundle
	loadErr string
}

func NewProfile(c *api.Client, auth services.AuthService, log logging.Logger, user *models.UserSummary) *Profile {
	return &Profile{api: c, auth: auth, log: log, user: user}
}

// Load fetches the profile bundle. On failure the page degrades to the
// fallback payload with an inline note rather than failing outright.
func (p *Profile) Load(ctx context.Context) {
	bundle, err := p.api.Profile(ctx, p.user.UserID)
	if err != nil {
		p.log.Warn(ctx, "failed to load profile, using fallback", "error", err)
		p.bundle = fallbackBundle(p.user)
		p.loadErr = "Unable to load your profile right now. Showing sample data instead."
		return
	}
	p.bundle = bundle
	p.loadErr = ""
}

// Update applies profile field changes, then re-fetches the bundle on
// success. Failure leaves prior state for a manual retry.
func (p *Profile) Update(ctx context.Context, up models.ProfileUpdate) error {
	if err := p.api.UpdateProfile(ctx, p.user.UserID, up); err != nil {
		return err
	}
	p.Load(ctx)
	return nil
}

// Logout forgets the session. The server call inside is best-effort; the
// local session is gone when this returns.
func (p *Profile) Logout(ctx context.Context) error {
	return p.auth.Logout(ctx)
}

func (p *Profile) Bundle() *models.ProfileBundle { return p.bundle }
func (p *Profile) Err() string                   { return p.loadErr }
