// Package services contains application services for the TeamUp client.
// This file defines the authentication service: register, login, logout,
// and housekeeping of the persisted session.
package services

import (
	"context"
	"fmt"

	"github.com/teamup-uiuc/teamup-cli/internal/client/api"
	"github.com/teamup-uiuc/teamup-cli/internal/client/models"
	"github.com/teamup-uiuc/teamup-cli/internal/client/session"
	"github.com/teamup-uiuc/teamup-cli/internal/logging"
)

// AuthAPI is the slice of the API client the auth service needs.
type AuthAPI interface {
	Register(ctx context.Context, p api.RegisterPayload) (*models.AuthResponse, error)
	Login(ctx context.Context, p api.LoginPayload) (*models.AuthResponse, error)
	Logout(ctx context.Context) error
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: create an account and persist the returned session.
//   - Login: authenticate and persist the returned session.
//   - Logout: best-effort server call, then unconditionally forget the
//     local session — a failed server logout never leaves the client
//     remembering its session.
//   - Session: read the persisted session, if any.
//
// All methods honor context cancellation/timeouts.
type AuthService interface {
	Register(ctx context.Context, p api.RegisterPayload) (*models.UserSummary, error)
	Login(ctx context.Context, identifier, password string) (*models.UserSummary, error)
	Logout(ctx context.Context) error
	Session(ctx context.Context) (*models.Session, error)
}

type authService struct {
	api   AuthAPI
	store *session.Store
	log   logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client
// and session store.
func NewAuthService(api AuthAPI, store *session.Store, log logging.Logger) AuthService {
	return &authService{api: api, store: store, log: log}
}

func (a *authService) Register(ctx context.Context, p api.RegisterPayload) (*models.UserSummary, error) {
	resp, err := a.api.Register(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("register error: %w", err)
	}
	if err := a.store.Persist(ctx, resp.Token, resp.User); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return resp.User, nil
}

func (a *authService) Login(ctx context.Context, identifier, password string) (*models.UserSummary, error) {
	resp, err := a.api.Login(ctx, api.LoginPayload{Identifier: identifier, Password: password})
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}
	if err := a.store.Persist(ctx, resp.Token, resp.User); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return resp.User, nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.api.Logout(ctx); err != nil {
		// Server-side logout is best-effort only.
		a.log.Warn(ctx, "server logout failed, clearing local session anyway", "error", err)
	}
	return a.store.Clear(ctx)
}

func (a *authService) Session(ctx context.Context) (*models.Session, error) {
	return a.store.Read(ctx)
}
