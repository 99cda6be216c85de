// Package guard implements the session-gated loading lifecycle every
// protected page shares: read the persisted session, re-validate it against
// the server, and either expose the refreshed identity or clear the session
// and send the user back to authentication.
package guard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/teamup-uiuc/teamup-cli/internal/client/models"
	"github.com/teamup-uiuc/teamup-cli/internal/client/session"
	"github.com/teamup-uiuc/teamup-cli/internal/logging"
)

// State of the guard's per-mount machine.
//
//	Unauthenticated → Validating → Ready
//	Unauthenticated → Redirecting
//	Validating      → Redirecting
type State int

const (
	StateUnauthenticated State = iota
	StateValidating
	StateReady
	StateRedirecting
)

var (
	// ErrNotAuthenticated means the guard ended in Redirecting: there was
	// no usable session, or validation failed. The store is cleared by the
	// time this is returned.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrSuperseded means a newer Ensure (or Cancel) started while this
	// validation was in flight; its result was discarded without touching
	// guard state.
	ErrSuperseded = errors.New("validation superseded")
)

// IdentityClient is the slice of the API client the guard needs.
type IdentityClient interface {
	CurrentUser(ctx context.Context, userID int64, identifier string) (*models.UserSummary, error)
}

// Guard validates the persisted session on page entry. Validation failure
// is fatal for the session: the store is cleared and the redirect hook
// fires; there is no soft retry.
type Guard struct {
	store    *session.Store
	client   IdentityClient
	log      logging.Logger
	redirect func()

	mu      sync.Mutex
	gen     uint64
	state   State
	user    *models.UserSummary
	loading bool
}

// New builds a Guard. redirect is invoked whenever the guard decides the
// user must re-authenticate; it must replace navigation history so going
// back does not land on a protected page.
func New(store *session.Store, client IdentityClient, log logging.Logger, redirect func()) *Guard {
	if redirect == nil {
		redirect = func() {}
	}
	return &Guard{store: store, client: client, log: log, redirect: redirect}
}

// Ensure runs one mount's worth of the lifecycle. No dependent fetch may
// start until it returns nil; afterwards User() is non-nil and Loading()
// is false.
//
// A missing or partial stored session redirects without any network call.
// Any validation error (including transport failure) clears the store and
// redirects. A concurrent Ensure or Cancel supersedes this one; the stale
// result is discarded and ErrSuperseded returned.
func (g *Guard) Ensure(ctx context.Context) error {
	g.mu.Lock()
	g.gen++
	myGen := g.gen
	g.state = StateUnauthenticated
	g.user = nil
	g.loading = true
	g.mu.Unlock()

	stored, err := g.store.Read(ctx)
	if err != nil {
		// Partial state is treated as no session at all.
		_ = g.store.Clear(ctx)
		return g.toRedirecting(myGen, fmt.Errorf("%w: %v", ErrNotAuthenticated, err))
	}

	g.mu.Lock()
	if g.gen != myGen {
		g.mu.Unlock()
		return ErrSuperseded
	}
	g.state = StateValidating
	g.mu.Unlock()

	fresh, err := g.client.CurrentUser(ctx, stored.User.UserID, stored.User.Identifier())
	if err != nil {
		g.log.Warn(ctx, "session validation failed", "error", err)
		_ = g.store.Clear(ctx)
		return g.toRedirecting(myGen, fmt.Errorf("%w: %v", ErrNotAuthenticated, err))
	}

	g.mu.Lock()
	if g.gen != myGen {
		g.mu.Unlock()
		return ErrSuperseded
	}
	g.mu.Unlock()

	// Same token, refreshed user.
	if err := g.store.Persist(ctx, stored.Token, fresh); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.gen != myGen {
		return ErrSuperseded
	}
	g.state = StateReady
	g.user = fresh
	g.loading = false
	return nil
}

// toRedirecting transitions to Redirecting and fires the redirect hook,
// unless a newer generation already took over.
func (g *Guard) toRedirecting(myGen uint64, cause error) error {
	g.mu.Lock()
	if g.gen != myGen {
		g.mu.Unlock()
		return ErrSuperseded
	}
	g.state = StateRedirecting
	g.user = nil
	g.loading = false
	g.mu.Unlock()

	g.redirect()
	return cause
}

// Cancel invalidates any in-flight validation, e.g. when the owning page
// goes away before the request resolves. The stale result will be
// discarded rather than applied.
func (g *Guard) Cancel() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.gen++
	g.loading = false
}

// State returns the current lifecycle state.
func (g *Guard) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// User returns the validated identity, nil unless Ready.
func (g *Guard) User() *models.UserSummary {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.user
}

// Loading reports whether a validation is in flight. Pages gate their own
// loading effects on Loading() == false && User() != nil.
func (g *Guard) Loading() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.loading
}
