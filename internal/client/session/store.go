package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/teamup-uiuc/teamup-cli/internal/client/models"
)

const (
	keyToken = "token"
	keyUser  = "user"
)

// ErrNoSession is returned by Read when no complete session is stored.
// Partial state (token without user, or vice versa) also reads as absent.
var ErrNoSession = errors.New("no stored session")

// Store is the typed persisted-session interface over a Repository.
//
// Contract:
//   - Persist writes the token first, then the serialized user, so a
//     crash mid-write leaves token-only state that Read treats as absent.
//   - Read returns ErrNoSession when either key is missing or the user
//     value fails to parse; it never panics.
//   - Clear removes both keys unconditionally and is idempotent.
type Store struct {
	repo Repository
}

func NewStore(repo Repository) *Store {
	return &Store{repo: repo}
}

func (s *Store) Persist(ctx context.Context, token string, user *models.UserSummary) error {
	if token == "" || user == nil {
		return fmt.Errorf("refusing to persist partial session")
	}

	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to serialize user: %w", err)
	}

	// Token first: a user record without a token is never read back as a
	// session, but the reverse order could leave a stale user paired with
	// a fresh token.
	if err := s.repo.Set(ctx, keyToken, []byte(token)); err != nil {
		return err
	}
	return s.repo.Set(ctx, keyUser, data)
}

func (s *Store) Read(ctx context.Context) (*models.Session, error) {
	token, err := s.repo.Get(ctx, keyToken)
	if err != nil {
		return nil, err
	}
	userData, err := s.repo.Get(ctx, keyUser)
	if err != nil {
		return nil, err
	}
	if len(token) == 0 || len(userData) == 0 {
		return nil, ErrNoSession
	}

	var user models.UserSummary
	if err := json.Unmarshal(userData, &user); err != nil {
		// Unparseable cached user counts as no session, not a failure.
		return nil, ErrNoSession
	}

	return &models.Session{Token: string(token), User: &user}, nil
}

// Token returns the stored bearer token, or "" when no complete session
// exists. Used by the request layer to attach Authorization headers.
func (s *Store) Token(ctx context.Context) string {
	sess, err := s.Read(ctx)
	if err != nil {
		return ""
	}
	return sess.Token
}

// Clear wipes the whole session table; the store owns it outright, so
// there is nothing to preserve key by key.
func (s *Store) Clear(ctx context.Context) error {
	return s.repo.Clear(ctx)
}
