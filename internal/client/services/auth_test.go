package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamup-uiuc/teamup-cli/internal/client/api"
	"github.com/teamup-uiuc/teamup-cli/internal/client/models"
	"github.com/teamup-uiuc/teamup-cli/internal/client/session"
	"github.com/teamup-uiuc/teamup-cli/internal/logging"
)

type fakeAuthAPI struct {
	resp      *models.AuthResponse
	err       error
	logoutErr error
}

func (f *fakeAuthAPI) Register(ctx context.Context, p api.RegisterPayload) (*models.AuthResponse, error) {
	return f.resp, f.err
}

func (f *fakeAuthAPI) Login(ctx context.Context, p api.LoginPayload) (*models.AuthResponse, error) {
	return f.resp, f.err
}

func (f *fakeAuthAPI) Logout(ctx context.Context) error {
	return f.logoutErr
}

func newService(t *testing.T, fake *fakeAuthAPI) (AuthService, *session.Store) {
	t.Helper()
	store := session.NewStore(session.NewMemoryRepository())
	log := logging.NewSlogLogger(slog.New(slog.DiscardHandler))
	return NewAuthService(fake, store, log), store
}

func TestLogin_PersistsSession(t *testing.T) {
	user := &models.UserSummary{UserID: 1, DisplayName: "Avery", Email: "a@illinois.edu"}
	svc, store := newService(t, &fakeAuthAPI{resp: &models.AuthResponse{Token: "abc", User: user}})

	got, err := svc.Login(context.Background(), "a@illinois.edu", "pw")
	require.NoError(t, err)
	assert.Equal(t, user, got)

	sess, err := store.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc", sess.Token)
	assert.Equal(t, int64(1), sess.User.UserID)
}

func TestLogin_Failure_NoSessionPersisted(t *testing.T) {
	svc, store := newService(t, &fakeAuthAPI{err: errors.New("bad credentials")})

	_, err := svc.Login(context.Background(), "a@illinois.edu", "pw")
	require.Error(t, err)

	_, readErr := store.Read(context.Background())
	assert.ErrorIs(t, readErr, session.ErrNoSession)
}

func TestRegister_PersistsSession(t *testing.T) {
	user := &models.UserSummary{UserID: 2, DisplayName: "New", Email: "n@illinois.edu"}
	svc, store := newService(t, &fakeAuthAPI{resp: &models.AuthResponse{Token: "tok", User: user}})

	got, err := svc.Register(context.Background(), api.RegisterPayload{
		DisplayName: "New", Email: "n@illinois.edu", NetID: "new1", Password: "pw",
	})
	require.NoError(t, err)
	assert.Equal(t, user, got)

	sess, err := store.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok", sess.Token)
}

func TestLogout_ServerFailure_StillClearsSession(t *testing.T) {
	user := &models.UserSummary{UserID: 1}
	svc, store := newService(t, &fakeAuthAPI{
		resp:      &models.AuthResponse{Token: "abc", User: user},
		logoutErr: errors.New("network down"),
	})

	_, err := svc.Login(context.Background(), "a@illinois.edu", "pw")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background()))

	_, readErr := store.Read(context.Background())
	assert.ErrorIs(t, readErr, session.ErrNoSession)
}

func TestSession_ReadsStore(t *testing.T) {
	svc, store := newService(t, &fakeAuthAPI{})

	_, err := svc.Session(context.Background())
	assert.ErrorIs(t, err, session.ErrNoSession)

	require.NoError(t, store.Persist(context.Background(), "abc", &models.UserSummary{UserID: 1}))
	sess, err := svc.Session(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc", sess.Token)
}
