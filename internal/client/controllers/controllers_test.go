package controllers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamup-uiuc/teamup-cli/internal/client/api"
	"github.com/teamup-uiuc/teamup-cli/internal/client/models"
	"github.com/teamup-uiuc/teamup-cli/internal/client/session"
	"github.com/teamup-uiuc/teamup-cli/internal/logging"
)

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.DiscardHandler))
}

func newAPIClient(t *testing.T, handler http.Handler) *api.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	store := session.NewStore(session.NewMemoryRepository())
	return api.NewClient(srv.URL, 2*time.Second, store, discardLogger())
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func writeJSONRaw(w http.ResponseWriter, v any) {
	_ = json.NewEncoder(w).Encode(v)
}

func TestEntry_LoadSuccess(t *testing.T) {
	c := newAPIClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/posts/popular":
			writeJSON(t, w, []models.Post{{PostID: 1, Title: "Looking for teammates"}})
		case "/api/terms":
			writeJSON(t, w, []models.Term{{TermID: "2024-fall", Name: "Fall 2024"}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	e := NewEntry(c, discardLogger())
	e.Load(context.Background(), "")

	assert.Empty(t, e.Err())
	require.Len(t, e.Posts(), 1)
	require.Len(t, e.Terms(), 1)
	assert.False(t, e.Loading())
}

func TestEntry_LoadFailure_SurfacesInlineError(t *testing.T) {
	c := newAPIClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	e := NewEntry(c, discardLogger())
	e.Load(context.Background(), "")

	assert.NotEmpty(t, e.Err())
	assert.Empty(t, e.Posts())
}

func TestEntry_TermsFailure_DegradesToEmpty(t *testing.T) {
	c := newAPIClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/posts/popular" {
			writeJSON(t, w, []models.Post{{PostID: 1}})
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))

	e := NewEntry(c, discardLogger())
	e.Load(context.Background(), "")

	assert.Empty(t, e.Err())
	assert.Len(t, e.Posts(), 1)
	assert.Empty(t, e.Terms())
}

func TestPost_LoadCommentsFailure_DegradesToEmpty(t *testing.T) {
	c := newAPIClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/posts/7" {
			writeJSON(t, w, models.Post{PostID: 7, Title: "t", AuthorID: 2})
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))

	p := NewPost(c, discardLogger(), &models.UserSummary{UserID: 1})
	p.Load(context.Background(), 7)

	require.NotNil(t, p.Current())
	assert.Empty(t, p.Err())
	assert.Empty(t, p.Comments())
}

func TestPost_SendJoinRequest_Validation(t *testing.T) {
	called := false
	c := newAPIClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/posts/7" {
			writeJSON(t, w, models.Post{PostID: 7, AuthorID: 1})
			return
		}
		if r.Method != http.MethodGet {
			called = true
		}
	}))

	// The signed-in user authored post 7.
	p := NewPost(c, discardLogger(), &models.UserSummary{UserID: 1})
	p.Load(context.Background(), 7)

	err := p.SendJoinRequest(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)

	err = p.SendJoinRequest(context.Background(), "let me in")
	assert.ErrorIs(t, err, ErrOwnPost)

	assert.False(t, called, "validation failures must not reach the network")
}

func TestPost_SendJoinRequest_NotSignedIn(t *testing.T) {
	mutated := false
	c := newAPIClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/posts/7" {
			writeJSON(t, w, models.Post{PostID: 7, AuthorID: 2})
			return
		}
		if r.Method != http.MethodGet {
			mutated = true
		}
	}))

	p := NewPost(c, discardLogger(), nil)
	p.Load(context.Background(), 7)

	err := p.SendJoinRequest(context.Background(), "let me in")
	assert.ErrorIs(t, err, ErrNotSignedIn)
	assert.False(t, mutated, "no mutation expected")
}

func TestPost_SendJoinRequest_Success(t *testing.T) {
	// Decode with the backend's own field names: the sender must arrive as
	// from_user_id, or the server attributes the request to a default user.
	var created struct {
		PostID     int64  `json:"post_id"`
		FromUserID *int64 `json:"from_user_id"`
		Message    string `json:"message"`
	}
	c := newAPIClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/posts/7":
			writeJSON(t, w, models.Post{PostID: 7, AuthorID: 2})
		case r.URL.Path == "/api/requests" && r.Method == http.MethodPost:
			require.NoError(t, json.NewDecoder(r.Body).Decode(&created))
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	p := NewPost(c, discardLogger(), &models.UserSummary{UserID: 1})
	p.Load(context.Background(), 7)

	require.NoError(t, p.SendJoinRequest(context.Background(), "let me in"))
	assert.True(t, p.RequestSent())
	assert.Equal(t, int64(7), created.PostID)
	require.NotNil(t, created.FromUserID)
	assert.Equal(t, int64(1), *created.FromUserID)
	assert.Equal(t, "let me in", created.Message)
}

func TestPost_AddComment_EmptyContent_NoNetworkCall(t *testing.T) {
	mutated := false
	c := newAPIClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			mutated = true
		}
		if r.URL.Path == "/api/posts/7" {
			writeJSON(t, w, models.Post{PostID: 7, AuthorID: 2})
			return
		}
		writeJSON(t, w, []models.Comment{})
	}))

	p := NewPost(c, discardLogger(), &models.UserSummary{UserID: 1})
	p.Load(context.Background(), 7)

	err := p.AddComment(context.Background(), "   \n")
	assert.ErrorIs(t, err, ErrEmptyComment)
	assert.NotEmpty(t, p.CommentErr())
	assert.False(t, mutated)
}

func TestPost_AddComment_SuccessResyncs(t *testing.T) {
	comments := []models.Comment{}
	c := newAPIClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/posts/7" && r.Method == http.MethodGet:
			writeJSON(t, w, models.Post{PostID: 7, AuthorID: 2})
		case r.URL.Path == "/api/posts/7/comments" && r.Method == http.MethodPost:
			var cc models.CommentCreate
			require.NoError(t, json.NewDecoder(r.Body).Decode(&cc))
			comments = append(comments, models.Comment{CommentID: 1, PostID: 7, UserID: cc.UserID, Content: cc.Content})
			writeJSON(t, w, comments[0])
		case r.URL.Path == "/api/posts/7/comments":
			writeJSON(t, w, comments)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	p := NewPost(c, discardLogger(), &models.UserSummary{UserID: 1})
	p.Load(context.Background(), 7)

	require.NoError(t, p.AddComment(context.Background(), "nice idea"))
	require.Len(t, p.Comments(), 1)
	assert.Equal(t, "nice idea", p.Comments()[0].Content)
	assert.Empty(t, p.CommentErr())
}

func TestPost_EditPost_NotAuthor(t *testing.T) {
	c := newAPIClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Fatal("no mutation expected")
		}
		writeJSON(t, w, models.Post{PostID: 7, AuthorID: 2})
	}))

	p := NewPost(c, discardLogger(), &models.UserSummary{UserID: 1})
	p.Load(context.Background(), 7)

	title := "new"
	err := p.EditPost(context.Background(), models.PostUpdate{Title: &title})
	assert.ErrorIs(t, err, ErrNotPostAuthor)
}

func TestPost_DeleteComment_NotOwner(t *testing.T) {
	c := newAPIClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/posts/7" && r.Method == http.MethodGet:
			writeJSON(t, w, models.Post{PostID: 7, AuthorID: 2})
		case r.URL.Path == "/api/posts/7/comments" && r.Method == http.MethodGet:
			writeJSON(t, w, []models.Comment{{CommentID: 5, PostID: 7, UserID: 2, Content: "hi"}})
		default:
			t.Error("no mutation expected")
		}
	}))

	p := NewPost(c, discardLogger(), &models.UserSummary{UserID: 1})
	p.Load(context.Background(), 7)

	err := p.DeleteComment(context.Background(), 5)
	assert.ErrorIs(t, err, ErrNotCommentOwner)
}

func TestPost_DeletePost_AuthorScoped(t *testing.T) {
	deleted := false
	c := newAPIClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/posts/7" && r.Method == http.MethodGet:
			writeJSON(t, w, models.Post{PostID: 7, AuthorID: 1})
		case r.URL.Path == "/api/posts/7" && r.Method == http.MethodDelete:
			deleted = true
			assert.Equal(t, "1", r.URL.Query().Get("user_id"))
			w.WriteHeader(http.StatusOK)
		case r.URL.Path == "/api/posts/7/comments":
			writeJSON(t, w, []models.Comment{})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	p := NewPost(c, discardLogger(), &models.UserSummary{UserID: 1})
	p.Load(context.Background(), 7)

	require.NoError(t, p.DeletePost(context.Background()))
	assert.True(t, deleted)
	assert.Nil(t, p.Current())
}

func TestProfile_LoadFailure_UsesFallback(t *testing.T) {
	c := newAPIClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	user := &models.UserSummary{UserID: 1, DisplayName: "Avery"}
	p := NewProfile(c, nil, discardLogger(), user)
	p.Load(context.Background())

	require.NotNil(t, p.Bundle())
	assert.Equal(t, "Avery", p.Bundle().Profile.Name)
	assert.NotEmpty(t, p.Err())
}

func TestMessages_LoadFailure_SilentEmptyFeed(t *testing.T) {
	c := newAPIClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	m := NewMessages(c, discardLogger(), &models.UserSummary{UserID: 1})
	m.Load(context.Background())
	assert.Empty(t, m.Activity())
}

func TestTeams_LoadAndSelect(t *testing.T) {
	c := newAPIClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/users/1/teams":
			writeJSON(t, w, []models.Team{{TeamID: 4, TeamName: "Atlas"}})
		case "/api/teams/4":
			writeJSON(t, w, models.Team{TeamID: 4, TeamName: "Atlas", Members: []models.TeamMember{{UserID: 1}}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	tc := NewTeams(c, discardLogger(), &models.UserSummary{UserID: 1})
	tc.Load(context.Background())
	require.Len(t, tc.Teams(), 1)

	require.NoError(t, tc.Select(context.Background(), 4))
	require.NotNil(t, tc.Selected())
	assert.Len(t, tc.Selected().Members, 1)
}
