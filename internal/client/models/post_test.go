package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostUnmarshal_AuthorIDCanonical(t *testing.T) {
	var p Post
	require.NoError(t, json.Unmarshal([]byte(`{"post_id":1,"author_id":7}`), &p))
	assert.Equal(t, int64(7), p.AuthorID)
}

func TestPostUnmarshal_UserIDFallback(t *testing.T) {
	var p Post
	require.NoError(t, json.Unmarshal([]byte(`{"post_id":1,"user_id":9}`), &p))
	assert.Equal(t, int64(9), p.AuthorID)
}

func TestPostUnmarshal_AuthorIDWinsOverUserID(t *testing.T) {
	var p Post
	require.NoError(t, json.Unmarshal([]byte(`{"post_id":1,"author_id":7,"user_id":9}`), &p))
	assert.Equal(t, int64(7), p.AuthorID)
}

func TestUserSummary_Identifier(t *testing.T) {
	u := &UserSummary{Email: "a@illinois.edu", NetID: "abc12"}
	assert.Equal(t, "a@illinois.edu", u.Identifier())

	u = &UserSummary{NetID: "abc12"}
	assert.Equal(t, "abc12", u.Identifier())
}
