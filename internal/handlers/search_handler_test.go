package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/anonto42/mini-insta/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type searchResponse struct {
	Query    string           `json:"query"`
	Profiles []models.Profile `json:"profiles"`
	Posts    []models.Post    `json:"posts"`
}

func TestSearchEmptyQueryReturnsNothing(t *testing.T) {
	env := newTestEnv(t)
	h := NewSearchHandler(env.profileRepo, env.postRepo)

	alice := env.createProfile(t, "alice")
	env.createPost(t, alice.ID, "a post", time.Now())

	c, rec := env.newContext(http.MethodGet, "/api/v1/search", nil, alice)
	require.NoError(t, h.Search(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp searchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Profiles, "empty query must not return the profile table")
	assert.Empty(t, resp.Posts, "empty query must not return the post table")
}

func TestSearchMatchesPostsAndProfiles(t *testing.T) {
	env := newTestEnv(t)
	h := NewSearchHandler(env.profileRepo, env.postRepo)

	niko := &models.Profile{Username: "niko", DisplayName: "Niko", BioText: "Tesla enthusiast"}
	require.NoError(t, env.profileRepo.CreateProfile(niko))
	bob := env.createProfile(t, "bob")
	env.createPost(t, bob.ID, "I met Tesla yesterday", time.Now())
	env.createPost(t, bob.ID, "unrelated", time.Now())

	c, rec := env.newContext(http.MethodGet, "/api/v1/search?q=tesla", nil, bob)
	require.NoError(t, h.Search(c))

	var resp searchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Profiles, 1)
	assert.Equal(t, "niko", resp.Profiles[0].Username)
	require.Len(t, resp.Posts, 1)
	assert.Equal(t, "I met Tesla yesterday", resp.Posts[0].Caption)
}
