package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/anonto42/mini-insta/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowSelfIsNoop(t *testing.T) {
	env := newTestEnv(t)
	h := NewFollowHandler(env.followRepo, env.profileRepo, env.feedCache)

	alice := env.createProfile(t, "alice")

	c, rec := env.newContext(http.MethodPost, "/api/v1/profiles/:id/follow", nil, alice)
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(int(alice.ID)))

	require.NoError(t, h.FollowProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var count int64
	env.db.Model(&models.Follow{}).Count(&count)
	assert.Zero(t, count, "self-follow must not create an edge")
}

func TestFollowUnknownTarget(t *testing.T) {
	env := newTestEnv(t)
	h := NewFollowHandler(env.followRepo, env.profileRepo, env.feedCache)

	alice := env.createProfile(t, "alice")

	c, _ := env.newContext(http.MethodPost, "/api/v1/profiles/:id/follow", nil, alice)
	c.SetParamNames("id")
	c.SetParamValues("9999")

	err := h.FollowProfile(c)
	requireHTTPError(t, err, http.StatusNotFound)
}

func TestFollowTwiceLeavesOneEdge(t *testing.T) {
	env := newTestEnv(t)
	h := NewFollowHandler(env.followRepo, env.profileRepo, env.feedCache)

	alice := env.createProfile(t, "alice")
	bob := env.createProfile(t, "bob")

	for i := 0; i < 2; i++ {
		c, rec := env.newContext(http.MethodPost, "/api/v1/profiles/:id/follow", nil, alice)
		c.SetParamNames("id")
		c.SetParamValues(strconv.Itoa(int(bob.ID)))
		require.NoError(t, h.FollowProfile(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	var count int64
	env.db.Model(&models.Follow{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestUnfollowInvalidatesCachedFeed(t *testing.T) {
	env := newTestEnv(t)
	followHandler := NewFollowHandler(env.followRepo, env.profileRepo, env.feedCache)
	feedHandler := NewFeedHandler(env.postRepo, env.profileRepo, env.followRepo, env.likeRepo, env.feedCache)

	alice := env.createProfile(t, "alice")
	bob := env.createProfile(t, "bob")
	env.createPost(t, bob.ID, "from bob", time.Now())
	require.NoError(t, env.followRepo.EnsureFollow(alice.ID, bob.ID))

	// Warm the cache
	c, _ := env.newContext(http.MethodGet, "/api/v1/feed", nil, alice)
	require.NoError(t, feedHandler.GetFeed(c))

	// Unfollow drops alice's cached pages
	c, _ = env.newContext(http.MethodDelete, "/api/v1/profiles/:id/follow", nil, alice)
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(int(bob.ID)))
	require.NoError(t, followHandler.UnfollowProfile(c))

	c, rec := env.newContext(http.MethodGet, "/api/v1/feed", nil, alice)
	require.NoError(t, feedHandler.GetFeed(c))

	var resp feedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data.Posts, "feed must rebuild without the unfollowed profile")
}

func TestGetFollowersAndFollowing(t *testing.T) {
	env := newTestEnv(t)
	h := NewFollowHandler(env.followRepo, env.profileRepo, env.feedCache)

	alice := env.createProfile(t, "alice")
	bob := env.createProfile(t, "bob")
	require.NoError(t, env.followRepo.EnsureFollow(bob.ID, alice.ID))

	c, rec := env.newContext(http.MethodGet, "/api/v1/profiles/:id/followers", nil, alice)
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(int(alice.ID)))
	require.NoError(t, h.GetFollowers(c))

	var followers []models.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &followers))
	require.Len(t, followers, 1)
	assert.Equal(t, "bob", followers[0].Username)

	c, rec = env.newContext(http.MethodGet, "/api/v1/profiles/:id/following", nil, alice)
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(int(bob.ID)))
	require.NoError(t, h.GetFollowing(c))

	var following []models.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &following))
	require.Len(t, following, 1)
	assert.Equal(t, "alice", following[0].Username)
}
