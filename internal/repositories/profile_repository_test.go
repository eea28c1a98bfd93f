package repositories

import (
	"testing"
	"time"

	"github.com/anonto42/mini-insta/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProfileDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresProfileRepository(db)

	first := createTestProfile(t, db, "alice")

	err := repo.CreateProfile(&models.Profile{Username: "alice", DisplayName: "Impostor"})
	require.Error(t, err)
	assert.True(t, models.IsConflict(err))

	// The original row is unaffected
	got, err := repo.GetProfileByID(first.ID)
	require.NoError(t, err)
	assert.Equal(t, "The alice", got.DisplayName)

	var count int64
	db.Model(&models.Profile{}).Where("username = ?", "alice").Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestCreateProfileEmptyUsername(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresProfileRepository(db)

	err := repo.CreateProfile(&models.Profile{DisplayName: "No Name"})
	require.Error(t, err)
	assert.Equal(t, models.CodeValidation, models.ErrCode(err))
}

func TestGetProfileNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresProfileRepository(db)

	_, err := repo.GetProfileByID(12345)
	require.Error(t, err)
	assert.True(t, models.IsNotFound(err))

	_, err = repo.GetProfileByUsername("nobody")
	require.Error(t, err)
	assert.True(t, models.IsNotFound(err))
}

func TestUpdateProfileKeepsUsernameAndJoinDate(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresProfileRepository(db)

	profile := createTestProfile(t, db, "carol")
	joined := profile.JoinDate

	updated, err := repo.UpdateProfile(profile.ID, &models.UpdateProfileRequest{
		DisplayName: "Carol Prime",
		BioText:     "new bio",
	})
	require.NoError(t, err)
	assert.Equal(t, "Carol Prime", updated.DisplayName)

	got, err := repo.GetProfileByID(profile.ID)
	require.NoError(t, err)
	assert.Equal(t, "carol", got.Username)
	assert.WithinDuration(t, joined, got.JoinDate, time.Second)
	assert.Equal(t, "new bio", got.BioText)
}

func TestSearchProfiles(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresProfileRepository(db)

	tesla := &models.Profile{Username: "niko", DisplayName: "Niko", BioText: "I worked with Tesla on AC motors"}
	require.NoError(t, repo.CreateProfile(tesla))
	createTestProfile(t, db, "bob")
	zeta := &models.Profile{Username: "ztesla_fan", DisplayName: "Fan", BioText: "nothing here"}
	require.NoError(t, repo.CreateProfile(zeta))

	// Empty query returns nothing, never the full table
	results, err := repo.SearchProfiles("")
	require.NoError(t, err)
	assert.Empty(t, results)

	// Case-insensitive substring, OR-combined across fields, username ascending
	results, err = repo.SearchProfiles("tesla")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "niko", results[0].Username)
	assert.Equal(t, "ztesla_fan", results[1].Username)
}

func TestDeleteProfileCascades(t *testing.T) {
	db := newTestDB(t)
	profileRepo := NewPostgresProfileRepository(db)
	postRepo := NewPostgresPostRepository(db)
	followRepo := NewPostgresFollowRepository(db)
	likeRepo := NewPostgresLikeRepository(db)
	commentRepo := NewPostgresCommentRepository(db)
	credRepo := NewPostgresCredentialRepository(db)

	alice := createTestProfile(t, db, "alice")
	bob := createTestProfile(t, db, "bob")

	require.NoError(t, credRepo.CreateCredential(&models.Credential{
		ProfileID: alice.ID, Email: "alice@example.com", PasswordHash: "x",
	}))

	// Alice's post with a photo; Bob comments on and likes it
	post := &models.Post{ProfileID: alice.ID, Caption: "mine"}
	require.NoError(t, postRepo.CreatePostWithPhotos(post, []models.Photo{
		{SourceType: models.PhotoSourceURL, SourceRef: "https://img.example.com/1.jpg"},
	}))
	require.NoError(t, commentRepo.CreateComment(&models.Comment{PostID: post.ID, ProfileID: bob.ID, Text: "nice"}))
	require.NoError(t, likeRepo.EnsureLike(bob.ID, post.ID))

	// Bob's post: Alice comments and likes
	bobPost := createTestPost(t, db, bob.ID, "bob's", time.Now())
	require.NoError(t, commentRepo.CreateComment(&models.Comment{PostID: bobPost.ID, ProfileID: alice.ID, Text: "cool"}))
	require.NoError(t, likeRepo.EnsureLike(alice.ID, bobPost.ID))

	// Follow edges in both directions
	require.NoError(t, followRepo.EnsureFollow(alice.ID, bob.ID))
	require.NoError(t, followRepo.EnsureFollow(bob.ID, alice.ID))

	require.NoError(t, profileRepo.DeleteProfile(alice.ID))

	_, err := profileRepo.GetProfileByID(alice.ID)
	assert.True(t, models.IsNotFound(err))

	var count int64
	db.Model(&models.Post{}).Where("profile_id = ?", alice.ID).Count(&count)
	assert.Zero(t, count, "posts should cascade")
	db.Model(&models.Photo{}).Count(&count)
	assert.Zero(t, count, "photos should cascade via posts")
	db.Model(&models.Comment{}).Where("profile_id = ? OR post_id = ?", alice.ID, post.ID).Count(&count)
	assert.Zero(t, count, "comments by and on alice should cascade")
	db.Model(&models.Like{}).Where("profile_id = ? OR post_id = ?", alice.ID, post.ID).Count(&count)
	assert.Zero(t, count, "likes by and on alice should cascade")
	db.Model(&models.Follow{}).Where("follower_id = ? OR followee_id = ?", alice.ID, alice.ID).Count(&count)
	assert.Zero(t, count, "follow edges in both directions should cascade")
	db.Model(&models.Credential{}).Where("profile_id = ?", alice.ID).Count(&count)
	assert.Zero(t, count, "credential should cascade")

	// Bob's own data survives
	_, err = profileRepo.GetProfileByID(bob.ID)
	assert.NoError(t, err)
	db.Model(&models.Post{}).Where("profile_id = ?", bob.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}
