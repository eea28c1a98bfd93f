package handlers

import (
	"fmt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/anonto42/mini-insta/backend/internal/cache"
	"github.com/anonto42/mini-insta/backend/internal/models"
	"github.com/anonto42/mini-insta/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv wires a full handler stack over in-memory SQLite and miniredis
type testEnv struct {
	db          *gorm.DB
	echo        *echo.Echo
	feedCache   *cache.Cache
	profileRepo repositories.ProfileRepository
	credRepo    repositories.CredentialRepository
	postRepo    repositories.PostRepository
	followRepo  repositories.FollowRepository
	likeRepo    repositories.LikeRepository
	commentRepo repositories.CommentRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Profile{},
		&models.Credential{},
		&models.Post{},
		&models.Photo{},
		&models.Follow{},
		&models.Like{},
		&models.Comment{},
	))
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	mr := miniredis.RunT(t)
	feedCache := cache.NewWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	return &testEnv{
		db:          db,
		echo:        echo.New(),
		feedCache:   feedCache,
		profileRepo: repositories.NewPostgresProfileRepository(db),
		credRepo:    repositories.NewPostgresCredentialRepository(db),
		postRepo:    repositories.NewPostgresPostRepository(db),
		followRepo:  repositories.NewPostgresFollowRepository(db),
		likeRepo:    repositories.NewPostgresLikeRepository(db),
		commentRepo: repositories.NewPostgresCommentRepository(db),
	}
}

func (env *testEnv) createProfile(t *testing.T, username string) *models.Profile {
	t.Helper()
	profile := &models.Profile{Username: username, DisplayName: "The " + username}
	require.NoError(t, env.profileRepo.CreateProfile(profile))
	return profile
}

func (env *testEnv) createPost(t *testing.T, profileID uint, caption string, ts time.Time) *models.Post {
	t.Helper()
	post := &models.Post{ProfileID: profileID, Caption: caption, Timestamp: ts}
	require.NoError(t, env.postRepo.CreatePostWithPhotos(post, nil))
	return post
}

// newContext builds an echo context, optionally authenticated as profile
func (env *testEnv) newContext(method, target string, body io.Reader, as *models.Profile) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.echo.NewContext(req, rec)
	if as != nil {
		c.Set("user", &models.JwtCustomClaims{ProfileID: as.ID, Username: as.Username})
	}
	return c, rec
}

func requireHTTPError(t *testing.T, err error, wantStatus int) {
	t.Helper()
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %T", err)
	require.Equal(t, wantStatus, he.Code)
}
