package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/anonto42/mini-insta/backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory SQLite database migrated with the
// full schema. TranslateError gives the same gorm.ErrDuplicatedKey
// behavior the Postgres driver has in production.
func newTestDB(t *testing.T) *gorm.DB {
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
	return db
}

func createTestProfile(t *testing.T, db *gorm.DB, username string) *models.Profile {
	t.Helper()
	repo := NewPostgresProfileRepository(db)
	profile := &models.Profile{
		Username:    username,
		DisplayName: "The " + username,
		BioText:     "bio of " + username,
	}
	require.NoError(t, repo.CreateProfile(profile))
	return profile
}

func createTestPost(t *testing.T, db *gorm.DB, profileID uint, caption string, ts time.Time) *models.Post {
	t.Helper()
	repo := NewPostgresPostRepository(db)
	post := &models.Post{ProfileID: profileID, Caption: caption, Timestamp: ts}
	require.NoError(t, repo.CreatePostWithPhotos(post, nil))
	return post
}
