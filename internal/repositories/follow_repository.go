package repositories

import (
	"errors"

	"github.com/anonto42/mini-insta/backend/internal/models"
	"gorm.io/gorm"
)

// FollowRepository defines the interface for follow data operations
type FollowRepository interface {
	EnsureFollow(followerID, followeeID uint) error
	DeleteFollow(followerID, followeeID uint) error
	IsFollowing(followerID, followeeID uint) (bool, error)
	GetFollowers(profileID uint) ([]models.Profile, error)
	GetFollowing(profileID uint) ([]models.Profile, error)
	GetFollowersCount(profileID uint) (int64, error)
	GetFollowingCount(profileID uint) (int64, error)
	GetFollowingIDs(profileID uint) ([]uint, error)
}

// PostgresFollowRepository implements FollowRepository for PostgreSQL
type PostgresFollowRepository struct {
	db *gorm.DB
}

// NewPostgresFollowRepository creates a new PostgresFollowRepository
func NewPostgresFollowRepository(db *gorm.DB) *PostgresFollowRepository {
	return &PostgresFollowRepository{db: db}
}

// EnsureFollow creates the follow edge if absent. Calling it twice leaves
// a single row and no error; a self-follow is a silent no-op.
func (r *PostgresFollowRepository) EnsureFollow(followerID, followeeID uint) error {
	if followerID == followeeID {
		return nil
	}
	follow := models.Follow{FollowerID: followerID, FolloweeID: followeeID}
	err := r.db.Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		FirstOrCreate(&follow).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		// Lost a race against a concurrent identical follow; the edge exists.
		return nil
	}
	return err
}

// DeleteFollow removes the follow edge; removing an absent edge is a no-op
func (r *PostgresFollowRepository) DeleteFollow(followerID, followeeID uint) error {
	return r.db.Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.Follow{}).Error
}

// IsFollowing reports whether the follow edge exists
func (r *PostgresFollowRepository) IsFollowing(followerID, followeeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetFollowers retrieves the profiles following the given profile
func (r *PostgresFollowRepository) GetFollowers(profileID uint) ([]models.Profile, error) {
	var profiles []models.Profile
	err := r.db.Where("id IN (?)",
		r.db.Table("follows").Select("follower_id").Where("followee_id = ?", profileID),
	).Order("username asc").Find(&profiles).Error
	return profiles, err
}

// GetFollowing retrieves the profiles the given profile follows
func (r *PostgresFollowRepository) GetFollowing(profileID uint) ([]models.Profile, error) {
	var profiles []models.Profile
	err := r.db.Where("id IN (?)",
		r.db.Table("follows").Select("followee_id").Where("follower_id = ?", profileID),
	).Order("username asc").Find(&profiles).Error
	return profiles, err
}

// GetFollowersCount counts the profiles following the given profile
func (r *PostgresFollowRepository) GetFollowersCount(profileID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("followee_id = ?", profileID).Count(&count).Error
	return count, err
}

// GetFollowingCount counts the profiles the given profile follows
func (r *PostgresFollowRepository) GetFollowingCount(profileID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("follower_id = ?", profileID).Count(&count).Error
	return count, err
}

// GetFollowingIDs retrieves the IDs of the profiles the given profile follows
func (r *PostgresFollowRepository) GetFollowingIDs(profileID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Follow{}).Where("follower_id = ?", profileID).Pluck("followee_id", &ids).Error
	return ids, err
}
