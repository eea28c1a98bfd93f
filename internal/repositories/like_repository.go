package repositories

import (
	"errors"

	"github.com/anonto42/mini-insta/backend/internal/models"
	"gorm.io/gorm"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	EnsureLike(profileID, postID uint) error
	DeleteLike(profileID, postID uint) error
	GetLikesByPostID(postID uint) ([]models.Like, error)
	GetLikesCountByPostID(postID uint) (int64, error)
	HasProfileLikedPost(profileID, postID uint) (bool, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// EnsureLike creates the like if absent. Liking twice leaves a single row
// and no error; a profile liking its own post is a silent no-op.
func (r *PostgresLikeRepository) EnsureLike(profileID, postID uint) error {
	var post models.Post
	if err := r.db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("post", postID)
		}
		return err
	}
	if post.ProfileID == profileID {
		return nil
	}

	like := models.Like{ProfileID: profileID, PostID: postID}
	err := r.db.Where("profile_id = ? AND post_id = ?", profileID, postID).
		FirstOrCreate(&like).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		// Lost a race against a concurrent identical like; the row exists.
		return nil
	}
	return err
}

// DeleteLike removes the like; removing an absent like is a no-op
func (r *PostgresLikeRepository) DeleteLike(profileID, postID uint) error {
	return r.db.Where("profile_id = ? AND post_id = ?", profileID, postID).
		Delete(&models.Like{}).Error
}

// GetLikesByPostID retrieves all likes for a post
func (r *PostgresLikeRepository) GetLikesByPostID(postID uint) ([]models.Like, error) {
	var likes []models.Like
	if err := r.db.Where("post_id = ?", postID).Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}

// GetLikesCountByPostID counts the likes on a post
func (r *PostgresLikeRepository) GetLikesCountByPostID(postID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

// HasProfileLikedPost reports whether the profile has liked the post
func (r *PostgresLikeRepository) HasProfileLikedPost(profileID, postID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Like{}).
		Where("profile_id = ? AND post_id = ?", profileID, postID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
