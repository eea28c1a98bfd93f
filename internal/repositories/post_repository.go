package repositories

import (
	"errors"
	"time"

	"github.com/anonto42/mini-insta/backend/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post and photo data operations
type PostRepository interface {
	CreatePostWithPhotos(post *models.Post, photos []models.Photo) error
	GetPostByID(id uint) (*models.Post, error)
	GetPostsByProfileID(profileID uint) ([]models.Post, error)
	GetPhotosByPostID(postID uint) ([]models.Photo, error)
	GetFeedPosts(followingIDs []uint, skip, limit int) ([]models.Post, error)
	CountFeedPosts(followingIDs []uint) (int64, error)
	UpdatePostCaption(id uint, caption string) (*models.Post, error)
	DeletePost(id uint) error
	SearchPosts(query string) ([]models.Post, error)
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// CreatePostWithPhotos inserts a post and all of its photos in a single
// transaction; a failure on any photo rolls the post back too. Photo
// timestamps increase monotonically so insertion order is recoverable.
func (r *PostgresPostRepository) CreatePostWithPhotos(post *models.Post, photos []models.Photo) error {
	if post.Timestamp.IsZero() {
		post.Timestamp = time.Now()
	}

	for i := range photos {
		if photos[i].SourceRef == "" {
			return models.NewValidationError("photo source must not be empty")
		}
		photos[i].Timestamp = post.Timestamp.Add(time.Duration(i) * time.Millisecond)
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		for i := range photos {
			photos[i].PostID = post.ID
			if err := tx.Create(&photos[i]).Error; err != nil {
				return err
			}
		}
		post.Photos = photos
		return nil
	})
}

// GetPostByID retrieves a post by ID
func (r *PostgresPostRepository) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("post", id)
		}
		return nil, err
	}
	return &post, nil
}

// GetPostsByProfileID retrieves a profile's posts, newest first
func (r *PostgresPostRepository) GetPostsByProfileID(profileID uint) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Where("profile_id = ?", profileID).Order("timestamp desc").Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPhotosByPostID retrieves a post's photos in insertion order
func (r *PostgresPostRepository) GetPhotosByPostID(postID uint) ([]models.Photo, error) {
	var photos []models.Photo
	err := r.db.Where("post_id = ?", postID).Order("timestamp asc").Find(&photos).Error
	if err != nil {
		return nil, err
	}
	return photos, nil
}

// GetFeedPosts retrieves posts authored by the given profiles, newest
// first. The caller supplies the followed IDs only, so a profile's own
// posts never appear in its feed.
func (r *PostgresPostRepository) GetFeedPosts(followingIDs []uint, skip, limit int) ([]models.Post, error) {
	if len(followingIDs) == 0 {
		return []models.Post{}, nil
	}
	var posts []models.Post
	err := r.db.Where("profile_id IN ?", followingIDs).
		Order("timestamp desc").
		Offset(skip).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// CountFeedPosts counts the posts a feed over the given profiles would contain
func (r *PostgresPostRepository) CountFeedPosts(followingIDs []uint) (int64, error) {
	if len(followingIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.Model(&models.Post{}).Where("profile_id IN ?", followingIDs).Count(&count).Error
	return count, err
}

// UpdatePostCaption updates a post's caption
func (r *PostgresPostRepository) UpdatePostCaption(id uint, caption string) (*models.Post, error) {
	post, err := r.GetPostByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Model(post).Update("caption", caption).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes a post together with its photos, comments and likes
// in a single transaction.
func (r *PostgresPostRepository) DeletePost(id uint) error {
	if _, err := r.GetPostByID(id); err != nil {
		return err
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Photo{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
}

// SearchPosts searches post captions (case-insensitive substring),
// newest first. An empty query matches nothing.
func (r *PostgresPostRepository) SearchPosts(query string) ([]models.Post, error) {
	if query == "" {
		return []models.Post{}, nil
	}
	var posts []models.Post
	err := r.db.Where("LOWER(caption) LIKE LOWER(?)", "%"+query+"%").
		Order("timestamp desc").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}
