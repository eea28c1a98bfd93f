package repositories

import (
	"errors"
	"time"

	"github.com/anonto42/mini-insta/backend/internal/models"
	"gorm.io/gorm"
)

// ProfileRepository defines the interface for profile data operations
type ProfileRepository interface {
	CreateProfile(profile *models.Profile) error
	GetProfileByID(id uint) (*models.Profile, error)
	GetProfileByUsername(username string) (*models.Profile, error)
	GetProfiles() ([]models.Profile, error)
	UpdateProfile(id uint, req *models.UpdateProfileRequest) (*models.Profile, error)
	DeleteProfile(id uint) error
	SearchProfiles(query string) ([]models.Profile, error)
}

// PostgresProfileRepository implements ProfileRepository for PostgreSQL
type PostgresProfileRepository struct {
	db *gorm.DB
}

// NewPostgresProfileRepository creates a new PostgresProfileRepository
func NewPostgresProfileRepository(db *gorm.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

// CreateProfile inserts a new profile, stamping its join date. A Conflict
// error is returned when the username is already taken.
func (r *PostgresProfileRepository) CreateProfile(profile *models.Profile) error {
	if profile.Username == "" {
		return models.NewValidationError("username is required")
	}
	if profile.JoinDate.IsZero() {
		profile.JoinDate = time.Now()
	}
	if err := r.db.Create(profile).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("username already taken")
		}
		return err
	}
	return nil
}

// GetProfileByID retrieves a profile by ID
func (r *PostgresProfileRepository) GetProfileByID(id uint) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.First(&profile, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("profile", id)
		}
		return nil, err
	}
	return &profile, nil
}

// GetProfileByUsername retrieves a profile by its unique username
func (r *PostgresProfileRepository) GetProfileByUsername(username string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.Where("username = ?", username).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("profile", username)
		}
		return nil, err
	}
	return &profile, nil
}

// GetProfiles retrieves all profiles ordered by username
func (r *PostgresProfileRepository) GetProfiles() ([]models.Profile, error) {
	var profiles []models.Profile
	if err := r.db.Order("username asc").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

// UpdateProfile updates the mutable fields of a profile. Username and
// join date never change after creation.
func (r *PostgresProfileRepository) UpdateProfile(id uint, req *models.UpdateProfileRequest) (*models.Profile, error) {
	profile, err := r.GetProfileByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if req.DisplayName != "" {
		updates["display_name"] = req.DisplayName
	}
	if req.BioText != "" {
		updates["bio_text"] = req.BioText
	}
	if req.ProfileImageURL != "" {
		updates["profile_image_url"] = req.ProfileImageURL
	}
	if len(updates) == 0 {
		return profile, nil
	}

	if err := r.db.Model(profile).Updates(updates).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// DeleteProfile removes a profile and everything hanging off it: posts
// with their photos, comments and likes, the profile's own comments and
// likes, follow edges in both directions, and the credential. The whole
// cascade runs in one transaction.
func (r *PostgresProfileRepository) DeleteProfile(id uint) error {
	if _, err := r.GetProfileByID(id); err != nil {
		return err
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		var postIDs []uint
		if err := tx.Model(&models.Post{}).Where("profile_id = ?", id).Pluck("id", &postIDs).Error; err != nil {
			return err
		}

		if len(postIDs) > 0 {
			if err := tx.Where("post_id IN ?", postIDs).Delete(&models.Photo{}).Error; err != nil {
				return err
			}
			if err := tx.Where("post_id IN ?", postIDs).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("post_id IN ?", postIDs).Delete(&models.Like{}).Error; err != nil {
				return err
			}
			if err := tx.Where("profile_id = ?", id).Delete(&models.Post{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("profile_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("profile_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("follower_id = ? OR followee_id = ?", id, id).Delete(&models.Follow{}).Error; err != nil {
			return err
		}
		if err := tx.Where("profile_id = ?", id).Delete(&models.Credential{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Profile{}, id).Error
	})
}

// SearchProfiles searches profiles by username, display name or bio
// (case-insensitive substring, OR-combined), ordered by username. An
// empty query matches nothing.
func (r *PostgresProfileRepository) SearchProfiles(query string) ([]models.Profile, error) {
	if query == "" {
		return []models.Profile{}, nil
	}
	var profiles []models.Profile
	pattern := "%" + query + "%"
	err := r.db.
		Where("LOWER(username) LIKE LOWER(?) OR LOWER(display_name) LIKE LOWER(?) OR LOWER(bio_text) LIKE LOWER(?)",
			pattern, pattern, pattern).
		Order("username asc").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}
