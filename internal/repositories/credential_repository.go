package repositories

import (
	"errors"

	"github.com/anonto42/mini-insta/backend/internal/models"
	"gorm.io/gorm"
)

// CredentialRepository defines the interface for credential data operations
type CredentialRepository interface {
	CreateCredential(cred *models.Credential) error
	GetCredentialByEmail(email string) (*models.Credential, error)
	GetCredentialByProfileID(profileID uint) (*models.Credential, error)
}

// PostgresCredentialRepository implements CredentialRepository for PostgreSQL
type PostgresCredentialRepository struct {
	db *gorm.DB
}

// NewPostgresCredentialRepository creates a new PostgresCredentialRepository
func NewPostgresCredentialRepository(db *gorm.DB) *PostgresCredentialRepository {
	return &PostgresCredentialRepository{db: db}
}

// CreateCredential inserts a credential; Conflict when the email or the
// profile already has one.
func (r *PostgresCredentialRepository) CreateCredential(cred *models.Credential) error {
	if err := r.db.Create(cred).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("credential already registered")
		}
		return err
	}
	return nil
}

// GetCredentialByEmail retrieves a credential by email
func (r *PostgresCredentialRepository) GetCredentialByEmail(email string) (*models.Credential, error) {
	var cred models.Credential
	if err := r.db.Where("email = ?", email).First(&cred).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("credential", email)
		}
		return nil, err
	}
	return &cred, nil
}

// GetCredentialByProfileID retrieves a credential by its owning profile
func (r *PostgresCredentialRepository) GetCredentialByProfileID(profileID uint) (*models.Credential, error) {
	var cred models.Credential
	if err := r.db.Where("profile_id = ?", profileID).First(&cred).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("credential", profileID)
		}
		return nil, err
	}
	return &cred, nil
}
