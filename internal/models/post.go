package models

import "time"

// Post represents a single post belonging to a profile
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ProfileID uint      `json:"profile_id" gorm:"index;not null"`
	Caption   string    `json:"caption" gorm:"size:2000"`
	Timestamp time.Time `json:"timestamp" gorm:"index"`

	// Photos is populated by the repository, not by gorm preloading
	Photos []Photo `json:"photos,omitempty" gorm:"-"`
}

// CreatePostRequest defines the request body for creating a new post
// together with its photos.
type CreatePostRequest struct {
	Caption string       `json:"caption" validate:"max=2000"`
	Photos  []PhotoInput `json:"photos,omitempty" validate:"omitempty,dive"`
}

// UpdatePostRequest defines the request body for updating a post's caption
type UpdatePostRequest struct {
	Caption string `json:"caption" validate:"max=2000"`
}
