package models

import "time"

// Profile is a user-facing identity record. Authentication credentials
// live in Credential, not here.
type Profile struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Username        string    `json:"username" gorm:"size:50;uniqueIndex;not null"`
	DisplayName     string    `json:"display_name" gorm:"size:100"`
	BioText         string    `json:"bio_text" gorm:"size:500"`
	ProfileImageURL string    `json:"profile_image_url" gorm:"size:200"`
	JoinDate        time.Time `json:"join_date"` // set once at creation, never updated
}

// ProfileCompact is the trimmed-down author record embedded in feed items
// and comment/like listings.
type ProfileCompact struct {
	ID              uint   `json:"id"`
	Username        string `json:"username"`
	DisplayName     string `json:"display_name"`
	ProfileImageURL string `json:"profile_image_url"`
}

// ToCompact converts a Profile to its compact representation
func (p *Profile) ToCompact() ProfileCompact {
	return ProfileCompact{
		ID:              p.ID,
		Username:        p.Username,
		DisplayName:     p.DisplayName,
		ProfileImageURL: p.ProfileImageURL,
	}
}

// UpdateProfileRequest defines the request body for updating a profile.
// Username and JoinDate are deliberately absent.
type UpdateProfileRequest struct {
	DisplayName     string `json:"display_name,omitempty" validate:"omitempty,min=1,max=100"`
	BioText         string `json:"bio_text,omitempty" validate:"omitempty,max=500"`
	ProfileImageURL string `json:"profile_image_url,omitempty" validate:"omitempty,url"`
}
