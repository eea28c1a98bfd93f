package models

import (
	"github.com/golang-jwt/jwt/v4"
)

// Credential stores the authentication secret for a profile, kept apart
// from the Profile record itself.
type Credential struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	ProfileID    uint   `json:"profile_id" gorm:"uniqueIndex;not null"`
	Email        string `json:"email" gorm:"size:120;uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"not null"`
}

// SignupRequest defines the request body for registering a new profile
// with its credential.
type SignupRequest struct {
	Username        string `json:"username" validate:"required,min=2,max=50"`
	DisplayName     string `json:"display_name" validate:"required,min=1,max=100"`
	BioText         string `json:"bio_text,omitempty" validate:"omitempty,max=500"`
	ProfileImageURL string `json:"profile_image_url,omitempty" validate:"omitempty,url"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
}

// SignInRequest defines the request body for authenticating
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	ProfileID uint   `json:"profile_id"`
	Username  string `json:"username"`
	jwt.RegisteredClaims
}
