package services

import (
	"context"

	"lumen/internal/domain/models"
)

// UpdateProfileRequest represents a partial update to the author profile.
// All fields are nullable text with tri-state PATCH semantics.
type UpdateProfileRequest struct {
	FullName  OptionalText
	Bio       OptionalText
	AvatarURL OptionalText
}

// ProfileService defines business logic operations for author profiles
type ProfileService interface {
	// GetProfile retrieves the session user's profile; an empty profile
	// is returned when none has been saved yet
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)

	// UpdateProfile creates or updates the session user's profile
	UpdateProfile(ctx context.Context, userID string, req *UpdateProfileRequest) (*models.Profile, error)
}
