package repositories

import (
	"context"

	"lumen/internal/domain/models"
)

// ProfileRepository defines data access operations for author profiles
type ProfileRepository interface {
	// GetByUserID retrieves the profile linked to an auth user.
	// Returns (nil, nil) when no profile exists yet - the caller decides
	// whether that is a precondition failure or just an empty settings form.
	GetByUserID(ctx context.Context, userID string) (*models.Profile, error)

	// Upsert creates or updates the profile for its UserID
	Upsert(ctx context.Context, profile *models.Profile) error
}
