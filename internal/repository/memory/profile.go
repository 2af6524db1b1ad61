package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"lumen/internal/domain/models"
	"lumen/internal/domain/repositories"
)

// ProfileRepository is an in-memory ProfileRepository implementation
type ProfileRepository struct {
	mu       sync.Mutex
	profiles map[string]models.Profile // keyed by user ID
}

// NewProfileRepository creates an empty in-memory profile repository
func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{profiles: make(map[string]models.Profile)}
}

// Seed inserts a profile directly
func (r *ProfileRepository) Seed(profile models.Profile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	r.profiles[profile.UserID] = profile
}

// GetByUserID retrieves the profile linked to an auth user.
// Returns (nil, nil) when no profile exists yet.
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	profile, ok := r.profiles[userID]
	if !ok {
		return nil, nil
	}
	copy := profile
	return &copy, nil
}

// Upsert creates or updates the profile for its UserID
func (r *ProfileRepository) Upsert(ctx context.Context, profile *models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.profiles[profile.UserID]; ok {
		profile.ID = existing.ID
	} else if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	r.profiles[profile.UserID] = *profile
	return nil
}

var _ repositories.ProfileRepository = (*ProfileRepository)(nil)
