package service

import (
	"context"
	"fmt"
	"log/slog"

	"lumen/internal/config"
	"lumen/internal/domain"
	"lumen/internal/domain/models"
	"lumen/internal/domain/repositories"
	"lumen/internal/domain/services"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// profileService implements the ProfileService interface
type profileService struct {
	profiles repositories.ProfileRepository
	logger   *slog.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(
	profiles repositories.ProfileRepository,
	logger *slog.Logger,
) services.ProfileService {
	return &profileService{
		profiles: profiles,
		logger:   logger,
	}
}

// GetProfile retrieves the session user's profile. When no profile has
// been saved yet an empty one is returned so the settings form can render.
func (s *profileService) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	if profile == nil {
		s.logger.Debug("no profile found, returning empty", "user_id", userID)
		profile = &models.Profile{UserID: userID}
	}

	return profile, nil
}

// UpdateProfile creates or updates the session user's profile. Only the
// fields present in the request change; an explicit null clears a field.
func (s *profileService) UpdateProfile(ctx context.Context, userID string, req *services.UpdateProfileRequest) (*models.Profile, error) {
	if err := s.validateUpdateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	existing, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get existing profile: %w", err)
	}
	if existing == nil {
		existing = &models.Profile{UserID: userID}
	}

	if req.FullName.Present {
		existing.FullName = req.FullName.Value
	}
	if req.Bio.Present {
		existing.Bio = req.Bio.Value
	}
	if req.AvatarURL.Present {
		existing.AvatarURL = req.AvatarURL.Value
	}

	if err := s.profiles.Upsert(ctx, existing); err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}

	s.logger.Info("profile updated",
		"user_id", userID,
		"has_full_name", req.FullName.Present,
		"has_bio", req.Bio.Present,
		"has_avatar_url", req.AvatarURL.Present,
	)

	return existing, nil
}

// validateUpdateRequest validates a profile update request
func (s *profileService) validateUpdateRequest(req *services.UpdateProfileRequest) error {
	if req.FullName.Present && req.FullName.Value != nil {
		if err := validation.Validate(*req.FullName.Value, validation.Length(0, config.MaxFullNameLength)); err != nil {
			return fmt.Errorf("full_name: %v", err)
		}
	}
	if req.Bio.Present && req.Bio.Value != nil {
		if err := validation.Validate(*req.Bio.Value, validation.Length(0, config.MaxBioLength)); err != nil {
			return fmt.Errorf("bio: %v", err)
		}
	}
	return nil
}
