package service

import (
	"context"
	"fmt"
	"log/slog"

	"lumen/internal/domain"
	"lumen/internal/domain/models"
	"lumen/internal/domain/repositories"
	"lumen/internal/domain/services"
)

// statsService implements the StatsService interface
type statsService struct {
	posts    repositories.PostRepository
	profiles repositories.ProfileRepository
	logger   *slog.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(
	posts repositories.PostRepository,
	profiles repositories.ProfileRepository,
	logger *slog.Logger,
) services.StatsService {
	return &statsService{
		posts:    posts,
		profiles: profiles,
		logger:   logger,
	}
}

// GetStats returns post counts for the session user's dashboard
func (s *statsService) GetStats(ctx context.Context, userID string) (*models.DashboardStats, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolve profile: %w", err)
	}
	if profile == nil {
		return nil, &domain.UnauthorizedError{Message: "no profile exists for the current session"}
	}

	summaries, err := s.posts.ListByAuthor(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	stats := &models.DashboardStats{TotalPosts: len(summaries)}
	for _, summary := range summaries {
		if summary.Published {
			stats.PublishedPosts++
		} else {
			stats.DraftPosts++
		}
	}

	return stats, nil
}
