package services

import (
	"context"

	"lumen/internal/domain/models"
)

// StatsService computes the admin dashboard counters
type StatsService interface {
	// GetStats returns post counts for the session user
	GetStats(ctx context.Context, userID string) (*models.DashboardStats, error)
}
