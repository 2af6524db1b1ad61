package repositories

import (
	"context"
	"time"

	"lumen/internal/domain/models"
)

// PostRepository defines data access operations for posts
type PostRepository interface {
	// Create persists a new post and fills in the store-assigned ID and
	// created_at timestamp
	Create(ctx context.Context, post *models.Post) error

	// GetByID retrieves a post by ID regardless of publish state.
	// Returns domain.ErrNotFound when no row matches.
	GetByID(ctx context.Context, id string) (*models.Post, error)

	// GetPublishedBySlug retrieves a published post by slug, joined with the
	// author's public identity. Returns domain.ErrNotFound when absent.
	GetPublishedBySlug(ctx context.Context, slug string) (*models.PublishedPost, error)

	// ListByAuthor retrieves post summaries for one author,
	// ordered by created_at DESC
	ListByAuthor(ctx context.Context, authorID string) ([]models.PostSummary, error)

	// ListPublished retrieves all published posts with author identity,
	// ordered by published_at DESC
	ListPublished(ctx context.Context) ([]models.PublishedPost, error)

	// Update rewrites the editable fields of an existing post
	Update(ctx context.Context, post *models.Post) error

	// UpdatePublishState patches only published and published_at
	UpdatePublishState(ctx context.Context, id string, published bool, publishedAt *time.Time) error

	// Delete removes a post by ID
	Delete(ctx context.Context, id string) error
}
