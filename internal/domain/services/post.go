package services

import (
	"context"

	"lumen/internal/domain/models"
)

// CreatePostRequest represents a request to create a post.
// Slug is optional; when empty it is derived from the title.
type CreatePostRequest struct {
	Title      string  `json:"title"`
	Slug       string  `json:"slug"`
	Excerpt    *string `json:"excerpt"`
	Content    string  `json:"content"`
	CoverImage *string `json:"cover_image"`
	Published  bool    `json:"published"`
}

// UpdatePostRequest represents a partial update to a post. Pointer fields
// are applied only when present; the nullable columns use tri-state
// OptionalText so a client can clear them with an explicit null.
type UpdatePostRequest struct {
	Title      *string `json:"title"`
	Slug       *string `json:"slug"`
	Content    *string `json:"content"`
	Published  *bool   `json:"published"`
	Excerpt    OptionalText
	CoverImage OptionalText
}

// PostService defines business logic operations for posts, covering both
// the authenticated admin surface and the public read surface.
type PostService interface {
	// CreatePost creates a new post authored by the given session user
	CreatePost(ctx context.Context, userID string, req *CreatePostRequest) (*models.Post, error)

	// GetPost retrieves a post by ID regardless of publish state
	GetPost(ctx context.Context, userID, id string) (*models.Post, error)

	// ListPosts retrieves the session user's post summaries, newest first
	ListPosts(ctx context.Context, userID string) ([]models.PostSummary, error)

	// UpdatePost applies a partial update to an existing post
	UpdatePost(ctx context.Context, userID, id string, req *UpdatePostRequest) (*models.Post, error)

	// SetPublishState publishes or unpublishes a post, stamping or
	// clearing published_at
	SetPublishState(ctx context.Context, userID, id string, published bool) (*models.Post, error)

	// DeletePost removes a post
	DeletePost(ctx context.Context, userID, id string) error

	// ListPublished retrieves the public feed, most recently published first
	ListPublished(ctx context.Context) ([]models.PublishedPost, error)

	// GetPublishedBySlug retrieves one published post by its slug
	GetPublishedBySlug(ctx context.Context, slug string) (*models.PublishedPost, error)
}
