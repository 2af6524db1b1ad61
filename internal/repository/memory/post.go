// Package memory provides in-memory repository implementations.
// They back the editor and service tests and mirror the error contract of
// the postgres implementations, including the slug uniqueness constraint.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"lumen/internal/domain"
	"lumen/internal/domain/models"
	"lumen/internal/domain/repositories"
)

// PostRepository is an in-memory PostRepository implementation
type PostRepository struct {
	mu    sync.Mutex
	posts map[string]models.Post

	// CreateCalls, UpdateCalls and DeleteCalls count store writes so tests
	// can assert on the exact number of store calls an operation issued.
	CreateCalls int
	UpdateCalls int
	DeleteCalls int

	// FailNext makes the next mutating call fail with the given error,
	// simulating a store-side failure.
	FailNext error
}

// NewPostRepository creates an empty in-memory post repository
func NewPostRepository() *PostRepository {
	return &PostRepository{posts: make(map[string]models.Post)}
}

// Seed inserts a post directly, bypassing counters and constraints
func (r *PostRepository) Seed(post models.Post) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	r.posts[post.ID] = post
}

// Get returns a stored post by ID for test assertions
func (r *PostRepository) Get(id string) (models.Post, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	return p, ok
}

// Len returns the number of stored posts
func (r *PostRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.posts)
}

func (r *PostRepository) takeFailure() error {
	err := r.FailNext
	r.FailNext = nil
	return err
}

// Create persists a new post, enforcing slug uniqueness
func (r *PostRepository) Create(ctx context.Context, post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.CreateCalls++
	if err := r.takeFailure(); err != nil {
		return err
	}

	for _, existing := range r.posts {
		if existing.Slug == post.Slug {
			return fmt.Errorf("post slug '%s' is already taken: %w", post.Slug, domain.ErrConflict)
		}
	}

	post.ID = uuid.NewString()
	post.CreatedAt = time.Now()
	r.posts[post.ID] = *post
	return nil
}

// GetByID retrieves a post by ID
func (r *PostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.posts[id]
	if !ok {
		return nil, fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
	}
	copy := post
	return &copy, nil
}

// GetPublishedBySlug retrieves a published post by slug
func (r *PostRepository) GetPublishedBySlug(ctx context.Context, slug string) (*models.PublishedPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, post := range r.posts {
		if post.Slug == slug && post.Published {
			return &models.PublishedPost{Post: post}, nil
		}
	}
	return nil, fmt.Errorf("post %s: %w", slug, domain.ErrNotFound)
}

// ListByAuthor retrieves post summaries for one author, newest first
func (r *PostRepository) ListByAuthor(ctx context.Context, authorID string) ([]models.PostSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var summaries []models.PostSummary
	for _, post := range r.posts {
		if post.AuthorID != authorID {
			continue
		}
		summaries = append(summaries, models.PostSummary{
			ID:          post.ID,
			Title:       post.Title,
			Slug:        post.Slug,
			Published:   post.Published,
			PublishedAt: post.PublishedAt,
			CreatedAt:   post.CreatedAt,
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
	})
	return summaries, nil
}

// ListPublished retrieves published posts, most recently published first
func (r *PostRepository) ListPublished(ctx context.Context) ([]models.PublishedPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var published []models.PublishedPost
	for _, post := range r.posts {
		if post.Published {
			published = append(published, models.PublishedPost{Post: post})
		}
	}
	sort.Slice(published, func(i, j int) bool {
		a, b := published[i].PublishedAt, published[j].PublishedAt
		if a == nil || b == nil {
			return b == nil
		}
		return a.After(*b)
	})
	return published, nil
}

// Update rewrites the editable fields of an existing post
func (r *PostRepository) Update(ctx context.Context, post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.UpdateCalls++
	if err := r.takeFailure(); err != nil {
		return err
	}

	existing, ok := r.posts[post.ID]
	if !ok {
		return fmt.Errorf("post %s: %w", post.ID, domain.ErrNotFound)
	}

	for id, other := range r.posts {
		if id != post.ID && other.Slug == post.Slug {
			return fmt.Errorf("post slug '%s' is already taken: %w", post.Slug, domain.ErrConflict)
		}
	}

	post.CreatedAt = existing.CreatedAt
	r.posts[post.ID] = *post
	return nil
}

// UpdatePublishState patches only published and published_at
func (r *PostRepository) UpdatePublishState(ctx context.Context, id string, published bool, publishedAt *time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.UpdateCalls++
	if err := r.takeFailure(); err != nil {
		return err
	}

	post, ok := r.posts[id]
	if !ok {
		return fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
	}
	post.Published = published
	post.PublishedAt = publishedAt
	r.posts[id] = post
	return nil
}

// Delete removes a post by ID
func (r *PostRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.DeleteCalls++
	if err := r.takeFailure(); err != nil {
		return err
	}

	if _, ok := r.posts[id]; !ok {
		return fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
	}
	delete(r.posts, id)
	return nil
}

var _ repositories.PostRepository = (*PostRepository)(nil)
