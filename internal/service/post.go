package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"lumen/internal/config"
	"lumen/internal/domain"
	"lumen/internal/domain/models"
	"lumen/internal/domain/repositories"
	"lumen/internal/domain/services"
	"lumen/internal/editor"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// postService implements the PostService interface. Create and update go
// through the editor state machine, which owns slug derivation, author
// resolution, and the published_at save semantics.
type postService struct {
	posts    repositories.PostRepository
	profiles repositories.ProfileRepository
	tx       repositories.TransactionManager
	logger   *slog.Logger
}

// NewPostService creates a new post service
func NewPostService(
	posts repositories.PostRepository,
	profiles repositories.ProfileRepository,
	tx repositories.TransactionManager,
	logger *slog.Logger,
) services.PostService {
	return &postService{
		posts:    posts,
		profiles: profiles,
		tx:       tx,
		logger:   logger,
	}
}

// CreatePost creates a new post authored by the given session user
func (s *postService) CreatePost(ctx context.Context, userID string, req *services.CreatePostRequest) (*models.Post, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	e := editor.New(s.posts, s.profiles, userID)
	defer e.Close()

	e.SetTitle(req.Title)
	if req.Slug != "" {
		e.SetSlug(req.Slug)
	}
	e.SetExcerpt(req.Excerpt)
	e.SetContent(req.Content)
	e.SetCoverImage(req.CoverImage)
	e.TogglePublished(req.Published)

	if err := e.Save(ctx); err != nil {
		return nil, err
	}

	post := e.Post()
	s.logger.Info("post created",
		"id", post.ID,
		"slug", post.Slug,
		"published", post.Published,
		"user_id", userID,
	)

	return &post, nil
}

// GetPost retrieves a post by ID regardless of publish state
func (s *postService) GetPost(ctx context.Context, userID, id string) (*models.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, userID, post.AuthorID); err != nil {
		return nil, err
	}

	return post, nil
}

// ListPosts retrieves the session user's post summaries, newest first
func (s *postService) ListPosts(ctx context.Context, userID string) ([]models.PostSummary, error) {
	profile, err := s.resolveProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.posts.ListByAuthor(ctx, profile.ID)
}

// UpdatePost applies a partial update to an existing post
func (s *postService) UpdatePost(ctx context.Context, userID, id string, req *services.UpdatePostRequest) (*models.Post, error) {
	if err := s.validateUpdateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	e := editor.New(s.posts, s.profiles, userID)
	defer e.Close()

	// Read-modify-write inside one transaction so a concurrent edit
	// cannot slip between hydration and save.
	var post models.Post
	err := s.tx.ExecTx(ctx, func(txCtx context.Context) error {
		if err := e.Hydrate(txCtx, id); err != nil {
			return err
		}
		if err := s.authorize(txCtx, userID, e.Post().AuthorID); err != nil {
			return err
		}

		if req.Title != nil {
			e.SetTitle(*req.Title)
		}
		if req.Slug != nil {
			e.SetSlug(*req.Slug)
		}
		if req.Content != nil {
			e.SetContent(*req.Content)
		}
		if req.Excerpt.Present {
			e.SetExcerpt(req.Excerpt.Value)
		}
		if req.CoverImage.Present {
			e.SetCoverImage(req.CoverImage.Value)
		}
		if req.Published != nil {
			e.TogglePublished(*req.Published)
		}

		if err := e.Save(txCtx); err != nil {
			return err
		}
		post = e.Post()
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("post updated",
		"id", post.ID,
		"slug", post.Slug,
		"published", post.Published,
		"user_id", userID,
	)

	return &post, nil
}

// SetPublishState publishes or unpublishes a post. Publishing stamps
// published_at with the current time; unpublishing clears it, matching
// the admin list toggle.
func (s *postService) SetPublishState(ctx context.Context, userID, id string, published bool) (*models.Post, error) {
	var post *models.Post
	err := s.tx.ExecTx(ctx, func(txCtx context.Context) error {
		var err error
		post, err = s.posts.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if err := s.authorize(txCtx, userID, post.AuthorID); err != nil {
			return err
		}

		var publishedAt *time.Time
		if published {
			now := time.Now()
			publishedAt = &now
		}

		if err := s.posts.UpdatePublishState(txCtx, id, published, publishedAt); err != nil {
			return err
		}

		post.Published = published
		post.PublishedAt = publishedAt
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("post publish state changed",
		"id", id,
		"published", published,
		"user_id", userID,
	)

	return post, nil
}

// DeletePost removes a post
func (s *postService) DeletePost(ctx context.Context, userID, id string) error {
	err := s.tx.ExecTx(ctx, func(txCtx context.Context) error {
		post, err := s.posts.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if err := s.authorize(txCtx, userID, post.AuthorID); err != nil {
			return err
		}

		return s.posts.Delete(txCtx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("post deleted", "id", id, "user_id", userID)
	return nil
}

// ListPublished retrieves the public feed, most recently published first
func (s *postService) ListPublished(ctx context.Context) ([]models.PublishedPost, error) {
	return s.posts.ListPublished(ctx)
}

// GetPublishedBySlug retrieves one published post by its slug
func (s *postService) GetPublishedBySlug(ctx context.Context, slug string) (*models.PublishedPost, error) {
	return s.posts.GetPublishedBySlug(ctx, slug)
}

// resolveProfile maps a session subject to its author profile
func (s *postService) resolveProfile(ctx context.Context, userID string) (*models.Profile, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolve profile: %w", err)
	}
	if profile == nil {
		return nil, &domain.UnauthorizedError{Message: "no profile exists for the current session"}
	}
	return profile, nil
}

// authorize rejects mutations against another author's posts
func (s *postService) authorize(ctx context.Context, userID, authorID string) error {
	profile, err := s.resolveProfile(ctx, userID)
	if err != nil {
		return err
	}
	if profile.ID != authorID {
		return fmt.Errorf("post belongs to another author: %w", domain.ErrForbidden)
	}
	return nil
}

// validateCreateRequest validates a create post request
func (s *postService) validateCreateRequest(req *services.CreatePostRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Title,
			validation.Required,
			validation.Length(1, config.MaxTitleLength),
		),
		validation.Field(&req.Slug, validation.Length(0, config.MaxSlugLength)),
		validation.Field(&req.Excerpt, validation.Length(0, config.MaxExcerptLength)),
		validation.Field(&req.Content, validation.Required),
	)
}

// validateUpdateRequest validates an update post request
func (s *postService) validateUpdateRequest(req *services.UpdatePostRequest) error {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.Title, validation.Length(1, config.MaxTitleLength)),
		validation.Field(&req.Slug, validation.Length(0, config.MaxSlugLength)),
	); err != nil {
		return err
	}

	// Nested tri-state field; validated directly rather than by struct tag
	if req.Excerpt.Present && req.Excerpt.Value != nil {
		if err := validation.Validate(*req.Excerpt.Value, validation.Length(0, config.MaxExcerptLength)); err != nil {
			return fmt.Errorf("excerpt: %v", err)
		}
	}
	return nil
}
