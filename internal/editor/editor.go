// Package editor implements the content authoring state machine: the
// lifecycle of one post from empty draft or hydrated record through
// validation, save, and publish toggling. It talks to the store only
// through the repository interfaces, so it is testable against the
// in-memory implementations.
package editor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"lumen/internal/domain"
	"lumen/internal/domain/models"
	"lumen/internal/domain/repositories"
)

// State is the editor lifecycle position.
type State int

const (
	// StateEmpty is a new draft with no identifier.
	StateEmpty State = iota
	// StateLoading means hydration of an existing post is in flight.
	StateLoading
	// StateReady means fields are populated and editable.
	StateReady
	// StateSaving means a save is in flight; further saves are rejected.
	StateSaving
	// StateLoadFailed is terminal: hydration failed and is not retried.
	StateLoadFailed
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateSaving:
		return "saving"
	case StateLoadFailed:
		return "load_failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Editor owns one post draft. Field setters mutate local state only; the
// store is contacted by Hydrate and Save. Slug auto-derivation from the
// title runs only while the draft is unpersisted and the slug was never
// set directly.
type Editor struct {
	posts    repositories.PostRepository
	profiles repositories.ProfileRepository
	userID   string
	now      func() time.Time

	mu     sync.Mutex
	gen    uint64
	closed bool

	state              State
	post               models.Post
	slugTouched        bool
	persistedPublished bool
}

// New creates an editor for an empty draft owned by the given session user.
func New(posts repositories.PostRepository, profiles repositories.ProfileRepository, userID string) *Editor {
	return &Editor{
		posts:    posts,
		profiles: profiles,
		userID:   userID,
		now:      time.Now,
		state:    StateEmpty,
	}
}

// State returns the current lifecycle state.
func (e *Editor) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Post returns a snapshot of the draft fields.
func (e *Editor) Post() models.Post {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.post
}

// Close tears the editor down. Hydration results that arrive afterwards
// are discarded instead of being applied to a dead editor.
func (e *Editor) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	e.gen++
}

// Hydrate populates the draft from an existing post. A missing record
// surfaces NotFoundError rather than leaving the draft silently blank;
// any other store failure surfaces FetchError and the editor stays in
// StateLoadFailed.
func (e *Editor) Hydrate(ctx context.Context, id string) error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	e.gen++
	gen := e.gen
	e.state = StateLoading
	e.mu.Unlock()

	post, err := e.posts.GetByID(ctx, id)

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || gen != e.gen {
		// The editor was closed, or a newer hydration superseded this
		// one, while the fetch was in flight. Discard the result.
		return nil
	}
	if err != nil {
		e.state = StateLoadFailed
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.NotFoundError{Message: fmt.Sprintf("post %s not found", id)}
		}
		return &domain.FetchError{Message: "load post", Err: err}
	}

	e.post = *post
	e.persistedPublished = post.Published
	e.state = StateReady
	return nil
}

// SetTitle updates the title. While the draft is unpersisted and the slug
// has never been set directly, the slug is re-derived from the new title.
func (e *Editor) SetTitle(title string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.post.Title = title
	if e.post.ID == "" && !e.slugTouched {
		e.post.Slug = deriveSlug(title, e.now())
	}
}

// SetSlug sets the slug directly and permanently disables auto-derivation,
// even when called with an empty string.
func (e *Editor) SetSlug(slug string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.post.Slug = slug
	e.slugTouched = true
}

// SetExcerpt updates the optional excerpt.
func (e *Editor) SetExcerpt(excerpt *string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.post.Excerpt = excerpt
}

// SetContent updates the post body.
func (e *Editor) SetContent(content string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.post.Content = content
}

// SetCoverImage updates the optional cover image URL.
func (e *Editor) SetCoverImage(coverImage *string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.post.CoverImage = coverImage
}

// TogglePublished flips the publish flag locally. The store is not
// contacted until the next Save.
func (e *Editor) TogglePublished(published bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.post.Published = published
}

// Validate checks the required fields without contacting the store.
func (e *Editor) Validate() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.validateLocked()
}

func (e *Editor) validateLocked() error {
	if e.post.Title == "" {
		return &domain.ValidationError{Message: "title is required"}
	}
	if e.post.Content == "" {
		return &domain.ValidationError{Message: "content is required"}
	}
	return nil
}

// Save persists the draft: create when no identifier is present, update
// otherwise. Validation and author resolution happen before any store
// write. At most one save is in flight per editor; a second call while
// saving is rejected with ErrSaveInFlight. On failure all field state is
// retained for retry.
func (e *Editor) Save(ctx context.Context) error {
	e.mu.Lock()
	if e.state == StateSaving {
		e.mu.Unlock()
		return domain.ErrSaveInFlight
	}
	if err := e.validateLocked(); err != nil {
		e.mu.Unlock()
		return err
	}
	e.state = StateSaving
	record := e.post
	creating := record.ID == ""
	persistedPublished := e.persistedPublished
	now := e.now()
	e.mu.Unlock()

	err := e.write(ctx, &record, creating, persistedPublished, now)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = StateReady
	if err != nil {
		return err
	}
	e.post = record
	e.persistedPublished = record.Published
	return nil
}

// write resolves the author and issues the store mutation. record is the
// caller's working copy; on success it carries the store-assigned fields.
func (e *Editor) write(ctx context.Context, record *models.Post, creating bool, persistedPublished bool, now time.Time) error {
	if e.userID == "" {
		return &domain.UnauthorizedError{Message: "no authenticated session"}
	}
	profile, err := e.profiles.GetByUserID(ctx, e.userID)
	if err != nil {
		return &domain.FetchError{Message: "resolve author profile", Err: err}
	}
	if profile == nil {
		return &domain.UnauthorizedError{Message: "no profile exists for the current session"}
	}
	record.AuthorID = profile.ID

	if creating {
		if record.Slug == "" {
			record.Slug = deriveSlug(record.Title, now)
		}
		if record.Published {
			record.PublishedAt = &now
		} else {
			record.PublishedAt = nil
		}
		if err := e.posts.Create(ctx, record); err != nil {
			return &domain.SaveError{Message: "create post", Err: err}
		}
		return nil
	}

	// Refresh published_at on the false -> true flip. Unpublishing keeps
	// the previous timestamp; this save path never clears it.
	if record.Published && !persistedPublished {
		record.PublishedAt = &now
	}
	if err := e.posts.Update(ctx, record); err != nil {
		return &domain.SaveError{Message: "update post", Err: err}
	}
	return nil
}
