package editor

import (
	"context"
	"sync"
	"time"

	"lumen/internal/domain"
	"lumen/internal/domain/models"
	"lumen/internal/domain/repositories"
)

// PostList is the admin list view's cached collection of post summaries,
// fetched once. Delete and publish-toggle intents issue the store
// mutation first and patch the cache only after it succeeds; a failure
// leaves the cache unchanged.
type PostList struct {
	posts    repositories.PostRepository
	authorID string
	now      func() time.Time

	mu     sync.Mutex
	rows   []models.PostSummary
	loaded bool
}

// NewPostList creates a list over the given author's posts.
func NewPostList(posts repositories.PostRepository, authorID string) *PostList {
	return &PostList{
		posts:    posts,
		authorID: authorID,
		now:      time.Now,
	}
}

// Load fetches the author's post summaries. The fetch happens once; later
// calls return without contacting the store.
func (l *PostList) Load(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.loaded {
		return nil
	}

	rows, err := l.posts.ListByAuthor(ctx, l.authorID)
	if err != nil {
		return &domain.FetchError{Message: "load posts", Err: err}
	}
	l.rows = rows
	l.loaded = true
	return nil
}

// Rows returns a snapshot of the cached summaries.
func (l *PostList) Rows() []models.PostSummary {
	l.mu.Lock()
	defer l.mu.Unlock()
	rows := make([]models.PostSummary, len(l.rows))
	copy(rows, l.rows)
	return rows
}

// Delete removes a post from the store and, on success, removes the one
// matching row from the cache.
func (l *PostList) Delete(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.posts.Delete(ctx, id); err != nil {
		return &domain.SaveError{Message: "delete post", Err: err}
	}

	for i, row := range l.rows {
		if row.ID == id {
			l.rows = append(l.rows[:i], l.rows[i+1:]...)
			break
		}
	}
	return nil
}

// TogglePublish flips a post's publish state in the store and, on success,
// patches exactly the published and published_at fields of the cached row.
// Publishing stamps the current time; unpublishing nulls the timestamp.
func (l *PostList) TogglePublish(ctx context.Context, id string, published bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var publishedAt *time.Time
	if published {
		now := l.now()
		publishedAt = &now
	}

	if err := l.posts.UpdatePublishState(ctx, id, published, publishedAt); err != nil {
		return &domain.SaveError{Message: "update publish state", Err: err}
	}

	for i := range l.rows {
		if l.rows[i].ID == id {
			l.rows[i].Published = published
			l.rows[i].PublishedAt = publishedAt
			break
		}
	}
	return nil
}
