package editor

import (
	"context"
	"errors"
	"testing"
	"time"

	"lumen/internal/domain"
	"lumen/internal/domain/models"
	"lumen/internal/repository/memory"
)

func newTestList(t *testing.T) (*PostList, *memory.PostRepository) {
	t.Helper()
	posts := memory.NewPostRepository()
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for i, p := range []models.Post{
		{ID: "post-1", Title: "First", Slug: "first", Content: "a", AuthorID: testAuthorID},
		{ID: "post-2", Title: "Second", Slug: "second", Content: "b", AuthorID: testAuthorID},
		{ID: "post-3", Title: "Third", Slug: "third", Content: "c", AuthorID: testAuthorID},
	} {
		p.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		posts.Seed(p)
	}

	l := NewPostList(posts, testAuthorID)
	if err := l.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return l, posts
}

func TestListLoadsOnce(t *testing.T) {
	l, posts := newTestList(t)

	// A post added behind the cache is not picked up by a second Load.
	posts.Seed(models.Post{ID: "post-4", Title: "Fourth", Slug: "fourth", AuthorID: testAuthorID})
	if err := l.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := len(l.Rows()); got != 3 {
		t.Errorf("rows = %d, want 3 (cache fetched once)", got)
	}
}

func TestListOrderedNewestFirst(t *testing.T) {
	l, _ := newTestList(t)

	rows := l.Rows()
	want := []string{"post-3", "post-2", "post-1"}
	for i, id := range want {
		if rows[i].ID != id {
			t.Fatalf("rows[%d].ID = %q, want %q", i, rows[i].ID, id)
		}
	}
}

func TestListDeleteRemovesExactlyOneRow(t *testing.T) {
	l, posts := newTestList(t)

	if err := l.Delete(context.Background(), "post-2"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	rows := l.Rows()
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	for _, row := range rows {
		if row.ID == "post-2" {
			t.Error("deleted row still present in cache")
		}
	}
	if posts.DeleteCalls != 1 {
		t.Errorf("store delete calls = %d, want 1", posts.DeleteCalls)
	}
	if posts.Len() != 2 {
		t.Errorf("stored posts = %d, want 2", posts.Len())
	}
}

func TestListDeleteFailureLeavesCache(t *testing.T) {
	l, posts := newTestList(t)
	posts.FailNext = errors.New("connection reset")

	err := l.Delete(context.Background(), "post-2")
	var saveErr *domain.SaveError
	if !errors.As(err, &saveErr) {
		t.Fatalf("Delete() error = %v, want SaveError", err)
	}
	if got := len(l.Rows()); got != 3 {
		t.Errorf("rows = %d, want 3 (cache unchanged on failure)", got)
	}
}

func TestListTogglePatchesOnlyPublishFields(t *testing.T) {
	l, posts := newTestList(t)
	now := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	var before models.PostSummary
	for _, row := range l.Rows() {
		if row.ID == "post-2" {
			before = row
		}
	}

	if err := l.TogglePublish(context.Background(), "post-2", true); err != nil {
		t.Fatalf("TogglePublish() error = %v", err)
	}

	var after models.PostSummary
	for _, row := range l.Rows() {
		if row.ID == "post-2" {
			after = row
		}
	}

	if !after.Published {
		t.Error("row not marked published")
	}
	if after.PublishedAt == nil || !after.PublishedAt.Equal(now) {
		t.Errorf("publishedAt = %v, want %v", after.PublishedAt, now)
	}
	if after.ID != before.ID || after.Title != before.Title ||
		after.Slug != before.Slug || !after.CreatedAt.Equal(before.CreatedAt) {
		t.Errorf("toggle patched more than publish fields: before %+v, after %+v", before, after)
	}

	stored, ok := posts.Get("post-2")
	if !ok || !stored.Published {
		t.Error("publish state not persisted to store")
	}

	// Unpublishing nulls the timestamp in the list path.
	if err := l.TogglePublish(context.Background(), "post-2", false); err != nil {
		t.Fatalf("TogglePublish() error = %v", err)
	}
	for _, row := range l.Rows() {
		if row.ID == "post-2" {
			if row.Published {
				t.Error("row still published after unpublish")
			}
			if row.PublishedAt != nil {
				t.Errorf("publishedAt = %v, want nil after unpublish", row.PublishedAt)
			}
		}
	}
}

func TestListToggleFailureLeavesCache(t *testing.T) {
	l, posts := newTestList(t)
	posts.FailNext = errors.New("connection reset")

	err := l.TogglePublish(context.Background(), "post-1", true)
	var saveErr *domain.SaveError
	if !errors.As(err, &saveErr) {
		t.Fatalf("TogglePublish() error = %v, want SaveError", err)
	}
	for _, row := range l.Rows() {
		if row.ID == "post-1" && row.Published {
			t.Error("cache patched although store call failed")
		}
	}
}
