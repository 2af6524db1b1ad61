package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"lumen/internal/domain"
	"lumen/internal/domain/models"
	"lumen/internal/domain/services"
	"lumen/internal/repository/memory"
)

const (
	testUserID   = "user-1"
	testAuthorID = "author-1"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func newTestPostService(t *testing.T) (services.PostService, *memory.PostRepository, *memory.ProfileRepository) {
	t.Helper()
	posts := memory.NewPostRepository()
	profiles := memory.NewProfileRepository()
	profiles.Seed(models.Profile{ID: testAuthorID, UserID: testUserID})
	svc := NewPostService(posts, profiles, memory.NewTransactionManager(), testLogger())
	return svc, posts, profiles
}

func TestCreatePost(t *testing.T) {
	svc, posts, _ := newTestPostService(t)

	post, err := svc.CreatePost(context.Background(), testUserID, &services.CreatePostRequest{
		Title:     "Hello, World!",
		Excerpt:   strPtr("a greeting"),
		Content:   "body",
		Published: true,
	})
	if err != nil {
		t.Fatalf("CreatePost() error = %v", err)
	}

	if post.ID == "" {
		t.Error("post ID not assigned")
	}
	if post.Slug != "hello-world" {
		t.Errorf("slug = %q, want %q", post.Slug, "hello-world")
	}
	if post.AuthorID != testAuthorID {
		t.Errorf("author = %q, want %q", post.AuthorID, testAuthorID)
	}
	if post.PublishedAt == nil {
		t.Error("publishedAt nil for published post")
	}
	if posts.Len() != 1 {
		t.Errorf("stored posts = %d, want 1", posts.Len())
	}
}

func TestCreatePostValidation(t *testing.T) {
	tests := []struct {
		name string
		req  services.CreatePostRequest
	}{
		{name: "missing title", req: services.CreatePostRequest{Content: "body"}},
		{name: "missing content", req: services.CreatePostRequest{Title: "A Title"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, posts, _ := newTestPostService(t)

			_, err := svc.CreatePost(context.Background(), testUserID, &tt.req)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("CreatePost() error = %v, want validation error", err)
			}
			if posts.CreateCalls != 0 {
				t.Errorf("create calls = %d, want 0", posts.CreateCalls)
			}
		})
	}
}

func TestCreatePostWithoutProfile(t *testing.T) {
	posts := memory.NewPostRepository()
	profiles := memory.NewProfileRepository()
	svc := NewPostService(posts, profiles, memory.NewTransactionManager(), testLogger())

	_, err := svc.CreatePost(context.Background(), "stranger", &services.CreatePostRequest{
		Title:   "A Title",
		Content: "body",
	})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("CreatePost() error = %v, want unauthorized error", err)
	}
}

func TestUpdatePostPartialFields(t *testing.T) {
	svc, posts, _ := newTestPostService(t)
	posts.Seed(models.Post{
		ID:       "post-1",
		Title:    "Original",
		Slug:     "original",
		Excerpt:  strPtr("old excerpt"),
		Content:  "original body",
		AuthorID: testAuthorID,
	})

	post, err := svc.UpdatePost(context.Background(), testUserID, "post-1", &services.UpdatePostRequest{
		Title:   strPtr("Renamed"),
		Excerpt: services.OptionalText{Present: true, Value: nil},
	})
	if err != nil {
		t.Fatalf("UpdatePost() error = %v", err)
	}

	if post.Title != "Renamed" {
		t.Errorf("title = %q, want %q", post.Title, "Renamed")
	}
	if post.Slug != "original" {
		t.Errorf("slug = %q, want unchanged %q", post.Slug, "original")
	}
	if post.Content != "original body" {
		t.Errorf("content = %q, want unchanged", post.Content)
	}
	if post.Excerpt != nil {
		t.Errorf("excerpt = %v, want cleared by explicit null", *post.Excerpt)
	}
}

func TestUpdatePostPublishStampsTimestamp(t *testing.T) {
	svc, posts, _ := newTestPostService(t)
	posts.Seed(models.Post{
		ID:       "post-1",
		Title:    "Draft",
		Slug:     "draft",
		Content:  "body",
		AuthorID: testAuthorID,
	})

	post, err := svc.UpdatePost(context.Background(), testUserID, "post-1", &services.UpdatePostRequest{
		Published: boolPtr(true),
	})
	if err != nil {
		t.Fatalf("UpdatePost() error = %v", err)
	}
	if !post.Published || post.PublishedAt == nil {
		t.Errorf("publish flip not stamped: published=%v publishedAt=%v", post.Published, post.PublishedAt)
	}
}

func TestUpdatePostOfAnotherAuthor(t *testing.T) {
	svc, posts, profiles := newTestPostService(t)
	profiles.Seed(models.Profile{ID: "author-2", UserID: "user-2"})
	posts.Seed(models.Post{
		ID:       "post-1",
		Title:    "Not Yours",
		Slug:     "not-yours",
		Content:  "body",
		AuthorID: "author-2",
	})

	_, err := svc.UpdatePost(context.Background(), testUserID, "post-1", &services.UpdatePostRequest{
		Title: strPtr("Hijacked"),
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("UpdatePost() error = %v, want forbidden error", err)
	}
}

func TestUpdatePostNotFound(t *testing.T) {
	svc, _, _ := newTestPostService(t)

	_, err := svc.UpdatePost(context.Background(), testUserID, "missing", &services.UpdatePostRequest{})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("UpdatePost() error = %v, want not-found error", err)
	}
}

func TestSetPublishState(t *testing.T) {
	svc, posts, _ := newTestPostService(t)
	published := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	posts.Seed(models.Post{
		ID:          "post-1",
		Title:       "Live",
		Slug:        "live",
		Content:     "body",
		Published:   true,
		PublishedAt: &published,
		AuthorID:    testAuthorID,
	})

	// Unpublishing clears the timestamp in this path.
	post, err := svc.SetPublishState(context.Background(), testUserID, "post-1", false)
	if err != nil {
		t.Fatalf("SetPublishState() error = %v", err)
	}
	if post.Published || post.PublishedAt != nil {
		t.Errorf("unpublish: published=%v publishedAt=%v, want false/nil", post.Published, post.PublishedAt)
	}

	post, err = svc.SetPublishState(context.Background(), testUserID, "post-1", true)
	if err != nil {
		t.Fatalf("SetPublishState() error = %v", err)
	}
	if !post.Published || post.PublishedAt == nil {
		t.Errorf("publish: published=%v publishedAt=%v, want true/non-nil", post.Published, post.PublishedAt)
	}
}

func TestDeletePost(t *testing.T) {
	svc, posts, _ := newTestPostService(t)
	posts.Seed(models.Post{ID: "post-1", Slug: "gone", AuthorID: testAuthorID})

	if err := svc.DeletePost(context.Background(), testUserID, "post-1"); err != nil {
		t.Fatalf("DeletePost() error = %v", err)
	}
	if posts.Len() != 0 {
		t.Errorf("stored posts = %d, want 0", posts.Len())
	}

	if err := svc.DeletePost(context.Background(), testUserID, "post-1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second DeletePost() error = %v, want not-found error", err)
	}
}

func TestPublicFeedOnlyPublished(t *testing.T) {
	svc, posts, _ := newTestPostService(t)
	published := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	posts.Seed(models.Post{ID: "post-1", Slug: "live", Published: true, PublishedAt: &published, AuthorID: testAuthorID})
	posts.Seed(models.Post{ID: "post-2", Slug: "draft", AuthorID: testAuthorID})

	feed, err := svc.ListPublished(context.Background())
	if err != nil {
		t.Fatalf("ListPublished() error = %v", err)
	}
	if len(feed) != 1 || feed[0].ID != "post-1" {
		t.Errorf("feed = %+v, want only the published post", feed)
	}

	if _, err := svc.GetPublishedBySlug(context.Background(), "draft"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetPublishedBySlug(draft) error = %v, want not-found error", err)
	}
}
