package service

import (
	"context"
	"errors"
	"testing"

	"lumen/internal/domain"
	"lumen/internal/domain/models"
	"lumen/internal/domain/services"
	"lumen/internal/repository/memory"
)

func TestGetProfileReturnsEmptyWhenMissing(t *testing.T) {
	profiles := memory.NewProfileRepository()
	svc := NewProfileService(profiles, testLogger())

	profile, err := svc.GetProfile(context.Background(), testUserID)
	if err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}
	if profile.UserID != testUserID {
		t.Errorf("userID = %q, want %q", profile.UserID, testUserID)
	}
	if profile.FullName != nil || profile.Bio != nil || profile.AvatarURL != nil {
		t.Errorf("empty profile has populated fields: %+v", profile)
	}
}

func TestUpdateProfileCreatesOnFirstSave(t *testing.T) {
	profiles := memory.NewProfileRepository()
	svc := NewProfileService(profiles, testLogger())

	profile, err := svc.UpdateProfile(context.Background(), testUserID, &services.UpdateProfileRequest{
		FullName: services.OptionalText{Present: true, Value: strPtr("Ada Lovelace")},
		Bio:      services.OptionalText{Present: true, Value: strPtr("writes about computing")},
	})
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}
	if profile.ID == "" {
		t.Error("profile ID not assigned")
	}
	if profile.FullName == nil || *profile.FullName != "Ada Lovelace" {
		t.Errorf("fullName = %v, want Ada Lovelace", profile.FullName)
	}
}

func TestUpdateProfilePartialAndClear(t *testing.T) {
	profiles := memory.NewProfileRepository()
	profiles.Seed(models.Profile{
		ID:        testAuthorID,
		UserID:    testUserID,
		FullName:  strPtr("Ada Lovelace"),
		Bio:       strPtr("old bio"),
		AvatarURL: strPtr("https://example.com/a.png"),
	})
	svc := NewProfileService(profiles, testLogger())

	profile, err := svc.UpdateProfile(context.Background(), testUserID, &services.UpdateProfileRequest{
		Bio: services.OptionalText{Present: true, Value: nil},
	})
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}

	if profile.Bio != nil {
		t.Errorf("bio = %v, want cleared by explicit null", *profile.Bio)
	}
	if profile.FullName == nil || *profile.FullName != "Ada Lovelace" {
		t.Errorf("fullName = %v, want untouched", profile.FullName)
	}
	if profile.AvatarURL == nil {
		t.Error("avatarURL cleared although absent from request")
	}
	if profile.ID != testAuthorID {
		t.Errorf("profile ID = %q, want stable %q", profile.ID, testAuthorID)
	}
}

func TestStats(t *testing.T) {
	posts := memory.NewPostRepository()
	profiles := memory.NewProfileRepository()
	profiles.Seed(models.Profile{ID: testAuthorID, UserID: testUserID})
	posts.Seed(models.Post{ID: "post-1", Slug: "a", Published: true, AuthorID: testAuthorID})
	posts.Seed(models.Post{ID: "post-2", Slug: "b", AuthorID: testAuthorID})
	posts.Seed(models.Post{ID: "post-3", Slug: "c", AuthorID: testAuthorID})

	svc := NewStatsService(posts, profiles, testLogger())
	stats, err := svc.GetStats(context.Background(), testUserID)
	if err != nil {
		t.Fatalf("GetStats() error = %v", err)
	}

	if stats.TotalPosts != 3 || stats.PublishedPosts != 1 || stats.DraftPosts != 2 {
		t.Errorf("stats = %+v, want 3 total, 1 published, 2 drafts", stats)
	}
}

func TestStatsWithoutProfile(t *testing.T) {
	svc := NewStatsService(memory.NewPostRepository(), memory.NewProfileRepository(), testLogger())

	_, err := svc.GetStats(context.Background(), "stranger")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("GetStats() error = %v, want unauthorized error", err)
	}
}
