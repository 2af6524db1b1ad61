package editor

import (
	"fmt"
	"regexp"
	"testing"
	"time"
)

var slugShape = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestDeriveSlug(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "basic punctuation",
			title: "Hello, World!",
			want:  "hello-world",
		},
		{
			name:  "uppercase and digits",
			title: "Go 1 Is 25 Years Old",
			want:  "go-1-is-25-years-old",
		},
		{
			name:  "run of separators collapses to one hyphen",
			title: "a -- b ___ c",
			want:  "a-b-c",
		},
		{
			name:  "leading and trailing separators trimmed",
			title: "  ...Trimmed Title...  ",
			want:  "trimmed-title",
		},
		{
			name:  "already slug shaped",
			title: "already-slugged",
			want:  "already-slugged",
		},
		{
			name:  "dotted version number",
			title: "Release v2.0.1",
			want:  "release-v2-0-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveSlug(tt.title)
			if got != tt.want {
				t.Errorf("DeriveSlug(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestDeriveSlugShape(t *testing.T) {
	titles := []string{
		"Hello, World!",
		"  weird   spacing  ",
		"ALL CAPS",
		"punctuation!?#$%^&*()everywhere",
		"বাংলা",
		"日本語のタイトル",
		"",
	}

	for _, title := range titles {
		got := DeriveSlug(title)
		if got == "" {
			t.Errorf("DeriveSlug(%q) returned empty string", title)
		}
		if !slugShape.MatchString(got) {
			t.Errorf("DeriveSlug(%q) = %q, not slug shaped", title, got)
		}
	}
}

func TestDeriveSlugIdempotent(t *testing.T) {
	titles := []string{"Hello, World!", "Stable Input 42", "already-slugged"}
	for _, title := range titles {
		first := DeriveSlug(title)
		second := DeriveSlug(first)
		if first != second {
			t.Errorf("DeriveSlug not idempotent for %q: %q then %q", title, first, second)
		}
	}
}

func TestDeriveSlugFallback(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	want := fmt.Sprintf("post-%d", now.UnixMilli())

	tests := []struct {
		name  string
		title string
	}{
		{name: "non-latin script", title: "বাংলা"},
		{name: "empty title", title: ""},
		{name: "only separators", title: "!!! --- ???"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := deriveSlug(tt.title, now)
			if got != want {
				t.Errorf("deriveSlug(%q) = %q, want %q", tt.title, got, want)
			}
		})
	}
}
