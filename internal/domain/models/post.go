package models

import (
	"time"
)

// Post is one blog entry, the unit of authoring and publishing.
// ID and CreatedAt are store-assigned; PublishedAt is maintained by the
// save path (set when Published transitions false -> true) rather than by
// the store.
type Post struct {
	ID          string     `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Slug        string     `json:"slug" db:"slug"`
	Excerpt     *string    `json:"excerpt,omitempty" db:"excerpt"`
	Content     string     `json:"content" db:"content"`
	CoverImage  *string    `json:"cover_image,omitempty" db:"cover_image"`
	Published   bool       `json:"published" db:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty" db:"published_at"`
	AuthorID    string     `json:"author_id" db:"author_id"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}

// PostSummary is the row shape of the admin list view.
type PostSummary struct {
	ID          string     `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Slug        string     `json:"slug" db:"slug"`
	Published   bool       `json:"published" db:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty" db:"published_at"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}

// PublishedPost is a post joined with its author's public identity,
// as rendered on the public site.
type PublishedPost struct {
	Post
	AuthorName   *string `json:"author_name,omitempty" db:"author_name"`
	AuthorAvatar *string `json:"author_avatar,omitempty" db:"author_avatar"`
}
