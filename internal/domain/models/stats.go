package models

// DashboardStats summarizes an author's posts for the admin dashboard.
type DashboardStats struct {
	TotalPosts     int `json:"total_posts"`
	PublishedPosts int `json:"published_posts"`
	DraftPosts     int `json:"draft_posts"`
}
