package handler

import (
	"lumen/internal/domain/services"
	"lumen/internal/httputil"
)

// updatePostRequest is the wire shape of a post PATCH. The nullable
// columns use OptionalString so an explicit null clears them while an
// absent field leaves them unchanged.
type updatePostRequest struct {
	Title      *string                 `json:"title"`
	Slug       *string                 `json:"slug"`
	Content    *string                 `json:"content"`
	Published  *bool                   `json:"published"`
	Excerpt    httputil.OptionalString `json:"excerpt"`
	CoverImage httputil.OptionalString `json:"cover_image"`
}

func (r *updatePostRequest) toService() *services.UpdatePostRequest {
	return &services.UpdatePostRequest{
		Title:      r.Title,
		Slug:       r.Slug,
		Content:    r.Content,
		Published:  r.Published,
		Excerpt:    services.OptionalText{Present: r.Excerpt.Present, Value: r.Excerpt.Value},
		CoverImage: services.OptionalText{Present: r.CoverImage.Present, Value: r.CoverImage.Value},
	}
}

// updateProfileRequest is the wire shape of a profile PUT
type updateProfileRequest struct {
	FullName  httputil.OptionalString `json:"full_name"`
	Bio       httputil.OptionalString `json:"bio"`
	AvatarURL httputil.OptionalString `json:"avatar_url"`
}

func (r *updateProfileRequest) toService() *services.UpdateProfileRequest {
	return &services.UpdateProfileRequest{
		FullName:  services.OptionalText{Present: r.FullName.Present, Value: r.FullName.Value},
		Bio:       services.OptionalText{Present: r.Bio.Present, Value: r.Bio.Value},
		AvatarURL: services.OptionalText{Present: r.AvatarURL.Present, Value: r.AvatarURL.Value},
	}
}

// setPublishRequest is the wire shape of the publish toggle
type setPublishRequest struct {
	Published bool `json:"published"`
}
