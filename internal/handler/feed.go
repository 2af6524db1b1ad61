package handler

import (
	"log/slog"
	"net/http"

	"lumen/internal/domain/services"
	"lumen/internal/httputil"
)

// FeedHandler handles the public read surface
type FeedHandler struct {
	service services.PostService
	logger  *slog.Logger
}

// NewFeedHandler creates a new feed handler
func NewFeedHandler(service services.PostService, logger *slog.Logger) *FeedHandler {
	return &FeedHandler{
		service: service,
		logger:  logger,
	}
}

// ListPublished lists published posts, most recently published first
// GET /api/posts/published
func (h *FeedHandler) ListPublished(w http.ResponseWriter, r *http.Request) {
	posts, err := h.service.ListPublished(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, posts)
}

// GetBySlug retrieves one published post by slug
// GET /api/posts/published/{slug}
func (h *FeedHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	post, err := h.service.GetPublishedBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, post)
}
