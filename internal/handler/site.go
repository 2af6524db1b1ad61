package handler

import (
	"net/http"

	"lumen/internal/httputil"
	"lumen/internal/site"
)

// SiteHandler serves the static site metadata
type SiteHandler struct {
	meta *site.Metadata
}

// NewSiteHandler creates a new site handler
func NewSiteHandler(meta *site.Metadata) *SiteHandler {
	return &SiteHandler{meta: meta}
}

// GetSite returns the site metadata
// GET /api/site
func (h *SiteHandler) GetSite(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.meta)
}
