package handler

import (
	"errors"
	"net/http"

	"lumen/internal/domain"
	"lumen/internal/httputil"
)

// handleError converts domain errors to HTTP responses. Typed errors
// carry their own status; sentinels cover errors wrapped at lower layers.
func handleError(w http.ResponseWriter, err error) {
	// Conflicts first: a duplicate slug arrives wrapped in a SaveError,
	// and the client needs the 409, not the wrapper's status.
	if errors.Is(err, domain.ErrConflict) {
		httputil.RespondError(w, http.StatusConflict, err.Error())
		return
	}

	var httpErr domain.HTTPError
	if errors.As(err, &httpErr) {
		httputil.RespondError(w, httpErr.StatusCode(), httpErr.Error())
		return
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict):
		httputil.RespondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		httputil.RespondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		httputil.RespondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrSaveInFlight):
		httputil.RespondError(w, http.StatusConflict, err.Error())
	default:
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}
