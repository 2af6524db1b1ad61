package domain

import (
	"errors"
	"net/http"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
// Implementing this interface enables extensible error handling at the
// handler boundary without a growing switch per error type.
type HTTPError interface {
	error
	StatusCode() int
}

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// ErrSaveInFlight is returned when a save is requested while a previous
	// save on the same editor has not resolved yet. The caller retries after
	// the first save settles; two persisted records must never result from a
	// double submission.
	ErrSaveInFlight = errors.New("save already in progress")
)

// Domain error types implementing HTTPError
type (
	// NotFoundError indicates a resource was not found
	NotFoundError struct {
		Message string
	}

	// ValidationError indicates invalid input, detected before any store call
	ValidationError struct {
		Message string
	}

	// UnauthorizedError indicates authentication failure (no session, or no
	// profile resolvable for the session subject)
	UnauthorizedError struct {
		Message string
	}

	// SaveError indicates a store write failed, including constraint
	// violations such as a duplicate slug. The underlying error is kept
	// so sentinel matching (e.g. ErrConflict) still works through it.
	SaveError struct {
		Message string
		Err     error
	}

	// FetchError indicates a store read failed
	FetchError struct {
		Message string
		Err     error
	}
)

func (e *NotFoundError) Error() string     { return e.Message }
func (e *ValidationError) Error() string   { return e.Message }
func (e *UnauthorizedError) Error() string { return e.Message }

func (e *SaveError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *SaveError) Unwrap() error  { return e.Err }
func (e *FetchError) Unwrap() error { return e.Err }

func (e *NotFoundError) StatusCode() int     { return http.StatusNotFound }
func (e *ValidationError) StatusCode() int   { return http.StatusBadRequest }
func (e *UnauthorizedError) StatusCode() int { return http.StatusUnauthorized }
func (e *SaveError) StatusCode() int         { return http.StatusBadGateway }
func (e *FetchError) StatusCode() int        { return http.StatusBadGateway }

// Is allows errors.Is() matching against the corresponding sentinels
func (e *NotFoundError) Is(target error) bool     { return target == ErrNotFound }
func (e *ValidationError) Is(target error) bool   { return target == ErrValidation }
func (e *UnauthorizedError) Is(target error) bool { return target == ErrUnauthorized }
