package api

import (
	"errors"
	"net/http"

	"github.com/Skizziik/englishapp-sub000/internal/domain"
	"github.com/Skizziik/englishapp-sub000/internal/service/review"
	"github.com/Skizziik/englishapp-sub000/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes based on
// error type, so handlers never leak internal error taxonomy to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, review.ErrWordNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, review.ErrInvalidQuality),
		errors.Is(err, domain.ErrInvalidQuality),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing message for the
// error. Internal details stay in the logs.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, review.ErrWordNotFound):
		return "Word not found"

	case errors.Is(err, store.ErrProgressNotFound):
		return "Word progress not found"

	case errors.Is(err, store.ErrNotFound):
		return "Not found"

	case errors.Is(err, review.ErrInvalidQuality),
		errors.Is(err, domain.ErrInvalidQuality):
		return "Quality must be between 0 and 5"

	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid ID format"

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return "Invalid request data"

	case errors.Is(err, store.ErrDuplicate):
		return "Already exists"

	default:
		return "An unexpected error occurred"
	}
}
