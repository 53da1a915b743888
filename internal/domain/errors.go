package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidQuality is returned when a response grade is outside the
	// accepted 0..5 range. Out-of-range grades are rejected, never clamped.
	ErrInvalidQuality = errors.New("quality must be between 0 and 5")
)
