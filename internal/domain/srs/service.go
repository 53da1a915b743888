// Package srs implements the spaced-repetition scheduling algorithm: a
// deterministic state machine over per-word memory strength, driven by a
// 0..5 quality grade.
package srs

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Skizziik/englishapp-sub000/internal/domain"
)

// Common errors
var (
	// ErrInvalidQuality is returned for grades outside 0..5. The grade is a
	// caller contract violation and is rejected, never silently clamped.
	ErrInvalidQuality = errors.New("invalid quality grade")

	// ErrEmptyWordID is returned when a new record would be created for a
	// nil word ID.
	ErrEmptyWordID = errors.New("word ID cannot be empty")
)

// Service defines the interface for scheduling operations.
type Service interface {
	// RecordResponse computes the follow-up progress record for a graded
	// response. A nil progress means the word has never been seen; a fresh
	// record is synthesized for it. The given now is used for every derived
	// timestamp so interval math and NextReviewAt cannot drift apart.
	//
	// The returned record is always a new instance; the input is never
	// modified. The caller is responsible for persisting the result.
	RecordResponse(
		progress *domain.WordProgress,
		wordID uuid.UUID,
		quality domain.Quality,
		now time.Time,
	) (*domain.WordProgress, error)
}

// defaultService is the standard implementation of the Service interface.
type defaultService struct {
	params *Params
}

// NewDefaultService creates a new scheduling service with default parameters.
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a new scheduling service with custom parameters.
func NewServiceWithParams(params *Params) Service {
	return &defaultService{
		params: params,
	}
}

// RecordResponse implements the Service interface.
func (s *defaultService) RecordResponse(
	progress *domain.WordProgress,
	wordID uuid.UUID,
	quality domain.Quality,
	now time.Time,
) (*domain.WordProgress, error) {
	if !quality.IsValid() {
		return nil, ErrInvalidQuality
	}

	if progress == nil {
		if wordID == uuid.Nil {
			return nil, ErrEmptyWordID
		}
		fresh, err := domain.NewWordProgress(wordID, s.params.DefaultEaseFactor, now)
		if err != nil {
			return nil, err
		}
		progress = fresh
	}

	return nextProgress(progress, quality, now, s.params), nil
}
