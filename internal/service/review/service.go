// Package review implements the study workflow: picking due and new words,
// grading responses through the scheduler, and reading the daily counters.
package review

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Skizziik/englishapp-sub000/internal/domain"
)

// Common error types for ReviewService
var (
	// ErrWordNotFound indicates that the word being graded does not exist.
	ErrWordNotFound = errors.New("word not found")

	// ErrInvalidQuality indicates a quality grade outside the 0..5 range.
	ErrInvalidQuality = errors.New("invalid quality grade")
)

// ReviewService coordinates a study session. Selection methods are
// read-only; only RecordResponse writes, and it commits the progress
// update and the stats bump atomically.
type ReviewService interface {
	// GetDueWords retrieves words whose review time has arrived, oldest
	// due first. The category filter is skipped when empty; a non-positive
	// limit falls back to the configured session default. Selection records
	// nothing, so repeated calls return the same queue.
	GetDueWords(ctx context.Context, limit int, category string) ([]domain.DueWord, error)

	// GetNewWords retrieves words the learner has never answered, most
	// frequent first. Level and category filters are skipped when empty.
	GetNewWords(ctx context.Context, limit int, level, category string) ([]*domain.Word, error)

	// RecordResponse grades a single response and returns the updated
	// progress record. A word answered for the first time gets a fresh
	// record. The whole update — schedule, counters, daily stats — is one
	// transaction.
	//
	// Returns ErrWordNotFound if the word does not exist and
	// ErrInvalidQuality for grades outside 0..5.
	RecordResponse(ctx context.Context, wordID uuid.UUID, quality domain.Quality) (*domain.WordProgress, error)

	// GetTodayStats retrieves the response counters for the current UTC
	// calendar date. A day with no responses yields a zero-valued bucket.
	GetTodayStats(ctx context.Context) (*domain.DailyStats, error)
}
