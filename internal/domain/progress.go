package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Status represents the lifecycle stage of a word in the learner's memory.
type Status string

// Possible status values. A word with no progress record at all is
// equivalent to StatusNew; a record is only created on the first response.
const (
	StatusNew      Status = "new"
	StatusLearning Status = "learning"
	StatusReview   Status = "review"
	StatusLearned  Status = "learned"
)

// IsValid reports whether s is one of the defined status values.
func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusLearning, StatusReview, StatusLearned:
		return true
	default:
		return false
	}
}

// IsActive reports whether the status participates in due scheduling.
// New words have no record to schedule and Learned words are retired
// from the active queue, so only Learning and Review are active.
func (s Status) IsActive() bool {
	return s == StatusLearning || s == StatusReview
}

// Common validation errors for WordProgress
var (
	ErrProgressWordIDEmpty   = errors.New("word progress word ID cannot be empty")
	ErrProgressInvalidStatus = errors.New("word progress status is not valid")
	ErrInvalidInterval       = errors.New("interval must be greater than or equal to 0")
	ErrInvalidEaseFactor     = errors.New("ease factor must be greater than 1.0")
	ErrInvalidRepetitions    = errors.New("repetitions must be greater than or equal to 0")
	ErrInvalidCounters       = errors.New("response counters must be greater than or equal to 0")
)

// WordProgress tracks the learner's spaced-repetition state for a single word.
// One record exists per word once the word has been answered at least once;
// it is mutated exclusively through the srs scheduler.
type WordProgress struct {
	WordID         uuid.UUID `json:"word_id"`
	Status         Status    `json:"status"`
	EaseFactor     float64   `json:"ease_factor"` // growth multiplier, clamped to the configured range
	Interval       int       `json:"interval"`    // days until the next review
	Repetitions    int       `json:"repetitions"` // consecutive passing responses since the last failure
	CorrectCount   int       `json:"correct_count"`
	WrongCount     int       `json:"wrong_count"`
	LastReviewedAt time.Time `json:"last_reviewed_at"` // zero until the first response is recorded
	NextReviewAt   time.Time `json:"next_review_at"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewWordProgress creates the initial progress record for a word that is
// being answered for the first time. The record starts in the learning
// stage with a zero interval so the scheduler's first update decides the
// real schedule.
func NewWordProgress(wordID uuid.UUID, easeFactor float64, now time.Time) (*WordProgress, error) {
	progress := &WordProgress{
		WordID:       wordID,
		Status:       StatusLearning,
		EaseFactor:   easeFactor,
		Interval:     0,
		Repetitions:  0,
		NextReviewAt: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := progress.Validate(); err != nil {
		return nil, err
	}

	return progress, nil
}

// Validate checks if the WordProgress has valid data.
func (p *WordProgress) Validate() error {
	if p.WordID == uuid.Nil {
		return ErrProgressWordIDEmpty
	}

	if !p.Status.IsValid() {
		return ErrProgressInvalidStatus
	}

	if p.Interval < 0 {
		return ErrInvalidInterval
	}

	if p.EaseFactor <= 1.0 {
		return ErrInvalidEaseFactor
	}

	if p.Repetitions < 0 {
		return ErrInvalidRepetitions
	}

	if p.CorrectCount < 0 || p.WrongCount < 0 {
		return ErrInvalidCounters
	}

	return nil
}

// Clone returns a copy of the progress record. The scheduler follows the
// immutable update pattern and never writes through the input pointer.
func (p *WordProgress) Clone() *WordProgress {
	clone := *p
	return &clone
}

// DueWord pairs a word with its progress record, as returned by the due
// selector.
type DueWord struct {
	Word     *Word         `json:"word"`
	Progress *WordProgress `json:"progress"`
}
