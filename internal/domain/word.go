package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Word-specific validation errors
var (
	// ErrWordIDEmpty is returned when a word ID is empty or nil.
	ErrWordIDEmpty = errors.New("word ID cannot be empty")

	// ErrWordTextEmpty is returned when a word's display text is empty.
	ErrWordTextEmpty = errors.New("word text cannot be empty")

	// ErrWordFrequencyNegative is returned when a word's frequency rank is negative.
	ErrWordFrequencyNegative = errors.New("word frequency rank cannot be negative")
)

// Word represents a single learnable vocabulary item. Words are immutable
// from the scheduler's perspective: they are created by an external import
// pipeline and only ever read by the selectors.
type Word struct {
	ID            uuid.UUID `json:"id"`
	Text          string    `json:"text"`
	Translation   string    `json:"translation"`
	Level         string    `json:"level"`    // CEFR label (A1..C2); lexical order matches difficulty order
	Category      string    `json:"category"` // optional collection tag used as a selection scope
	FrequencyRank int       `json:"frequency_rank"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewWord creates a new Word with a generated ID and creation timestamp.
// Returns an error if validation fails.
func NewWord(text, translation, level, category string, frequencyRank int) (*Word, error) {
	word := &Word{
		ID:            uuid.New(),
		Text:          text,
		Translation:   translation,
		Level:         level,
		Category:      category,
		FrequencyRank: frequencyRank,
		CreatedAt:     time.Now().UTC(),
	}

	if err := word.Validate(); err != nil {
		return nil, err
	}

	return word, nil
}

// Validate checks if the Word has valid data.
func (w *Word) Validate() error {
	if w.ID == uuid.Nil {
		return ErrWordIDEmpty
	}

	if w.Text == "" {
		return ErrWordTextEmpty
	}

	if w.FrequencyRank < 0 {
		return ErrWordFrequencyNegative
	}

	return nil
}
