package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/Skizziik/englishapp-sub000/internal/domain"
)

// WordStore defines the interface for word persistence. Words are written
// by the external import pipeline and read-only for the scheduler, so the
// interface carries a single write method used for seeding.
type WordStore interface {
	// Create saves a new word. Returns validation errors from the domain
	// Word if the data is invalid, or ErrDuplicate if the ID already exists.
	Create(ctx context.Context, word *domain.Word) error

	// GetByID retrieves a word by its unique ID.
	// Returns ErrWordNotFound if the word does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error)

	// Exists reports whether a word with the given ID is present.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// FindNew retrieves words that have no progress record at all, meaning
	// the learner has never answered them. Level and category filters are
	// skipped when empty. Results are ordered by descending frequency rank
	// with level as an ascending tie-break, truncated to limit.
	// Returns an empty slice, not an error, when nothing matches.
	FindNew(ctx context.Context, limit int, level, category string) ([]*domain.Word, error)

	// WithTx returns a new WordStore instance bound to the given transaction.
	WithTx(tx *sql.Tx) WordStore
}
