package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/Skizziik/englishapp-sub000/internal/domain"
)

// ProgressStore defines the interface for word progress persistence.
// The scheduler treats it as a key-value store keyed by word ID.
type ProgressStore interface {
	// Get retrieves the progress record for a word.
	// Returns ErrProgressNotFound if the learner has never answered it.
	// This method takes no row lock; do not use it inside a read-modify-write.
	Get(ctx context.Context, wordID uuid.UUID) (*domain.WordProgress, error)

	// GetForUpdate retrieves the progress record with a row-level lock on
	// backends that support one. Use inside a transaction when the record
	// will be written back.
	// Returns ErrProgressNotFound if the record does not exist.
	GetForUpdate(ctx context.Context, wordID uuid.UUID) (*domain.WordProgress, error)

	// Upsert inserts or replaces the progress record for its word.
	// It handles domain validation internally.
	// Returns ErrInvalidEntity if the word the record points at is missing.
	Upsert(ctx context.Context, progress *domain.WordProgress) error

	// FindDue retrieves words whose next review time has passed and whose
	// status is actively scheduled (learning or review; never new or
	// learned). An empty category matches every word. Results are ordered
	// by ascending next review time, oldest due first, truncated to limit.
	// Returns an empty slice, not an error, when nothing is due.
	FindDue(ctx context.Context, now time.Time, limit int, category string) ([]domain.DueWord, error)

	// WithTx returns a new ProgressStore instance bound to the given transaction.
	WithTx(tx *sql.Tx) ProgressStore
}
