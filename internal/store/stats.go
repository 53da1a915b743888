package store

import (
	"context"
	"database/sql"

	"github.com/Skizziik/englishapp-sub000/internal/domain"
)

// StatsStore defines the interface for daily response counters.
type StatsStore interface {
	// Increment bumps the reviewed counter and either correct or wrong for
	// the given calendar-date bucket, creating the bucket if absent.
	Increment(ctx context.Context, date string, correct bool) error

	// GetByDate retrieves the counters for a calendar date. A date with no
	// recorded responses yields a zero-valued bucket, not an error.
	GetByDate(ctx context.Context, date string) (*domain.DailyStats, error)

	// WithTx returns a new StatsStore instance bound to the given transaction.
	WithTx(tx *sql.Tx) StatsStore
}
