package mocks

import (
	"context"
	"database/sql"

	"github.com/Skizziik/englishapp-sub000/internal/domain"
	"github.com/Skizziik/englishapp-sub000/internal/store"
)

// StatsStore implements store.StatsStore for testing
type StatsStore struct {
	// Function fields for customizable behavior
	IncrementFn func(ctx context.Context, date string, correct bool) error
	GetByDateFn func(ctx context.Context, date string) (*domain.DailyStats, error)

	// Data for the default implementation
	Buckets map[string]*domain.DailyStats
	Err     error
}

// NewStatsStore creates a new mock store with initialized defaults
func NewStatsStore() *StatsStore {
	return &StatsStore{
		Buckets: make(map[string]*domain.DailyStats),
	}
}

// Ensure StatsStore implements store.StatsStore interface
var _ store.StatsStore = (*StatsStore)(nil)

// Increment implements the store.StatsStore interface
func (m *StatsStore) Increment(ctx context.Context, date string, correct bool) error {
	if m.IncrementFn != nil {
		return m.IncrementFn(ctx, date, correct)
	}
	if m.Err != nil {
		return m.Err
	}

	bucket, exists := m.Buckets[date]
	if !exists {
		bucket = &domain.DailyStats{Date: date}
		m.Buckets[date] = bucket
	}
	bucket.Reviewed++
	if correct {
		bucket.Correct++
	} else {
		bucket.Wrong++
	}
	return nil
}

// GetByDate implements the store.StatsStore interface
func (m *StatsStore) GetByDate(ctx context.Context, date string) (*domain.DailyStats, error) {
	if m.GetByDateFn != nil {
		return m.GetByDateFn(ctx, date)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	bucket, exists := m.Buckets[date]
	if !exists {
		return &domain.DailyStats{Date: date}, nil
	}
	copied := *bucket
	return &copied, nil
}

// WithTx implements the store.StatsStore interface. The mock has no real
// transactions, so it returns itself.
func (m *StatsStore) WithTx(tx *sql.Tx) store.StatsStore {
	return m
}
