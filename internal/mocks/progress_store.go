package mocks

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/Skizziik/englishapp-sub000/internal/domain"
	"github.com/Skizziik/englishapp-sub000/internal/store"
)

// ProgressStore implements store.ProgressStore for testing
type ProgressStore struct {
	// Function fields for customizable behavior
	GetFn          func(ctx context.Context, wordID uuid.UUID) (*domain.WordProgress, error)
	GetForUpdateFn func(ctx context.Context, wordID uuid.UUID) (*domain.WordProgress, error)
	UpsertFn       func(ctx context.Context, progress *domain.WordProgress) error
	FindDueFn      func(ctx context.Context, now time.Time, limit int, category string) ([]domain.DueWord, error)

	// Data for the default implementation
	Records map[uuid.UUID]*domain.WordProgress
	// Words backs the DueWord pairs returned by the default FindDue.
	Words map[uuid.UUID]*domain.Word
	Err   error
}

// NewProgressStore creates a new mock store with initialized defaults
func NewProgressStore() *ProgressStore {
	return &ProgressStore{
		Records: make(map[uuid.UUID]*domain.WordProgress),
		Words:   make(map[uuid.UUID]*domain.Word),
	}
}

// Ensure ProgressStore implements store.ProgressStore interface
var _ store.ProgressStore = (*ProgressStore)(nil)

// Get implements the store.ProgressStore interface
func (m *ProgressStore) Get(ctx context.Context, wordID uuid.UUID) (*domain.WordProgress, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, wordID)
	}
	return m.lookup(wordID)
}

// GetForUpdate implements the store.ProgressStore interface
func (m *ProgressStore) GetForUpdate(ctx context.Context, wordID uuid.UUID) (*domain.WordProgress, error) {
	if m.GetForUpdateFn != nil {
		return m.GetForUpdateFn(ctx, wordID)
	}
	return m.lookup(wordID)
}

func (m *ProgressStore) lookup(wordID uuid.UUID) (*domain.WordProgress, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	record, exists := m.Records[wordID]
	if !exists {
		return nil, store.ErrProgressNotFound
	}
	return record.Clone(), nil
}

// Upsert implements the store.ProgressStore interface
func (m *ProgressStore) Upsert(ctx context.Context, progress *domain.WordProgress) error {
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, progress)
	}
	if m.Err != nil {
		return m.Err
	}

	if err := progress.Validate(); err != nil {
		return err
	}
	m.Records[progress.WordID] = progress.Clone()
	return nil
}

// FindDue implements the store.ProgressStore interface
func (m *ProgressStore) FindDue(
	ctx context.Context,
	now time.Time,
	limit int,
	category string,
) ([]domain.DueWord, error) {
	if m.FindDueFn != nil {
		return m.FindDueFn(ctx, now, limit, category)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	due := []domain.DueWord{}
	for wordID, record := range m.Records {
		if !record.Status.IsActive() || record.NextReviewAt.After(now) {
			continue
		}
		word := m.Words[wordID]
		if word == nil {
			continue
		}
		if category != "" && word.Category != category {
			continue
		}
		due = append(due, domain.DueWord{Word: word, Progress: record.Clone()})
	}
	sort.Slice(due, func(i, j int) bool {
		return due[i].Progress.NextReviewAt.Before(due[j].Progress.NextReviewAt)
	})
	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due, nil
}

// WithTx implements the store.ProgressStore interface. The mock has no real
// transactions, so it returns itself.
func (m *ProgressStore) WithTx(tx *sql.Tx) store.ProgressStore {
	return m
}
