package mocks

import (
	"context"
	"database/sql"
	"sort"

	"github.com/google/uuid"

	"github.com/Skizziik/englishapp-sub000/internal/domain"
	"github.com/Skizziik/englishapp-sub000/internal/store"
)

// WordStore implements store.WordStore for testing
type WordStore struct {
	// Function fields for customizable behavior
	CreateFn  func(ctx context.Context, word *domain.Word) error
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	ExistsFn  func(ctx context.Context, id uuid.UUID) (bool, error)
	FindNewFn func(ctx context.Context, limit int, level, category string) ([]*domain.Word, error)

	// Data for the default implementation
	Words map[uuid.UUID]*domain.Word
	// Progress marks words that should be excluded from FindNew, mirroring
	// the anti-join against the progress table.
	Progress map[uuid.UUID]bool
	Err      error
}

// NewWordStore creates a new mock store with initialized defaults
func NewWordStore() *WordStore {
	return &WordStore{
		Words:    make(map[uuid.UUID]*domain.Word),
		Progress: make(map[uuid.UUID]bool),
	}
}

// Ensure WordStore implements store.WordStore interface
var _ store.WordStore = (*WordStore)(nil)

// Create implements the store.WordStore interface
func (m *WordStore) Create(ctx context.Context, word *domain.Word) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, word)
	}
	if m.Err != nil {
		return m.Err
	}

	if _, exists := m.Words[word.ID]; exists {
		return store.ErrDuplicate
	}
	m.Words[word.ID] = word
	return nil
}

// GetByID implements the store.WordStore interface
func (m *WordStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	word, exists := m.Words[id]
	if !exists {
		return nil, store.ErrWordNotFound
	}
	return word, nil
}

// Exists implements the store.WordStore interface
func (m *WordStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, id)
	}
	if m.Err != nil {
		return false, m.Err
	}

	_, exists := m.Words[id]
	return exists, nil
}

// FindNew implements the store.WordStore interface
func (m *WordStore) FindNew(
	ctx context.Context,
	limit int,
	level, category string,
) ([]*domain.Word, error) {
	if m.FindNewFn != nil {
		return m.FindNewFn(ctx, limit, level, category)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	matches := []*domain.Word{}
	for id, word := range m.Words {
		if m.Progress[id] {
			continue
		}
		if level != "" && word.Level != level {
			continue
		}
		if category != "" && word.Category != category {
			continue
		}
		matches = append(matches, word)
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].FrequencyRank != matches[j].FrequencyRank {
			return matches[i].FrequencyRank > matches[j].FrequencyRank
		}
		return matches[i].Level < matches[j].Level
	})
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

// WithTx implements the store.WordStore interface. The mock has no real
// transactions, so it returns itself.
func (m *WordStore) WithTx(tx *sql.Tx) store.WordStore {
	return m
}
