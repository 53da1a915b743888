package review

import (
	"context"

	"github.com/google/uuid"

	"github.com/Skizziik/englishapp-sub000/internal/domain"
)

// MockReviewService is a mock implementation of the ReviewService interface
// for testing handlers without a database.
type MockReviewService struct {
	GetDueWordsFunc    func(ctx context.Context, limit int, category string) ([]domain.DueWord, error)
	GetNewWordsFunc    func(ctx context.Context, limit int, level, category string) ([]*domain.Word, error)
	RecordResponseFunc func(ctx context.Context, wordID uuid.UUID, quality domain.Quality) (*domain.WordProgress, error)
	GetTodayStatsFunc  func(ctx context.Context) (*domain.DailyStats, error)
}

var _ ReviewService = (*MockReviewService)(nil)

// GetDueWords returns the queue of words due for review.
func (m *MockReviewService) GetDueWords(
	ctx context.Context,
	limit int,
	category string,
) ([]domain.DueWord, error) {
	if m.GetDueWordsFunc != nil {
		return m.GetDueWordsFunc(ctx, limit, category)
	}
	return nil, nil
}

// GetNewWords returns words the learner has never answered.
func (m *MockReviewService) GetNewWords(
	ctx context.Context,
	limit int,
	level, category string,
) ([]*domain.Word, error) {
	if m.GetNewWordsFunc != nil {
		return m.GetNewWordsFunc(ctx, limit, level, category)
	}
	return nil, nil
}

// RecordResponse grades a response and returns the updated progress record.
func (m *MockReviewService) RecordResponse(
	ctx context.Context,
	wordID uuid.UUID,
	quality domain.Quality,
) (*domain.WordProgress, error) {
	if m.RecordResponseFunc != nil {
		return m.RecordResponseFunc(ctx, wordID, quality)
	}
	return nil, nil
}

// GetTodayStats returns the current day's response counters.
func (m *MockReviewService) GetTodayStats(ctx context.Context) (*domain.DailyStats, error) {
	if m.GetTodayStatsFunc != nil {
		return m.GetTodayStatsFunc(ctx)
	}
	return nil, nil
}
