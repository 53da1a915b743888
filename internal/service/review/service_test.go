package review_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skizziik/englishapp-sub000/internal/domain"
	"github.com/Skizziik/englishapp-sub000/internal/domain/srs"
	"github.com/Skizziik/englishapp-sub000/internal/mocks"
	"github.com/Skizziik/englishapp-sub000/internal/platform/clock"
	"github.com/Skizziik/englishapp-sub000/internal/platform/database"
	"github.com/Skizziik/englishapp-sub000/internal/service/review"
)

var testNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

type fixture struct {
	service  review.ReviewService
	words    *mocks.WordStore
	progress *mocks.ProgressStore
	stats    *mocks.StatsStore
}

// newFixture wires the service against mock stores. The SQLite handle only
// supplies BEGIN/COMMIT; the mocks ignore the transaction.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := database.Open(database.DriverSQLite, t.TempDir()+"/tx.db")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	f := &fixture{
		words:    mocks.NewWordStore(),
		progress: mocks.NewProgressStore(),
		stats:    mocks.NewStatsStore(),
	}
	f.service = review.NewReviewService(
		db, f.words, f.progress, f.stats,
		srs.NewDefaultService(), clock.NewFixed(testNow), nil,
	)
	return f
}

func (f *fixture) seedWord(t *testing.T, text, level, category string, rank int) *domain.Word {
	t.Helper()
	word := &domain.Word{
		ID:            uuid.New(),
		Text:          text,
		Translation:   "перевод",
		Level:         level,
		Category:      category,
		FrequencyRank: rank,
		CreatedAt:     testNow.AddDate(0, -1, 0),
	}
	require.NoError(t, f.words.Create(context.Background(), word))
	f.progress.Words[word.ID] = word
	return word
}

func TestGetDueWords(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	overdue := f.seedWord(t, "late", "A1", "core", 500)
	pending := f.seedWord(t, "soon", "A1", "core", 400)

	f.progress.Records[overdue.ID] = &domain.WordProgress{
		WordID: overdue.ID, Status: domain.StatusReview, EaseFactor: 2.5,
		Interval: 6, Repetitions: 2, NextReviewAt: testNow.AddDate(0, 0, -1),
	}
	f.progress.Records[pending.ID] = &domain.WordProgress{
		WordID: pending.ID, Status: domain.StatusLearning, EaseFactor: 2.5,
		Interval: 3, Repetitions: 1, NextReviewAt: testNow.AddDate(0, 0, 2),
	}

	due, err := f.service.GetDueWords(ctx, 10, "")
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "late", due[0].Word.Text)

	// Errors from the store are wrapped, not swallowed.
	f.progress.Err = assert.AnError
	_, err = f.service.GetDueWords(ctx, 10, "")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestGetNewWords(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	f.seedWord(t, "the", "A1", "core", 1000)
	f.seedWord(t, "house", "A2", "home", 800)

	words, err := f.service.GetNewWords(ctx, 10, "", "")
	require.NoError(t, err)
	require.Len(t, words, 2)
	assert.Equal(t, "the", words[0].Text)

	words, err = f.service.GetNewWords(ctx, 10, "A2", "")
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, "house", words[0].Text)

	f.words.Err = assert.AnError
	_, err = f.service.GetNewWords(ctx, 10, "", "")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestRecordResponseFirstTime(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	word := f.seedWord(t, "apple", "A1", "food", 900)

	updated, err := f.service.RecordResponse(ctx, word.ID, 4)
	require.NoError(t, err)

	// First passing response moves the fresh record to the second
	// learning step.
	assert.Equal(t, word.ID, updated.WordID)
	assert.Equal(t, domain.StatusLearning, updated.Status)
	assert.Equal(t, 3, updated.Interval)
	assert.Equal(t, 1, updated.Repetitions)
	assert.Equal(t, 1, updated.CorrectCount)
	assert.Equal(t, testNow.AddDate(0, 0, 3), updated.NextReviewAt)

	// The record was persisted and the day's counters bumped.
	saved, err := f.progress.Get(ctx, word.ID)
	require.NoError(t, err)
	assert.Equal(t, updated.Interval, saved.Interval)

	day, err := f.stats.GetByDate(ctx, domain.DateKey(testNow))
	require.NoError(t, err)
	assert.Equal(t, 1, day.Reviewed)
	assert.Equal(t, 1, day.Correct)
	assert.Equal(t, 0, day.Wrong)
}

func TestRecordResponseExistingRecord(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	word := f.seedWord(t, "apple", "A1", "food", 900)
	f.progress.Records[word.ID] = &domain.WordProgress{
		WordID: word.ID, Status: domain.StatusReview, EaseFactor: 2.5,
		Interval: 7, Repetitions: 2, CorrectCount: 2,
		NextReviewAt: testNow,
	}

	updated, err := f.service.RecordResponse(ctx, word.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusReview, updated.Status)
	assert.Equal(t, 18, updated.Interval)
	assert.Equal(t, 3, updated.Repetitions)
	assert.Equal(t, 3, updated.CorrectCount)
}

func TestRecordResponseFailure(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	word := f.seedWord(t, "apple", "A1", "food", 900)
	f.progress.Records[word.ID] = &domain.WordProgress{
		WordID: word.ID, Status: domain.StatusReview, EaseFactor: 2.5,
		Interval: 18, Repetitions: 3, CorrectCount: 3,
		NextReviewAt: testNow,
	}

	updated, err := f.service.RecordResponse(ctx, word.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusLearning, updated.Status)
	assert.Equal(t, 1, updated.Interval)
	assert.Equal(t, 0, updated.Repetitions)
	assert.Equal(t, 1, updated.WrongCount)
	assert.InDelta(t, 2.3, updated.EaseFactor, 1e-9)

	day, err := f.stats.GetByDate(ctx, domain.DateKey(testNow))
	require.NoError(t, err)
	assert.Equal(t, &domain.DailyStats{
		Date: domain.DateKey(testNow), Reviewed: 1, Correct: 0, Wrong: 1,
	}, day)
}

func TestRecordResponseInvalidQuality(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	word := f.seedWord(t, "apple", "A1", "food", 900)

	for _, quality := range []domain.Quality{-1, 6, 42} {
		_, err := f.service.RecordResponse(ctx, word.ID, quality)
		assert.ErrorIs(t, err, review.ErrInvalidQuality, "quality %d", quality)
	}

	// Rejected grades leave no trace.
	_, err := f.progress.Get(ctx, word.ID)
	assert.Error(t, err)
	day, err := f.stats.GetByDate(ctx, domain.DateKey(testNow))
	require.NoError(t, err)
	assert.Zero(t, day.Reviewed)
}

func TestRecordResponseUnknownWord(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.service.RecordResponse(ctx, uuid.New(), 4)
	assert.ErrorIs(t, err, review.ErrWordNotFound)

	day, err := f.stats.GetByDate(ctx, domain.DateKey(testNow))
	require.NoError(t, err)
	assert.Zero(t, day.Reviewed)
}

func TestRecordResponseUpsertFailureAborts(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	word := f.seedWord(t, "apple", "A1", "food", 900)
	f.progress.UpsertFn = func(ctx context.Context, progress *domain.WordProgress) error {
		return assert.AnError
	}

	_, err := f.service.RecordResponse(ctx, word.ID, 4)
	assert.ErrorIs(t, err, assert.AnError)

	// The stats bump never ran.
	day, err := f.stats.GetByDate(ctx, domain.DateKey(testNow))
	require.NoError(t, err)
	assert.Zero(t, day.Reviewed)
}

func TestGetTodayStats(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	// Empty day reads as zeros.
	day, err := f.service.GetTodayStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, &domain.DailyStats{Date: domain.DateKey(testNow)}, day)

	require.NoError(t, f.stats.Increment(ctx, domain.DateKey(testNow), true))
	require.NoError(t, f.stats.Increment(ctx, domain.DateKey(testNow), false))

	day, err = f.service.GetTodayStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, &domain.DailyStats{
		Date: domain.DateKey(testNow), Reviewed: 2, Correct: 1, Wrong: 1,
	}, day)
}
