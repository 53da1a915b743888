package database

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skizziik/englishapp-sub000/internal/domain"
	"github.com/Skizziik/englishapp-sub000/internal/store"
)

// openTestDB opens a migrated SQLite database backed by a per-test file.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := Open(DriverSQLite, t.TempDir()+"/test.db")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(db, DriverSQLite, nil))
	return db
}

func newStores(t *testing.T) (*WordStore, *ProgressStore, *StatsStore, *sql.DB) {
	t.Helper()
	db := openTestDB(t)
	return NewWordStore(db, DriverSQLite, nil),
		NewProgressStore(db, DriverSQLite, nil),
		NewStatsStore(db, DriverSQLite, nil),
		db
}

func testWord(text, level, category string, rank int) *domain.Word {
	return &domain.Word{
		ID:            uuid.New(),
		Text:          text,
		Translation:   "перевод",
		Level:         level,
		Category:      category,
		FrequencyRank: rank,
		CreatedAt:     time.Now().UTC().Truncate(time.Second),
	}
}

func seedWord(t *testing.T, words *WordStore, word *domain.Word) {
	t.Helper()
	require.NoError(t, words.Create(context.Background(), word))
}

func seedProgress(t *testing.T, progress *ProgressStore, p *domain.WordProgress) {
	t.Helper()
	require.NoError(t, progress.Upsert(context.Background(), p))
}

func activeProgress(wordID uuid.UUID, status domain.Status, nextReviewAt time.Time) *domain.WordProgress {
	now := time.Now().UTC().Truncate(time.Second)
	return &domain.WordProgress{
		WordID:         wordID,
		Status:         status,
		EaseFactor:     2.5,
		Interval:       3,
		Repetitions:    1,
		CorrectCount:   1,
		LastReviewedAt: now.Add(-24 * time.Hour),
		NextReviewAt:   nextReviewAt,
		CreatedAt:      now.Add(-48 * time.Hour),
		UpdatedAt:      now,
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	t.Parallel()

	_, err := Open("mysql", "dsn")
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestWordStoreCreateAndGet(t *testing.T) {
	t.Parallel()
	words, _, _, _ := newStores(t)
	ctx := context.Background()

	word := testWord("apple", "A1", "food", 950)
	require.NoError(t, words.Create(ctx, word))

	got, err := words.GetByID(ctx, word.ID)
	require.NoError(t, err)
	assert.Equal(t, word.ID, got.ID)
	assert.Equal(t, "apple", got.Text)
	assert.Equal(t, "перевод", got.Translation)
	assert.Equal(t, "A1", got.Level)
	assert.Equal(t, "food", got.Category)
	assert.Equal(t, 950, got.FrequencyRank)
	assert.WithinDuration(t, word.CreatedAt, got.CreatedAt, time.Second)

	exists, err := words.Exists(ctx, word.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestWordStoreCreateDuplicate(t *testing.T) {
	t.Parallel()
	words, _, _, _ := newStores(t)
	ctx := context.Background()

	word := testWord("apple", "A1", "food", 950)
	require.NoError(t, words.Create(ctx, word))

	err := words.Create(ctx, word)
	assert.ErrorIs(t, err, store.ErrDuplicate)
}

func TestWordStoreGetMissing(t *testing.T) {
	t.Parallel()
	words, _, _, _ := newStores(t)
	ctx := context.Background()

	_, err := words.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrWordNotFound)
	assert.ErrorIs(t, err, store.ErrNotFound)

	exists, err := words.Exists(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestWordStoreCreateInvalid(t *testing.T) {
	t.Parallel()
	words, _, _, _ := newStores(t)

	word := testWord("", "A1", "food", 10)
	err := words.Create(context.Background(), word)
	assert.ErrorIs(t, err, domain.ErrWordTextEmpty)
}

func TestWordStoreFindNew(t *testing.T) {
	t.Parallel()
	words, progress, _, _ := newStores(t)
	ctx := context.Background()

	// Three untouched words plus one already in progress.
	high := testWord("the", "A1", "core", 1000)
	mid := testWord("house", "A2", "home", 800)
	low := testWord("meticulous", "C1", "core", 50)
	seen := testWord("apple", "A1", "food", 900)
	for _, w := range []*domain.Word{low, seen, high, mid} {
		seedWord(t, words, w)
	}
	seedProgress(t, progress, activeProgress(seen.ID, domain.StatusLearning, time.Now().UTC()))

	got, err := words.FindNew(ctx, 10, "", "")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "the", got[0].Text)
	assert.Equal(t, "house", got[1].Text)
	assert.Equal(t, "meticulous", got[2].Text)

	// Level filter.
	got, err = words.FindNew(ctx, 10, "A2", "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "house", got[0].Text)

	// Category filter.
	got, err = words.FindNew(ctx, 10, "", "core")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "the", got[0].Text)

	// Limit truncates.
	got, err = words.FindNew(ctx, 1, "", "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "the", got[0].Text)

	// Selection alone records nothing; the result is stable.
	again, err := words.FindNew(ctx, 10, "", "")
	require.NoError(t, err)
	assert.Len(t, again, 3)
}

func TestProgressStoreUpsertAndGet(t *testing.T) {
	t.Parallel()
	words, progress, _, _ := newStores(t)
	ctx := context.Background()

	word := testWord("apple", "A1", "food", 900)
	seedWord(t, words, word)

	now := time.Now().UTC().Truncate(time.Second)
	p, err := domain.NewWordProgress(word.ID, 2.5, now)
	require.NoError(t, err)
	require.NoError(t, progress.Upsert(ctx, p))

	got, err := progress.Get(ctx, word.ID)
	require.NoError(t, err)
	assert.Equal(t, word.ID, got.WordID)
	assert.Equal(t, domain.StatusLearning, got.Status)
	assert.InDelta(t, 2.5, got.EaseFactor, 1e-9)
	assert.Zero(t, got.Interval)
	assert.True(t, got.LastReviewedAt.IsZero(), "never-reviewed record round-trips a zero time")

	// Second upsert replaces the scheduling state.
	updated := got.Clone()
	updated.Status = domain.StatusReview
	updated.Interval = 7
	updated.Repetitions = 2
	updated.CorrectCount = 2
	updated.LastReviewedAt = now
	updated.NextReviewAt = now.AddDate(0, 0, 7)
	updated.UpdatedAt = now
	require.NoError(t, progress.Upsert(ctx, updated))

	got, err = progress.GetForUpdate(ctx, word.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusReview, got.Status)
	assert.Equal(t, 7, got.Interval)
	assert.Equal(t, 2, got.Repetitions)
	assert.WithinDuration(t, now, got.LastReviewedAt, time.Second)
	assert.WithinDuration(t, now.AddDate(0, 0, 7), got.NextReviewAt, time.Second)
}

func TestProgressStoreGetMissing(t *testing.T) {
	t.Parallel()
	_, progress, _, _ := newStores(t)

	_, err := progress.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, store.ErrProgressNotFound)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestProgressStoreUpsertOrphan(t *testing.T) {
	t.Parallel()
	_, progress, _, _ := newStores(t)

	p, err := domain.NewWordProgress(uuid.New(), 2.5, time.Now().UTC())
	require.NoError(t, err)

	err = progress.Upsert(context.Background(), p)
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
}

func TestProgressStoreFindDue(t *testing.T) {
	t.Parallel()
	words, progress, _, _ := newStores(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	overdue := testWord("late", "A1", "core", 500)
	justDue := testWord("now", "A1", "core", 400)
	future := testWord("soon", "A1", "core", 300)
	retired := testWord("known", "A1", "core", 200)
	other := testWord("misc", "B1", "travel", 100)
	for _, w := range []*domain.Word{overdue, justDue, future, retired, other} {
		seedWord(t, words, w)
	}

	seedProgress(t, progress, activeProgress(overdue.ID, domain.StatusReview, now.Add(-48*time.Hour)))
	seedProgress(t, progress, activeProgress(justDue.ID, domain.StatusLearning, now.Add(-time.Hour)))
	seedProgress(t, progress, activeProgress(future.ID, domain.StatusLearning, now.Add(24*time.Hour)))
	seedProgress(t, progress, activeProgress(retired.ID, domain.StatusLearned, now.Add(-72*time.Hour)))
	seedProgress(t, progress, activeProgress(other.ID, domain.StatusReview, now.Add(-time.Minute)))

	due, err := progress.FindDue(ctx, now, 10, "")
	require.NoError(t, err)
	require.Len(t, due, 3, "future and learned words stay out of the queue")
	assert.Equal(t, "late", due[0].Word.Text)
	assert.Equal(t, "now", due[1].Word.Text)
	assert.Equal(t, "misc", due[2].Word.Text)
	assert.Equal(t, domain.StatusReview, due[0].Progress.Status)

	// Category filter.
	due, err = progress.FindDue(ctx, now, 10, "travel")
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "misc", due[0].Word.Text)

	// Limit keeps the oldest due first.
	due, err = progress.FindDue(ctx, now, 2, "")
	require.NoError(t, err)
	require.Len(t, due, 2)
	assert.Equal(t, "late", due[0].Word.Text)

	// Reading the queue does not consume it.
	again, err := progress.FindDue(ctx, now, 10, "")
	require.NoError(t, err)
	assert.Len(t, again, 3)
}

func TestStatsStoreIncrementAndGet(t *testing.T) {
	t.Parallel()
	_, _, stats, _ := newStores(t)
	ctx := context.Background()
	date := "2026-03-14"

	// Missing bucket reads as zeros.
	got, err := stats.GetByDate(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, &domain.DailyStats{Date: date}, got)

	require.NoError(t, stats.Increment(ctx, date, true))
	require.NoError(t, stats.Increment(ctx, date, true))
	require.NoError(t, stats.Increment(ctx, date, false))

	got, err = stats.GetByDate(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, &domain.DailyStats{Date: date, Reviewed: 3, Correct: 2, Wrong: 1}, got)

	// A different date lands in its own bucket.
	require.NoError(t, stats.Increment(ctx, "2026-03-15", false))
	next, err := stats.GetByDate(ctx, "2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, &domain.DailyStats{Date: "2026-03-15", Reviewed: 1, Correct: 0, Wrong: 1}, next)
}

func TestRunInTransactionRollsBack(t *testing.T) {
	t.Parallel()
	words, _, _, db := newStores(t)
	ctx := context.Background()

	word := testWord("apple", "A1", "food", 900)
	wantErr := assert.AnError

	err := store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
		if err := words.WithTx(tx).Create(ctx, word); err != nil {
			return err
		}
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)

	exists, err := words.Exists(ctx, word.ID)
	require.NoError(t, err)
	assert.False(t, exists, "rollback discards the insert")
}

func TestRunInTransactionCommits(t *testing.T) {
	t.Parallel()
	words, progress, stats, db := newStores(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	word := testWord("apple", "A1", "food", 900)
	seedWord(t, words, word)

	err := store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
		p, err := domain.NewWordProgress(word.ID, 2.5, now)
		if err != nil {
			return err
		}
		if err := progress.WithTx(tx).Upsert(ctx, p); err != nil {
			return err
		}
		return stats.WithTx(tx).Increment(ctx, domain.DateKey(now), true)
	})
	require.NoError(t, err)

	got, err := progress.Get(ctx, word.ID)
	require.NoError(t, err)
	assert.Equal(t, word.ID, got.WordID)

	day, err := stats.GetByDate(ctx, domain.DateKey(now))
	require.NoError(t, err)
	assert.Equal(t, 1, day.Reviewed)
}
