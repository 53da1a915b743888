package database

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Skizziik/englishapp-sub000/internal/domain"
	"github.com/Skizziik/englishapp-sub000/internal/platform/logger"
	"github.com/Skizziik/englishapp-sub000/internal/store"
)

// progressColumns is the column list shared by every progress select.
const progressColumns = `word_id, status, ease_factor, interval_days, repetitions,
		correct_count, wrong_count, last_reviewed_at, next_review_at, created_at, updated_at`

// ProgressStore implements the store.ProgressStore interface over database/sql.
type ProgressStore struct {
	db     store.DBTX
	driver string
	logger *slog.Logger
}

// NewProgressStore creates a new SQL-backed implementation of
// store.ProgressStore. If logger is nil, the process default is used.
func NewProgressStore(db store.DBTX, driver string, log *slog.Logger) *ProgressStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &ProgressStore{
		db:     db,
		driver: driver,
		logger: log.With(slog.String("component", "progress_store")),
	}
}

// Ensure ProgressStore implements store.ProgressStore interface
var _ store.ProgressStore = (*ProgressStore)(nil)

// Get implements store.ProgressStore.Get
func (s *ProgressStore) Get(ctx context.Context, wordID uuid.UUID) (*domain.WordProgress, error) {
	return s.get(ctx, wordID, false)
}

// GetForUpdate implements store.ProgressStore.GetForUpdate
func (s *ProgressStore) GetForUpdate(ctx context.Context, wordID uuid.UUID) (*domain.WordProgress, error) {
	return s.get(ctx, wordID, true)
}

func (s *ProgressStore) get(ctx context.Context, wordID uuid.UUID, forUpdate bool) (*domain.WordProgress, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + progressColumns + `
		FROM word_progress
		WHERE word_id = $1
	`
	if forUpdate {
		query += rowLockClause(s.driver)
	}

	progress, err := scanProgress(s.db.QueryRowContext(ctx, query, wordID.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrProgressNotFound
		}
		log.Error("failed to get word progress",
			slog.String("error", err.Error()),
			slog.String("word_id", wordID.String()))
		return nil, mapError(err)
	}

	return progress, nil
}

// Upsert implements store.ProgressStore.Upsert
func (s *ProgressStore) Upsert(ctx context.Context, progress *domain.WordProgress) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := progress.Validate(); err != nil {
		log.Warn("progress validation failed during upsert",
			slog.String("error", err.Error()),
			slog.String("word_id", progress.WordID.String()))
		return err
	}

	var lastReviewedAt sql.NullTime
	if !progress.LastReviewedAt.IsZero() {
		lastReviewedAt = sql.NullTime{Time: progress.LastReviewedAt, Valid: true}
	}

	query := `
		INSERT INTO word_progress (word_id, status, ease_factor, interval_days, repetitions,
			correct_count, wrong_count, last_reviewed_at, next_review_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (word_id) DO UPDATE SET
			status = excluded.status,
			ease_factor = excluded.ease_factor,
			interval_days = excluded.interval_days,
			repetitions = excluded.repetitions,
			correct_count = excluded.correct_count,
			wrong_count = excluded.wrong_count,
			last_reviewed_at = excluded.last_reviewed_at,
			next_review_at = excluded.next_review_at,
			updated_at = excluded.updated_at
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		progress.WordID.String(),
		string(progress.Status),
		progress.EaseFactor,
		progress.Interval,
		progress.Repetitions,
		progress.CorrectCount,
		progress.WrongCount,
		lastReviewedAt,
		progress.NextReviewAt,
		progress.CreatedAt,
		progress.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to upsert word progress",
			slog.String("error", err.Error()),
			slog.String("word_id", progress.WordID.String()))
		return mapError(err)
	}

	log.Debug("word progress upserted",
		slog.String("word_id", progress.WordID.String()),
		slog.String("status", string(progress.Status)),
		slog.Int("interval_days", progress.Interval))
	return nil
}

// FindDue implements store.ProgressStore.FindDue
func (s *ProgressStore) FindDue(
	ctx context.Context,
	now time.Time,
	limit int,
	category string,
) ([]domain.DueWord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if limit <= 0 {
		limit = defaultSelectionLimit
	}

	query := `
		SELECT w.id, w.text, w.translation, w.level, w.category, w.frequency_rank, w.created_at,
			p.word_id, p.status, p.ease_factor, p.interval_days, p.repetitions,
			p.correct_count, p.wrong_count, p.last_reviewed_at, p.next_review_at,
			p.created_at, p.updated_at
		FROM word_progress p
		JOIN words w ON w.id = p.word_id
		WHERE p.next_review_at <= $1
		  AND p.status IN ('learning', 'review')
		  AND ($3 = '' OR w.category = $3)
		ORDER BY p.next_review_at ASC
		LIMIT $2
	`

	rows, err := s.db.QueryContext(ctx, query, now.UTC(), limit, category)
	if err != nil {
		log.Error("failed to query due words",
			slog.String("error", err.Error()),
			slog.String("category", category))
		return nil, mapError(err)
	}
	defer closeRows(rows, log)

	due := []domain.DueWord{}
	for rows.Next() {
		item, err := scanDueWord(rows)
		if err != nil {
			log.Error("failed to scan due word row", slog.String("error", err.Error()))
			return nil, mapError(err)
		}
		due = append(due, item)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}

	log.Debug("found due words",
		slog.Int("count", len(due)),
		slog.String("category", category))
	return due, nil
}

// WithTx implements store.ProgressStore.WithTx
func (s *ProgressStore) WithTx(tx *sql.Tx) store.ProgressStore {
	return &ProgressStore{
		db:     tx,
		driver: s.driver,
		logger: s.logger,
	}
}

func scanProgress(row rowScanner) (*domain.WordProgress, error) {
	var progress domain.WordProgress
	var wordID, status string
	var lastReviewedAt sql.NullTime

	err := row.Scan(
		&wordID,
		&status,
		&progress.EaseFactor,
		&progress.Interval,
		&progress.Repetitions,
		&progress.CorrectCount,
		&progress.WrongCount,
		&lastReviewedAt,
		&progress.NextReviewAt,
		&progress.CreatedAt,
		&progress.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	parsed, err := uuid.Parse(wordID)
	if err != nil {
		return nil, err
	}
	progress.WordID = parsed
	progress.Status = domain.Status(status)
	if lastReviewedAt.Valid {
		progress.LastReviewedAt = lastReviewedAt.Time
	}

	return &progress, nil
}

func scanDueWord(rows *sql.Rows) (domain.DueWord, error) {
	var word domain.Word
	var progress domain.WordProgress
	var wordID, progressWordID, status string
	var lastReviewedAt sql.NullTime

	err := rows.Scan(
		&wordID,
		&word.Text,
		&word.Translation,
		&word.Level,
		&word.Category,
		&word.FrequencyRank,
		&word.CreatedAt,
		&progressWordID,
		&status,
		&progress.EaseFactor,
		&progress.Interval,
		&progress.Repetitions,
		&progress.CorrectCount,
		&progress.WrongCount,
		&lastReviewedAt,
		&progress.NextReviewAt,
		&progress.CreatedAt,
		&progress.UpdatedAt,
	)
	if err != nil {
		return domain.DueWord{}, err
	}

	parsed, err := uuid.Parse(wordID)
	if err != nil {
		return domain.DueWord{}, err
	}
	word.ID = parsed
	progress.WordID = parsed
	progress.Status = domain.Status(status)
	if lastReviewedAt.Valid {
		progress.LastReviewedAt = lastReviewedAt.Time
	}

	return domain.DueWord{Word: &word, Progress: &progress}, nil
}
