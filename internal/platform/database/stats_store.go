package database

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/Skizziik/englishapp-sub000/internal/domain"
	"github.com/Skizziik/englishapp-sub000/internal/platform/logger"
	"github.com/Skizziik/englishapp-sub000/internal/store"
)

// StatsStore implements the store.StatsStore interface over database/sql.
type StatsStore struct {
	db     store.DBTX
	driver string
	logger *slog.Logger
}

// NewStatsStore creates a new SQL-backed implementation of store.StatsStore.
// If logger is nil, the process default is used.
func NewStatsStore(db store.DBTX, driver string, log *slog.Logger) *StatsStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &StatsStore{
		db:     db,
		driver: driver,
		logger: log.With(slog.String("component", "stats_store")),
	}
}

// Ensure StatsStore implements store.StatsStore interface
var _ store.StatsStore = (*StatsStore)(nil)

// Increment implements store.StatsStore.Increment
// The counter bump rides on the conflict branch so concurrent responses
// never lose updates.
func (s *StatsStore) Increment(ctx context.Context, date string, correct bool) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	correctDelta := 0
	wrongDelta := 0
	if correct {
		correctDelta = 1
	} else {
		wrongDelta = 1
	}

	query := `
		INSERT INTO daily_stats (date, reviewed, correct, wrong)
		VALUES ($1, 1, $2, $3)
		ON CONFLICT (date) DO UPDATE SET
			reviewed = daily_stats.reviewed + 1,
			correct = daily_stats.correct + excluded.correct,
			wrong = daily_stats.wrong + excluded.wrong
	`
	_, err := s.db.ExecContext(ctx, query, date, correctDelta, wrongDelta)
	if err != nil {
		log.Error("failed to increment daily stats",
			slog.String("error", err.Error()),
			slog.String("date", date))
		return mapError(err)
	}

	return nil
}

// GetByDate implements store.StatsStore.GetByDate
func (s *StatsStore) GetByDate(ctx context.Context, date string) (*domain.DailyStats, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT date, reviewed, correct, wrong
		FROM daily_stats
		WHERE date = $1
	`

	var stats domain.DailyStats
	err := s.db.QueryRowContext(ctx, query, date).Scan(
		&stats.Date,
		&stats.Reviewed,
		&stats.Correct,
		&stats.Wrong,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// No responses recorded that day; an empty bucket is a
			// normal answer, not an error.
			return &domain.DailyStats{Date: date}, nil
		}
		log.Error("failed to get daily stats",
			slog.String("error", err.Error()),
			slog.String("date", date))
		return nil, mapError(err)
	}

	return &stats, nil
}

// WithTx implements store.StatsStore.WithTx
func (s *StatsStore) WithTx(tx *sql.Tx) store.StatsStore {
	return &StatsStore{
		db:     tx,
		driver: s.driver,
		logger: s.logger,
	}
}
