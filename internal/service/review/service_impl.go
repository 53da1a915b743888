package review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Skizziik/englishapp-sub000/internal/domain"
	"github.com/Skizziik/englishapp-sub000/internal/domain/srs"
	"github.com/Skizziik/englishapp-sub000/internal/platform/clock"
	"github.com/Skizziik/englishapp-sub000/internal/platform/logger"
	"github.com/Skizziik/englishapp-sub000/internal/store"
)

// Verify interface compliance at compile time
var _ ReviewService = (*reviewServiceImpl)(nil)

// reviewServiceImpl implements the ReviewService interface.
type reviewServiceImpl struct {
	db       *sql.DB
	words    store.WordStore
	progress store.ProgressStore
	stats    store.StatsStore
	srs      srs.Service
	clock    clock.Clock
	logger   *slog.Logger
}

// NewReviewService creates a new ReviewService implementation. The db handle
// is used to open the transaction that RecordResponse runs in; the stores
// must be bound to the same database. If logger is nil, the process default
// is used.
func NewReviewService(
	db *sql.DB,
	words store.WordStore,
	progress store.ProgressStore,
	stats store.StatsStore,
	srsService srs.Service,
	clk clock.Clock,
	log *slog.Logger,
) ReviewService {
	if words == nil {
		panic("words store cannot be nil")
	}
	if progress == nil {
		panic("progress store cannot be nil")
	}
	if stats == nil {
		panic("stats store cannot be nil")
	}
	if srsService == nil {
		panic("srs service cannot be nil")
	}
	if clk == nil {
		clk = clock.NewSystem()
	}
	if log == nil {
		log = slog.Default()
	}

	return &reviewServiceImpl{
		db:       db,
		words:    words,
		progress: progress,
		stats:    stats,
		srs:      srsService,
		clock:    clk,
		logger:   log.With(slog.String("component", "review_service")),
	}
}

// GetDueWords implements ReviewService.GetDueWords.
func (s *reviewServiceImpl) GetDueWords(
	ctx context.Context,
	limit int,
	category string,
) ([]domain.DueWord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	now := s.clock.Now()
	due, err := s.progress.FindDue(ctx, now, limit, category)
	if err != nil {
		log.Error("failed to get due words",
			slog.String("error", err.Error()),
			slog.String("category", category))
		return nil, fmt.Errorf("failed to get due words: %w", err)
	}

	log.Debug("retrieved due words",
		slog.Int("count", len(due)),
		slog.String("category", category))
	return due, nil
}

// GetNewWords implements ReviewService.GetNewWords.
func (s *reviewServiceImpl) GetNewWords(
	ctx context.Context,
	limit int,
	level, category string,
) ([]*domain.Word, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	words, err := s.words.FindNew(ctx, limit, level, category)
	if err != nil {
		log.Error("failed to get new words",
			slog.String("error", err.Error()),
			slog.String("level", level),
			slog.String("category", category))
		return nil, fmt.Errorf("failed to get new words: %w", err)
	}

	log.Debug("retrieved new words",
		slog.Int("count", len(words)),
		slog.String("level", level),
		slog.String("category", category))
	return words, nil
}

// RecordResponse implements ReviewService.RecordResponse.
func (s *reviewServiceImpl) RecordResponse(
	ctx context.Context,
	wordID uuid.UUID,
	quality domain.Quality,
) (*domain.WordProgress, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("recording response",
		slog.String("word_id", wordID.String()),
		slog.Int("quality", int(quality)))

	if !quality.IsValid() {
		log.Warn("invalid quality grade",
			slog.String("word_id", wordID.String()),
			slog.Int("quality", int(quality)))
		return nil, ErrInvalidQuality
	}

	// One timestamp for the whole update: schedule math, counters, and the
	// stats bucket all see the same instant.
	now := s.clock.Now()

	var updated *domain.WordProgress
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		words := s.words.WithTx(tx)
		progress := s.progress.WithTx(tx)
		stats := s.stats.WithTx(tx)

		exists, err := words.Exists(ctx, wordID)
		if err != nil {
			return fmt.Errorf("failed to check word existence: %w", err)
		}
		if !exists {
			return ErrWordNotFound
		}

		// A missing record just means a first response; a nil current
		// record makes the scheduler synthesize one.
		current, err := progress.GetForUpdate(ctx, wordID)
		if err != nil && !errors.Is(err, store.ErrProgressNotFound) {
			return fmt.Errorf("failed to get word progress: %w", err)
		}

		updated, err = s.srs.RecordResponse(current, wordID, quality, now)
		if err != nil {
			return fmt.Errorf("failed to compute next schedule: %w", err)
		}

		if err := progress.Upsert(ctx, updated); err != nil {
			return fmt.Errorf("failed to save word progress: %w", err)
		}

		if err := stats.Increment(ctx, domain.DateKey(now), quality.IsCorrect()); err != nil {
			return fmt.Errorf("failed to update daily stats: %w", err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrWordNotFound) {
			log.Warn("word not found for response",
				slog.String("word_id", wordID.String()))
			return nil, ErrWordNotFound
		}
		log.Error("failed to record response",
			slog.String("error", err.Error()),
			slog.String("word_id", wordID.String()))
		return nil, err
	}

	log.Debug("response recorded",
		slog.String("word_id", wordID.String()),
		slog.String("status", string(updated.Status)),
		slog.Int("interval_days", updated.Interval),
		slog.Int("repetitions", updated.Repetitions))
	return updated, nil
}

// GetTodayStats implements ReviewService.GetTodayStats.
func (s *reviewServiceImpl) GetTodayStats(ctx context.Context) (*domain.DailyStats, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	date := domain.DateKey(s.clock.Now())
	stats, err := s.stats.GetByDate(ctx, date)
	if err != nil {
		log.Error("failed to get daily stats",
			slog.String("error", err.Error()),
			slog.String("date", date))
		return nil, fmt.Errorf("failed to get daily stats: %w", err)
	}

	return stats, nil
}
