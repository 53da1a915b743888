package database

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Skizziik/englishapp-sub000/internal/domain"
	"github.com/Skizziik/englishapp-sub000/internal/platform/logger"
	"github.com/Skizziik/englishapp-sub000/internal/store"
)

// WordStore implements the store.WordStore interface over database/sql.
type WordStore struct {
	db     store.DBTX
	driver string
	logger *slog.Logger
}

// NewWordStore creates a new SQL-backed implementation of store.WordStore.
// The database handle is initialized and owned by the caller. If logger is
// nil, the process default is used.
func NewWordStore(db store.DBTX, driver string, log *slog.Logger) *WordStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &WordStore{
		db:     db,
		driver: driver,
		logger: log.With(slog.String("component", "word_store")),
	}
}

// Ensure WordStore implements store.WordStore interface
var _ store.WordStore = (*WordStore)(nil)

// Create implements store.WordStore.Create
func (s *WordStore) Create(ctx context.Context, word *domain.Word) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := word.Validate(); err != nil {
		log.Warn("word validation failed during create",
			slog.String("error", err.Error()),
			slog.String("word_id", word.ID.String()))
		return err
	}

	query := `
		INSERT INTO words (id, text, translation, level, category, frequency_rank, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		word.ID.String(),
		word.Text,
		word.Translation,
		word.Level,
		word.Category,
		word.FrequencyRank,
		word.CreatedAt,
	)
	if err != nil {
		log.Error("failed to create word",
			slog.String("error", err.Error()),
			slog.String("word_id", word.ID.String()))
		return mapError(err)
	}

	log.Debug("word created",
		slog.String("word_id", word.ID.String()),
		slog.String("text", word.Text))
	return nil
}

// GetByID implements store.WordStore.GetByID
func (s *WordStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, text, translation, level, category, frequency_rank, created_at
		FROM words
		WHERE id = $1
	`

	word, err := scanWord(s.db.QueryRowContext(ctx, query, id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrWordNotFound
		}
		log.Error("failed to get word by ID",
			slog.String("error", err.Error()),
			slog.String("word_id", id.String()))
		return nil, mapError(err)
	}

	return word, nil
}

// Exists implements store.WordStore.Exists
func (s *WordStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT EXISTS (SELECT 1 FROM words WHERE id = $1)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, id.String()).Scan(&exists); err != nil {
		log.Error("failed to check word existence",
			slog.String("error", err.Error()),
			slog.String("word_id", id.String()))
		return false, mapError(err)
	}

	return exists, nil
}

// FindNew implements store.WordStore.FindNew
// The anti-join against word_progress selects words the learner has never
// answered; an empty filter string matches everything.
func (s *WordStore) FindNew(
	ctx context.Context,
	limit int,
	level, category string,
) ([]*domain.Word, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if limit <= 0 {
		limit = defaultSelectionLimit
	}

	query := `
		SELECT w.id, w.text, w.translation, w.level, w.category, w.frequency_rank, w.created_at
		FROM words w
		LEFT JOIN word_progress p ON p.word_id = w.id
		WHERE p.word_id IS NULL
		  AND ($2 = '' OR w.level = $2)
		  AND ($3 = '' OR w.category = $3)
		ORDER BY w.frequency_rank DESC, w.level ASC
		LIMIT $1
	`

	rows, err := s.db.QueryContext(ctx, query, limit, level, category)
	if err != nil {
		log.Error("failed to query new words",
			slog.String("error", err.Error()),
			slog.String("level", level),
			slog.String("category", category))
		return nil, mapError(err)
	}
	defer closeRows(rows, log)

	words := []*domain.Word{}
	for rows.Next() {
		word, err := scanWord(rows)
		if err != nil {
			log.Error("failed to scan word row", slog.String("error", err.Error()))
			return nil, mapError(err)
		}
		words = append(words, word)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}

	log.Debug("found new words",
		slog.Int("count", len(words)),
		slog.String("level", level),
		slog.String("category", category))
	return words, nil
}

// WithTx implements store.WordStore.WithTx
func (s *WordStore) WithTx(tx *sql.Tx) store.WordStore {
	return &WordStore{
		db:     tx,
		driver: s.driver,
		logger: s.logger,
	}
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanWord(row rowScanner) (*domain.Word, error) {
	var word domain.Word
	var id string

	err := row.Scan(
		&id,
		&word.Text,
		&word.Translation,
		&word.Level,
		&word.Category,
		&word.FrequencyRank,
		&word.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	word.ID = parsed

	return &word, nil
}

func closeRows(rows *sql.Rows, log *slog.Logger) {
	if err := rows.Close(); err != nil {
		log.Error("failed to close rows", slog.String("error", err.Error()))
	}
}
