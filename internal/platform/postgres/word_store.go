package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/wordtrail/wordtrail-api/internal/domain"
	"github.com/wordtrail/wordtrail-api/internal/platform/logger"
	"github.com/wordtrail/wordtrail-api/internal/store"
)

// PostgresWordStore implements the store.WordStore interface
// using a PostgreSQL database as the storage backend.
type PostgresWordStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresWordStore creates a new PostgreSQL implementation of the
// WordStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller. If logger is nil, a
// default logger will be used.
func NewPostgresWordStore(db store.DBTX, logger *slog.Logger) *PostgresWordStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresWordStore{
		db:     db,
		logger: logger.With(slog.String("component", "word_store")),
	}
}

// Ensure PostgresWordStore implements store.WordStore interface
var _ store.WordStore = (*PostgresWordStore)(nil)

// WithTx implements store.WordStore.WithTx
func (s *PostgresWordStore) WithTx(tx *sql.Tx) store.WordStore {
	return &PostgresWordStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.WordStore.Create
// It saves a new word to the database, handling domain validation and
// attribute serialization.
func (s *PostgresWordStore) Create(ctx context.Context, word *domain.Word) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := word.Validate(); err != nil {
		log.Warn("word validation failed during create",
			slog.String("error", err.Error()),
			slog.String("word_id", word.ID.String()))
		return err
	}

	attrs, err := marshalAttributes(word.Attributes)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO words (id, native_text, transliteration, translation, attributes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		word.ID,
		word.NativeText,
		word.Transliteration,
		word.Translation,
		attrs,
		word.CreatedAt,
		word.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to create word",
			slog.String("error", err.Error()),
			slog.String("word_id", word.ID.String()))
		return MapError(err)
	}

	log.Debug("word created",
		slog.String("word_id", word.ID.String()),
		slog.String("native_text", word.NativeText))
	return nil
}

// GetByID implements store.WordStore.GetByID
// Returns store.ErrWordNotFound if the word does not exist.
func (s *PostgresWordStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, native_text, transliteration, translation, attributes, created_at, updated_at
		FROM words
		WHERE id = $1
	`

	word, err := scanWord(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("word not found", slog.String("word_id", id.String()))
			return nil, store.ErrWordNotFound
		}
		log.Error("failed to get word by ID",
			slog.String("error", err.Error()),
			slog.String("word_id", id.String()))
		return nil, err
	}

	return word, nil
}

// List implements store.WordStore.List
// Each returned word carries its review counters, computed from the review
// ledger in the same query.
func (s *PostgresWordStore) List(ctx context.Context, req store.PageRequest) (store.Page[store.WordWithStats], error) {
	var empty store.Page[store.WordWithStats]

	if err := req.Validate(); err != nil {
		return empty, err
	}

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM words`).Scan(&total); err != nil {
		return empty, fmt.Errorf("failed to count words: %w", err)
	}

	query := `
		SELECT w.id, w.native_text, w.transliteration, w.translation, w.attributes,
		       w.created_at, w.updated_at,
		       COUNT(r.id) FILTER (WHERE r.correct)     AS correct_count,
		       COUNT(r.id) FILTER (WHERE NOT r.correct) AS wrong_count
		FROM words w
		LEFT JOIN word_review_items r ON r.word_id = w.id
		GROUP BY w.id
		ORDER BY w.native_text, w.id
		LIMIT $1 OFFSET $2
	`

	items, err := s.queryWordsWithStats(ctx, query, req.PageSize, req.Offset())
	if err != nil {
		return empty, err
	}

	return store.NewPage(items, req, total), nil
}

// ListByGroup implements store.WordStore.ListByGroup
// Returns store.ErrGroupNotFound if the group does not exist.
func (s *PostgresWordStore) ListByGroup(
	ctx context.Context,
	groupID uuid.UUID,
	req store.PageRequest,
) (store.Page[store.WordWithStats], error) {
	var empty store.Page[store.WordWithStats]

	if err := req.Validate(); err != nil {
		return empty, err
	}

	var exists bool
	if err := s.db.QueryRowContext(
		ctx, `SELECT EXISTS (SELECT 1 FROM groups WHERE id = $1)`, groupID,
	).Scan(&exists); err != nil {
		return empty, fmt.Errorf("failed to check group existence: %w", err)
	}
	if !exists {
		return empty, store.ErrGroupNotFound
	}

	var total int
	if err := s.db.QueryRowContext(
		ctx, `SELECT COUNT(*) FROM word_group_memberships WHERE group_id = $1`, groupID,
	).Scan(&total); err != nil {
		return empty, fmt.Errorf("failed to count group words: %w", err)
	}

	query := `
		SELECT w.id, w.native_text, w.transliteration, w.translation, w.attributes,
		       w.created_at, w.updated_at,
		       COUNT(r.id) FILTER (WHERE r.correct)     AS correct_count,
		       COUNT(r.id) FILTER (WHERE NOT r.correct) AS wrong_count
		FROM words w
		JOIN word_group_memberships m ON m.word_id = w.id AND m.group_id = $1
		LEFT JOIN word_review_items r ON r.word_id = w.id
		GROUP BY w.id
		ORDER BY w.native_text, w.id
		LIMIT $2 OFFSET $3
	`

	rows, err := s.db.QueryContext(ctx, query, groupID, req.PageSize, req.Offset())
	if err != nil {
		return empty, fmt.Errorf("failed to query group words: %w", err)
	}
	items, err := collectWordsWithStats(rows)
	if err != nil {
		return empty, err
	}

	return store.NewPage(items, req, total), nil
}

// GetStats implements store.WordStore.GetStats
// The counters are recomputed from the ledger on every call; nothing is
// cached. Returns store.ErrWordNotFound if the word does not exist.
func (s *PostgresWordStore) GetStats(ctx context.Context, id uuid.UUID) (domain.WordStats, error) {
	var stats domain.WordStats

	var exists bool
	if err := s.db.QueryRowContext(
		ctx, `SELECT EXISTS (SELECT 1 FROM words WHERE id = $1)`, id,
	).Scan(&exists); err != nil {
		return stats, fmt.Errorf("failed to check word existence: %w", err)
	}
	if !exists {
		return stats, store.ErrWordNotFound
	}

	query := `
		SELECT COUNT(*) FILTER (WHERE correct), COUNT(*) FILTER (WHERE NOT correct)
		FROM word_review_items
		WHERE word_id = $1
	`
	if err := s.db.QueryRowContext(ctx, query, id).Scan(&stats.CorrectCount, &stats.WrongCount); err != nil {
		return stats, fmt.Errorf("failed to count word reviews: %w", err)
	}

	return stats, nil
}

// UpdateAttributes implements store.WordStore.UpdateAttributes
// Only the attribute tags may change; the text fields are immutable.
func (s *PostgresWordStore) UpdateAttributes(
	ctx context.Context,
	id uuid.UUID,
	attrs *domain.WordAttributes,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	raw, err := marshalAttributes(attrs)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(
		ctx,
		`UPDATE words SET attributes = $1, updated_at = $2 WHERE id = $3`,
		raw,
		time.Now().UTC(),
		id,
	)
	if err != nil {
		log.Error("failed to update word attributes",
			slog.String("error", err.Error()),
			slog.String("word_id", id.String()))
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrWordNotFound)
}

func (s *PostgresWordStore) queryWordsWithStats(
	ctx context.Context,
	query string,
	args ...any,
) ([]store.WordWithStats, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query words: %w", err)
	}
	return collectWordsWithStats(rows)
}

func collectWordsWithStats(rows *sql.Rows) ([]store.WordWithStats, error) {
	defer func() { _ = rows.Close() }()

	items := []store.WordWithStats{}
	for rows.Next() {
		var item store.WordWithStats
		var attrs []byte

		err := rows.Scan(
			&item.ID,
			&item.NativeText,
			&item.Transliteration,
			&item.Translation,
			&attrs,
			&item.CreatedAt,
			&item.UpdatedAt,
			&item.Stats.CorrectCount,
			&item.Stats.WrongCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan word row: %w", err)
		}

		if item.Attributes, err = unmarshalAttributes(attrs); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after scanning word rows: %w", err)
	}

	return items, nil
}

// scanWord reads a single word row in column order
// (id, native_text, transliteration, translation, attributes, created_at, updated_at).
func scanWord(row *sql.Row) (*domain.Word, error) {
	var word domain.Word
	var attrs []byte

	err := row.Scan(
		&word.ID,
		&word.NativeText,
		&word.Transliteration,
		&word.Translation,
		&attrs,
		&word.CreatedAt,
		&word.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if word.Attributes, err = unmarshalAttributes(attrs); err != nil {
		return nil, err
	}

	return &word, nil
}

func marshalAttributes(attrs *domain.WordAttributes) ([]byte, error) {
	if attrs == nil {
		return nil, nil
	}
	raw, err := json.Marshal(attrs)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal word attributes: %w", err)
	}
	return raw, nil
}

func unmarshalAttributes(raw []byte) (*domain.WordAttributes, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var attrs domain.WordAttributes
	if err := json.Unmarshal(raw, &attrs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal word attributes: %w", err)
	}
	return &attrs, nil
}
