package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/wordtrail/wordtrail-api/internal/domain"
	"github.com/wordtrail/wordtrail-api/internal/platform/logger"
	"github.com/wordtrail/wordtrail-api/internal/store"
)

// PostgresReviewStore implements the store.ReviewStore interface
// using a PostgreSQL database as the storage backend.
type PostgresReviewStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresReviewStore creates a new PostgreSQL implementation of the
// ReviewStore interface. If logger is nil, a default logger will be used.
func NewPostgresReviewStore(db store.DBTX, logger *slog.Logger) *PostgresReviewStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresReviewStore{
		db:     db,
		logger: logger.With(slog.String("component", "review_store")),
	}
}

// Ensure PostgresReviewStore implements store.ReviewStore interface
var _ store.ReviewStore = (*PostgresReviewStore)(nil)

// WithTx implements store.ReviewStore.WithTx
func (s *PostgresReviewStore) WithTx(tx *sql.Tx) store.ReviewStore {
	return &PostgresReviewStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.ReviewStore.Create
// The (study_session_id, word_id) pair is unique; a second review of the
// same word in the same session returns store.ErrReviewExists. Foreign-key
// violations are mapped to the entity-specific not-found errors.
func (s *PostgresReviewStore) Create(ctx context.Context, review *domain.WordReviewItem) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := review.Validate(); err != nil {
		log.Warn("review validation failed during create",
			slog.String("error", err.Error()),
			slog.String("review_id", review.ID.String()))
		return err
	}

	query := `
		INSERT INTO word_review_items (id, word_id, study_session_id, correct, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		review.ID,
		review.WordID,
		review.StudySessionID,
		review.Correct,
		review.CreatedAt,
	)
	if err != nil {
		switch {
		case IsUniqueViolation(err) && ConstraintName(err) == constraintReviewPair:
			log.Debug("word already reviewed in session",
				slog.String("session_id", review.StudySessionID.String()),
				slog.String("word_id", review.WordID.String()))
			return store.ErrReviewExists
		case IsForeignKeyViolation(err) && ConstraintName(err) == constraintReviewWord:
			return fmt.Errorf("%w: %s", store.ErrWordNotFound, review.WordID)
		case IsForeignKeyViolation(err) && ConstraintName(err) == constraintReviewSession:
			return fmt.Errorf("%w: %s", store.ErrSessionNotFound, review.StudySessionID)
		}
		log.Error("failed to create word review item",
			slog.String("error", err.Error()),
			slog.String("review_id", review.ID.String()))
		return MapError(err)
	}

	log.Debug("word review recorded",
		slog.String("session_id", review.StudySessionID.String()),
		slog.String("word_id", review.WordID.String()),
		slog.Bool("correct", review.Correct))
	return nil
}

// Get implements store.ReviewStore.Get
// Returns store.ErrReviewNotFound if no review exists for the pair.
func (s *PostgresReviewStore) Get(
	ctx context.Context,
	sessionID, wordID uuid.UUID,
) (*domain.WordReviewItem, error) {
	query := `
		SELECT id, word_id, study_session_id, correct, created_at
		FROM word_review_items
		WHERE study_session_id = $1 AND word_id = $2
	`

	var review domain.WordReviewItem
	err := s.db.QueryRowContext(ctx, query, sessionID, wordID).Scan(
		&review.ID,
		&review.WordID,
		&review.StudySessionID,
		&review.Correct,
		&review.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to get word review item: %w", err)
	}

	return &review, nil
}

// ListBySession implements store.ReviewStore.ListBySession
// Reviews are returned in the order they were recorded. Returns
// store.ErrSessionNotFound if the session does not exist.
func (s *PostgresReviewStore) ListBySession(
	ctx context.Context,
	sessionID uuid.UUID,
	req store.PageRequest,
) (store.Page[domain.WordReviewItem], error) {
	var empty store.Page[domain.WordReviewItem]

	if err := req.Validate(); err != nil {
		return empty, err
	}

	var exists bool
	if err := s.db.QueryRowContext(
		ctx, `SELECT EXISTS (SELECT 1 FROM study_sessions WHERE id = $1)`, sessionID,
	).Scan(&exists); err != nil {
		return empty, fmt.Errorf("failed to check session existence: %w", err)
	}
	if !exists {
		return empty, store.ErrSessionNotFound
	}

	var total int
	if err := s.db.QueryRowContext(
		ctx, `SELECT COUNT(*) FROM word_review_items WHERE study_session_id = $1`, sessionID,
	).Scan(&total); err != nil {
		return empty, fmt.Errorf("failed to count session reviews: %w", err)
	}

	query := `
		SELECT id, word_id, study_session_id, correct, created_at
		FROM word_review_items
		WHERE study_session_id = $1
		ORDER BY created_at, id
		LIMIT $2 OFFSET $3
	`

	rows, err := s.db.QueryContext(ctx, query, sessionID, req.PageSize, req.Offset())
	if err != nil {
		return empty, fmt.Errorf("failed to query session reviews: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := []domain.WordReviewItem{}
	for rows.Next() {
		var review domain.WordReviewItem
		err := rows.Scan(
			&review.ID,
			&review.WordID,
			&review.StudySessionID,
			&review.Correct,
			&review.CreatedAt,
		)
		if err != nil {
			return empty, fmt.Errorf("failed to scan review row: %w", err)
		}
		items = append(items, review)
	}
	if err := rows.Err(); err != nil {
		return empty, fmt.Errorf("error after scanning review rows: %w", err)
	}

	return store.NewPage(items, req, total), nil
}
