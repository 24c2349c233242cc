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

// PostgresActivityStore implements the store.ActivityStore interface
// using a PostgreSQL database as the storage backend.
type PostgresActivityStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresActivityStore creates a new PostgreSQL implementation of the
// ActivityStore interface. If logger is nil, a default logger will be used.
func NewPostgresActivityStore(db store.DBTX, logger *slog.Logger) *PostgresActivityStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresActivityStore{
		db:     db,
		logger: logger.With(slog.String("component", "activity_store")),
	}
}

// Ensure PostgresActivityStore implements store.ActivityStore interface
var _ store.ActivityStore = (*PostgresActivityStore)(nil)

// WithTx implements store.ActivityStore.WithTx
func (s *PostgresActivityStore) WithTx(tx *sql.Tx) store.ActivityStore {
	return &PostgresActivityStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.ActivityStore.Create
// Returns store.ErrActivityNameExists if the name is already taken.
func (s *PostgresActivityStore) Create(ctx context.Context, activity *domain.StudyActivity) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := activity.Validate(); err != nil {
		log.Warn("activity validation failed during create",
			slog.String("error", err.Error()),
			slog.String("activity_id", activity.ID.String()))
		return err
	}

	query := `
		INSERT INTO study_activities (id, name, launch_url, thumbnail_url, description, created_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		activity.ID,
		activity.Name,
		activity.LaunchURL,
		activity.ThumbnailURL,
		activity.Description,
		activity.CreatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) && ConstraintName(err) == constraintActivityName {
			return fmt.Errorf("%w: %q", store.ErrActivityNameExists, activity.Name)
		}
		log.Error("failed to create study activity",
			slog.String("error", err.Error()),
			slog.String("activity_id", activity.ID.String()))
		return MapError(err)
	}

	log.Info("study activity created",
		slog.String("activity_id", activity.ID.String()),
		slog.String("name", activity.Name))
	return nil
}

// GetByID implements store.ActivityStore.GetByID
// Returns store.ErrActivityNotFound if the activity does not exist.
func (s *PostgresActivityStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.StudyActivity, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, launch_url, COALESCE(thumbnail_url, ''), COALESCE(description, ''), created_at
		FROM study_activities
		WHERE id = $1
	`

	var activity domain.StudyActivity
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&activity.ID,
		&activity.Name,
		&activity.LaunchURL,
		&activity.ThumbnailURL,
		&activity.Description,
		&activity.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("study activity not found", slog.String("activity_id", id.String()))
			return nil, store.ErrActivityNotFound
		}
		log.Error("failed to get study activity by ID",
			slog.String("error", err.Error()),
			slog.String("activity_id", id.String()))
		return nil, err
	}

	return &activity, nil
}

// List implements store.ActivityStore.List
func (s *PostgresActivityStore) List(
	ctx context.Context,
	req store.PageRequest,
) (store.Page[domain.StudyActivity], error) {
	var empty store.Page[domain.StudyActivity]

	if err := req.Validate(); err != nil {
		return empty, err
	}

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM study_activities`).Scan(&total); err != nil {
		return empty, fmt.Errorf("failed to count study activities: %w", err)
	}

	query := `
		SELECT id, name, launch_url, COALESCE(thumbnail_url, ''), COALESCE(description, ''), created_at
		FROM study_activities
		ORDER BY name, id
		LIMIT $1 OFFSET $2
	`

	rows, err := s.db.QueryContext(ctx, query, req.PageSize, req.Offset())
	if err != nil {
		return empty, fmt.Errorf("failed to query study activities: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := []domain.StudyActivity{}
	for rows.Next() {
		var activity domain.StudyActivity
		err := rows.Scan(
			&activity.ID,
			&activity.Name,
			&activity.LaunchURL,
			&activity.ThumbnailURL,
			&activity.Description,
			&activity.CreatedAt,
		)
		if err != nil {
			return empty, fmt.Errorf("failed to scan study activity row: %w", err)
		}
		items = append(items, activity)
	}
	if err := rows.Err(); err != nil {
		return empty, fmt.Errorf("error after scanning study activity rows: %w", err)
	}

	return store.NewPage(items, req, total), nil
}
