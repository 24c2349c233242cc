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

// PostgresSessionStore implements the store.SessionStore interface
// using a PostgreSQL database as the storage backend.
type PostgresSessionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresSessionStore creates a new PostgreSQL implementation of the
// SessionStore interface. If logger is nil, a default logger will be used.
func NewPostgresSessionStore(db store.DBTX, logger *slog.Logger) *PostgresSessionStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresSessionStore{
		db:     db,
		logger: logger.With(slog.String("component", "session_store")),
	}
}

// Ensure PostgresSessionStore implements store.SessionStore interface
var _ store.SessionStore = (*PostgresSessionStore)(nil)

// WithTx implements store.SessionStore.WithTx
func (s *PostgresSessionStore) WithTx(tx *sql.Tx) store.SessionStore {
	return &PostgresSessionStore{
		db:     tx,
		logger: s.logger,
	}
}

// sessionViewColumns is the SELECT list shared by every session-view query.
// The end time is the latest review timestamp, NULL for a session with no
// reviews yet; the review count comes from the same LEFT JOIN.
const sessionViewColumns = `
	s.id, a.name, g.name, s.group_id, s.study_activity_id, s.created_at,
	MAX(r.created_at)  AS end_time,
	COUNT(r.id)        AS review_items_count
`

const sessionViewJoins = `
	FROM study_sessions s
	JOIN groups g ON g.id = s.group_id
	JOIN study_activities a ON a.id = s.study_activity_id
	LEFT JOIN word_review_items r ON r.study_session_id = s.id
`

// Create implements store.SessionStore.Create
// Foreign-key violations are mapped to the entity-specific not-found errors
// so the caller learns which reference was invalid.
func (s *PostgresSessionStore) Create(ctx context.Context, session *domain.StudySession) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := session.Validate(); err != nil {
		log.Warn("session validation failed during create",
			slog.String("error", err.Error()),
			slog.String("session_id", session.ID.String()))
		return err
	}

	query := `
		INSERT INTO study_sessions (id, group_id, study_activity_id, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		session.ID,
		session.GroupID,
		session.StudyActivityID,
		session.CreatedAt,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			switch ConstraintName(err) {
			case constraintSessionGroup:
				log.Debug("session references missing group",
					slog.String("group_id", session.GroupID.String()))
				return fmt.Errorf("%w: %s", store.ErrGroupNotFound, session.GroupID)
			case constraintSessionActivity:
				log.Debug("session references missing activity",
					slog.String("activity_id", session.StudyActivityID.String()))
				return fmt.Errorf("%w: %s", store.ErrActivityNotFound, session.StudyActivityID)
			}
		}
		log.Error("failed to create study session",
			slog.String("error", err.Error()),
			slog.String("session_id", session.ID.String()))
		return MapError(err)
	}

	log.Info("study session started",
		slog.String("session_id", session.ID.String()),
		slog.String("group_id", session.GroupID.String()),
		slog.String("activity_id", session.StudyActivityID.String()))
	return nil
}

// GetByID implements store.SessionStore.GetByID
// Returns store.ErrSessionNotFound if the session does not exist.
func (s *PostgresSessionStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.StudySessionView, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + sessionViewColumns + sessionViewJoins + `
		WHERE s.id = $1
		GROUP BY s.id, a.name, g.name
	`

	view, err := scanSessionView(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("study session not found", slog.String("session_id", id.String()))
			return nil, store.ErrSessionNotFound
		}
		log.Error("failed to get study session by ID",
			slog.String("error", err.Error()),
			slog.String("session_id", id.String()))
		return nil, err
	}

	return view, nil
}

// List implements store.SessionStore.List
// Sessions are returned newest first.
func (s *PostgresSessionStore) List(
	ctx context.Context,
	req store.PageRequest,
	filter store.SessionFilter,
) (store.Page[domain.StudySessionView], error) {
	var empty store.Page[domain.StudySessionView]

	if err := req.Validate(); err != nil {
		return empty, err
	}

	where := ""
	args := []any{}
	switch {
	case filter.GroupID != nil:
		where = "WHERE s.group_id = $1"
		args = append(args, *filter.GroupID)
	case filter.StudyActivityID != nil:
		where = "WHERE s.study_activity_id = $1"
		args = append(args, *filter.StudyActivityID)
	}

	countQuery := `SELECT COUNT(*) FROM study_sessions s ` + where
	var total int
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return empty, fmt.Errorf("failed to count study sessions: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s %s %s
		GROUP BY s.id, a.name, g.name
		ORDER BY s.created_at DESC, s.id
		LIMIT $%d OFFSET $%d`,
		sessionViewColumns, sessionViewJoins, where, len(args)+1, len(args)+2)
	args = append(args, req.PageSize, req.Offset())

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return empty, fmt.Errorf("failed to query study sessions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := []domain.StudySessionView{}
	for rows.Next() {
		var view domain.StudySessionView
		var endTime sql.NullTime

		err := rows.Scan(
			&view.ID,
			&view.ActivityName,
			&view.GroupName,
			&view.GroupID,
			&view.StudyActivityID,
			&view.StartTime,
			&endTime,
			&view.ReviewItemsCount,
		)
		if err != nil {
			return empty, fmt.Errorf("failed to scan study session row: %w", err)
		}

		if endTime.Valid {
			view.EndTime = &endTime.Time
		}
		items = append(items, view)
	}
	if err := rows.Err(); err != nil {
		return empty, fmt.Errorf("error after scanning study session rows: %w", err)
	}

	return store.NewPage(items, req, total), nil
}

// scanSessionView reads one session-view row in sessionViewColumns order.
func scanSessionView(row *sql.Row) (*domain.StudySessionView, error) {
	var view domain.StudySessionView
	var endTime sql.NullTime

	err := row.Scan(
		&view.ID,
		&view.ActivityName,
		&view.GroupName,
		&view.GroupID,
		&view.StudyActivityID,
		&view.StartTime,
		&endTime,
		&view.ReviewItemsCount,
	)
	if err != nil {
		return nil, err
	}

	if endTime.Valid {
		view.EndTime = &endTime.Time
	}
	return &view, nil
}
