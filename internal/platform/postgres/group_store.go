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

// PostgresGroupStore implements the store.GroupStore interface
// using a PostgreSQL database as the storage backend.
type PostgresGroupStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresGroupStore creates a new PostgreSQL implementation of the
// GroupStore interface. If logger is nil, a default logger will be used.
func NewPostgresGroupStore(db store.DBTX, logger *slog.Logger) *PostgresGroupStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresGroupStore{
		db:     db,
		logger: logger.With(slog.String("component", "group_store")),
	}
}

// Ensure PostgresGroupStore implements store.GroupStore interface
var _ store.GroupStore = (*PostgresGroupStore)(nil)

// WithTx implements store.GroupStore.WithTx
func (s *PostgresGroupStore) WithTx(tx *sql.Tx) store.GroupStore {
	return &PostgresGroupStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.GroupStore.Create
// Returns store.ErrGroupNameExists if the name is already taken.
func (s *PostgresGroupStore) Create(ctx context.Context, group *domain.Group) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := group.Validate(); err != nil {
		log.Warn("group validation failed during create",
			slog.String("error", err.Error()),
			slog.String("group_id", group.ID.String()))
		return err
	}

	query := `
		INSERT INTO groups (id, name, word_count, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.db.ExecContext(ctx, query, group.ID, group.Name, group.WordCount, group.CreatedAt)
	if err != nil {
		if IsUniqueViolation(err) && ConstraintName(err) == constraintGroupName {
			log.Debug("group name already exists", slog.String("name", group.Name))
			return fmt.Errorf("%w: %q", store.ErrGroupNameExists, group.Name)
		}
		log.Error("failed to create group",
			slog.String("error", err.Error()),
			slog.String("group_id", group.ID.String()))
		return MapError(err)
	}

	log.Info("group created",
		slog.String("group_id", group.ID.String()),
		slog.String("name", group.Name))
	return nil
}

// GetByID implements store.GroupStore.GetByID
// Returns store.ErrGroupNotFound if the group does not exist.
func (s *PostgresGroupStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Group, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, word_count, created_at
		FROM groups
		WHERE id = $1
	`

	var group domain.Group
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&group.ID,
		&group.Name,
		&group.WordCount,
		&group.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("group not found", slog.String("group_id", id.String()))
			return nil, store.ErrGroupNotFound
		}
		log.Error("failed to get group by ID",
			slog.String("error", err.Error()),
			slog.String("group_id", id.String()))
		return nil, err
	}

	return &group, nil
}

// List implements store.GroupStore.List
func (s *PostgresGroupStore) List(ctx context.Context, req store.PageRequest) (store.Page[domain.Group], error) {
	var empty store.Page[domain.Group]

	if err := req.Validate(); err != nil {
		return empty, err
	}

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM groups`).Scan(&total); err != nil {
		return empty, fmt.Errorf("failed to count groups: %w", err)
	}

	query := `
		SELECT id, name, word_count, created_at
		FROM groups
		ORDER BY name, id
		LIMIT $1 OFFSET $2
	`

	rows, err := s.db.QueryContext(ctx, query, req.PageSize, req.Offset())
	if err != nil {
		return empty, fmt.Errorf("failed to query groups: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := []domain.Group{}
	for rows.Next() {
		var group domain.Group
		if err := rows.Scan(&group.ID, &group.Name, &group.WordCount, &group.CreatedAt); err != nil {
			return empty, fmt.Errorf("failed to scan group row: %w", err)
		}
		items = append(items, group)
	}
	if err := rows.Err(); err != nil {
		return empty, fmt.Errorf("error after scanning group rows: %w", err)
	}

	return store.NewPage(items, req, total), nil
}

// AddWords implements store.GroupStore.AddWords
// Membership insertion is idempotent (ON CONFLICT DO NOTHING) and the
// denormalized word_count is recomputed from the membership table before
// the transaction commits, so the counter can never drift from the truth.
//
// The group row is locked first so concurrent AddWords calls against the
// same group serialize on the counter update.
func (s *PostgresGroupStore) AddWords(ctx context.Context, groupID uuid.UUID, wordIDs []uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var lockedID uuid.UUID
	err := s.db.QueryRowContext(
		ctx, `SELECT id FROM groups WHERE id = $1 FOR UPDATE`, groupID,
	).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return store.ErrGroupNotFound
		}
		return fmt.Errorf("failed to lock group: %w", err)
	}

	insert := `
		INSERT INTO word_group_memberships (word_id, group_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`
	for _, wordID := range wordIDs {
		if _, err := s.db.ExecContext(ctx, insert, wordID, groupID); err != nil {
			if IsForeignKeyViolation(err) {
				switch ConstraintName(err) {
				case constraintMembershipWord:
					log.Warn("word does not exist",
						slog.String("word_id", wordID.String()),
						slog.String("group_id", groupID.String()))
					return fmt.Errorf("%w: %s", store.ErrWordNotFound, wordID)
				case constraintMembershipGroup:
					// Reachable when the store runs on the pool rather than
					// inside a transaction: the lock does not survive across
					// connections there.
					log.Warn("group deleted during membership insert",
						slog.String("group_id", groupID.String()))
					return fmt.Errorf("%w: %s", store.ErrGroupNotFound, groupID)
				}
			}
			log.Error("failed to insert membership",
				slog.String("error", err.Error()),
				slog.String("word_id", wordID.String()),
				slog.String("group_id", groupID.String()))
			return MapError(err)
		}
	}

	update := `
		UPDATE groups
		SET word_count = (SELECT COUNT(*) FROM word_group_memberships WHERE group_id = $1)
		WHERE id = $1
	`
	if _, err := s.db.ExecContext(ctx, update, groupID); err != nil {
		return fmt.Errorf("failed to update group word count: %w", err)
	}

	log.Debug("words added to group",
		slog.String("group_id", groupID.String()),
		slog.Int("requested", len(wordIDs)))
	return nil
}
