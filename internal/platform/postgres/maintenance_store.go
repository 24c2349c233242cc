package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/wordtrail/wordtrail-api/internal/platform/logger"
	"github.com/wordtrail/wordtrail-api/internal/store"
)

// PostgresMaintenanceStore implements the store.MaintenanceStore interface
// using a PostgreSQL database as the storage backend. Callers are expected
// to run both operations inside a transaction via WithTx.
type PostgresMaintenanceStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresMaintenanceStore creates a new PostgreSQL implementation of the
// MaintenanceStore interface. If logger is nil, a default logger will be used.
func NewPostgresMaintenanceStore(db store.DBTX, logger *slog.Logger) *PostgresMaintenanceStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresMaintenanceStore{
		db:     db,
		logger: logger.With(slog.String("component", "maintenance_store")),
	}
}

// Ensure PostgresMaintenanceStore implements store.MaintenanceStore interface
var _ store.MaintenanceStore = (*PostgresMaintenanceStore)(nil)

// WithTx implements store.MaintenanceStore.WithTx
func (s *PostgresMaintenanceStore) WithTx(tx *sql.Tx) store.MaintenanceStore {
	return &PostgresMaintenanceStore{
		db:     tx,
		logger: s.logger,
	}
}

// DeleteHistory implements store.MaintenanceStore.DeleteHistory
// Reviews go first so no session row is referenced when it is deleted.
func (s *PostgresMaintenanceStore) DeleteHistory(ctx context.Context) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	reviews, err := s.deleteAll(ctx, "word_review_items")
	if err != nil {
		return err
	}

	sessions, err := s.deleteAll(ctx, "study_sessions")
	if err != nil {
		return err
	}

	log.Info("study history deleted",
		slog.Int64("reviews_deleted", reviews),
		slog.Int64("sessions_deleted", sessions))
	return nil
}

// DeleteInventory implements store.MaintenanceStore.DeleteInventory
// Assumes DeleteHistory already ran in the same transaction, otherwise
// session foreign keys will reject the group and activity deletes.
func (s *PostgresMaintenanceStore) DeleteInventory(ctx context.Context) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	for _, table := range []string{"word_group_memberships", "words", "groups", "study_activities"} {
		if _, err := s.deleteAll(ctx, table); err != nil {
			return err
		}
	}

	log.Info("inventory and catalog deleted")
	return nil
}

func (s *PostgresMaintenanceStore) deleteAll(ctx context.Context, table string) (int64, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM "+table)
	if err != nil {
		return 0, fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	// RowsAffected never fails on lib/pq or pgx for DELETE
	n, _ := result.RowsAffected()
	return n, nil
}
