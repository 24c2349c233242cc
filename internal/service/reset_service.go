package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/wordtrail/wordtrail-api/internal/domain"
	"github.com/wordtrail/wordtrail-api/internal/seed"
	"github.com/wordtrail/wordtrail-api/internal/store"
)

// ResetService provides the destructive maintenance operations. Both run in
// a single transaction: a failed reset leaves the database exactly as it
// was.
type ResetService interface {
	// ResetHistory deletes every review item and study session. The
	// inventory and activity catalog survive.
	ResetHistory(ctx context.Context) error

	// FullReset deletes everything (history first, then inventory and
	// catalog) and replays the embedded seed data, returning the system to
	// its first-boot state.
	FullReset(ctx context.Context) error
}

// resetServiceImpl implements the ResetService interface
type resetServiceImpl struct {
	db               *sql.DB
	maintenanceStore store.MaintenanceStore
	wordStore        store.WordStore
	groupStore       store.GroupStore
	activityStore    store.ActivityStore
	logger           *slog.Logger
}

// NewResetService creates a new ResetService.
// It returns an error if any of the required dependencies are nil. The
// word, group, and activity stores are needed to replay the seed inside the
// full-reset transaction.
func NewResetService(
	db *sql.DB,
	maintenanceStore store.MaintenanceStore,
	wordStore store.WordStore,
	groupStore store.GroupStore,
	activityStore store.ActivityStore,
	logger *slog.Logger,
) (ResetService, error) {
	if db == nil {
		return nil, domain.NewValidationError("db", "cannot be nil", domain.ErrValidation)
	}
	if maintenanceStore == nil {
		return nil, domain.NewValidationError("maintenanceStore", "cannot be nil", domain.ErrValidation)
	}
	if wordStore == nil {
		return nil, domain.NewValidationError("wordStore", "cannot be nil", domain.ErrValidation)
	}
	if groupStore == nil {
		return nil, domain.NewValidationError("groupStore", "cannot be nil", domain.ErrValidation)
	}
	if activityStore == nil {
		return nil, domain.NewValidationError("activityStore", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &resetServiceImpl{
		db:               db,
		maintenanceStore: maintenanceStore,
		wordStore:        wordStore,
		groupStore:       groupStore,
		activityStore:    activityStore,
		logger:           logger.With(slog.String("component", "reset_service")),
	}, nil
}

// ResetHistory implements ResetService.ResetHistory
func (s *resetServiceImpl) ResetHistory(ctx context.Context) error {
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.maintenanceStore.WithTx(tx).DeleteHistory(ctx)
	})
	if err != nil {
		return err
	}

	s.logger.Info("study history reset")
	return nil
}

// FullReset implements ResetService.FullReset
// Delete order matters: history first so no session references a group or
// activity when those are removed.
func (s *resetServiceImpl) FullReset(ctx context.Context) error {
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		maintenance := s.maintenanceStore.WithTx(tx)

		if err := maintenance.DeleteHistory(ctx); err != nil {
			return err
		}
		if err := maintenance.DeleteInventory(ctx); err != nil {
			return err
		}

		err := seed.Apply(ctx, seed.Stores{
			Words:      s.wordStore.WithTx(tx),
			Groups:     s.groupStore.WithTx(tx),
			Activities: s.activityStore.WithTx(tx),
		})
		if err != nil {
			return fmt.Errorf("%w: %v", ErrSeedFailed, err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("full reset completed, seed data restored")
	return nil
}
