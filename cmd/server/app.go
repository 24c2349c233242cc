package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/wordtrail/wordtrail-api/internal/config"
	"github.com/wordtrail/wordtrail-api/internal/platform/postgres"
	"github.com/wordtrail/wordtrail-api/internal/seed"
	"github.com/wordtrail/wordtrail-api/internal/service"
	"github.com/wordtrail/wordtrail-api/internal/store"
)

// application holds the wired dependencies of the running server: the
// configuration, the shared connection pool, the stores, and the services
// the HTTP handlers sit on.
type application struct {
	config *config.Config
	db     *sql.DB
	logger *slog.Logger

	wordStore     store.WordStore
	groupStore    store.GroupStore
	activityStore store.ActivityStore

	inventoryService service.InventoryService
	catalogService   service.CatalogService
	studyService     service.StudyService
	dashboardService service.DashboardService
	resetService     service.ResetService
}

// newApplication constructs the store and service graph on top of the given
// database handle.
func newApplication(cfg *config.Config, db *sql.DB, logger *slog.Logger) (*application, error) {
	wordStore := postgres.NewPostgresWordStore(db, logger)
	groupStore := postgres.NewPostgresGroupStore(db, logger)
	activityStore := postgres.NewPostgresActivityStore(db, logger)
	sessionStore := postgres.NewPostgresSessionStore(db, logger)
	reviewStore := postgres.NewPostgresReviewStore(db, logger)
	statsStore := postgres.NewPostgresStatsStore(db, logger)
	maintenanceStore := postgres.NewPostgresMaintenanceStore(db, logger)

	inventoryService, err := service.NewInventoryService(db, wordStore, groupStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create inventory service: %w", err)
	}

	catalogService, err := service.NewCatalogService(activityStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog service: %w", err)
	}

	studyService, err := service.NewStudyService(sessionStore, reviewStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create study service: %w", err)
	}

	dashboardService, err := service.NewDashboardService(statsStore, cfg.Server.StatsTimeZone, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create dashboard service: %w", err)
	}

	resetService, err := service.NewResetService(
		db,
		maintenanceStore,
		wordStore,
		groupStore,
		activityStore,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create reset service: %w", err)
	}

	return &application{
		config:           cfg,
		db:               db,
		logger:           logger,
		wordStore:        wordStore,
		groupStore:       groupStore,
		activityStore:    activityStore,
		inventoryService: inventoryService,
		catalogService:   catalogService,
		studyService:     studyService,
		dashboardService: dashboardService,
		resetService:     resetService,
	}, nil
}

// ensureSeeded applies the embedded seed data when the activity catalog is
// empty. An already-populated database is left untouched, so restarts are
// safe.
func (app *application) ensureSeeded(ctx context.Context) error {
	var count int
	row := app.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM study_activities")
	if err := row.Scan(&count); err != nil {
		return fmt.Errorf("failed to check for existing seed data: %w", err)
	}

	if count > 0 {
		app.logger.Debug("database already seeded", slog.Int("activities", count))
		return nil
	}

	app.logger.Info("empty database detected, applying seed data")
	return store.RunInTransaction(ctx, app.db, func(ctx context.Context, tx *sql.Tx) error {
		return seed.Apply(ctx, seed.Stores{
			Words:      app.wordStore.WithTx(tx),
			Groups:     app.groupStore.WithTx(tx),
			Activities: app.activityStore.WithTx(tx),
		})
	})
}
