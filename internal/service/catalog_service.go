package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/wordtrail/wordtrail-api/internal/domain"
	"github.com/wordtrail/wordtrail-api/internal/store"
)

// CatalogService provides read access to the study-activity catalog.
// Catalog entries are written by seeding only, so there is no create path
// here.
type CatalogService interface {
	// GetActivity retrieves a catalog entry by ID.
	GetActivity(ctx context.Context, id uuid.UUID) (*domain.StudyActivity, error)

	// ListActivities returns one page of the catalog.
	ListActivities(ctx context.Context, req store.PageRequest) (store.Page[domain.StudyActivity], error)
}

// catalogServiceImpl implements the CatalogService interface
type catalogServiceImpl struct {
	activityStore store.ActivityStore
	logger        *slog.Logger
}

// NewCatalogService creates a new CatalogService.
// It returns an error if the activity store is nil.
func NewCatalogService(activityStore store.ActivityStore, logger *slog.Logger) (CatalogService, error) {
	if activityStore == nil {
		return nil, domain.NewValidationError("activityStore", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &catalogServiceImpl{
		activityStore: activityStore,
		logger:        logger.With(slog.String("component", "catalog_service")),
	}, nil
}

// GetActivity implements CatalogService.GetActivity
func (s *catalogServiceImpl) GetActivity(ctx context.Context, id uuid.UUID) (*domain.StudyActivity, error) {
	return s.activityStore.GetByID(ctx, id)
}

// ListActivities implements CatalogService.ListActivities
func (s *catalogServiceImpl) ListActivities(
	ctx context.Context,
	req store.PageRequest,
) (store.Page[domain.StudyActivity], error) {
	return s.activityStore.List(ctx, req)
}
