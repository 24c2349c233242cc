package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/wordtrail/wordtrail-api/internal/domain"
)

// ActivityStore defines the interface for the study-activity catalog.
// The catalog is read-mostly: entries are written by seeding only.
type ActivityStore interface {
	// Create saves a new study activity to the catalog.
	// Returns ErrActivityNameExists if the name is already taken.
	Create(ctx context.Context, activity *domain.StudyActivity) error

	// GetByID retrieves a study activity by its unique ID.
	// Returns ErrActivityNotFound if the activity does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.StudyActivity, error)

	// List returns one page of all catalog entries ordered by name.
	List(ctx context.Context, req PageRequest) (Page[domain.StudyActivity], error)

	// WithTx returns an ActivityStore bound to the given transaction.
	WithTx(tx *sql.Tx) ActivityStore
}
