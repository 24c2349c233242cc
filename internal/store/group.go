package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/wordtrail/wordtrail-api/internal/domain"
)

// GroupStore defines the interface for group and membership persistence.
type GroupStore interface {
	// Create saves a new group to the store.
	// Returns ErrGroupNameExists if a group with the same name exists.
	Create(ctx context.Context, group *domain.Group) error

	// GetByID retrieves a group by its unique ID.
	// Returns ErrGroupNotFound if the group does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Group, error)

	// List returns one page of all groups ordered by name.
	List(ctx context.Context, req PageRequest) (Page[domain.Group], error)

	// AddWords adds the given words to the group. Re-adding a word that is
	// already a member is a no-op, not an error. The group's denormalized
	// word_count is updated to the true membership count in the same
	// statement batch, so this method MUST run inside a transaction: use
	// WithTx together with RunInTransaction.
	//
	// Returns ErrGroupNotFound if the group does not exist and
	// ErrWordNotFound if any of the words does not exist.
	AddWords(ctx context.Context, groupID uuid.UUID, wordIDs []uuid.UUID) error

	// WithTx returns a GroupStore bound to the given transaction.
	WithTx(tx *sql.Tx) GroupStore
}
