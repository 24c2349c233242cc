package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/wordtrail/wordtrail-api/internal/domain"
)

// WordWithStats pairs a word with its derived review counters for listing
// and detail responses.
type WordWithStats struct {
	domain.Word
	Stats domain.WordStats
}

// WordStore defines the interface for word inventory persistence.
type WordStore interface {
	// Create saves a new word to the store.
	// Returns validation errors if the word data is invalid.
	Create(ctx context.Context, word *domain.Word) error

	// GetByID retrieves a word by its unique ID.
	// Returns ErrWordNotFound if the word does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error)

	// List returns one page of the inventory ordered by native text, each
	// word carrying its review counters.
	List(ctx context.Context, req PageRequest) (Page[WordWithStats], error)

	// ListByGroup returns one page of the words belonging to the given
	// group. Returns ErrGroupNotFound if the group does not exist.
	ListByGroup(ctx context.Context, groupID uuid.UUID, req PageRequest) (Page[WordWithStats], error)

	// GetStats returns the correct/wrong counters for a word, computed from
	// the review ledger on every call. Returns ErrWordNotFound if the word
	// does not exist.
	GetStats(ctx context.Context, id uuid.UUID) (domain.WordStats, error)

	// UpdateAttributes replaces a word's attribute tags. The text fields
	// are immutable. Returns ErrWordNotFound if the word does not exist.
	UpdateAttributes(ctx context.Context, id uuid.UUID, attrs *domain.WordAttributes) error

	// WithTx returns a WordStore bound to the given transaction so word
	// creation can participate in seeding and reset transactions.
	WithTx(tx *sql.Tx) WordStore
}
