package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/wordtrail/wordtrail-api/internal/domain"
)

// ReviewStore defines the interface for the review-item fact table.
//
// Recording is create-once, never create-or-update. The uniqueness of the
// (study_session_id, word_id) pair is enforced by a database constraint so
// that two concurrent submissions deterministically produce one success and
// one ErrReviewExists, never two rows.
type ReviewStore interface {
	// Create appends a review fact.
	// Returns ErrReviewExists if the session/word pair already has one,
	// ErrSessionNotFound or ErrWordNotFound if a reference is invalid.
	Create(ctx context.Context, item *domain.WordReviewItem) error

	// Get retrieves the review for a session/word pair.
	// Returns ErrReviewNotFound if none has been recorded.
	Get(ctx context.Context, sessionID, wordID uuid.UUID) (*domain.WordReviewItem, error)

	// ListBySession returns one page of a session's review items in
	// recording order.
	ListBySession(ctx context.Context, sessionID uuid.UUID, req PageRequest) (Page[domain.WordReviewItem], error)

	// WithTx returns a ReviewStore bound to the given transaction.
	WithTx(tx *sql.Tx) ReviewStore
}
