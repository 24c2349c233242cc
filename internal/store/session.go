package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/wordtrail/wordtrail-api/internal/domain"
)

// SessionFilter narrows a session listing to one group or one activity.
// The zero value applies no filter.
type SessionFilter struct {
	GroupID         *uuid.UUID
	StudyActivityID *uuid.UUID
}

// SessionStore defines the interface for the study-session ledger.
// Sessions are append-only: created once, never mutated.
type SessionStore interface {
	// Create saves a new study session.
	// Returns ErrGroupNotFound or ErrActivityNotFound if the referenced
	// group or activity does not exist. There is no uniqueness constraint
	// on sessions; a group may be studied any number of times.
	Create(ctx context.Context, session *domain.StudySession) error

	// GetByID retrieves a session view (joined names plus the derived end
	// time and review count). Returns ErrSessionNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.StudySessionView, error)

	// List returns one page of session views, newest first, optionally
	// filtered by group or activity.
	List(ctx context.Context, req PageRequest, filter SessionFilter) (Page[domain.StudySessionView], error)

	// WithTx returns a SessionStore bound to the given transaction.
	WithTx(tx *sql.Tx) SessionStore
}
