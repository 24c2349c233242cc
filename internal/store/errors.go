package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. This is a generic version of the entity-specific not found
	// errors (e.g., ErrWordNotFound, ErrSessionNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a group with the same name, or a second
	// review for the same session/word pair).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored, or references another entity that does not exist.
	// Check the wrapped error for specific details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrInvalidPagination is returned when page or page-size parameters
	// are out of the allowed range.
	ErrInvalidPagination = errors.New("invalid pagination parameters")

	// ErrTransactionFailed is returned when a database transaction fails
	// to commit or when an operation within a transaction fails.
	ErrTransactionFailed = errors.New("transaction failed")

	// Entity-specific "not found" errors

	// ErrWordNotFound indicates that the requested word does not exist in the store.
	ErrWordNotFound = fmt.Errorf("%w: word", ErrNotFound)

	// ErrGroupNotFound indicates that the requested group does not exist in the store.
	ErrGroupNotFound = fmt.Errorf("%w: group", ErrNotFound)

	// ErrActivityNotFound indicates that the requested study activity does not exist in the store.
	ErrActivityNotFound = fmt.Errorf("%w: study activity", ErrNotFound)

	// ErrSessionNotFound indicates that the requested study session does not exist in the store.
	ErrSessionNotFound = fmt.Errorf("%w: study session", ErrNotFound)

	// ErrReviewNotFound indicates that the requested review item does not exist in the store.
	ErrReviewNotFound = fmt.Errorf("%w: review item", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrGroupNameExists indicates that a group with the given name already exists.
	ErrGroupNameExists = fmt.Errorf("%w: group name", ErrDuplicate)

	// ErrActivityNameExists indicates that a study activity with the given
	// name already exists.
	ErrActivityNameExists = fmt.Errorf("%w: study activity name", ErrDuplicate)

	// ErrReviewExists indicates that the session/word pair already has a
	// review recorded. Recording is create-once: callers treating a retry as
	// idempotent must detect this error and read the existing row.
	ErrReviewExists = fmt.Errorf("%w: review for session/word pair", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
// This includes the generic ErrNotFound and all entity-specific variants.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
// This includes the generic ErrDuplicate and all entity-specific variants.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
