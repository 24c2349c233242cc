package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/wordtrail/wordtrail-api/internal/store"
)

// PostgreSQL error codes
const (
	// uniqueViolationCode is the PostgreSQL error code for unique constraint violations
	uniqueViolationCode = "23505"

	// foreignKeyViolationCode is the PostgreSQL error code for foreign key violations
	foreignKeyViolationCode = "23503"
)

// Constraint names from the migrations. Error mapping keys off these so a
// foreign-key violation can be reported as the right "not found" entity and
// a unique violation as the right conflict.
const (
	constraintGroupName        = "groups_name_key"
	constraintActivityName     = "study_activities_name_key"
	constraintReviewPair       = "word_review_items_session_word_key"
	constraintMembershipWord   = "word_group_memberships_word_id_fkey"
	constraintMembershipGroup  = "word_group_memberships_group_id_fkey"
	constraintSessionGroup     = "study_sessions_group_id_fkey"
	constraintSessionActivity  = "study_sessions_study_activity_id_fkey"
	constraintReviewWord       = "word_review_items_word_id_fkey"
	constraintReviewSession    = "word_review_items_study_session_id_fkey"
)

// MapError maps a database error to an appropriate store error, wrapping
// the original error to preserve context. Constraint-specific mappings are
// handled by the individual stores; this covers the generic cases.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
		case foreignKeyViolationCode:
			return fmt.Errorf(
				"%w: foreign key violation (%s): %v",
				store.ErrInvalidEntity,
				pgErr.ConstraintName,
				err,
			)
		}
	}

	return err
}

// IsUniqueViolation checks if the given error is a PostgreSQL unique
// constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// IsForeignKeyViolation checks if the given error is a PostgreSQL foreign
// key constraint violation.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode
}

// ConstraintName returns the violated constraint's name, or "" when the
// error is not a PostgreSQL constraint violation.
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// CheckRowsAffected examines the number of rows affected by a database
// operation. If no rows were affected, it returns the given notFound error;
// UPDATE and DELETE against an absent row affect zero rows rather than
// failing.
func CheckRowsAffected(result sql.Result, notFound error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return notFound
	}

	return nil
}
