package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/wordtrail/wordtrail-api/internal/store"
)

func pgError(code, constraint string) *pgconn.PgError {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{
			name:     "nil error maps to nil",
			err:      nil,
			sentinel: nil,
		},
		{
			name:     "sql.ErrNoRows maps to ErrNotFound",
			err:      sql.ErrNoRows,
			sentinel: store.ErrNotFound,
		},
		{
			name:     "unique violation maps to ErrDuplicate",
			err:      pgError(uniqueViolationCode, constraintGroupName),
			sentinel: store.ErrDuplicate,
		},
		{
			name:     "foreign key violation maps to ErrInvalidEntity",
			err:      pgError(foreignKeyViolationCode, constraintSessionGroup),
			sentinel: store.ErrInvalidEntity,
		},
		{
			name:     "wrapped unique violation still maps",
			err:      fmt.Errorf("insert failed: %w", pgError(uniqueViolationCode, constraintActivityName)),
			sentinel: store.ErrDuplicate,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mapped := MapError(tc.err)
			if tc.sentinel == nil {
				assert.NoError(t, mapped)
				return
			}
			assert.ErrorIs(t, mapped, tc.sentinel)
		})
	}
}

func TestMapError_PassesThroughUnknownErrors(t *testing.T) {
	t.Parallel()

	original := errors.New("connection reset")
	assert.Equal(t, original, MapError(original))
}

func TestViolationPredicates(t *testing.T) {
	t.Parallel()

	unique := pgError(uniqueViolationCode, constraintReviewPair)
	fk := pgError(foreignKeyViolationCode, constraintReviewWord)

	assert.True(t, IsUniqueViolation(unique))
	assert.False(t, IsUniqueViolation(fk))
	assert.False(t, IsUniqueViolation(errors.New("not a pg error")))

	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsForeignKeyViolation(unique))
	assert.False(t, IsForeignKeyViolation(nil))
}

func TestConstraintName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, constraintReviewPair, ConstraintName(pgError(uniqueViolationCode, constraintReviewPair)))
	assert.Equal(t, "", ConstraintName(errors.New("plain error")))

	wrapped := fmt.Errorf("exec: %w", pgError(foreignKeyViolationCode, constraintMembershipWord))
	assert.Equal(t, constraintMembershipWord, ConstraintName(wrapped))
}

type fakeResult struct {
	rows int64
	err  error
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, r.err }

func TestCheckRowsAffected(t *testing.T) {
	t.Parallel()

	notFound := store.ErrWordNotFound

	assert.NoError(t, CheckRowsAffected(fakeResult{rows: 1}, notFound))
	assert.ErrorIs(t, CheckRowsAffected(fakeResult{rows: 0}, notFound), notFound)

	err := CheckRowsAffected(fakeResult{err: errors.New("driver does not support")}, notFound)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, notFound)
}
