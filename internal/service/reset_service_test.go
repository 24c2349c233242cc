package service

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wordtrail/wordtrail-api/internal/mocks"
)

type resetFixture struct {
	svc              ResetService
	maintenanceStore *mocks.MockMaintenanceStore
	wordStore        *mocks.MockWordStore
	groupStore       *mocks.MockGroupStore
	activityStore    *mocks.MockActivityStore
	mock             sqlmock.Sqlmock
}

func newResetFixture(t *testing.T) *resetFixture {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	f := &resetFixture{
		maintenanceStore: mocks.NewMockMaintenanceStore(),
		wordStore:        mocks.NewMockWordStore(),
		groupStore:       mocks.NewMockGroupStore(),
		activityStore:    mocks.NewMockActivityStore(),
		mock:             mock,
	}

	f.svc, err = NewResetService(db, f.maintenanceStore, f.wordStore, f.groupStore, f.activityStore, nil)
	require.NoError(t, err)

	return f
}

func TestResetHistory(t *testing.T) {
	t.Parallel()

	f := newResetFixture(t)

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	require.NoError(t, f.svc.ResetHistory(context.Background()))
	assert.Equal(t, []string{"DeleteHistory"}, f.maintenanceStore.Calls)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestResetHistory_RollsBackOnError(t *testing.T) {
	t.Parallel()

	f := newResetFixture(t)
	f.maintenanceStore.DeleteHistoryError = errors.New("disk on fire")

	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	err := f.svc.ResetHistory(context.Background())
	assert.Error(t, err)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestFullReset(t *testing.T) {
	t.Parallel()

	f := newResetFixture(t)

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	require.NoError(t, f.svc.FullReset(context.Background()))

	// History goes before inventory so session foreign keys never dangle.
	assert.Equal(t, []string{"DeleteHistory", "DeleteInventory"}, f.maintenanceStore.Calls)

	// The seed data is back: groups with their words attached, and the
	// activity catalog filled.
	assert.Len(t, f.groupStore.Groups, 3)
	assert.Len(t, f.wordStore.Words, 15)
	assert.Len(t, f.activityStore.Activities, 3)
	for _, group := range f.groupStore.Groups {
		assert.Equal(t, 5, group.WordCount)
	}

	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestFullReset_SeedFailureRollsBack(t *testing.T) {
	t.Parallel()

	f := newResetFixture(t)
	f.groupStore.CreateError = errors.New("constraint violated")

	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	err := f.svc.FullReset(context.Background())
	assert.ErrorIs(t, err, ErrSeedFailed)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestFullReset_DeleteFailureSkipsSeed(t *testing.T) {
	t.Parallel()

	f := newResetFixture(t)
	f.maintenanceStore.DeleteInventoryError = errors.New("locked")

	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	err := f.svc.FullReset(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrSeedFailed)
	assert.Empty(t, f.groupStore.Groups)
}
