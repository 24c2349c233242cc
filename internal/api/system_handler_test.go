package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetHistoryEndpoint(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)
	f.sqlMock.ExpectBegin()
	f.sqlMock.ExpectCommit()

	rec := f.do(t, http.MethodPost, "/api/reset_history", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ResetResponse
	decodeBody(t, rec, &resp)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Message)
	assert.Equal(t, []string{"DeleteHistory"}, f.maintenanceStore.Calls)
}

func TestFullResetEndpoint(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)
	f.sqlMock.ExpectBegin()
	f.sqlMock.ExpectCommit()

	rec := f.do(t, http.MethodPost, "/api/full_reset", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ResetResponse
	decodeBody(t, rec, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, []string{"DeleteHistory", "DeleteInventory"}, f.maintenanceStore.Calls)

	// The seed data set is back in place.
	assert.Len(t, f.groupStore.Groups, 3)
	assert.Len(t, f.wordStore.Words, 15)
	assert.Len(t, f.activityStore.Activities, 3)
}

func TestResetHistoryEndpoint_StoreFailure(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)
	f.sqlMock.ExpectBegin()
	f.sqlMock.ExpectRollback()
	f.maintenanceStore.DeleteHistoryError = assert.AnError

	rec := f.do(t, http.MethodPost, "/api/reset_history", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
