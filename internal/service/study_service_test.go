package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wordtrail/wordtrail-api/internal/domain"
	"github.com/wordtrail/wordtrail-api/internal/mocks"
	"github.com/wordtrail/wordtrail-api/internal/store"
)

func newStudyService(t *testing.T) (StudyService, *mocks.MockSessionStore, *mocks.MockReviewStore) {
	t.Helper()

	sessionStore := mocks.NewMockSessionStore()
	reviewStore := mocks.NewMockReviewStore()

	svc, err := NewStudyService(sessionStore, reviewStore, nil)
	require.NoError(t, err)

	return svc, sessionStore, reviewStore
}

func TestStartSession(t *testing.T) {
	t.Parallel()

	svc, sessionStore, _ := newStudyService(t)

	groupID := uuid.New()
	activityID := uuid.New()

	view, err := svc.StartSession(context.Background(), groupID, activityID)
	require.NoError(t, err)

	assert.Equal(t, groupID, view.GroupID)
	assert.Equal(t, activityID, view.StudyActivityID)
	assert.Nil(t, view.EndTime)
	assert.Equal(t, 0, view.ReviewItemsCount)
	assert.Len(t, sessionStore.Sessions, 1)
}

func TestStartSession_MissingGroup(t *testing.T) {
	t.Parallel()

	svc, sessionStore, _ := newStudyService(t)
	sessionStore.CreateError = store.ErrGroupNotFound

	_, err := svc.StartSession(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, store.ErrGroupNotFound)
}

func TestRecordReview_FirstSubmissionWins(t *testing.T) {
	t.Parallel()

	svc, _, reviewStore := newStudyService(t)

	sessionID := uuid.New()
	wordID := uuid.New()

	first, created, err := svc.RecordReview(context.Background(), sessionID, wordID, false)
	require.NoError(t, err)
	assert.True(t, created)
	assert.False(t, first.Correct)

	// A second grade for the same pair does not overwrite the stored fact.
	second, created, err := svc.RecordReview(context.Background(), sessionID, wordID, true)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.False(t, second.Correct)
	assert.Len(t, reviewStore.Reviews, 1)
}

func TestRecordReview_SameWordDifferentSessions(t *testing.T) {
	t.Parallel()

	svc, _, reviewStore := newStudyService(t)

	wordID := uuid.New()

	_, created, err := svc.RecordReview(context.Background(), uuid.New(), wordID, true)
	require.NoError(t, err)
	assert.True(t, created)

	_, created, err = svc.RecordReview(context.Background(), uuid.New(), wordID, false)
	require.NoError(t, err)
	assert.True(t, created)

	assert.Len(t, reviewStore.Reviews, 2)
}

func TestRecordReview_StoreErrorPassesThrough(t *testing.T) {
	t.Parallel()

	svc, _, reviewStore := newStudyService(t)
	reviewStore.CreateError = store.ErrSessionNotFound

	_, _, err := svc.RecordReview(context.Background(), uuid.New(), uuid.New(), true)
	assert.ErrorIs(t, err, store.ErrSessionNotFound)
}

func TestListSessions_Filtered(t *testing.T) {
	t.Parallel()

	svc, _, _ := newStudyService(t)

	groupID := uuid.New()
	otherGroup := uuid.New()
	activityID := uuid.New()

	_, err := svc.StartSession(context.Background(), groupID, activityID)
	require.NoError(t, err)
	_, err = svc.StartSession(context.Background(), otherGroup, activityID)
	require.NoError(t, err)

	page, err := svc.ListSessions(
		context.Background(),
		store.PageRequest{Page: 1, PageSize: 20},
		store.SessionFilter{GroupID: &groupID},
	)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, groupID, page.Items[0].GroupID)

	page, err = svc.ListSessions(
		context.Background(),
		store.PageRequest{Page: 1, PageSize: 20},
		store.SessionFilter{},
	)
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
}

func TestListSessionReviews(t *testing.T) {
	t.Parallel()

	svc, _, _ := newStudyService(t)

	sessionID := uuid.New()
	for i := 0; i < 3; i++ {
		_, _, err := svc.RecordReview(context.Background(), sessionID, uuid.New(), true)
		require.NoError(t, err)
	}

	page, err := svc.ListSessionReviews(context.Background(), sessionID, store.PageRequest{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 3, page.Pagination.TotalItems)
	assert.Equal(t, 2, page.Pagination.TotalPages)
}

func TestNewStudyService_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewStudyService(nil, mocks.NewMockReviewStore(), nil)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = NewStudyService(mocks.NewMockSessionStore(), nil, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
