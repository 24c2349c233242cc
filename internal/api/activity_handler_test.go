package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordtrail/wordtrail-api/internal/domain"
)

func TestListActivitiesEndpoint(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)

	names := []string{"Flashcards", "Vocabulary Quiz"}
	for _, name := range names {
		activity, err := domain.NewStudyActivity(name, "https://study.example.com/"+name, "", "")
		require.NoError(t, err)
		require.NoError(t, f.activityStore.Create(context.Background(), activity))
	}

	rec := f.do(t, http.MethodGet, "/api/study_activities", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ListResponse[ActivityResponse]
	decodeBody(t, rec, &resp)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "Flashcards", resp.Items[0].Name)
	assert.Equal(t, "Vocabulary Quiz", resp.Items[1].Name)
}

func TestGetActivityEndpoint_NotFound(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/api/study_activities/"+uuid.New().String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListActivitySessionsEndpoint(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)

	activity, err := domain.NewStudyActivity("Flashcards", "https://study.example.com/flashcards", "", "")
	require.NoError(t, err)
	require.NoError(t, f.activityStore.Create(context.Background(), activity))

	session, err := domain.NewStudySession(uuid.New(), activity.ID)
	require.NoError(t, err)
	require.NoError(t, f.sessionStore.Create(context.Background(), session))

	otherSession, err := domain.NewStudySession(uuid.New(), uuid.New())
	require.NoError(t, err)
	require.NoError(t, f.sessionStore.Create(context.Background(), otherSession))

	rec := f.do(t, http.MethodGet, "/api/study_activities/"+activity.ID.String()+"/study_sessions", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ListResponse[SessionResponse]
	decodeBody(t, rec, &resp)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, session.ID.String(), resp.Items[0].ID)
}

func TestListActivitySessionsEndpoint_UnknownActivity(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/api/study_activities/"+uuid.New().String()+"/study_sessions", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
