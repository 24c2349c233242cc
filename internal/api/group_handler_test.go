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

func TestCreateGroupEndpoint(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/api/groups", CreateGroupRequest{Name: "Basic Greetings"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp GroupResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Basic Greetings", resp.Name)
	assert.Zero(t, resp.WordCount)
}

func TestCreateGroupEndpoint_DuplicateName(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/api/groups", CreateGroupRequest{Name: "Basic Greetings"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/groups", CreateGroupRequest{Name: "Basic Greetings"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAddWordsEndpoint(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)

	group, err := domain.NewGroup("Everyday Nouns")
	require.NoError(t, err)
	require.NoError(t, f.groupStore.Create(context.Background(), group))

	word, err := domain.NewWord("کتاب", "ketaab", "book", nil)
	require.NoError(t, err)
	f.wordStore.Words[word.ID] = word

	// AddWordsToGroup runs transactionally
	f.sqlMock.ExpectBegin()
	f.sqlMock.ExpectCommit()

	rec := f.do(t, http.MethodPost, "/api/groups/"+group.ID.String()+"/words", AddWordsRequest{
		WordIDs: []string{word.ID.String()},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp GroupResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, 1, resp.WordCount)
}

func TestAddWordsEndpoint_EmptyList(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)

	group, err := domain.NewGroup("Everyday Nouns")
	require.NoError(t, err)
	require.NoError(t, f.groupStore.Create(context.Background(), group))

	rec := f.do(t, http.MethodPost, "/api/groups/"+group.ID.String()+"/words", AddWordsRequest{
		WordIDs: []string{},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddWordsEndpoint_InvalidWordID(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)

	group, err := domain.NewGroup("Everyday Nouns")
	require.NoError(t, err)
	require.NoError(t, f.groupStore.Create(context.Background(), group))

	rec := f.do(t, http.MethodPost, "/api/groups/"+group.ID.String()+"/words", AddWordsRequest{
		WordIDs: []string{"not-a-uuid"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListGroupWordsEndpoint_UnknownGroup(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/api/groups/"+uuid.New().String()+"/words", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListGroupSessionsEndpoint(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)

	group, err := domain.NewGroup("Common Verbs")
	require.NoError(t, err)
	require.NoError(t, f.groupStore.Create(context.Background(), group))

	session, err := domain.NewStudySession(group.ID, uuid.New())
	require.NoError(t, err)
	require.NoError(t, f.sessionStore.Create(context.Background(), session))

	otherSession, err := domain.NewStudySession(uuid.New(), uuid.New())
	require.NoError(t, err)
	require.NoError(t, f.sessionStore.Create(context.Background(), otherSession))

	rec := f.do(t, http.MethodGet, "/api/groups/"+group.ID.String()+"/study_sessions", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ListResponse[SessionResponse]
	decodeBody(t, rec, &resp)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, session.ID.String(), resp.Items[0].ID)
}

func TestListGroupSessionsEndpoint_UnknownGroup(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/api/groups/"+uuid.New().String()+"/study_sessions", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
