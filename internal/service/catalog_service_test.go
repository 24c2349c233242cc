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

func TestGetActivity(t *testing.T) {
	t.Parallel()

	activityStore := mocks.NewMockActivityStore()
	svc, err := NewCatalogService(activityStore, nil)
	require.NoError(t, err)

	activity, err := domain.NewStudyActivity("Flashcards", "https://study.example.com/flashcards", "", "")
	require.NoError(t, err)
	require.NoError(t, activityStore.Create(context.Background(), activity))

	got, err := svc.GetActivity(context.Background(), activity.ID)
	require.NoError(t, err)
	assert.Equal(t, activity.Name, got.Name)

	_, err = svc.GetActivity(context.Background(), uuid.New())
	assert.ErrorIs(t, err, store.ErrActivityNotFound)
}

func TestListActivities(t *testing.T) {
	t.Parallel()

	activityStore := mocks.NewMockActivityStore()
	svc, err := NewCatalogService(activityStore, nil)
	require.NoError(t, err)

	for _, name := range []string{"Flashcards", "Vocabulary Quiz", "Word Matching"} {
		activity, err := domain.NewStudyActivity(name, "https://study.example.com/"+name, "", "")
		require.NoError(t, err)
		require.NoError(t, activityStore.Create(context.Background(), activity))
	}

	page, err := svc.ListActivities(context.Background(), store.PageRequest{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 3, page.Pagination.TotalItems)
	assert.Equal(t, 2, page.Pagination.TotalPages)
	assert.Equal(t, "Flashcards", page.Items[0].Name)
}

func TestNewCatalogService_NilStore(t *testing.T) {
	t.Parallel()

	_, err := NewCatalogService(nil, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
