package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordtrail/wordtrail-api/internal/mocks"
	"github.com/wordtrail/wordtrail-api/internal/store"
)

func TestApply(t *testing.T) {
	t.Parallel()

	wordStore := mocks.NewMockWordStore()
	groupStore := mocks.NewMockGroupStore()
	activityStore := mocks.NewMockActivityStore()

	err := Apply(context.Background(), Stores{
		Words:      wordStore,
		Groups:     groupStore,
		Activities: activityStore,
	})
	require.NoError(t, err)

	assert.Len(t, groupStore.Groups, 3)
	assert.Len(t, wordStore.Words, 15)
	assert.Len(t, activityStore.Activities, 3)

	// Every group carries its full membership and an accurate word count.
	for id, group := range groupStore.Groups {
		assert.Len(t, groupStore.Memberships[id], 5, "group %s", group.Name)
		assert.Equal(t, 5, group.WordCount, "group %s", group.Name)
	}

	names := make(map[string]bool)
	for _, group := range groupStore.Groups {
		names[group.Name] = true
	}
	assert.True(t, names["Basic Greetings"])
	assert.True(t, names["Everyday Nouns"])
	assert.True(t, names["Common Verbs"])
}

func TestApply_RerunFailsOnExistingGroups(t *testing.T) {
	t.Parallel()

	wordStore := mocks.NewMockWordStore()
	groupStore := mocks.NewMockGroupStore()
	activityStore := mocks.NewMockActivityStore()

	stores := Stores{Words: wordStore, Groups: groupStore, Activities: activityStore}
	require.NoError(t, Apply(context.Background(), stores))

	err := Apply(context.Background(), stores)
	assert.ErrorIs(t, err, store.ErrGroupNameExists)
}
