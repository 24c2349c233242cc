package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWord(t *testing.T) {
	t.Parallel()

	word, err := NewWord("سلام", "salaam", "hello", &WordAttributes{PartOfSpeech: "interjection"})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, word.ID)
	assert.Equal(t, "سلام", word.NativeText)
	assert.Equal(t, "hello", word.Translation)
	assert.Equal(t, word.CreatedAt, word.UpdatedAt)
}

func TestNewWord_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		nativeText      string
		transliteration string
		translation     string
		wantErr         error
	}{
		{
			name:        "missing native text",
			translation: "hello",
			wantErr:     ErrWordNativeTextEmpty,
		},
		{
			name:       "missing translation",
			nativeText: "سلام",
			wantErr:    ErrWordTranslationEmpty,
		},
		{
			name:        "transliteration is optional",
			nativeText:  "سلام",
			translation: "hello",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewWord(tc.nativeText, tc.transliteration, tc.translation, nil)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWordUpdateAttributes(t *testing.T) {
	t.Parallel()

	word, err := NewWord("کتاب", "ketaab", "book", nil)
	require.NoError(t, err)

	attrs := &WordAttributes{PartOfSpeech: "noun", Difficulty: "beginner"}
	word.UpdateAttributes(attrs)

	assert.Equal(t, attrs, word.Attributes)
	assert.True(t, word.UpdatedAt.After(word.CreatedAt) || word.UpdatedAt.Equal(word.CreatedAt))

	// Text identity never changes
	assert.Equal(t, "کتاب", word.NativeText)
	assert.Equal(t, "book", word.Translation)
}

func TestNewGroup_Validation(t *testing.T) {
	t.Parallel()

	group, err := NewGroup("Basic Greetings")
	require.NoError(t, err)
	assert.Zero(t, group.WordCount)

	_, err = NewGroup("")
	assert.ErrorIs(t, err, ErrGroupNameEmpty)
}

func TestNewStudyActivity_Validation(t *testing.T) {
	t.Parallel()

	activity, err := NewStudyActivity("Flashcards", "https://study.example.com/flashcards", "", "")
	require.NoError(t, err)
	assert.Empty(t, activity.ThumbnailURL)

	_, err = NewStudyActivity("", "https://study.example.com/flashcards", "", "")
	assert.ErrorIs(t, err, ErrActivityNameEmpty)

	_, err = NewStudyActivity("Flashcards", "", "", "")
	assert.ErrorIs(t, err, ErrActivityLaunchURLEmpty)
}

func TestNewStudySession_Validation(t *testing.T) {
	t.Parallel()

	session, err := NewStudySession(uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, session.ID)

	_, err = NewStudySession(uuid.Nil, uuid.New())
	assert.ErrorIs(t, err, ErrSessionGroupIDEmpty)

	_, err = NewStudySession(uuid.New(), uuid.Nil)
	assert.ErrorIs(t, err, ErrSessionActivityIDEmpty)
}

func TestNewWordReviewItem_Validation(t *testing.T) {
	t.Parallel()

	item, err := NewWordReviewItem(uuid.New(), uuid.New(), false)
	require.NoError(t, err)
	assert.False(t, item.Correct)

	_, err = NewWordReviewItem(uuid.Nil, uuid.New(), true)
	assert.ErrorIs(t, err, ErrReviewSessionIDEmpty)

	_, err = NewWordReviewItem(uuid.New(), uuid.Nil, true)
	assert.ErrorIs(t, err, ErrReviewWordIDEmpty)
}

func TestMasteryPercentage(t *testing.T) {
	t.Parallel()

	assert.Zero(t, StudyProgress{}.MasteryPercentage())
	assert.InDelta(t, 25.0, StudyProgress{TotalWordsStudied: 12, TotalAvailableWords: 48}.MasteryPercentage(), 0.001)
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := NewValidationError("page", "must be positive", ErrValidation)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "page")

	var validationErr *ValidationError
	assert.ErrorAs(t, error(err), &validationErr)
	assert.Equal(t, "page", validationErr.Field)
}
