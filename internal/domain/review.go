package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// WordReviewItem-specific validation errors
var (
	// ErrReviewIDEmpty is returned when a review item ID is empty or nil.
	ErrReviewIDEmpty = errors.New("review item ID cannot be empty")

	// ErrReviewWordIDEmpty is returned when a review item's word ID is empty or nil.
	ErrReviewWordIDEmpty = errors.New("review item word ID cannot be empty")

	// ErrReviewSessionIDEmpty is returned when a review item's session ID is empty or nil.
	ErrReviewSessionIDEmpty = errors.New("review item session ID cannot be empty")
)

// WordReviewItem is one graded attempt at a single word within one study
// session. Review items are immutable facts once written.
//
// The pair (StudySessionID, WordID) is unique: a word can be reviewed at
// most once per session. The store enforces this with a database constraint
// so concurrent duplicate submissions cannot both succeed.
type WordReviewItem struct {
	ID             uuid.UUID `json:"id"`
	WordID         uuid.UUID `json:"word_id"`
	StudySessionID uuid.UUID `json:"study_session_id"`
	Correct        bool      `json:"correct"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewWordReviewItem creates a new review fact for the given word and
// session. Returns an error if validation fails.
func NewWordReviewItem(sessionID, wordID uuid.UUID, correct bool) (*WordReviewItem, error) {
	item := &WordReviewItem{
		ID:             uuid.New(),
		WordID:         wordID,
		StudySessionID: sessionID,
		Correct:        correct,
		CreatedAt:      time.Now().UTC(),
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate checks if the WordReviewItem has valid data.
func (r *WordReviewItem) Validate() error {
	if r.ID == uuid.Nil {
		return ErrReviewIDEmpty
	}

	if r.WordID == uuid.Nil {
		return ErrReviewWordIDEmpty
	}

	if r.StudySessionID == uuid.Nil {
		return ErrReviewSessionIDEmpty
	}

	return nil
}
