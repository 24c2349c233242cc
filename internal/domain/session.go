package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// StudySession-specific validation errors
var (
	// ErrSessionIDEmpty is returned when a session ID is empty or nil.
	ErrSessionIDEmpty = errors.New("study session ID cannot be empty")

	// ErrSessionGroupIDEmpty is returned when a session's group ID is empty or nil.
	ErrSessionGroupIDEmpty = errors.New("study session group ID cannot be empty")

	// ErrSessionActivityIDEmpty is returned when a session's activity ID is empty or nil.
	ErrSessionActivityIDEmpty = errors.New("study session activity ID cannot be empty")
)

// StudySession records one bounded practice event: "practice group G via
// activity A, started at time T". Sessions are created once and never
// mutated; reviews attach to them afterwards.
//
// A session has no stored end time. Its end is derived as the timestamp of
// the latest review item belonging to it, absent when it has no reviews.
type StudySession struct {
	ID              uuid.UUID `json:"id"`
	GroupID         uuid.UUID `json:"group_id"`
	StudyActivityID uuid.UUID `json:"study_activity_id"`
	CreatedAt       time.Time `json:"created_at"`
}

// StudySessionView is the read model for a session: the session row joined
// with the names of its group and activity plus the derived fields.
type StudySessionView struct {
	ID               uuid.UUID  `json:"id"`
	ActivityName     string     `json:"activity_name"`
	GroupName        string     `json:"group_name"`
	GroupID          uuid.UUID  `json:"group_id"`
	StudyActivityID  uuid.UUID  `json:"study_activity_id"`
	StartTime        time.Time  `json:"start_time"`
	EndTime          *time.Time `json:"end_time"`
	ReviewItemsCount int        `json:"review_items_count"`
}

// NewStudySession creates a new StudySession for the given group and
// activity. Referential validity of the two IDs is enforced by the store,
// not here. Returns an error if validation fails.
func NewStudySession(groupID, studyActivityID uuid.UUID) (*StudySession, error) {
	session := &StudySession{
		ID:              uuid.New(),
		GroupID:         groupID,
		StudyActivityID: studyActivityID,
		CreatedAt:       time.Now().UTC(),
	}

	if err := session.Validate(); err != nil {
		return nil, err
	}

	return session, nil
}

// Validate checks if the StudySession has valid data.
func (s *StudySession) Validate() error {
	if s.ID == uuid.Nil {
		return ErrSessionIDEmpty
	}

	if s.GroupID == uuid.Nil {
		return ErrSessionGroupIDEmpty
	}

	if s.StudyActivityID == uuid.Nil {
		return ErrSessionActivityIDEmpty
	}

	return nil
}
