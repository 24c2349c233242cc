package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// StudyActivity-specific validation errors
var (
	// ErrActivityIDEmpty is returned when an activity ID is empty or nil.
	ErrActivityIDEmpty = errors.New("study activity ID cannot be empty")

	// ErrActivityNameEmpty is returned when an activity's name is empty.
	ErrActivityNameEmpty = errors.New("study activity name cannot be empty")

	// ErrActivityLaunchURLEmpty is returned when an activity's launch URL is empty.
	ErrActivityLaunchURLEmpty = errors.New("study activity launch URL cannot be empty")
)

// StudyActivity is a catalog entry describing an external launchable study
// tool (quiz, flashcards, word matching, ...). Entries are created by
// seeding and are read-only to the core at runtime.
//
// ThumbnailURL and Description are optional.
type StudyActivity struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	LaunchURL    string    `json:"launch_url"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	Description  string    `json:"description,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewStudyActivity creates a new StudyActivity catalog entry.
// Returns an error if validation fails.
func NewStudyActivity(name, launchURL, thumbnailURL, description string) (*StudyActivity, error) {
	activity := &StudyActivity{
		ID:           uuid.New(),
		Name:         name,
		LaunchURL:    launchURL,
		ThumbnailURL: thumbnailURL,
		Description:  description,
		CreatedAt:    time.Now().UTC(),
	}

	if err := activity.Validate(); err != nil {
		return nil, err
	}

	return activity, nil
}

// Validate checks if the StudyActivity has valid data.
func (a *StudyActivity) Validate() error {
	if a.ID == uuid.Nil {
		return ErrActivityIDEmpty
	}

	if a.Name == "" {
		return ErrActivityNameEmpty
	}

	if a.LaunchURL == "" {
		return ErrActivityLaunchURLEmpty
	}

	return nil
}
