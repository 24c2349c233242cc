package api

import (
	"time"

	"github.com/wordtrail/wordtrail-api/internal/domain"
	"github.com/wordtrail/wordtrail-api/internal/store"
)

// Common request/response structures

// CreateWordRequest defines the payload for adding a word to the inventory.
type CreateWordRequest struct {
	NativeText      string                 `json:"native_text"      validate:"required"`
	Transliteration string                 `json:"transliteration"`
	Translation     string                 `json:"translation"      validate:"required"`
	Attributes      *domain.WordAttributes `json:"attributes,omitempty"`
}

// UpdateWordRequest defines the payload for editing a word's attribute tags.
// The text fields are immutable and absent here.
type UpdateWordRequest struct {
	Attributes *domain.WordAttributes `json:"attributes" validate:"required"`
}

// CreateGroupRequest defines the payload for creating a group.
type CreateGroupRequest struct {
	Name string `json:"name" validate:"required"`
}

// AddWordsRequest defines the payload for attaching words to a group.
type AddWordsRequest struct {
	WordIDs []string `json:"word_ids" validate:"required,min=1,dive,uuid"`
}

// StartSessionRequest defines the payload for starting a study session.
type StartSessionRequest struct {
	GroupID         string `json:"group_id"          validate:"required,uuid"`
	StudyActivityID string `json:"study_activity_id" validate:"required,uuid"`
}

// SubmitReviewRequest defines the payload for recording a word review.
// Correct is a pointer so "false" and "missing" are distinguishable.
type SubmitReviewRequest struct {
	Correct *bool `json:"correct" validate:"required"`
}

// WordResponse represents a word together with its derived review counters.
type WordResponse struct {
	ID              string                 `json:"id"`
	NativeText      string                 `json:"native_text"`
	Transliteration string                 `json:"transliteration,omitempty"`
	Translation     string                 `json:"translation"`
	Attributes      *domain.WordAttributes `json:"attributes,omitempty"`
	Stats           domain.WordStats       `json:"stats"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

// GroupResponse represents a group with its cached word count.
type GroupResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	WordCount int       `json:"word_count"`
	CreatedAt time.Time `json:"created_at"`
}

// ActivityResponse represents a study-activity catalog entry.
type ActivityResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	LaunchURL    string    `json:"launch_url"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	Description  string    `json:"description,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// SessionResponse represents a study session view: the session row joined
// with its group and activity names plus the derived end time and review
// count.
type SessionResponse struct {
	ID               string     `json:"id"`
	ActivityName     string     `json:"activity_name"`
	GroupName        string     `json:"group_name"`
	GroupID          string     `json:"group_id"`
	StudyActivityID  string     `json:"study_activity_id"`
	StartTime        time.Time  `json:"start_time"`
	EndTime          *time.Time `json:"end_time"`
	ReviewItemsCount int        `json:"review_items_count"`
}

// ReviewItemResponse represents one recorded review fact.
type ReviewItemResponse struct {
	ID             string    `json:"id"`
	WordID         string    `json:"word_id"`
	StudySessionID string    `json:"study_session_id"`
	Correct        bool      `json:"correct"`
	CreatedAt      time.Time `json:"created_at"`
}

// SubmitReviewResponse is the result of a review submission. Success is true
// for a retried duplicate as well: the stored fact is returned either way.
type SubmitReviewResponse struct {
	Success        bool      `json:"success"`
	WordID         string    `json:"word_id"`
	StudySessionID string    `json:"study_session_id"`
	Correct        bool      `json:"correct"`
	CreatedAt      time.Time `json:"created_at"`
}

// ListResponse is the standard paginated listing envelope.
type ListResponse[T any] struct {
	Items      []T              `json:"items"`
	Pagination store.Pagination `json:"pagination"`
}

// newListResponse maps a store page into the response envelope.
func newListResponse[S, T any](page store.Page[S], convert func(S) T) ListResponse[T] {
	items := make([]T, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, convert(item))
	}
	return ListResponse[T]{Items: items, Pagination: page.Pagination}
}

// wordToResponse converts a word and its counters to a WordResponse
func wordToResponse(word *domain.Word, stats domain.WordStats) WordResponse {
	return WordResponse{
		ID:              word.ID.String(),
		NativeText:      word.NativeText,
		Transliteration: word.Transliteration,
		Translation:     word.Translation,
		Attributes:      word.Attributes,
		Stats:           stats,
		CreatedAt:       word.CreatedAt,
		UpdatedAt:       word.UpdatedAt,
	}
}

// groupToResponse converts a domain.Group to a GroupResponse
func groupToResponse(group *domain.Group) GroupResponse {
	return GroupResponse{
		ID:        group.ID.String(),
		Name:      group.Name,
		WordCount: group.WordCount,
		CreatedAt: group.CreatedAt,
	}
}

// activityToResponse converts a domain.StudyActivity to an ActivityResponse
func activityToResponse(activity *domain.StudyActivity) ActivityResponse {
	return ActivityResponse{
		ID:           activity.ID.String(),
		Name:         activity.Name,
		LaunchURL:    activity.LaunchURL,
		ThumbnailURL: activity.ThumbnailURL,
		Description:  activity.Description,
		CreatedAt:    activity.CreatedAt,
	}
}

// sessionToResponse converts a domain.StudySessionView to a SessionResponse
func sessionToResponse(view *domain.StudySessionView) SessionResponse {
	return SessionResponse{
		ID:               view.ID.String(),
		ActivityName:     view.ActivityName,
		GroupName:        view.GroupName,
		GroupID:          view.GroupID.String(),
		StudyActivityID:  view.StudyActivityID.String(),
		StartTime:        view.StartTime,
		EndTime:          view.EndTime,
		ReviewItemsCount: view.ReviewItemsCount,
	}
}

// reviewToResponse converts a domain.WordReviewItem to a ReviewItemResponse
func reviewToResponse(item *domain.WordReviewItem) ReviewItemResponse {
	return ReviewItemResponse{
		ID:             item.ID.String(),
		WordID:         item.WordID.String(),
		StudySessionID: item.StudySessionID.String(),
		Correct:        item.Correct,
		CreatedAt:      item.CreatedAt,
	}
}
