package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/wordtrail/wordtrail-api/internal/domain"
	"github.com/wordtrail/wordtrail-api/internal/store"
)

// StudyService provides study session and review recording operations.
type StudyService interface {
	// StartSession creates a new study session for the given group and
	// activity and returns its view. Returns store.ErrGroupNotFound or
	// store.ErrActivityNotFound when a reference is invalid.
	StartSession(ctx context.Context, groupID, activityID uuid.UUID) (*domain.StudySessionView, error)

	// GetSession retrieves a session view by ID.
	GetSession(ctx context.Context, id uuid.UUID) (*domain.StudySessionView, error)

	// ListSessions returns one page of session views, newest first,
	// optionally filtered by group or activity.
	ListSessions(
		ctx context.Context,
		req store.PageRequest,
		filter store.SessionFilter,
	) (store.Page[domain.StudySessionView], error)

	// RecordReview records one graded attempt at a word within a session.
	// Recording is create-once: when the pair already has a review, the
	// existing fact is returned with created=false and no error. The stored
	// result never changes after the first write.
	RecordReview(
		ctx context.Context,
		sessionID, wordID uuid.UUID,
		correct bool,
	) (item *domain.WordReviewItem, created bool, err error)

	// ListSessionReviews returns one page of a session's review items in
	// recording order.
	ListSessionReviews(
		ctx context.Context,
		sessionID uuid.UUID,
		req store.PageRequest,
	) (store.Page[domain.WordReviewItem], error)
}

// studyServiceImpl implements the StudyService interface
type studyServiceImpl struct {
	sessionStore store.SessionStore
	reviewStore  store.ReviewStore
	logger       *slog.Logger
}

// NewStudyService creates a new StudyService.
// It returns an error if any of the required dependencies are nil.
func NewStudyService(
	sessionStore store.SessionStore,
	reviewStore store.ReviewStore,
	logger *slog.Logger,
) (StudyService, error) {
	if sessionStore == nil {
		return nil, domain.NewValidationError("sessionStore", "cannot be nil", domain.ErrValidation)
	}
	if reviewStore == nil {
		return nil, domain.NewValidationError("reviewStore", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &studyServiceImpl{
		sessionStore: sessionStore,
		reviewStore:  reviewStore,
		logger:       logger.With(slog.String("component", "study_service")),
	}, nil
}

// StartSession implements StudyService.StartSession
func (s *studyServiceImpl) StartSession(
	ctx context.Context,
	groupID, activityID uuid.UUID,
) (*domain.StudySessionView, error) {
	session, err := domain.NewStudySession(groupID, activityID)
	if err != nil {
		return nil, err
	}

	if err := s.sessionStore.Create(ctx, session); err != nil {
		return nil, err
	}

	return s.sessionStore.GetByID(ctx, session.ID)
}

// GetSession implements StudyService.GetSession
func (s *studyServiceImpl) GetSession(ctx context.Context, id uuid.UUID) (*domain.StudySessionView, error) {
	return s.sessionStore.GetByID(ctx, id)
}

// ListSessions implements StudyService.ListSessions
func (s *studyServiceImpl) ListSessions(
	ctx context.Context,
	req store.PageRequest,
	filter store.SessionFilter,
) (store.Page[domain.StudySessionView], error) {
	return s.sessionStore.List(ctx, req, filter)
}

// RecordReview implements StudyService.RecordReview
// The duplicate case relies on the store's uniqueness guarantee: of two
// concurrent submissions exactly one creates the row, and the loser reads
// the winner's fact back.
func (s *studyServiceImpl) RecordReview(
	ctx context.Context,
	sessionID, wordID uuid.UUID,
	correct bool,
) (*domain.WordReviewItem, bool, error) {
	item, err := domain.NewWordReviewItem(sessionID, wordID, correct)
	if err != nil {
		return nil, false, err
	}

	err = s.reviewStore.Create(ctx, item)
	if err == nil {
		return item, true, nil
	}

	if errors.Is(err, store.ErrReviewExists) {
		existing, getErr := s.reviewStore.Get(ctx, sessionID, wordID)
		if getErr != nil {
			return nil, false, getErr
		}

		s.logger.Debug("duplicate review submission ignored",
			slog.String("session_id", sessionID.String()),
			slog.String("word_id", wordID.String()))
		return existing, false, nil
	}

	return nil, false, err
}

// ListSessionReviews implements StudyService.ListSessionReviews
func (s *studyServiceImpl) ListSessionReviews(
	ctx context.Context,
	sessionID uuid.UUID,
	req store.PageRequest,
) (store.Page[domain.WordReviewItem], error) {
	return s.reviewStore.ListBySession(ctx, sessionID, req)
}
