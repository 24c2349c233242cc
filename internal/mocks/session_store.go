package mocks

import (
	"context"
	"database/sql"
	"sort"

	"github.com/google/uuid"
	"github.com/wordtrail/wordtrail-api/internal/domain"
	"github.com/wordtrail/wordtrail-api/internal/store"
)

// MockSessionStore implements store.SessionStore for testing
type MockSessionStore struct {
	// Function fields for customizable behavior
	CreateFn  func(ctx context.Context, session *domain.StudySession) error
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.StudySessionView, error)
	ListFn    func(ctx context.Context, req store.PageRequest, filter store.SessionFilter) (store.Page[domain.StudySessionView], error)

	// Data for default implementation. Views holds the read models GetByID
	// and List serve; Create synthesizes one with empty names so tests that
	// only care about IDs need no extra setup.
	Sessions    map[uuid.UUID]*domain.StudySession
	Views       map[uuid.UUID]*domain.StudySessionView
	CreateError error
}

// NewMockSessionStore creates a new mock store with initialized defaults
func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{
		Sessions: make(map[uuid.UUID]*domain.StudySession),
		Views:    make(map[uuid.UUID]*domain.StudySessionView),
	}
}

// Create implements the SessionStore interface
func (m *MockSessionStore) Create(ctx context.Context, session *domain.StudySession) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, session)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	if err := session.Validate(); err != nil {
		return err
	}

	m.Sessions[session.ID] = session
	m.Views[session.ID] = &domain.StudySessionView{
		ID:              session.ID,
		GroupID:         session.GroupID,
		StudyActivityID: session.StudyActivityID,
		StartTime:       session.CreatedAt,
	}
	return nil
}

// GetByID implements the SessionStore interface
func (m *MockSessionStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.StudySessionView, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	view, exists := m.Views[id]
	if !exists {
		return nil, store.ErrSessionNotFound
	}
	return view, nil
}

// List implements the SessionStore interface
func (m *MockSessionStore) List(
	ctx context.Context,
	req store.PageRequest,
	filter store.SessionFilter,
) (store.Page[domain.StudySessionView], error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, req, filter)
	}

	items := []domain.StudySessionView{}
	for _, view := range m.Views {
		if filter.GroupID != nil && view.GroupID != *filter.GroupID {
			continue
		}
		if filter.StudyActivityID != nil && view.StudyActivityID != *filter.StudyActivityID {
			continue
		}
		items = append(items, *view)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].StartTime.After(items[j].StartTime) })

	return paginate(items, req)
}

// WithTx implements the SessionStore interface; the mock has no transactions.
func (m *MockSessionStore) WithTx(tx *sql.Tx) store.SessionStore {
	return m
}
