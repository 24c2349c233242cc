package mocks

import (
	"context"
	"database/sql"
	"sort"

	"github.com/google/uuid"
	"github.com/wordtrail/wordtrail-api/internal/domain"
	"github.com/wordtrail/wordtrail-api/internal/store"
)

// MockActivityStore implements store.ActivityStore for testing
type MockActivityStore struct {
	// Function fields for customizable behavior
	CreateFn  func(ctx context.Context, activity *domain.StudyActivity) error
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.StudyActivity, error)
	ListFn    func(ctx context.Context, req store.PageRequest) (store.Page[domain.StudyActivity], error)

	// Data for default implementation
	Activities  map[uuid.UUID]*domain.StudyActivity
	CreateError error
}

// NewMockActivityStore creates a new mock store with initialized defaults
func NewMockActivityStore() *MockActivityStore {
	return &MockActivityStore{
		Activities: make(map[uuid.UUID]*domain.StudyActivity),
	}
}

// Create implements the ActivityStore interface
func (m *MockActivityStore) Create(ctx context.Context, activity *domain.StudyActivity) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, activity)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	if err := activity.Validate(); err != nil {
		return err
	}

	for _, existing := range m.Activities {
		if existing.Name == activity.Name {
			return store.ErrActivityNameExists
		}
	}

	m.Activities[activity.ID] = activity
	return nil
}

// GetByID implements the ActivityStore interface
func (m *MockActivityStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.StudyActivity, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	activity, exists := m.Activities[id]
	if !exists {
		return nil, store.ErrActivityNotFound
	}
	return activity, nil
}

// List implements the ActivityStore interface
func (m *MockActivityStore) List(
	ctx context.Context,
	req store.PageRequest,
) (store.Page[domain.StudyActivity], error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, req)
	}

	items := make([]domain.StudyActivity, 0, len(m.Activities))
	for _, activity := range m.Activities {
		items = append(items, *activity)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })

	return paginate(items, req)
}

// WithTx implements the ActivityStore interface; the mock has no transactions.
func (m *MockActivityStore) WithTx(tx *sql.Tx) store.ActivityStore {
	return m
}
