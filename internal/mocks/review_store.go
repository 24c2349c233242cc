package mocks

import (
	"context"
	"database/sql"
	"sort"

	"github.com/google/uuid"
	"github.com/wordtrail/wordtrail-api/internal/domain"
	"github.com/wordtrail/wordtrail-api/internal/store"
)

type reviewKey struct {
	sessionID uuid.UUID
	wordID    uuid.UUID
}

// MockReviewStore implements store.ReviewStore for testing
type MockReviewStore struct {
	// Function fields for customizable behavior
	CreateFn        func(ctx context.Context, item *domain.WordReviewItem) error
	GetFn           func(ctx context.Context, sessionID, wordID uuid.UUID) (*domain.WordReviewItem, error)
	ListBySessionFn func(ctx context.Context, sessionID uuid.UUID, req store.PageRequest) (store.Page[domain.WordReviewItem], error)

	// Data for default implementation. The map enforces pair uniqueness the
	// way the real database constraint does.
	Reviews     map[reviewKey]*domain.WordReviewItem
	CreateError error
}

// NewMockReviewStore creates a new mock store with initialized defaults
func NewMockReviewStore() *MockReviewStore {
	return &MockReviewStore{
		Reviews: make(map[reviewKey]*domain.WordReviewItem),
	}
}

// Create implements the ReviewStore interface
func (m *MockReviewStore) Create(ctx context.Context, item *domain.WordReviewItem) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, item)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	if err := item.Validate(); err != nil {
		return err
	}

	key := reviewKey{sessionID: item.StudySessionID, wordID: item.WordID}
	if _, exists := m.Reviews[key]; exists {
		return store.ErrReviewExists
	}

	m.Reviews[key] = item
	return nil
}

// Get implements the ReviewStore interface
func (m *MockReviewStore) Get(
	ctx context.Context,
	sessionID, wordID uuid.UUID,
) (*domain.WordReviewItem, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, sessionID, wordID)
	}

	item, exists := m.Reviews[reviewKey{sessionID: sessionID, wordID: wordID}]
	if !exists {
		return nil, store.ErrReviewNotFound
	}
	return item, nil
}

// ListBySession implements the ReviewStore interface
func (m *MockReviewStore) ListBySession(
	ctx context.Context,
	sessionID uuid.UUID,
	req store.PageRequest,
) (store.Page[domain.WordReviewItem], error) {
	if m.ListBySessionFn != nil {
		return m.ListBySessionFn(ctx, sessionID, req)
	}

	items := []domain.WordReviewItem{}
	for key, item := range m.Reviews {
		if key.sessionID == sessionID {
			items = append(items, *item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.Before(items[j].CreatedAt) })

	return paginate(items, req)
}

// WithTx implements the ReviewStore interface; the mock has no transactions.
func (m *MockReviewStore) WithTx(tx *sql.Tx) store.ReviewStore {
	return m
}
