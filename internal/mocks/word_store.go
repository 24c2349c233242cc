package mocks

import (
	"context"
	"database/sql"
	"sort"

	"github.com/google/uuid"
	"github.com/wordtrail/wordtrail-api/internal/domain"
	"github.com/wordtrail/wordtrail-api/internal/store"
)

// MockWordStore implements store.WordStore for testing
type MockWordStore struct {
	// Function fields for customizable behavior
	CreateFn           func(ctx context.Context, word *domain.Word) error
	GetByIDFn          func(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	ListFn             func(ctx context.Context, req store.PageRequest) (store.Page[store.WordWithStats], error)
	ListByGroupFn      func(ctx context.Context, groupID uuid.UUID, req store.PageRequest) (store.Page[store.WordWithStats], error)
	GetStatsFn         func(ctx context.Context, id uuid.UUID) (domain.WordStats, error)
	UpdateAttributesFn func(ctx context.Context, id uuid.UUID, attrs *domain.WordAttributes) error

	// Data for default implementation
	Words       map[uuid.UUID]*domain.Word
	Stats       map[uuid.UUID]domain.WordStats
	Memberships map[uuid.UUID][]uuid.UUID
	CreateError error
}

// NewMockWordStore creates a new mock store with initialized defaults
func NewMockWordStore() *MockWordStore {
	return &MockWordStore{
		Words:       make(map[uuid.UUID]*domain.Word),
		Stats:       make(map[uuid.UUID]domain.WordStats),
		Memberships: make(map[uuid.UUID][]uuid.UUID),
	}
}

// Create implements the WordStore interface
func (m *MockWordStore) Create(ctx context.Context, word *domain.Word) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, word)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	if err := word.Validate(); err != nil {
		return err
	}

	m.Words[word.ID] = word
	return nil
}

// GetByID implements the WordStore interface
func (m *MockWordStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	word, exists := m.Words[id]
	if !exists {
		return nil, store.ErrWordNotFound
	}
	return word, nil
}

// List implements the WordStore interface
func (m *MockWordStore) List(ctx context.Context, req store.PageRequest) (store.Page[store.WordWithStats], error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, req)
	}

	return paginate(m.sortedWords(), req)
}

// ListByGroup implements the WordStore interface
func (m *MockWordStore) ListByGroup(
	ctx context.Context,
	groupID uuid.UUID,
	req store.PageRequest,
) (store.Page[store.WordWithStats], error) {
	if m.ListByGroupFn != nil {
		return m.ListByGroupFn(ctx, groupID, req)
	}

	memberIDs, exists := m.Memberships[groupID]
	if !exists {
		return store.Page[store.WordWithStats]{}, store.ErrGroupNotFound
	}

	items := []store.WordWithStats{}
	for _, id := range memberIDs {
		if word, ok := m.Words[id]; ok {
			items = append(items, store.WordWithStats{Word: *word, Stats: m.Stats[id]})
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].NativeText < items[j].NativeText })

	return paginate(items, req)
}

// GetStats implements the WordStore interface
func (m *MockWordStore) GetStats(ctx context.Context, id uuid.UUID) (domain.WordStats, error) {
	if m.GetStatsFn != nil {
		return m.GetStatsFn(ctx, id)
	}

	if _, exists := m.Words[id]; !exists {
		return domain.WordStats{}, store.ErrWordNotFound
	}
	return m.Stats[id], nil
}

// UpdateAttributes implements the WordStore interface
func (m *MockWordStore) UpdateAttributes(ctx context.Context, id uuid.UUID, attrs *domain.WordAttributes) error {
	if m.UpdateAttributesFn != nil {
		return m.UpdateAttributesFn(ctx, id, attrs)
	}

	word, exists := m.Words[id]
	if !exists {
		return store.ErrWordNotFound
	}
	word.UpdateAttributes(attrs)
	return nil
}

// WithTx implements the WordStore interface; the mock has no transactions.
func (m *MockWordStore) WithTx(tx *sql.Tx) store.WordStore {
	return m
}

func (m *MockWordStore) sortedWords() []store.WordWithStats {
	items := make([]store.WordWithStats, 0, len(m.Words))
	for id, word := range m.Words {
		items = append(items, store.WordWithStats{Word: *word, Stats: m.Stats[id]})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].NativeText < items[j].NativeText })
	return items
}
