package mocks

import (
	"context"
	"database/sql"
	"sort"

	"github.com/google/uuid"
	"github.com/wordtrail/wordtrail-api/internal/domain"
	"github.com/wordtrail/wordtrail-api/internal/store"
)

// MockGroupStore implements store.GroupStore for testing
type MockGroupStore struct {
	// Function fields for customizable behavior
	CreateFn   func(ctx context.Context, group *domain.Group) error
	GetByIDFn  func(ctx context.Context, id uuid.UUID) (*domain.Group, error)
	ListFn     func(ctx context.Context, req store.PageRequest) (store.Page[domain.Group], error)
	AddWordsFn func(ctx context.Context, groupID uuid.UUID, wordIDs []uuid.UUID) error

	// Data for default implementation
	Groups      map[uuid.UUID]*domain.Group
	Memberships map[uuid.UUID][]uuid.UUID
	CreateError error
}

// NewMockGroupStore creates a new mock store with initialized defaults
func NewMockGroupStore() *MockGroupStore {
	return &MockGroupStore{
		Groups:      make(map[uuid.UUID]*domain.Group),
		Memberships: make(map[uuid.UUID][]uuid.UUID),
	}
}

// Create implements the GroupStore interface
func (m *MockGroupStore) Create(ctx context.Context, group *domain.Group) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, group)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	if err := group.Validate(); err != nil {
		return err
	}

	for _, existing := range m.Groups {
		if existing.Name == group.Name {
			return store.ErrGroupNameExists
		}
	}

	m.Groups[group.ID] = group
	m.Memberships[group.ID] = []uuid.UUID{}
	return nil
}

// GetByID implements the GroupStore interface
func (m *MockGroupStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Group, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	group, exists := m.Groups[id]
	if !exists {
		return nil, store.ErrGroupNotFound
	}
	return group, nil
}

// List implements the GroupStore interface
func (m *MockGroupStore) List(ctx context.Context, req store.PageRequest) (store.Page[domain.Group], error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, req)
	}

	items := make([]domain.Group, 0, len(m.Groups))
	for _, group := range m.Groups {
		items = append(items, *group)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })

	return paginate(items, req)
}

// AddWords implements the GroupStore interface
// The default behavior mirrors the real store: membership is idempotent and
// WordCount tracks the true membership count.
func (m *MockGroupStore) AddWords(ctx context.Context, groupID uuid.UUID, wordIDs []uuid.UUID) error {
	if m.AddWordsFn != nil {
		return m.AddWordsFn(ctx, groupID, wordIDs)
	}

	group, exists := m.Groups[groupID]
	if !exists {
		return store.ErrGroupNotFound
	}

	members := m.Memberships[groupID]
	for _, wordID := range wordIDs {
		already := false
		for _, existing := range members {
			if existing == wordID {
				already = true
				break
			}
		}
		if !already {
			members = append(members, wordID)
		}
	}

	m.Memberships[groupID] = members
	group.WordCount = len(members)
	return nil
}

// WithTx implements the GroupStore interface; the mock has no transactions.
func (m *MockGroupStore) WithTx(tx *sql.Tx) store.GroupStore {
	return m
}
