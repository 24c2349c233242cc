package mocks

import (
	"context"
	"database/sql"

	"github.com/wordtrail/wordtrail-api/internal/store"
)

// MockMaintenanceStore implements store.MaintenanceStore for testing.
// Calls records the invocation order so tests can assert history is deleted
// before inventory.
type MockMaintenanceStore struct {
	DeleteHistoryFn   func(ctx context.Context) error
	DeleteInventoryFn func(ctx context.Context) error

	Calls                []string
	DeleteHistoryError   error
	DeleteInventoryError error
}

// NewMockMaintenanceStore creates a new mock store with initialized defaults
func NewMockMaintenanceStore() *MockMaintenanceStore {
	return &MockMaintenanceStore{}
}

// Ensure MockMaintenanceStore implements store.MaintenanceStore interface
var _ store.MaintenanceStore = (*MockMaintenanceStore)(nil)

// DeleteHistory implements the MaintenanceStore interface
func (m *MockMaintenanceStore) DeleteHistory(ctx context.Context) error {
	if m.DeleteHistoryFn != nil {
		return m.DeleteHistoryFn(ctx)
	}

	m.Calls = append(m.Calls, "DeleteHistory")
	return m.DeleteHistoryError
}

// DeleteInventory implements the MaintenanceStore interface
func (m *MockMaintenanceStore) DeleteInventory(ctx context.Context) error {
	if m.DeleteInventoryFn != nil {
		return m.DeleteInventoryFn(ctx)
	}

	m.Calls = append(m.Calls, "DeleteInventory")
	return m.DeleteInventoryError
}

// WithTx implements the MaintenanceStore interface; the mock has no transactions.
func (m *MockMaintenanceStore) WithTx(tx *sql.Tx) store.MaintenanceStore {
	return m
}
