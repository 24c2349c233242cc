package store

import (
	"context"
	"database/sql"
)

// MaintenanceStore defines the destructive reset primitives. Both methods
// MUST run inside a transaction (use WithTx with RunInTransaction): a
// partially applied reset (reviews gone but their sessions remaining) is
// not an acceptable state even under failure.
type MaintenanceStore interface {
	// DeleteHistory deletes every review item and study session, leaving
	// words, groups, memberships, and activities untouched.
	DeleteHistory(ctx context.Context) error

	// DeleteInventory deletes the inventory and catalog: memberships,
	// words, groups, and study activities. Callers must delete history
	// first so no session references a vanished group.
	DeleteInventory(ctx context.Context) error

	// WithTx returns a MaintenanceStore bound to the given transaction.
	WithTx(tx *sql.Tx) MaintenanceStore
}
