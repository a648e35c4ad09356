/*
store.go - Persistence interface for the roster and leave records

PURPOSE:
  Defines the interface between the engine and its storage backend. The
  backend persists two whole collections (employees and leave records);
  there is no partial-update API. Different implementations can use
  SQLite or in-memory storage.

READ/REPLACE CONTRACT:
  Every mutation reads the full current collection, applies the change
  and writes the full collection back. This is safe because the system
  has a single logical writer; the interface deliberately exposes nothing
  narrower, so a half-applied mutation cannot exist from the engine's
  point of view.

ORDERING:
  Both collections are ordered sequences. Implementations must preserve
  append order across a write/read round trip.

IMPLEMENTATIONS:
  - store/sqlite: Production SQLite
  - store/memory: In-memory for testing/dev

SEE ALSO:
  - roster.go, index.go, lifecycle.go: Consumers of this interface
*/
package schedule

import "context"

// Store persists the two engine collections with whole-collection
// read/replace semantics. Implementations return their own errors; the
// engine wraps them as PersistenceError before they reach callers.
type Store interface {
	// ReadEmployees returns the full roster in stored order.
	ReadEmployees(ctx context.Context) ([]Employee, error)

	// WriteEmployees replaces the full roster atomically.
	WriteEmployees(ctx context.Context, employees []Employee) error

	// ReadLeaveRecords returns all leave records in append order.
	ReadLeaveRecords(ctx context.Context) ([]LeaveRecord, error)

	// WriteLeaveRecords replaces all leave records atomically.
	WriteLeaveRecords(ctx context.Context, records []LeaveRecord) error
}

// Collection names used in persistence errors.
const (
	CollectionEmployees    = "employees"
	CollectionLeaveRecords = "leaveRecords"
)
