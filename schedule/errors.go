/*
errors.go - Centralized error types for the scheduling engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  Callers match on the sentinels with errors.Is and on the structured
  types with errors.As.

ERROR CATEGORIES:
  1. Validation errors - malformed or incomplete submission input
  2. Not-found errors  - unknown employee or record IDs
  3. Persistence errors - the storage collaborator failed to read/write

PROPAGATION POLICY:
  Operations return either a result or one of these errors; they never
  leave a half-applied mutation behind. A PersistenceError means the
  caller must not assume the write took effect.

SEE ALSO:
  - lifecycle.go: Produces validation and not-found errors
  - store.go: PersistenceError contract for implementations
*/
package schedule

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrValidation is the category under every ValidationError.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is the category under every NotFoundError.
	ErrNotFound = errors.New("not found")

	// ErrPersistence is the category under every PersistenceError.
	ErrPersistence = errors.New("persistence failed")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// ValidationError names the offending field of a rejected submission.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NotFoundError identifies the missing employee or record.
type NotFoundError struct {
	Kind string // "employee" or "record"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// PersistenceError reports a failed collection read or write. Err holds
// the storage implementation's underlying error.
type PersistenceError struct {
	Collection string
	Op         string // "read" or "write"
	Err        error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("could not %s collection %s: %v", e.Op, e.Collection, e.Err)
}

func (e *PersistenceError) Unwrap() error { return ErrPersistence }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsValidation returns true if the error is due to invalid caller input.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

// IsNotFound returns true if the error indicates a missing employee or record.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsPersistence returns true if the storage collaborator failed; the
// operation's effects must not be assumed to have been saved.
func IsPersistence(err error) bool { return errors.Is(err, ErrPersistence) }

func notFound(kind string, id string) error {
	return &NotFoundError{Kind: kind, ID: id}
}

func readFailed(collection string, err error) error {
	return &PersistenceError{Collection: collection, Op: "read", Err: err}
}

func writeFailed(collection string, err error) error {
	return &PersistenceError{Collection: collection, Op: "write", Err: err}
}
