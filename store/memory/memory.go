// Package memory provides an in-memory Store implementation (for testing/dev).
package memory

import (
	"context"
	"sync"

	"github.com/warp/leave-scheduler/schedule"
)

// Store keeps both collections in memory behind an RWMutex. Reads and
// writes copy the slices both ways so callers can never alias internal
// state.
type Store struct {
	mu        sync.RWMutex
	employees []schedule.Employee
	records   []schedule.LeaveRecord
}

func New() *Store {
	return &Store{}
}

func (s *Store) ReadEmployees(_ context.Context) ([]schedule.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]schedule.Employee, len(s.employees))
	copy(out, s.employees)
	return out, nil
}

func (s *Store) WriteEmployees(_ context.Context, employees []schedule.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.employees = make([]schedule.Employee, len(employees))
	copy(s.employees, employees)
	return nil
}

func (s *Store) ReadLeaveRecords(_ context.Context) ([]schedule.LeaveRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]schedule.LeaveRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *Store) WriteLeaveRecords(_ context.Context, records []schedule.LeaveRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make([]schedule.LeaveRecord, len(records))
	copy(s.records, records)
	return nil
}
