/*
Package schedule provides the core leave scheduling engine.

PURPOSE:
  This package contains the domain types and algorithms for a small-roster
  leave management system: a roster directory mapping employees to their
  designated proxies, an interval index answering "who is away during this
  slot", and a lifecycle manager that validates submissions, detects proxy
  conflicts and drives the pending/approved/rejected state machine.

KEY CONCEPTS IN THIS FILE (types.go):
  - Employee: Roster entry with a single designated proxy
  - LeaveRecord: One leave request and its lifecycle state
  - LeaveStatus: pending | approved | rejected
  - Date: Calendar day as an ISO string (no time zone ambiguity)

DESIGN PRINCIPLES:
  1. Append-only history: records are never deleted, only re-statused
  2. Type Safety: Strong typing for IDs prevents mixing employee/record IDs
  3. Integer intervals: time ranges are boundary indices, not clock strings

SEE ALSO:
  - slots.go: The fixed time-slot boundary catalog and interval math
  - lifecycle.go: Submission, approval and rejection
  - store.go: Persistence interface
*/
package schedule

import "time"

// =============================================================================
// IDENTIFIERS
// =============================================================================

type EmployeeID string
type RecordID string

// =============================================================================
// EMPLOYEE - Roster entry
// =============================================================================

// Employee is a roster member. ProxyID names the colleague who covers their
// duties during an absence; it may be empty (no proxy configured) but must
// never equal ID.
type Employee struct {
	ID      EmployeeID
	Name    string
	ProxyID EmployeeID
}

// HasProxy reports whether a proxy is configured.
func (e Employee) HasProxy() bool { return e.ProxyID != "" }

// =============================================================================
// DATE - Calendar day
// =============================================================================

// Date is a local calendar day in ISO form (YYYY-MM-DD). It is a plain
// string so that equality and persistence are trivial; ParseDate is the
// only constructor that validates the form.
type Date string

const dateLayout = "2006-01-02"

// ParseDate validates s as an ISO calendar date.
func ParseDate(s string) (Date, error) {
	if _, err := time.Parse(dateLayout, s); err != nil {
		return "", &ValidationError{Field: "date", Message: "must be a valid YYYY-MM-DD date"}
	}
	return Date(s), nil
}

func (d Date) String() string { return string(d) }

// =============================================================================
// LEAVE RECORD - One request and its lifecycle state
// =============================================================================

type LeaveStatus string

const (
	StatusPending  LeaveStatus = "pending"
	StatusApproved LeaveStatus = "approved"
	StatusRejected LeaveStatus = "rejected"
)

// LeaveRecord is a single leave request. Start and End are boundary indices
// into the slot catalog (see slots.go); conversion to HH:MM happens at the
// persistence and API boundaries, never inside the engine.
type LeaveRecord struct {
	ID           RecordID
	EmployeeID   EmployeeID
	EmployeeName string
	Date         Date
	Start        int
	End          int

	Reason string
	Status LeaveStatus

	// NeedsSpecialApproval is true iff a proxy conflict was detected at
	// submission time. It never changes afterwards.
	NeedsSpecialApproval bool

	// RejectReason is set only when Status is StatusRejected.
	RejectReason string

	AppliedAt time.Time
}

// Interval returns the record's half-open boundary interval.
func (r LeaveRecord) Interval() Interval { return Interval{Start: r.Start, End: r.End} }

// =============================================================================
// DEFAULT ROSTER
// =============================================================================

// DefaultRoster returns the ten-employee seed roster with paired proxies
// (A covers B and vice versa, and so on down the list).
func DefaultRoster() []Employee {
	pairs := []struct{ a, b EmployeeID }{
		{"A", "B"}, {"C", "D"}, {"E", "F"}, {"G", "H"}, {"I", "J"},
	}
	var roster []Employee
	for _, p := range pairs {
		roster = append(roster,
			Employee{ID: p.a, Name: "Employee " + string(p.a), ProxyID: p.b},
			Employee{ID: p.b, Name: "Employee " + string(p.b), ProxyID: p.a},
		)
	}
	return roster
}
