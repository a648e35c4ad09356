/*
lifecycle.go - Leave record lifecycle

PURPOSE:
  Handles the full lifecycle of a leave record:
  1. Submission: validate input, detect proxy conflicts, decide the
     initial status and append the record
  2. Approval: manager sets status to approved
  3. Rejection: manager sets status to rejected with a mandatory reason

SUBMISSION FLOW:
  submit ──▶ validate ──▶ resolve proxy ──▶ conflict query
                                                │
                              no overlap ◀──────┴──────▶ overlap
                                  │                         │
                          status=approved          confirm gate (proxy named)
                                  │                    │          │
                                  │                 proceed     abort
                                  │                    │          │
                                  ▼                    ▼          ▼
                              append            status=pending  no record
                                               needsSpecialApproval=true

CONFIRMATION GATE:
  When a conflict is detected the submitter must be given the chance to
  abort before anything is persisted. The gate is an injected Confirmer;
  interactive frontends block on the operator, the HTTP layer realizes it
  as a resubmit-with-confirmed flag. Aborting has no side effect.

STATUS TRANSITIONS:
  Approve and Reject are permitted on any existing record regardless of
  its current status; re-approving an approved record is an idempotent
  no-op and a rejected record can still be re-approved. The only guard is
  that a rejection reason must be non-empty.

SEE ALSO:
  - index.go: Conflict query
  - roster.go: Proxy resolution
*/
package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// CONFIRMER - Conflict confirmation gate
// =============================================================================

// Conflict describes a detected proxy conflict: the proxy whose leave
// overlaps the submission, and the overlapping records.
type Conflict struct {
	ProxyID   EmployeeID
	ProxyName string
	Records   []LeaveRecord
}

// Confirmer is the interactive collaborator consulted when a submission
// conflicts with the proxy's leave. Returning false aborts the
// submission with no side effect.
type Confirmer interface {
	ConfirmConflict(ctx context.Context, c Conflict) (bool, error)
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(ctx context.Context, c Conflict) (bool, error)

func (f ConfirmerFunc) ConfirmConflict(ctx context.Context, c Conflict) (bool, error) {
	return f(ctx, c)
}

// AlwaysConfirm proceeds through every conflict gate without asking.
var AlwaysConfirm = ConfirmerFunc(func(context.Context, Conflict) (bool, error) {
	return true, nil
})

// =============================================================================
// SUBMISSION INPUT / RESULT
// =============================================================================

// SubmitInput carries a leave submission. Times are HH:MM labels from the
// boundary catalog, as received at the interface boundary.
type SubmitInput struct {
	EmployeeID EmployeeID
	Date       string
	StartTime  string
	EndTime    string
	Reason     string
}

// SubmitOutcome discriminates the three ways a valid submission can end.
type SubmitOutcome string

const (
	// OutcomeApproved: no proxy conflict, record auto-approved.
	OutcomeApproved SubmitOutcome = "approved"

	// OutcomePending: proxy conflict confirmed, record awaits the manager.
	OutcomePending SubmitOutcome = "pending"

	// OutcomeCancelled: proxy conflict declined at the gate, no record.
	OutcomeCancelled SubmitOutcome = "cancelled"
)

// SubmitResult is the structured post-submission outcome handed to the
// presentation layer. Record is nil iff the submission was cancelled;
// Conflict is nil iff no proxy conflict was detected.
type SubmitResult struct {
	Outcome  SubmitOutcome
	Record   *LeaveRecord
	Conflict *Conflict
}

// =============================================================================
// MANAGER - Lifecycle operations
// =============================================================================

// Manager validates submissions, runs conflict detection and performs
// manager-driven status transitions.
type Manager struct {
	store  Store
	roster *Roster
	index  *Index

	// Injectable for tests.
	now   func() time.Time
	newID func() RecordID
}

// NewManager creates a lifecycle manager over the given store.
func NewManager(store Store, roster *Roster, index *Index) *Manager {
	return &Manager{
		store:  store,
		roster: roster,
		index:  index,
		now:    time.Now,
		newID:  func() RecordID { return RecordID(uuid.NewString()) },
	}
}

// WithClock overrides the submission timestamp source.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

// WithIDSource overrides record ID generation.
func (m *Manager) WithIDSource(newID func() RecordID) *Manager {
	m.newID = newID
	return m
}

// Submit validates a leave request, runs proxy conflict detection and, if
// not aborted at the confirmation gate, appends the new record. confirm
// is consulted only when a conflict is detected; it must not be nil.
func (m *Manager) Submit(ctx context.Context, in SubmitInput, confirm Confirmer) (*SubmitResult, error) {
	date, start, end, err := m.validate(ctx, in)
	if err != nil {
		return nil, err
	}

	employee, err := m.roster.Lookup(ctx, in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, &ValidationError{Field: "employeeId", Message: "unknown employee " + string(in.EmployeeID)}
	}

	conflict, err := m.detectConflict(ctx, *employee, date, Interval{Start: start, End: end})
	if err != nil {
		return nil, err
	}

	status := StatusApproved
	needsSpecialApproval := false

	if conflict != nil {
		proceed, err := confirm.ConfirmConflict(ctx, *conflict)
		if err != nil {
			return nil, err
		}
		if !proceed {
			return &SubmitResult{Outcome: OutcomeCancelled, Conflict: conflict}, nil
		}
		status = StatusPending
		needsSpecialApproval = true
	}

	record := LeaveRecord{
		ID:                   m.newID(),
		EmployeeID:           employee.ID,
		EmployeeName:         employee.Name,
		Date:                 date,
		Start:                start,
		End:                  end,
		Reason:               in.Reason,
		Status:               status,
		NeedsSpecialApproval: needsSpecialApproval,
		AppliedAt:            m.now(),
	}

	records, err := m.store.ReadLeaveRecords(ctx)
	if err != nil {
		return nil, readFailed(CollectionLeaveRecords, err)
	}
	updated := make([]LeaveRecord, len(records), len(records)+1)
	copy(updated, records)
	updated = append(updated, record)

	if err := m.store.WriteLeaveRecords(ctx, updated); err != nil {
		return nil, writeFailed(CollectionLeaveRecords, err)
	}

	outcome := OutcomeApproved
	if needsSpecialApproval {
		outcome = OutcomePending
	}
	return &SubmitResult{Outcome: outcome, Record: &record, Conflict: conflict}, nil
}

func (m *Manager) validate(ctx context.Context, in SubmitInput) (Date, int, int, error) {
	date, err := ParseDate(in.Date)
	if err != nil {
		return "", 0, 0, err
	}

	start, ok := BoundaryIndex(in.StartTime)
	if !ok {
		return "", 0, 0, &ValidationError{Field: "startTime", Message: "not a catalog boundary"}
	}
	end, ok := BoundaryIndex(in.EndTime)
	if !ok {
		return "", 0, 0, &ValidationError{Field: "endTime", Message: "not a catalog boundary"}
	}
	if end <= start {
		return "", 0, 0, &ValidationError{Field: "endTime", Message: "must be after startTime"}
	}
	if in.Reason == "" {
		return "", 0, 0, &ValidationError{Field: "reason", Message: "must not be empty"}
	}
	return date, start, end, nil
}

// detectConflict returns the proxy conflict for the candidate interval,
// or nil when the employee has no proxy or the proxy is free. Rejected
// leaves of the proxy never count.
func (m *Manager) detectConflict(ctx context.Context, employee Employee, date Date, candidate Interval) (*Conflict, error) {
	if !employee.HasProxy() {
		return nil, nil
	}

	hits, err := m.index.overlapping(ctx, employee.ProxyID, date, candidate, FilterActive)
	if err != nil {
		return nil, err
	}
	if len(hits) == 0 {
		return nil, nil
	}

	conflict := &Conflict{ProxyID: employee.ProxyID, Records: hits}
	if proxy, err := m.roster.Lookup(ctx, employee.ProxyID); err != nil {
		return nil, err
	} else if proxy != nil {
		conflict.ProxyName = proxy.Name
	}
	return conflict, nil
}

// =============================================================================
// MANAGER TRANSITIONS
// =============================================================================

// Approve sets the record's status to approved. Approving an already
// approved record is idempotent. Any existing record may be approved
// regardless of its current status.
func (m *Manager) Approve(ctx context.Context, id RecordID) (*LeaveRecord, error) {
	return m.transition(ctx, id, func(rec *LeaveRecord) {
		rec.Status = StatusApproved
	})
}

// Reject sets the record's status to rejected and stores the reason. An
// empty reason is a ValidationError and never transitions the record.
func (m *Manager) Reject(ctx context.Context, id RecordID, reason string) (*LeaveRecord, error) {
	if reason == "" {
		return nil, &ValidationError{Field: "rejectReason", Message: "must not be empty"}
	}
	return m.transition(ctx, id, func(rec *LeaveRecord) {
		rec.Status = StatusRejected
		rec.RejectReason = reason
	})
}

func (m *Manager) transition(ctx context.Context, id RecordID, apply func(*LeaveRecord)) (*LeaveRecord, error) {
	records, err := m.store.ReadLeaveRecords(ctx)
	if err != nil {
		return nil, readFailed(CollectionLeaveRecords, err)
	}

	updated := make([]LeaveRecord, len(records))
	copy(updated, records)

	i := -1
	for j := range updated {
		if updated[j].ID == id {
			i = j
			break
		}
	}
	if i < 0 {
		return nil, notFound("record", string(id))
	}

	apply(&updated[i])

	if err := m.store.WriteLeaveRecords(ctx, updated); err != nil {
		return nil, writeFailed(CollectionLeaveRecords, err)
	}

	rec := updated[i]
	return &rec, nil
}

// Pending returns the manager approval queue: all records currently in
// the pending state, in append order.
func (m *Manager) Pending(ctx context.Context) ([]LeaveRecord, error) {
	records, err := m.store.ReadLeaveRecords(ctx)
	if err != nil {
		return nil, readFailed(CollectionLeaveRecords, err)
	}
	var pending []LeaveRecord
	for _, rec := range records {
		if rec.Status == StatusPending {
			pending = append(pending, rec)
		}
	}
	return pending, nil
}
