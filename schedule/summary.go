/*
summary.go - Per-employee leave-hours totals

PURPOSE:
  Aggregates an employee's leave records into requested/approved/pending
  hour totals. The submission form shows the requested hours of a single
  interval; this extends the same arithmetic across the whole history for
  the employee detail view.

SEE ALSO:
  - amount.go: Hour quantities
  - slots.go: Interval.Hours
*/
package schedule

import "context"

// Summary totals one employee's leave hours by status. Rejected records
// count toward nothing.
type Summary struct {
	EmployeeID EmployeeID

	// Requested is the sum over approved and pending records.
	Requested Amount
	Approved  Amount
	Pending   Amount
}

// HoursRequested totals the employee's non-rejected leave hours. The
// employee must exist in the roster.
func (m *Manager) HoursRequested(ctx context.Context, id EmployeeID) (*Summary, error) {
	employee, err := m.roster.Lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, notFound("employee", string(id))
	}

	records, err := m.store.ReadLeaveRecords(ctx)
	if err != nil {
		return nil, readFailed(CollectionLeaveRecords, err)
	}

	s := &Summary{
		EmployeeID: id,
		Requested:  NewAmount(0, UnitHours),
		Approved:   NewAmount(0, UnitHours),
		Pending:    NewAmount(0, UnitHours),
	}
	for _, rec := range records {
		if rec.EmployeeID != id {
			continue
		}
		hours := NewAmount(rec.Interval().Hours(), UnitHours)
		switch rec.Status {
		case StatusApproved:
			s.Approved = s.Approved.Add(hours)
			s.Requested = s.Requested.Add(hours)
		case StatusPending:
			s.Pending = s.Pending.Add(hours)
			s.Requested = s.Requested.Add(hours)
		}
	}
	return s, nil
}
