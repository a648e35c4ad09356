/*
index.go - Interval index over leave records

PURPOSE:
  Answers slot-coverage questions over the leave record collection: who
  is away during a given slot on a given date, and whose absence is a
  given employee covering as proxy. The same machinery feeds the shared
  calendar, the proxy-assignment view and conflict detection.

STATUS FILTERS:
  Calendar queries show approved leaves only; rejected and pending
  records never occupy a slot on the shared calendar. Proxy-assignment
  and conflict queries exclude only rejected records, so a pending leave
  still holds its slots against the proxy.

SEE ALSO:
  - slots.go: Covers/Overlaps primitives
  - lifecycle.go: Runs the conflict query at submission
*/
package schedule

import "context"

// =============================================================================
// STATUS FILTER
// =============================================================================

// StatusFilter selects which record statuses a query considers.
type StatusFilter int

const (
	// FilterApproved matches approved records only (calendar queries).
	FilterApproved StatusFilter = iota

	// FilterActive matches approved and pending records, excluding only
	// rejected ones (proxy-assignment and conflict queries).
	FilterActive
)

// Matches reports whether a record status passes the filter.
func (f StatusFilter) Matches(s LeaveStatus) bool {
	switch f {
	case FilterApproved:
		return s == StatusApproved
	case FilterActive:
		return s != StatusRejected
	default:
		return false
	}
}

// =============================================================================
// INDEX
// =============================================================================

// Index performs slot-coverage queries over the leave record collection.
type Index struct {
	store  Store
	roster *Roster
}

// NewIndex creates an interval index over the given store and roster.
func NewIndex(store Store, roster *Roster) *Index {
	return &Index{store: store, roster: roster}
}

// LeavesCoveringSlot returns, in append order, the records on date whose
// interval covers the slot starting at boundary slot and whose status
// passes the filter.
func (ix *Index) LeavesCoveringSlot(ctx context.Context, date Date, slot int, filter StatusFilter) ([]LeaveRecord, error) {
	if !ValidSlot(slot) {
		return nil, &ValidationError{Field: "slot", Message: "not a bookable slot index"}
	}

	records, err := ix.store.ReadLeaveRecords(ctx)
	if err != nil {
		return nil, readFailed(CollectionLeaveRecords, err)
	}

	var covering []LeaveRecord
	for _, rec := range records {
		if rec.Date != date || !filter.Matches(rec.Status) {
			continue
		}
		if rec.Interval().Covers(slot) {
			covering = append(covering, rec)
		}
	}
	return covering, nil
}

// ProxyAssignments returns the records covering the slot whose owner has
// designated proxyID as their proxy: the absences proxyID is covering
// during that slot. Rejected records are excluded; pending ones are not,
// since the proxy may still end up covering them.
func (ix *Index) ProxyAssignments(ctx context.Context, proxyID EmployeeID, date Date, slot int) ([]LeaveRecord, error) {
	if !ValidSlot(slot) {
		return nil, &ValidationError{Field: "slot", Message: "not a bookable slot index"}
	}

	records, err := ix.store.ReadLeaveRecords(ctx)
	if err != nil {
		return nil, readFailed(CollectionLeaveRecords, err)
	}

	var covering []LeaveRecord
	for _, rec := range records {
		if rec.Date != date || !FilterActive.Matches(rec.Status) {
			continue
		}
		owner, err := ix.roster.Lookup(ctx, rec.EmployeeID)
		if err != nil {
			return nil, err
		}
		// A record owned by a since-removed or misconfigured ID simply
		// does not show up as a proxy assignment.
		if owner == nil || owner.ProxyID != proxyID {
			continue
		}
		if rec.Interval().Covers(slot) {
			covering = append(covering, rec)
		}
	}
	return covering, nil
}

// overlapping returns employeeID's records on date that pass the filter
// and overlap the candidate interval. Used for conflict detection.
func (ix *Index) overlapping(ctx context.Context, employeeID EmployeeID, date Date, candidate Interval, filter StatusFilter) ([]LeaveRecord, error) {
	records, err := ix.store.ReadLeaveRecords(ctx)
	if err != nil {
		return nil, readFailed(CollectionLeaveRecords, err)
	}

	var hits []LeaveRecord
	for _, rec := range records {
		if rec.EmployeeID != employeeID || rec.Date != date || !filter.Matches(rec.Status) {
			continue
		}
		if rec.Interval().Overlaps(candidate) {
			hits = append(hits, rec)
		}
	}
	return hits, nil
}

// =============================================================================
// CALENDAR VIEW
// =============================================================================

// SlotOccupancy lists the approved leaves occupying one bookable slot.
type SlotOccupancy struct {
	Slot   int
	Leaves []LeaveRecord
}

// Calendar returns the approved occupancy of every bookable slot on date,
// in slot order. This is the data behind the shared weekly calendar.
func (ix *Index) Calendar(ctx context.Context, date Date) ([]SlotOccupancy, error) {
	records, err := ix.store.ReadLeaveRecords(ctx)
	if err != nil {
		return nil, readFailed(CollectionLeaveRecords, err)
	}

	occupancy := make([]SlotOccupancy, NumSlots)
	for slot := 0; slot < NumSlots; slot++ {
		occupancy[slot].Slot = slot
		for _, rec := range records {
			if rec.Date != date || !FilterApproved.Matches(rec.Status) {
				continue
			}
			if rec.Interval().Covers(slot) {
				occupancy[slot].Leaves = append(occupancy[slot].Leaves, rec)
			}
		}
	}
	return occupancy, nil
}
