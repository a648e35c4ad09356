package schedule_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/leave-scheduler/schedule"
	"github.com/warp/leave-scheduler/store/memory"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestIndex(t *testing.T, records []schedule.LeaveRecord) *schedule.Index {
	t.Helper()

	store := memory.New()
	ctx := context.Background()
	require.NoError(t, store.WriteEmployees(ctx, schedule.DefaultRoster()))
	require.NoError(t, store.WriteLeaveRecords(ctx, records))

	roster := schedule.NewRoster(store)
	return schedule.NewIndex(store, roster)
}

func leave(id, employeeID string, start, end int, status schedule.LeaveStatus) schedule.LeaveRecord {
	return schedule.LeaveRecord{
		ID:           schedule.RecordID(id),
		EmployeeID:   schedule.EmployeeID(employeeID),
		EmployeeName: "Employee " + employeeID,
		Date:         "2024-06-03",
		Start:        start,
		End:          end,
		Reason:       "errand",
		Status:       status,
		AppliedAt:    time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC),
	}
}

// =============================================================================
// SLOT QUERY TESTS
// =============================================================================

func TestLeavesCoveringSlot_CalendarShowsApprovedOnly(t *testing.T) {
	// GIVEN: Approved, pending and rejected leaves all covering slot 2
	// WHEN: Querying with the calendar filter
	// THEN: Only the approved record appears

	ix := newTestIndex(t, []schedule.LeaveRecord{
		leave("r1", "A", 1, 3, schedule.StatusApproved),
		leave("r2", "C", 2, 4, schedule.StatusPending),
		leave("r3", "E", 0, 9, schedule.StatusRejected),
	})

	covering, err := ix.LeavesCoveringSlot(context.Background(), "2024-06-03", 2, schedule.FilterApproved)
	require.NoError(t, err)

	require.Len(t, covering, 1)
	assert.Equal(t, schedule.RecordID("r1"), covering[0].ID)
}

func TestLeavesCoveringSlot_ActiveFilterExcludesOnlyRejected(t *testing.T) {
	ix := newTestIndex(t, []schedule.LeaveRecord{
		leave("r1", "A", 1, 3, schedule.StatusApproved),
		leave("r2", "C", 2, 4, schedule.StatusPending),
		leave("r3", "E", 0, 9, schedule.StatusRejected),
	})

	covering, err := ix.LeavesCoveringSlot(context.Background(), "2024-06-03", 2, schedule.FilterActive)
	require.NoError(t, err)

	require.Len(t, covering, 2)
	assert.Equal(t, schedule.RecordID("r1"), covering[0].ID)
	assert.Equal(t, schedule.RecordID("r2"), covering[1].ID)
}

func TestLeavesCoveringSlot_OtherDateInvisible(t *testing.T) {
	ix := newTestIndex(t, []schedule.LeaveRecord{
		leave("r1", "A", 0, 9, schedule.StatusApproved),
	})

	covering, err := ix.LeavesCoveringSlot(context.Background(), "2024-06-04", 2, schedule.FilterApproved)
	require.NoError(t, err)
	assert.Empty(t, covering)
}

func TestLeavesCoveringSlot_HalfOpenCoverage(t *testing.T) {
	// [1,3) covers slots 1 and 2, not 0 and not 3.
	ix := newTestIndex(t, []schedule.LeaveRecord{
		leave("r1", "A", 1, 3, schedule.StatusApproved),
	})
	ctx := context.Background()

	for slot, want := range map[int]int{0: 0, 1: 1, 2: 1, 3: 0} {
		covering, err := ix.LeavesCoveringSlot(ctx, "2024-06-03", slot, schedule.FilterApproved)
		require.NoError(t, err)
		assert.Len(t, covering, want, "slot %d", slot)
	}
}

func TestLeavesCoveringSlot_InvalidSlot(t *testing.T) {
	ix := newTestIndex(t, nil)

	_, err := ix.LeavesCoveringSlot(context.Background(), "2024-06-03", schedule.NumSlots, schedule.FilterApproved)
	require.Error(t, err)
	assert.True(t, schedule.IsValidation(err))
}

// =============================================================================
// PROXY ASSIGNMENT TESTS
// =============================================================================

func TestProxyAssignments_ListsAbsencesCoveredByProxy(t *testing.T) {
	// GIVEN: A (proxy B) and C (proxy D) both away during slot 2
	// WHEN: Asking what B is covering
	// THEN: Only A's absence appears; pending counts, rejected does not

	ix := newTestIndex(t, []schedule.LeaveRecord{
		leave("r1", "A", 1, 3, schedule.StatusPending),
		leave("r2", "C", 1, 3, schedule.StatusApproved),
		leave("r3", "A", 2, 4, schedule.StatusRejected),
	})

	covering, err := ix.ProxyAssignments(context.Background(), "B", "2024-06-03", 2)
	require.NoError(t, err)

	require.Len(t, covering, 1)
	assert.Equal(t, schedule.RecordID("r1"), covering[0].ID)
}

func TestProxyAssignments_UnknownOwnerSkipped(t *testing.T) {
	// A record owned by an ID absent from the roster is not an assignment.
	ix := newTestIndex(t, []schedule.LeaveRecord{
		leave("r1", "ghost", 1, 3, schedule.StatusApproved),
	})

	covering, err := ix.ProxyAssignments(context.Background(), "B", "2024-06-03", 2)
	require.NoError(t, err)
	assert.Empty(t, covering)
}

// =============================================================================
// CALENDAR TESTS
// =============================================================================

func TestCalendar_PerSlotOccupancy(t *testing.T) {
	ix := newTestIndex(t, []schedule.LeaveRecord{
		leave("r1", "A", 1, 3, schedule.StatusApproved),
		leave("r2", "C", 2, 4, schedule.StatusApproved),
		leave("r3", "E", 0, 9, schedule.StatusPending),
	})

	occupancy, err := ix.Calendar(context.Background(), "2024-06-03")
	require.NoError(t, err)
	require.Len(t, occupancy, schedule.NumSlots)

	assert.Empty(t, occupancy[0].Leaves, "pending leave must not occupy the calendar")
	assert.Len(t, occupancy[1].Leaves, 1)
	assert.Len(t, occupancy[2].Leaves, 2)
	assert.Len(t, occupancy[3].Leaves, 1)
	assert.Empty(t, occupancy[4].Leaves)
}
