package schedule_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/leave-scheduler/schedule"
)

func TestHoursRequested_TotalsByStatus(t *testing.T) {
	// GIVEN: A has a 2h approved, a 3h pending and a 9h rejected record
	// WHEN: Computing A's summary
	// THEN: Requested 5h, approved 2h, pending 3h; rejected counts nowhere

	_, manager := newTestEngine(t)
	ctx := context.Background()

	_, err := manager.Submit(ctx, submitInput("A", "09:30", "11:30"), schedule.AlwaysConfirm)
	require.NoError(t, err)

	// B's overlapping leave pushes A's second request through the gate.
	_, err = manager.Submit(ctx, submitInput("B", "13:30", "14:30"), schedule.AlwaysConfirm)
	require.NoError(t, err)
	pending, err := manager.Submit(ctx, submitInput("A", "13:30", "16:30"), schedule.AlwaysConfirm)
	require.NoError(t, err)
	require.Equal(t, schedule.OutcomePending, pending.Outcome)

	rejected, err := manager.Submit(ctx, submitInput("B", "08:30", "09:30"), schedule.AlwaysConfirm)
	require.NoError(t, err)
	_, err = manager.Reject(ctx, rejected.Record.ID, "short staffed")
	require.NoError(t, err)

	summary, err := manager.HoursRequested(ctx, "A")
	require.NoError(t, err)

	assert.Equal(t, "5", summary.Requested.Value.String())
	assert.Equal(t, "2", summary.Approved.Value.String())
	assert.Equal(t, "3", summary.Pending.Value.String())
	assert.Equal(t, schedule.UnitHours, summary.Requested.Unit)
}

func TestHoursRequested_UnknownEmployee(t *testing.T) {
	_, manager := newTestEngine(t)

	_, err := manager.HoursRequested(context.Background(), "Z")
	require.Error(t, err)
	assert.True(t, schedule.IsNotFound(err))
}

func TestHoursRequested_NoRecordsIsZero(t *testing.T) {
	_, manager := newTestEngine(t)

	summary, err := manager.HoursRequested(context.Background(), "A")
	require.NoError(t, err)
	assert.True(t, summary.Requested.IsZero())
	assert.True(t, summary.Approved.IsZero())
	assert.True(t, summary.Pending.IsZero())
}
