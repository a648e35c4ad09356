package schedule_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/leave-scheduler/schedule"
	"github.com/warp/leave-scheduler/store/memory"
)

func newTestRoster(t *testing.T) (*memory.Store, *schedule.Roster) {
	t.Helper()

	store := memory.New()
	require.NoError(t, store.WriteEmployees(context.Background(), schedule.DefaultRoster()))
	return store, schedule.NewRoster(store)
}

func TestDefaultRoster_PairedProxies(t *testing.T) {
	roster := schedule.DefaultRoster()
	require.Len(t, roster, 10)

	byID := make(map[schedule.EmployeeID]schedule.Employee)
	for _, emp := range roster {
		byID[emp.ID] = emp
	}
	for _, emp := range roster {
		assert.NotEqual(t, emp.ID, emp.ProxyID, "no self-proxy")
		proxy, ok := byID[emp.ProxyID]
		require.True(t, ok, "proxy of %s must exist", emp.ID)
		assert.Equal(t, emp.ID, proxy.ProxyID, "proxies are paired")
	}
}

func TestLookup_KnownAndUnknown(t *testing.T) {
	_, roster := newTestRoster(t)
	ctx := context.Background()

	emp, err := roster.Lookup(ctx, "A")
	require.NoError(t, err)
	require.NotNil(t, emp)
	assert.Equal(t, "Employee A", emp.Name)
	assert.Equal(t, schedule.EmployeeID("B"), emp.ProxyID)

	// Absence is a nil result, not an error.
	missing, err := roster.Lookup(ctx, "Z")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProxyOf(t *testing.T) {
	_, roster := newTestRoster(t)
	ctx := context.Background()

	proxy, err := roster.ProxyOf(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, schedule.EmployeeID("B"), proxy)

	proxy, err = roster.ProxyOf(ctx, "Z")
	require.NoError(t, err)
	assert.Equal(t, schedule.EmployeeID(""), proxy)
}

func TestUpdate_RenameAndReassignProxy(t *testing.T) {
	store, roster := newTestRoster(t)
	ctx := context.Background()

	emp, err := roster.Update(ctx, "A", "Alice", "C")
	require.NoError(t, err)
	assert.Equal(t, "Alice", emp.Name)
	assert.Equal(t, schedule.EmployeeID("C"), emp.ProxyID)

	employees, err := store.ReadEmployees(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Alice", employees[0].Name)
	// B keeps its own proxy; only A changed.
	assert.Equal(t, schedule.EmployeeID("A"), employees[1].ProxyID)
}

func TestUpdate_SelfProxyRejected(t *testing.T) {
	store, roster := newTestRoster(t)
	ctx := context.Background()

	_, err := roster.Update(ctx, "A", "Employee A", "A")
	require.Error(t, err)
	assert.True(t, schedule.IsValidation(err))

	employees, err := store.ReadEmployees(ctx)
	require.NoError(t, err)
	assert.Equal(t, schedule.EmployeeID("B"), employees[0].ProxyID, "roster unchanged")
}

func TestUpdate_UnknownProxyRejected(t *testing.T) {
	_, roster := newTestRoster(t)

	_, err := roster.Update(context.Background(), "A", "Employee A", "Z")
	require.Error(t, err)
	assert.True(t, schedule.IsValidation(err))
}

func TestUpdate_UnknownEmployee(t *testing.T) {
	_, roster := newTestRoster(t)

	_, err := roster.Update(context.Background(), "Z", "Nobody", "A")
	require.Error(t, err)
	assert.True(t, schedule.IsNotFound(err))
}

func TestUpdate_ClearingProxyAllowed(t *testing.T) {
	_, roster := newTestRoster(t)

	emp, err := roster.Update(context.Background(), "A", "Employee A", "")
	require.NoError(t, err)
	assert.False(t, emp.HasProxy())
}
