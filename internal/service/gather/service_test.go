package gather

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

type fakeClient struct {
	mu            sync.Mutex
	failFor       map[int64]error
	busy          []domain.BusyInterval
	busyErr       error
	profileCalls  []int64
	busyCallCount int
	busyCallIDs   []int64
}

func (f *fakeClient) GetWorkingHours(_ context.Context, employeeID int64) (*domain.EmployeeProfile, error) {
	f.mu.Lock()
	f.profileCalls = append(f.profileCalls, employeeID)
	f.mu.Unlock()

	if err := f.failFor[employeeID]; err != nil {
		return nil, err
	}
	return &domain.EmployeeProfile{
		EmployeeID: employeeID,
		Blocks:     map[time.Weekday][]domain.WorkingBlock{},
	}, nil
}

func (f *fakeClient) GetBusyIntervals(_ context.Context, employeeIDs []int64, _, _ time.Time) ([]domain.BusyInterval, error) {
	f.mu.Lock()
	f.busyCallCount++
	f.busyCallIDs = employeeIDs
	f.mu.Unlock()
	return f.busy, f.busyErr
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	from = time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	to   = time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
)

func TestFetchFailSoft(t *testing.T) {
	client := &fakeClient{
		failFor: map[int64]error{1: errors.New("timeout")},
	}
	svc := NewService(client, nopLogger{})

	result, err := svc.Fetch(context.Background(), []int64{1, 2, 3}, from, to)
	require.NoError(t, err, "a single employee failure must never abort the batch")

	assert.Len(t, result.Profiles, 2)
	assert.NotContains(t, result.Profiles, int64(1))
	assert.Equal(t, 2, result.ResolvedEmployees)
	assert.Equal(t, 1, result.DroppedEmployees)
	assert.True(t, result.Degraded())
}

func TestFetchBusyIntervalsSingleBulkCall(t *testing.T) {
	client := &fakeClient{
		busy: []domain.BusyInterval{
			{EmployeeID: 1, Date: from, StartMinute: 600, EndMinute: 630},
			{EmployeeID: 2, Date: from, StartMinute: 700, EndMinute: 730},
			{EmployeeID: 99, Date: from, StartMinute: 800, EndMinute: 830},
		},
	}
	svc := NewService(client, nopLogger{})

	result, err := svc.Fetch(context.Background(), []int64{1, 2}, from, to)
	require.NoError(t, err)

	assert.Equal(t, 1, client.busyCallCount, "one bulk request for the whole range")
	assert.Equal(t, []int64{1, 2}, client.busyCallIDs, "the requested employee set is passed to the provider")
	require.Len(t, result.BusyIntervals, 2, "intervals of unrequested employees are filtered out")
	for _, b := range result.BusyIntervals {
		assert.Contains(t, []int64{1, 2}, b.EmployeeID)
	}
}

func TestFetchBusyIntervalsErrorIsFatal(t *testing.T) {
	client := &fakeClient{busyErr: errors.New("provider down")}
	svc := NewService(client, nopLogger{})

	_, err := svc.Fetch(context.Background(), []int64{1}, from, to)
	assert.ErrorIs(t, err, ErrBusyIntervals)
}

func TestFetchDeduplicatesEmployees(t *testing.T) {
	client := &fakeClient{}
	svc := NewService(client, nopLogger{})

	result, err := svc.Fetch(context.Background(), []int64{5, 5, 5}, from, to)
	require.NoError(t, err)

	assert.Len(t, client.profileCalls, 1)
	assert.Equal(t, 1, result.ResolvedEmployees)
	assert.False(t, result.Degraded())
}

func TestFetchAllEmployeesFailed(t *testing.T) {
	client := &fakeClient{
		failFor: map[int64]error{1: errors.New("a"), 2: errors.New("b")},
	}
	svc := NewService(client, nopLogger{})

	result, err := svc.Fetch(context.Background(), []int64{1, 2}, from, to)
	require.NoError(t, err)

	assert.Empty(t, result.Profiles)
	assert.Equal(t, 0, result.ResolvedEmployees)
	assert.Equal(t, 2, result.DroppedEmployees)
}
