package select_employee

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	servicestorage "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/service"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/gather"
)

type fakeServiceRepo struct {
	service     *domain.Service
	serviceErr  error
	settings    domain.ServiceSettings
	settingsErr error
	employees   []domain.EmployeeAssignment
}

func (f *fakeServiceRepo) GetByID(_ context.Context, _ int64) (*domain.Service, error) {
	return f.service, f.serviceErr
}

func (f *fakeServiceRepo) GetSettings(_ context.Context, _ int64) (domain.ServiceSettings, error) {
	return f.settings, f.settingsErr
}

func (f *fakeServiceRepo) GetEmployees(_ context.Context, _ int64) ([]domain.EmployeeAssignment, error) {
	return f.employees, nil
}

type fakeGatherer struct {
	result    *gather.Result
	err       error
	callCount int
	lastFrom  time.Time
	lastTo    time.Time
}

func (f *fakeGatherer) Fetch(_ context.Context, _ []int64, from, to time.Time) (*gather.Result, error) {
	f.callCount++
	f.lastFrom = from
	f.lastTo = to
	return f.result, f.err
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Среда 4 февраля 2026, 08:00
var testNow = time.Date(2026, time.February, 4, 8, 0, 0, 0, time.UTC)

func wednesdayBlocks(start, end int) map[time.Weekday][]domain.WorkingBlock {
	return map[time.Weekday][]domain.WorkingBlock{
		time.Wednesday: {{Weekday: time.Wednesday, StartMinute: start, EndMinute: end}},
	}
}

func defaultRepo() *fakeServiceRepo {
	return &fakeServiceRepo{
		service:  &domain.Service{ID: 1, Name: "Haircut"},
		settings: domain.DefaultServiceSettings(),
		employees: []domain.EmployeeAssignment{
			{EmployeeID: 20, DisplayName: "Boris", IsDefault: true},
			{EmployeeID: 10, DisplayName: "Anna"},
		},
	}
}

func newTestUseCase(repo *fakeServiceRepo, g *fakeGatherer) *UseCase {
	return NewUseCase(repo, g, fixedTime{testNow}, nopLogger{}, time.UTC)
}

func TestExecuteRanksDefaultFirst(t *testing.T) {
	repo := defaultRepo()
	g := &fakeGatherer{
		result: &gather.Result{
			Profiles: map[int64]*domain.EmployeeProfile{
				10: {EmployeeID: 10, DisplayName: "Anna", Blocks: wednesdayBlocks(540, 720)},
				20: {EmployeeID: 20, DisplayName: "Boris", Blocks: wednesdayBlocks(540, 720)},
			},
			ResolvedEmployees: 2,
		},
	}

	resp, err := newTestUseCase(repo, g).Execute(context.Background(), Request{
		ServiceID: 1, Date: "2026-02-04", Time: "10:00am",
	})
	require.NoError(t, err)

	require.Len(t, resp.Employees, 2)
	assert.Equal(t, int64(20), resp.Employees[0].EmployeeID)
	assert.True(t, resp.Employees[0].IsDefault)
	assert.Equal(t, "Boris", resp.Employees[0].DisplayName)
	assert.Equal(t, int64(10), resp.Employees[1].EmployeeID)

	selected := resp.Selected()
	require.NotNil(t, selected)
	assert.Equal(t, int64(20), selected.EmployeeID)
}

func TestExecuteFiltersBusyEmployees(t *testing.T) {
	repo := defaultRepo()
	g := &fakeGatherer{
		result: &gather.Result{
			Profiles: map[int64]*domain.EmployeeProfile{
				10: {EmployeeID: 10, Blocks: wednesdayBlocks(540, 720)},
				20: {EmployeeID: 20, Blocks: wednesdayBlocks(540, 720)},
			},
			BusyIntervals: []domain.BusyInterval{
				{EmployeeID: 20, Date: time.Date(2026, time.February, 4, 0, 0, 0, 0, time.UTC), StartMinute: 590, EndMinute: 650},
			},
			ResolvedEmployees: 2,
		},
	}

	resp, err := newTestUseCase(repo, g).Execute(context.Background(), Request{
		ServiceID: 1, Date: "2026-02-04", Time: "10:00am",
	})
	require.NoError(t, err)

	// У дефолтного сотрудника занятость пересекает слот 600-630
	require.Len(t, resp.Employees, 1)
	assert.Equal(t, int64(10), resp.Employees[0].EmployeeID)
}

func TestExecuteNoEligibleIsEmptyNotError(t *testing.T) {
	repo := defaultRepo()
	g := &fakeGatherer{
		result: &gather.Result{
			Profiles: map[int64]*domain.EmployeeProfile{
				10: {EmployeeID: 10, Blocks: wednesdayBlocks(540, 600)},
			},
			ResolvedEmployees: 1,
		},
	}

	// 11:00 вне рабочего блока 9:00-10:00
	resp, err := newTestUseCase(repo, g).Execute(context.Background(), Request{
		ServiceID: 1, Date: "2026-02-04", Time: "11:00am",
	})
	require.NoError(t, err)

	assert.Empty(t, resp.Employees)
	assert.Nil(t, resp.Selected())
}

func TestExecuteDateOutsideWindowSkipsGather(t *testing.T) {
	repo := defaultRepo()
	repo.settings.DateRange = domain.DateRangePolicy{
		Type:   domain.RangeRolling,
		Amount: 3,
		Unit:   domain.UnitCalendarDays,
	}
	g := &fakeGatherer{}

	resp, err := newTestUseCase(repo, g).Execute(context.Background(), Request{
		ServiceID: 1, Date: "2026-03-01", Time: "10:00am",
	})
	require.NoError(t, err)

	assert.Empty(t, resp.Employees)
	assert.Equal(t, 0, g.callCount)
}

func TestExecutePastDateIsEmpty(t *testing.T) {
	repo := defaultRepo()
	repo.settings.DateRange = domain.DateRangePolicy{
		Type:  domain.RangeFixed,
		Start: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
	g := &fakeGatherer{}

	resp, err := newTestUseCase(repo, g).Execute(context.Background(), Request{
		ServiceID: 1, Date: "2026-02-01", Time: "10:00am",
	})
	require.NoError(t, err)

	assert.Empty(t, resp.Employees)
	assert.Equal(t, 0, g.callCount)
}

func TestExecuteGathersSingleDay(t *testing.T) {
	repo := defaultRepo()
	g := &fakeGatherer{
		result: &gather.Result{Profiles: map[int64]*domain.EmployeeProfile{}},
	}

	_, err := newTestUseCase(repo, g).Execute(context.Background(), Request{
		ServiceID: 1, Date: "2026-02-04", Time: "10:00am",
	})
	require.NoError(t, err)

	require.Equal(t, 1, g.callCount)
	assert.Equal(t, g.lastFrom, g.lastTo)
	assert.Equal(t, time.Date(2026, time.February, 4, 0, 0, 0, 0, time.UTC), g.lastFrom)
}

func TestExecuteServiceNotFound(t *testing.T) {
	repo := defaultRepo()
	repo.service = nil
	repo.serviceErr = servicestorage.ErrServiceNotFound

	_, err := newTestUseCase(repo, &fakeGatherer{}).Execute(context.Background(), Request{
		ServiceID: 99, Date: "2026-02-04", Time: "10:00am",
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecuteInvalidInput(t *testing.T) {
	uc := newTestUseCase(defaultRepo(), &fakeGatherer{})

	cases := []Request{
		{ServiceID: 0, Date: "2026-02-04", Time: "10:00am"},
		{ServiceID: 1, Date: "04.02.2026", Time: "10:00am"},
		{ServiceID: 1, Date: "2026-02-04", Time: "25:00"},
		{ServiceID: 1, Date: "2026-02-04", Time: ""},
	}

	for _, req := range cases {
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput, "request %+v", req)
	}
}
