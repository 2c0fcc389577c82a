package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-02-04 is a Wednesday.
var wednesdayNow = time.Date(2026, 2, 4, 10, 30, 0, 0, time.UTC)

func TestResolveBookingWindowRollingCalendarDays(t *testing.T) {
	w, err := ResolveBookingWindow(DateRangePolicy{Type: RangeRolling, Amount: 7, Unit: UnitCalendarDays}, wednesdayNow)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 2, 4, 0, 0, 0, 0, time.UTC), w.Start)
	require.NotNil(t, w.End)
	assert.Equal(t, time.Date(2026, 2, 11, 0, 0, 0, 0, time.UTC), *w.End)
}

func TestResolveBookingWindowRollingWeekdays(t *testing.T) {
	// 5 business days from Wed 2026-02-04: Thu, Fri, Mon, Tue, Wed.
	w, err := ResolveBookingWindow(DateRangePolicy{Type: RangeRolling, Amount: 5, Unit: UnitWeekdays}, wednesdayNow)
	require.NoError(t, err)

	require.NotNil(t, w.End)
	assert.Equal(t, time.Date(2026, 2, 11, 0, 0, 0, 0, time.UTC), *w.End)
	assert.Equal(t, time.Wednesday, w.End.Weekday())
}

func TestResolveBookingWindowRollingWeekdaysFromWeekend(t *testing.T) {
	// 1 business day from Saturday lands on Monday.
	saturday := time.Date(2026, 2, 7, 9, 0, 0, 0, time.UTC)
	w, err := ResolveBookingWindow(DateRangePolicy{Type: RangeRolling, Amount: 1, Unit: UnitWeekdays}, saturday)
	require.NoError(t, err)

	require.NotNil(t, w.End)
	assert.Equal(t, time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC), *w.End)
}

func TestResolveBookingWindowFixed(t *testing.T) {
	policy := DateRangePolicy{
		Type:  RangeFixed,
		Start: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
	}
	w, err := ResolveBookingWindow(policy, wednesdayNow)
	require.NoError(t, err)

	assert.Equal(t, policy.Start, w.Start)
	require.NotNil(t, w.End)
	assert.Equal(t, policy.End, *w.End)
}

func TestResolveBookingWindowFixedInverted(t *testing.T) {
	policy := DateRangePolicy{
		Type:  RangeFixed,
		Start: time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	_, err := ResolveBookingWindow(policy, wednesdayNow)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestResolveBookingWindowIndefinite(t *testing.T) {
	w, err := ResolveBookingWindow(DateRangePolicy{Type: RangeIndefinite}, wednesdayNow)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 2, 4, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Nil(t, w.End)
}

func TestBookingWindowContainsDate(t *testing.T) {
	end := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	w := BookingWindow{Start: time.Date(2026, 2, 4, 0, 0, 0, 0, time.UTC), End: &end}

	assert.False(t, w.ContainsDate(time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC)))
	assert.True(t, w.ContainsDate(time.Date(2026, 2, 4, 0, 0, 0, 0, time.UTC)))
	assert.True(t, w.ContainsDate(time.Date(2026, 2, 10, 23, 0, 0, 0, time.UTC)))
	assert.False(t, w.ContainsDate(time.Date(2026, 2, 11, 0, 0, 0, 0, time.UTC)))

	unbounded := BookingWindow{Start: w.Start}
	assert.True(t, unbounded.ContainsDate(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestBookingWindowExcludesMonth(t *testing.T) {
	end := time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)
	w := BookingWindow{Start: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC), End: &end}

	assert.True(t, w.ExcludesMonth(2026, time.January, time.UTC))
	assert.False(t, w.ExcludesMonth(2026, time.February, time.UTC))
	assert.True(t, w.ExcludesMonth(2026, time.March, time.UTC))

	unbounded := BookingWindow{Start: w.Start}
	assert.False(t, unbounded.ExcludesMonth(2030, time.June, time.UTC))
}

func TestServiceSettingsValidate(t *testing.T) {
	valid := DefaultServiceSettings()
	assert.NoError(t, valid.Validate())

	bad := valid
	bad.DurationMinutes = 0
	assert.ErrorIs(t, bad.Validate(), ErrInvalidSettings)

	bad = valid
	bad.IntervalMinutes = -15
	assert.ErrorIs(t, bad.Validate(), ErrInvalidSettings)

	bad = valid
	bad.BufferMinutes = -1
	assert.ErrorIs(t, bad.Validate(), ErrInvalidSettings)

	bad = valid
	bad.DateRange = DateRangePolicy{Type: "sometimes"}
	assert.ErrorIs(t, bad.Validate(), ErrInvalidSettings)

	bad = valid
	bad.DateRange = DateRangePolicy{Type: RangeRolling, Amount: 0, Unit: UnitCalendarDays}
	assert.ErrorIs(t, bad.Validate(), ErrInvalidSettings)
}

func TestServiceSettingsValidateUpperBounds(t *testing.T) {
	valid := DefaultServiceSettings()

	bad := valid
	bad.DurationMinutes = MaxDurationMinutes + 1
	assert.ErrorIs(t, bad.Validate(), ErrInvalidSettings)

	bad = valid
	bad.IntervalMinutes = MaxIntervalMinutes + 1
	assert.ErrorIs(t, bad.Validate(), ErrInvalidSettings)

	bad = valid
	bad.BufferMinutes = MaxBufferMinutes + 1
	assert.ErrorIs(t, bad.Validate(), ErrInvalidSettings)

	bad = valid
	bad.MinimumNoticeHours = MaxNoticeHours + 1
	assert.ErrorIs(t, bad.Validate(), ErrInvalidSettings)

	bad = valid
	bad.DateRange = DateRangePolicy{Type: RangeRolling, Amount: MaxRollingAmount + 1, Unit: UnitCalendarDays}
	assert.ErrorIs(t, bad.Validate(), ErrInvalidSettings)

	// The extremes themselves are still valid.
	edge := valid
	edge.DurationMinutes = MaxDurationMinutes
	edge.IntervalMinutes = MaxIntervalMinutes
	edge.BufferMinutes = MaxBufferMinutes
	edge.MinimumNoticeHours = MaxNoticeHours
	edge.DateRange = DateRangePolicy{Type: RangeRolling, Amount: MaxRollingAmount, Unit: UnitCalendarDays}
	assert.NoError(t, edge.Validate())
}
