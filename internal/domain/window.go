package domain

import (
	"fmt"
	"time"
)

// BookingWindow is the concrete date range bookings may be placed in,
// resolved from a DateRangePolicy relative to "now". A nil End means the
// window is unbounded.
type BookingWindow struct {
	Start time.Time
	End   *time.Time
}

// ResolveBookingWindow turns a date-range policy into a concrete window.
// Fixed policies pass through verbatim and fail with ErrInvalidWindow when
// end precedes start.
func ResolveBookingWindow(policy DateRangePolicy, now time.Time) (BookingWindow, error) {
	today := DateOnly(now)

	switch policy.Type {
	case RangeRolling:
		var end time.Time
		if policy.Unit == UnitWeekdays {
			end = addWeekdays(today, policy.Amount)
		} else {
			end = today.AddDate(0, 0, policy.Amount)
		}
		return BookingWindow{Start: today, End: &end}, nil

	case RangeFixed:
		start := DateOnly(policy.Start)
		end := DateOnly(policy.End)
		if end.Before(start) {
			return BookingWindow{}, fmt.Errorf("%w: %s before %s",
				ErrInvalidWindow, end.Format(DateFormat), start.Format(DateFormat))
		}
		return BookingWindow{Start: start, End: &end}, nil

	case RangeIndefinite:
		return BookingWindow{Start: today}, nil

	default:
		return BookingWindow{}, fmt.Errorf("%w: unknown date range type %q", ErrInvalidSettings, policy.Type)
	}
}

// addWeekdays walks forward n business days (Mon-Fri), skipping weekends.
func addWeekdays(from time.Time, n int) time.Time {
	day := from
	for added := 0; added < n; {
		day = day.AddDate(0, 0, 1)
		if wd := day.Weekday(); wd != time.Saturday && wd != time.Sunday {
			added++
		}
	}
	return day
}

// ContainsDate reports whether the given calendar date falls inside the
// window.
func (w BookingWindow) ContainsDate(date time.Time) bool {
	d := DateOnly(date)
	if d.Before(w.Start) {
		return false
	}
	if w.End != nil && d.After(*w.End) {
		return false
	}
	return true
}

// ExcludesMonth reports whether the given month lies entirely outside the
// window. Callers use it to short-circuit a month query without fetching
// any data.
func (w BookingWindow) ExcludesMonth(year int, month time.Month, loc *time.Location) bool {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	monthEnd := monthStart.AddDate(0, 1, -1)

	if monthEnd.Before(w.Start) {
		return true
	}
	if w.End != nil && monthStart.After(*w.End) {
		return true
	}
	return false
}

// DateOnly strips the clock part of t, keeping its location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
