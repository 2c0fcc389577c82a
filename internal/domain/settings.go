package domain

import (
	"fmt"
	"time"
)

// DateRangeType selects the active variant of a DateRangePolicy.
type DateRangeType string

const (
	RangeRolling    DateRangeType = "rolling"
	RangeFixed      DateRangeType = "fixed"
	RangeIndefinite DateRangeType = "indefinite"
)

// RollingUnit is the unit a rolling date range is counted in.
type RollingUnit string

const (
	UnitCalendarDays RollingUnit = "calendar_days"
	UnitWeekdays     RollingUnit = "weekdays"
)

// DateRangePolicy is a tagged union: exactly one variant is active,
// selected by Type. Rolling uses Amount/Unit, Fixed uses Start/End,
// Indefinite uses nothing.
type DateRangePolicy struct {
	Type DateRangeType

	// Rolling variant
	Amount int
	Unit   RollingUnit

	// Fixed variant
	Start time.Time
	End   time.Time
}

// ServiceSettings is a service's slot policy: appointment duration, the
// granularity candidate start times are tried at, buffer around existing
// commitments, minimum booking notice and the bookable date range.
type ServiceSettings struct {
	DurationMinutes    int
	IntervalMinutes    int
	BufferMinutes      int
	MinimumNoticeHours int
	DateRange          DateRangePolicy
}

// DefaultServiceSettings returns the settings used when a service has no
// stored configuration.
func DefaultServiceSettings() ServiceSettings {
	return ServiceSettings{
		DurationMinutes:    DefaultDurationMinutes,
		IntervalMinutes:    DefaultIntervalMinutes,
		BufferMinutes:      DefaultBufferMinutes,
		MinimumNoticeHours: DefaultMinimumNoticeHours,
		DateRange:          DateRangePolicy{Type: RangeIndefinite},
	}
}

// Validate checks the settings invariants. Malformed settings fail the
// whole computation: no partial answer is meaningful.
func (s ServiceSettings) Validate() error {
	if s.DurationMinutes < MinDurationMinutes || s.DurationMinutes > MaxDurationMinutes {
		return fmt.Errorf("%w: duration must be in [%d, %d] minutes, got %d",
			ErrInvalidSettings, MinDurationMinutes, MaxDurationMinutes, s.DurationMinutes)
	}
	if s.IntervalMinutes < MinIntervalMinutes || s.IntervalMinutes > MaxIntervalMinutes {
		return fmt.Errorf("%w: interval must be in [%d, %d] minutes, got %d",
			ErrInvalidSettings, MinIntervalMinutes, MaxIntervalMinutes, s.IntervalMinutes)
	}
	if s.BufferMinutes < 0 || s.BufferMinutes > MaxBufferMinutes {
		return fmt.Errorf("%w: buffer must be in [0, %d] minutes, got %d",
			ErrInvalidSettings, MaxBufferMinutes, s.BufferMinutes)
	}
	if s.MinimumNoticeHours < 0 || s.MinimumNoticeHours > MaxNoticeHours {
		return fmt.Errorf("%w: minimum notice must be in [0, %d] hours, got %d",
			ErrInvalidSettings, MaxNoticeHours, s.MinimumNoticeHours)
	}
	return s.DateRange.Validate()
}

// Validate checks that exactly one sensible variant is described.
func (p DateRangePolicy) Validate() error {
	switch p.Type {
	case RangeRolling:
		if p.Amount <= 0 || p.Amount > MaxRollingAmount {
			return fmt.Errorf("%w: rolling amount must be in [1, %d], got %d",
				ErrInvalidSettings, MaxRollingAmount, p.Amount)
		}
		if p.Unit != UnitCalendarDays && p.Unit != UnitWeekdays {
			return fmt.Errorf("%w: unknown rolling unit %q", ErrInvalidSettings, p.Unit)
		}
	case RangeFixed:
		if p.Start.IsZero() || p.End.IsZero() {
			return fmt.Errorf("%w: fixed range requires start and end", ErrInvalidSettings)
		}
	case RangeIndefinite:
	default:
		return fmt.Errorf("%w: unknown date range type %q", ErrInvalidSettings, p.Type)
	}
	return nil
}
