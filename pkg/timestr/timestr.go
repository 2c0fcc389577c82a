// Package timestr provides a "HH:MM" clock-time value type and conversions
// between 24-hour strings, 12-hour display strings and minute offsets since
// midnight. All ordering logic in the service compares integer minutes;
// strings exist only at storage and API boundaries.
package timestr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrMalformedTime is returned when a time string cannot be parsed.
var ErrMalformedTime = errors.New("timestr: malformed time")

const minutesPerDay = 24 * 60

// TimeString is a clock time in "HH:MM" 24-hour format.
type TimeString string

// NewTimeString creates a TimeString from the clock part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString validates s and returns it as a TimeString.
func NewTimeStringFromString(s string) (TimeString, error) {
	if _, err := ToMinutes(s); err != nil {
		return "", err
	}
	return TimeString(s), nil
}

// FromMinutes converts a minute offset since midnight to a TimeString.
// The offset must be within [0, 1440).
func FromMinutes(m int) (TimeString, error) {
	if m < 0 || m >= minutesPerDay {
		return "", fmt.Errorf("%w: minute offset %d out of range", ErrMalformedTime, m)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)), nil
}

// ToMinutes parses a "HH:MM" string into a minute offset since midnight.
func ToMinutes(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}
	hh, err1 := strconv.Atoi(s[:2])
	mm, err2 := strconv.Atoi(s[3:])
	if err1 != nil || err2 != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}
	if hh < 0 || hh > 23 || mm < 0 || mm > 59 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}
	return hh*60 + mm, nil
}

// Minutes returns the minute offset since midnight.
func (t TimeString) Minutes() (int, error) {
	return ToMinutes(string(t))
}

// AddMinutes returns the time shifted forward by m minutes.
// Fails if the result leaves the current day.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	cur, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return FromMinutes(cur + m)
}

// IsBefore reports whether t is strictly earlier than other.
// Comparison is on minute offsets, never on the raw strings.
func (t TimeString) IsBefore(other TimeString) bool {
	a, err1 := t.Minutes()
	b, err2 := other.Minutes()
	if err1 != nil || err2 != nil {
		return false
	}
	return a < b
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	a, err1 := t.Minutes()
	b, err2 := other.Minutes()
	if err1 != nil || err2 != nil {
		return false
	}
	return a > b
}

func (t TimeString) String() string {
	return string(t)
}

// Display12h formats a minute offset as a 12-hour display string,
// e.g. 0 -> "12:00am", 540 -> "9:00am", 720 -> "12:00pm".
func Display12h(m int) string {
	m = ((m % minutesPerDay) + minutesPerDay) % minutesPerDay
	hh, mm := m/60, m%60
	suffix := "am"
	if hh >= 12 {
		suffix = "pm"
	}
	hh %= 12
	if hh == 0 {
		hh = 12
	}
	return fmt.Sprintf("%d:%02d%s", hh, mm, suffix)
}

// ParseDisplay12h parses a 12-hour display string ("9:00am", "12:30pm")
// back into a minute offset since midnight.
func ParseDisplay12h(s string) (int, error) {
	lower := strings.ToLower(strings.TrimSpace(s))
	var suffix string
	switch {
	case strings.HasSuffix(lower, "am"):
		suffix = "am"
	case strings.HasSuffix(lower, "pm"):
		suffix = "pm"
	default:
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}

	clock := strings.TrimSuffix(lower, suffix)
	parts := strings.Split(clock, ":")
	if len(parts) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}
	hh, err1 := strconv.Atoi(parts[0])
	mm, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}
	if hh < 1 || hh > 12 || mm < 0 || mm > 59 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}

	if hh == 12 {
		hh = 0
	}
	if suffix == "pm" {
		hh += 12
	}
	return hh*60 + mm, nil
}
