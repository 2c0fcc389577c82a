package domain

import "time"

// WorkingBlock is one recurring weekly interval during which an employee
// is nominally available. An employee may have several blocks on the same
// weekday (split shifts); blocks arrive from the provider unsorted and may
// overlap.
type WorkingBlock struct {
	Weekday     time.Weekday
	StartMinute int
	EndMinute   int
}

// EmployeeProfile is one employee's recurring working-hour profile, built
// once per computation from raw provider data and never shared across
// computations.
type EmployeeProfile struct {
	EmployeeID  int64
	DisplayName string
	Blocks      map[time.Weekday][]WorkingBlock
}

// BlocksOn returns the working blocks for the given weekday. A nil result
// means the employee does not work that day.
func (p *EmployeeProfile) BlocksOn(day time.Weekday) []WorkingBlock {
	return p.Blocks[day]
}

// BusyInterval is a concrete, dated interval already committed on an
// employee's schedule. Read-only input to slot generation.
type BusyInterval struct {
	EmployeeID  int64
	Date        time.Time
	StartMinute int
	EndMinute   int
}

// SameDate reports whether the interval falls on the given calendar date.
func (b BusyInterval) SameDate(date time.Time) bool {
	y1, m1, d1 := b.Date.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
