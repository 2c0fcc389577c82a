package domain

import "time"

// AvailableSlot is one bookable start time on a date together with the
// employees able to take it. A slot exists only if at least one employee
// is eligible.
type AvailableSlot struct {
	Date        time.Time
	StartMinute int
	EmployeeIDs []int64
}

// EmployeePriority carries per-employee assignment hints for ranking.
type EmployeePriority struct {
	IsDefault bool
}

// RankedEmployee is one entry of an employee ranking for a requested
// instant.
type RankedEmployee struct {
	EmployeeID int64
	IsDefault  bool
}
