package domain

import "time"

// Service is a bookable service with its availability policy.
type Service struct {
	ID        int64
	Name      string
	Settings  ServiceSettings
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EmployeeAssignment links an employee to a service. At most one
// assignment per service is the default employee.
type EmployeeAssignment struct {
	EmployeeID  int64
	DisplayName string
	IsDefault   bool
}

// AssignedIDs extracts the employee ids from a list of assignments.
func AssignedIDs(assignments []EmployeeAssignment) []int64 {
	ids := make([]int64, 0, len(assignments))
	for _, a := range assignments {
		ids = append(ids, a.EmployeeID)
	}
	return ids
}

// PriorityMap builds the ranking hints used by the employee selector.
func PriorityMap(assignments []EmployeeAssignment) map[int64]EmployeePriority {
	m := make(map[int64]EmployeePriority, len(assignments))
	for _, a := range assignments {
		m[a.EmployeeID] = EmployeePriority{IsDefault: a.IsDefault}
	}
	return m
}
