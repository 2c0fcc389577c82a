package domain

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/timestr"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a confirmed assignment of an employee to a service
// appointment. The engine computes availability; a Booking is the record
// persisted once an employee has been selected for a slot.
type Booking struct {
	ID              int64
	UserID          int64
	ServiceID       int64
	EmployeeID      int64
	BookingDate     time.Time
	StartTime       timestr.TimeString
	DurationMinutes int
	Status          BookingStatus

	// Denormalized for history
	ServiceName  string
	EmployeeName string
	Notes        *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its slot.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}
