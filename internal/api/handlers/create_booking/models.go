package create_booking

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	createBooking "github.com/m04kA/SMC-AvailabilityService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceID  int64   `json:"serviceId"`
	Date       string  `json:"date"`
	Time       string  `json:"time"`
	EmployeeID *int64  `json:"employeeId,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// ToUseCaseRequest создает запрос use case, userID берется из контекста
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) createBooking.Request {
	return createBooking.Request{
		UserID:     userID,
		ServiceID:  r.ServiceID,
		Date:       r.Date,
		Time:       r.Time,
		EmployeeID: r.EmployeeID,
		Notes:      r.Notes,
	}
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"userId"`
	ServiceID       int64   `json:"serviceId"`
	EmployeeID      int64   `json:"employeeId"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	ServiceName     string  `json:"serviceName"`
	EmployeeName    string  `json:"employeeName,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// FromBooking конвертирует доменную модель в HTTP response
func FromBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:              b.ID,
		UserID:          b.UserID,
		ServiceID:       b.ServiceID,
		EmployeeID:      b.EmployeeID,
		Date:            b.BookingDate.Format(domain.DateFormat),
		StartTime:       b.StartTime.String(),
		DurationMinutes: b.DurationMinutes,
		Status:          string(b.Status),
		ServiceName:     b.ServiceName,
		EmployeeName:    b.EmployeeName,
		Notes:           b.Notes,
	}
}
