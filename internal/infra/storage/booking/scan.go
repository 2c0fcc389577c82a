package booking

import (
	"database/sql"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// bookingColumns возвращает SELECT со всеми колонками бронирования
func bookingColumns() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"user_id",
		"service_id",
		"employee_id",
		"booking_date",
		"start_time",
		"duration_minutes",
		"status",
		"service_name",
		"employee_name",
		"notes",
		"created_at",
		"updated_at",
	).From("bookings")
}

// scanBooking сканирует одну строку в доменную модель
func scanBooking(row *sql.Row) (*domain.Booking, error) {
	var b domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.ServiceID,
		&b.EmployeeID,
		&b.BookingDate,
		&b.StartTime,
		&b.DurationMinutes,
		&b.Status,
		&b.ServiceName,
		&b.EmployeeName,
		&b.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}
