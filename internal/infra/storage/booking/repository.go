package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AvailabilityService/pkg/timestr"
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Если в контексте передана активная транзакция (через context.Value),
// использует её: создание выполняется в сериализуемой транзакции вместе
// с проверкой доступности слота, чтобы исключить гонку за один слот.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
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
		).
		Values(
			b.UserID,
			b.ServiceID,
			b.EmployeeID,
			b.BookingDate,
			b.StartTime,
			b.DurationMinutes,
			b.Status,
			b.ServiceName,
			b.EmployeeName,
			b.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := bookingColumns().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// CountActiveForSlot подсчитывает активные бронирования сотрудника,
// пересекающие слот [startMinute, startMinute+durationMinutes) на дату.
// Используется внутри сериализуемой транзакции при создании бронирования.
func (r *Repository) CountActiveForSlot(ctx context.Context, employeeID int64, date time.Time, startMinute, durationMinutes int) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("start_time", "duration_minutes").
		From("bookings").
		Where(squirrel.Eq{
			"employee_id":  employeeID,
			"booking_date": domain.DateOnly(date),
		}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveForSlot - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveForSlot - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slotEnd := startMinute + durationMinutes
	count := 0

	for rows.Next() {
		var start timestr.TimeString
		var duration int
		if err := rows.Scan(&start, &duration); err != nil {
			return 0, fmt.Errorf("%w: CountActiveForSlot - scan booking: %v", ErrScanRow, err)
		}

		startMin, err := start.Minutes()
		if err != nil {
			return 0, fmt.Errorf("%w: CountActiveForSlot - bad start_time %q: %v", ErrScanRow, start, err)
		}

		// Пересечение строгое: граничащие интервалы не конфликтуют
		if startMin < slotEnd && startMin+duration > startMinute {
			count++
		}
	}

	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("%w: CountActiveForSlot - iterate rows: %v", ErrExecQuery, err)
	}

	return count, nil
}
