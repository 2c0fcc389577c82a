package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/usecase/select_employee"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	GetSettings(ctx context.Context, serviceID int64) (domain.ServiceSettings, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	CountActiveForSlot(ctx context.Context, employeeID int64, date time.Time, startMinute, durationMinutes int) (int, error)
}

// EmployeeSelector интерфейс подбора доступных сотрудников на слот
type EmployeeSelector interface {
	Execute(ctx context.Context, req select_employee.Request) (*select_employee.Response, error)
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
