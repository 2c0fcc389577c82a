package gather

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// SchedulingProviderClient интерфейс клиента провайдера расписаний
type SchedulingProviderClient interface {
	GetWorkingHours(ctx context.Context, employeeID int64) (*domain.EmployeeProfile, error)
	GetBusyIntervals(ctx context.Context, employeeIDs []int64, from, to time.Time) ([]domain.BusyInterval, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
