package select_employee

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/gather"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	GetSettings(ctx context.Context, serviceID int64) (domain.ServiceSettings, error)
	GetEmployees(ctx context.Context, serviceID int64) ([]domain.EmployeeAssignment, error)
}

// DataGatherer интерфейс массового сборщика данных провайдера
type DataGatherer interface {
	Fetch(ctx context.Context, employeeIDs []int64, from, to time.Time) (*gather.Result, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
