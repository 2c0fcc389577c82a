package services

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	GetSettings(ctx context.Context, serviceID int64) (domain.ServiceSettings, error)
	GetEmployees(ctx context.Context, serviceID int64) ([]domain.EmployeeAssignment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
