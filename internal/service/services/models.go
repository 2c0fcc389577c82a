package services

import "github.com/m04kA/SMC-AvailabilityService/internal/domain"

// ConfigView конфигурация услуги для внешнего API.
// UsingDefaults означает, что настройки не сохранены и действуют дефолты
type ConfigView struct {
	Service       *domain.Service
	Settings      domain.ServiceSettings
	UsingDefaults bool
	Employees     []domain.EmployeeAssignment
}
