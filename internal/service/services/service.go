package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	servicestorage "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/service"
)

// Service сервис чтения конфигурации услуг
type Service struct {
	repo   ServiceRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса услуг
func NewService(repo ServiceRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetConfig возвращает услугу, её действующие настройки и сотрудников.
// Отсутствие сохраненных настроек не ошибка, подставляются дефолты
func (s *Service) GetConfig(ctx context.Context, serviceID int64) (*ConfigView, error) {
	svc, err := s.repo.GetByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, servicestorage.ErrServiceNotFound) {
			return nil, fmt.Errorf("%w: service %d", ErrServiceNotFound, serviceID)
		}
		s.logger.Error("[Services] Failed to load service %d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: load service: %v", ErrInternal, err)
	}

	view := &ConfigView{Service: svc}

	view.Settings, err = s.repo.GetSettings(ctx, serviceID)
	if err != nil {
		if !errors.Is(err, servicestorage.ErrSettingsNotFound) {
			s.logger.Error("[Services] Failed to load settings for service %d: %v", serviceID, err)
			return nil, fmt.Errorf("%w: load settings: %v", ErrInternal, err)
		}
		view.Settings = domain.DefaultServiceSettings()
		view.UsingDefaults = true
	}

	view.Employees, err = s.repo.GetEmployees(ctx, serviceID)
	if err != nil {
		s.logger.Error("[Services] Failed to load employees for service %d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: load employees: %v", ErrInternal, err)
	}

	return view, nil
}
