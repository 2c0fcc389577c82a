package select_employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	servicestorage "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/service"
)

// UseCase usecase подбора сотрудника на конкретный слот
type UseCase struct {
	serviceRepo  ServiceRepository
	gatherer     DataGatherer
	timeProvider TimeProvider
	logger       Logger
	location     *time.Location
}

// NewUseCase создает новый экземпляр usecase
func NewUseCase(serviceRepo ServiceRepository, gatherer DataGatherer, timeProvider TimeProvider, logger Logger, loc *time.Location) *UseCase {
	return &UseCase{
		serviceRepo:  serviceRepo,
		gatherer:     gatherer,
		timeProvider: timeProvider,
		logger:       logger,
		location:     loc,
	}
}

// Execute возвращает ранжированный список сотрудников, доступных в
// запрошенный слот. Пустой список - штатный ответ, а не ошибка
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	// 1. Валидация и разбор даты и времени
	date, startMinute, err := parseRequest(req, uc.location)
	if err != nil {
		return nil, err
	}

	now := uc.timeProvider.Now().In(uc.location)

	resp := &Response{
		ServiceID:   req.ServiceID,
		Date:        date,
		StartMinute: startMinute,
		Employees:   []Candidate{},
	}

	// 2. Проверяем, что услуга существует
	if _, err := uc.serviceRepo.GetByID(ctx, req.ServiceID); err != nil {
		if errors.Is(err, servicestorage.ErrServiceNotFound) {
			return nil, fmt.Errorf("%w: service %d", ErrServiceNotFound, req.ServiceID)
		}
		uc.logger.Error("[SelectEmployee] Failed to load service %d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: load service: %v", ErrInternal, err)
	}

	// 3. Настройки услуги, с дефолтами при отсутствии конфигурации
	settings, err := uc.serviceRepo.GetSettings(ctx, req.ServiceID)
	if err != nil {
		if !errors.Is(err, servicestorage.ErrSettingsNotFound) {
			uc.logger.Error("[SelectEmployee] Failed to load settings for service %d: %v", req.ServiceID, err)
			return nil, fmt.Errorf("%w: load settings: %v", ErrInternal, err)
		}
		settings = domain.DefaultServiceSettings()
	}

	if err := settings.Validate(); err != nil {
		uc.logger.Error("[SelectEmployee] Invalid settings for service %d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}

	// 4. Дата вне окна бронирования или в прошлом: пустой ответ без запросов
	window, err := domain.ResolveBookingWindow(settings.DateRange, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	if !window.ContainsDate(date) || domain.DateOnly(date).Before(domain.DateOnly(now)) {
		return resp, nil
	}

	// 5. Назначенные сотрудники
	assignments, err := uc.serviceRepo.GetEmployees(ctx, req.ServiceID)
	if err != nil {
		uc.logger.Error("[SelectEmployee] Failed to load employees for service %d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: load employees: %v", ErrInternal, err)
	}
	if len(assignments) == 0 {
		return resp, nil
	}

	// 6. Данные провайдера за один день
	data, err := uc.gatherer.Fetch(ctx, domain.AssignedIDs(assignments), date, date)
	if err != nil {
		uc.logger.Error("[SelectEmployee] Failed to gather schedules for service %d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: gather schedules: %v", ErrInternal, err)
	}

	// 7. Отбор сотрудников, которым слот подходит
	eligible := make([]int64, 0, len(data.Profiles))
	for employeeID, profile := range data.Profiles {
		busy := busyFor(data.BusyIntervals, employeeID, date)
		if domain.SlotAvailableAt(profile, busy, settings, date, startMinute, now) {
			eligible = append(eligible, employeeID)
		}
	}

	// 8. Ранжирование: дефолтный сотрудник первым, далее по возрастанию ID
	names := displayNames(assignments, data)
	for _, ranked := range domain.RankEmployees(eligible, domain.PriorityMap(assignments)) {
		resp.Employees = append(resp.Employees, Candidate{
			EmployeeID:  ranked.EmployeeID,
			DisplayName: names[ranked.EmployeeID],
			IsDefault:   ranked.IsDefault,
		})
	}

	uc.logger.Info("[SelectEmployee] Service %d: %s %s, %d of %d employees eligible",
		req.ServiceID, req.Date, req.Time, len(resp.Employees), len(assignments))

	return resp, nil
}
