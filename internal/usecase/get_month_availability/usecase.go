package get_month_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	servicestorage "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/service"
)

// UseCase usecase построения месячного календаря доступности услуги
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

// Execute строит календарь доступных слотов услуги на месяц
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	// 1. Валидация запроса
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// 2. Текущее время в таймзоне сервиса
	now := uc.timeProvider.Now().In(uc.location)

	// 3. Проверяем, что услуга существует
	svc, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, servicestorage.ErrServiceNotFound) {
			return nil, fmt.Errorf("%w: service %d", ErrServiceNotFound, req.ServiceID)
		}
		uc.logger.Error("[GetMonthAvailability] Failed to load service %d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: load service: %v", ErrInternal, err)
	}

	// 4. Загружаем настройки; отсутствие настроек не ошибка, работаем с дефолтами
	settings, err := uc.serviceRepo.GetSettings(ctx, req.ServiceID)
	if err != nil {
		if !errors.Is(err, servicestorage.ErrSettingsNotFound) {
			uc.logger.Error("[GetMonthAvailability] Failed to load settings for service %d: %v", req.ServiceID, err)
			return nil, fmt.Errorf("%w: load settings: %v", ErrInternal, err)
		}
		settings = domain.DefaultServiceSettings()
	}

	if err := settings.Validate(); err != nil {
		uc.logger.Error("[GetMonthAvailability] Invalid settings for service %d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}

	// 5. Разворачиваем политику диапазона дат в конкретное окно бронирования
	window, err := domain.ResolveBookingWindow(settings.DateRange, now)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidWindow) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidWindow, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}

	resp := &Response{
		ServiceID:   req.ServiceID,
		Year:        req.Year,
		Month:       req.Month,
		WindowStart: window.Start,
		WindowEnd:   window.End,
		Days:        map[string][]Slot{},
	}

	// 6. Месяц целиком вне окна: пустой календарь без единого запроса к провайдеру
	if window.ExcludesMonth(req.Year, req.Month, uc.location) {
		uc.logger.Info("[GetMonthAvailability] Month %d-%02d outside booking window for service %d", req.Year, req.Month, req.ServiceID)
		return resp, nil
	}

	// 7. Сотрудники, назначенные на услугу; без сотрудников календарь пуст
	employees, err := uc.serviceRepo.GetEmployees(ctx, req.ServiceID)
	if err != nil {
		uc.logger.Error("[GetMonthAvailability] Failed to load employees for service %d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: load employees: %v", ErrInternal, err)
	}
	if len(employees) == 0 {
		return resp, nil
	}

	employeeIDs := make([]int64, 0, len(employees))
	for _, e := range employees {
		employeeIDs = append(employeeIDs, e.EmployeeID)
	}

	// 8. Обрезаем диапазон выборки: пересечение месяца, окна и будущего
	from, to := fetchRange(req.Year, req.Month, window, now, uc.location)
	if to.Before(from) {
		return resp, nil
	}

	// 9. Массовая загрузка графиков и занятости одним проходом
	data, err := uc.gatherer.Fetch(ctx, employeeIDs, from, to)
	if err != nil {
		uc.logger.Error("[GetMonthAvailability] Failed to gather schedules for service %d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: gather schedules: %v", ErrInternal, err)
	}
	if data.Degraded() {
		uc.logger.Warn("[GetMonthAvailability] Degraded response for service %d: %d of %d employees dropped",
			req.ServiceID, data.DroppedEmployees, len(employeeIDs))
	}

	// 10. Агрегация слотов по датам
	resp.Days = buildCalendar(data, settings, from, to, now)
	resp.DroppedEmployees = data.DroppedEmployees

	uc.logger.Info("[GetMonthAvailability] Service %d (%s): %d-%02d, %d days with slots",
		svc.ID, svc.Name, req.Year, req.Month, len(resp.Days))

	return resp, nil
}

// fetchRange возвращает диапазон дат [from, to], для которого имеет смысл
// запрашивать данные: внутри месяца, внутри окна бронирования и не в прошлом
func fetchRange(year int, month time.Month, window domain.BookingWindow, now time.Time, loc *time.Location) (time.Time, time.Time) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	to := from.AddDate(0, 1, -1)

	if window.Start.After(from) {
		from = window.Start
	}
	if today := domain.DateOnly(now); today.After(from) {
		from = today
	}
	if window.End != nil && window.End.Before(to) {
		to = *window.End
	}

	return from, to
}
