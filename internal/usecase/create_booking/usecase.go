package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	servicestorage "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/service"
	"github.com/m04kA/SMC-AvailabilityService/internal/usecase/select_employee"
	"github.com/m04kA/SMC-AvailabilityService/pkg/timestr"
)

// UseCase usecase создания бронирования: подбор сотрудника по доступности
// и запись в сериализуемой транзакции с повторной проверкой слота
type UseCase struct {
	serviceRepo ServiceRepository
	bookingRepo BookingRepository
	selector    EmployeeSelector
	txManager   TxManager
	logger      Logger
}

// NewUseCase создает новый экземпляр usecase
func NewUseCase(serviceRepo ServiceRepository, bookingRepo BookingRepository, selector EmployeeSelector, txManager TxManager, logger Logger) *UseCase {
	return &UseCase{
		serviceRepo: serviceRepo,
		bookingRepo: bookingRepo,
		selector:    selector,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute создает бронирование на выбранный слот
func (uc *UseCase) Execute(ctx context.Context, req Request) (*domain.Booking, error) {
	// 1. Валидация запроса
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// 2. Подбор доступных сотрудников на слот; селектор сам проверяет
	// услугу, окно бронирования и корректность даты и времени
	candidates, err := uc.selector.Execute(ctx, select_employee.Request{
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Time:      req.Time,
	})
	if err != nil {
		return nil, mapSelectorError(err)
	}

	// 3. Выбор сотрудника: явно запрошенный или лучший по рангу
	candidate, err := pickCandidate(candidates, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	// 4. Данные услуги для денормализованных полей бронирования
	svc, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		uc.logger.Error("[CreateBooking] Failed to load service %d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: load service: %v", ErrInternal, err)
	}

	settings, err := uc.serviceRepo.GetSettings(ctx, req.ServiceID)
	if err != nil {
		if !errors.Is(err, servicestorage.ErrSettingsNotFound) {
			uc.logger.Error("[CreateBooking] Failed to load settings for service %d: %v", req.ServiceID, err)
			return nil, fmt.Errorf("%w: load settings: %v", ErrInternal, err)
		}
		settings = domain.DefaultServiceSettings()
	}

	startTime, err := timestr.FromMinutes(candidates.StartMinute)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	booking := &domain.Booking{
		UserID:          req.UserID,
		ServiceID:       req.ServiceID,
		EmployeeID:      candidate.EmployeeID,
		BookingDate:     candidates.Date,
		StartTime:       startTime,
		DurationMinutes: settings.DurationMinutes,
		Status:          domain.StatusPending,
		ServiceName:     svc.Name,
		EmployeeName:    candidate.DisplayName,
		Notes:           req.Notes,
	}

	// 5. Сериализуемая транзакция: повторная проверка слота по таблице
	// бронирований и вставка. Двое на один слот не пройдут обе проверки
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		count, err := uc.bookingRepo.CountActiveForSlot(txCtx, candidate.EmployeeID, candidates.Date, candidates.StartMinute, settings.DurationMinutes)
		if err != nil {
			return fmt.Errorf("%w: check slot: %v", ErrInternal, err)
		}
		if count > 0 {
			return fmt.Errorf("%w: employee %d at %s %s", ErrSlotTaken, candidate.EmployeeID, req.Date, req.Time)
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: create booking: %v", ErrInternal, err)
		}
		booking = created
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotTaken) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("[CreateBooking] Transaction failed for service %d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: transaction: %v", ErrInternal, err)
	}

	uc.logger.Info("[CreateBooking] Booking %d created: service %d, employee %d, %s %s",
		booking.ID, booking.ServiceID, booking.EmployeeID, req.Date, req.Time)

	return booking, nil
}

// pickCandidate выбирает сотрудника из ранжированного списка
func pickCandidate(resp *select_employee.Response, requested *int64) (*select_employee.Candidate, error) {
	if requested != nil {
		for i := range resp.Employees {
			if resp.Employees[i].EmployeeID == *requested {
				return &resp.Employees[i], nil
			}
		}
		return nil, fmt.Errorf("%w: employee %d is not available for this slot", ErrNoEligibleEmployees, *requested)
	}

	selected := resp.Selected()
	if selected == nil {
		return nil, ErrNoEligibleEmployees
	}
	return selected, nil
}

// mapSelectorError переводит ошибки селектора в ошибки этого usecase
func mapSelectorError(err error) error {
	switch {
	case errors.Is(err, select_employee.ErrServiceNotFound):
		return fmt.Errorf("%w: %v", ErrServiceNotFound, err)
	case errors.Is(err, select_employee.ErrInvalidInput):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		return fmt.Errorf("%w: select employee: %v", ErrInternal, err)
	}
}
