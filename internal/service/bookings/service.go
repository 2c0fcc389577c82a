package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	bookingstorage "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/booking"
)

// Service сервис чтения бронирований с проверкой прав доступа
type Service struct {
	repo   BookingRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(repo BookingRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetByID возвращает бронирование по ID.
// Читать бронирование может только его владелец
func (s *Service) GetByID(ctx context.Context, bookingID, userID int64) (*domain.Booking, error) {
	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingstorage.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: booking %d", ErrBookingNotFound, bookingID)
		}
		s.logger.Error("[Bookings] Failed to load booking %d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: load booking: %v", ErrInternal, err)
	}

	if booking.UserID != userID {
		s.logger.Warn("[Bookings] User %d tried to read booking %d of user %d", userID, bookingID, booking.UserID)
		return nil, fmt.Errorf("%w: booking %d", ErrAccessDenied, bookingID)
	}

	return booking, nil
}
