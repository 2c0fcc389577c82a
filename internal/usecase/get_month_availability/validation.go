package get_month_availability

import (
	"fmt"
	"time"
)

// validateRequest проверяет входные параметры запроса
func validateRequest(req Request) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive, got %d", ErrInvalidInput, req.ServiceID)
	}

	if req.Year < 1 {
		return fmt.Errorf("%w: year must be positive, got %d", ErrInvalidInput, req.Year)
	}

	if req.Month < time.January || req.Month > time.December {
		return fmt.Errorf("%w: month must be in [1, 12], got %d", ErrInvalidInput, req.Month)
	}

	return nil
}
