package select_employee

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/timestr"
)

// parseRequest проверяет входные параметры и разбирает дату и время
func parseRequest(req Request, loc *time.Location) (time.Time, int, error) {
	if req.ServiceID <= 0 {
		return time.Time{}, 0, fmt.Errorf("%w: serviceID must be positive, got %d", ErrInvalidInput, req.ServiceID)
	}

	date, err := time.ParseInLocation(domain.DateFormat, req.Date, loc)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("%w: malformed date %q, expected YYYY-MM-DD", ErrInvalidInput, req.Date)
	}

	startMinute, err := timestr.ParseDisplay12h(req.Time)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("%w: malformed time %q, expected e.g. 9:00am", ErrInvalidInput, req.Time)
	}

	return date, startMinute, nil
}
