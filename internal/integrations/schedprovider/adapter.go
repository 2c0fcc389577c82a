package schedprovider

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/timestr"
)

// weekdays закрытое отображение строковых дней недели провайдера.
// Неизвестный день считается некорректным ответом, а не "каким-то" днем.
var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// toDomainProfile преобразует сырой профиль провайдера в доменный.
// Это единственная граница парсинга: ниже по стеку нетипизированные
// данные провайдера не встречаются.
func toDomainProfile(raw *WorkingHoursResponse) (*domain.EmployeeProfile, error) {
	blocks := make(map[time.Weekday][]domain.WorkingBlock, len(weekdays))

	for _, rb := range raw.WorkingHours {
		day, ok := weekdays[rb.Day]
		if !ok {
			return nil, fmt.Errorf("%w: unknown weekday %q for employee %d", ErrInvalidResponse, rb.Day, raw.EmployeeID)
		}

		start, err := timestr.ToMinutes(rb.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: bad start time %q for employee %d: %v", ErrInvalidResponse, rb.StartTime, raw.EmployeeID, err)
		}
		end, err := timestr.ToMinutes(rb.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: bad end time %q for employee %d: %v", ErrInvalidResponse, rb.EndTime, raw.EmployeeID, err)
		}
		if end <= start {
			return nil, fmt.Errorf("%w: working block %s-%s ends before it starts for employee %d",
				ErrInvalidResponse, rb.StartTime, rb.EndTime, raw.EmployeeID)
		}

		blocks[day] = append(blocks[day], domain.WorkingBlock{
			Weekday:     day,
			StartMinute: start,
			EndMinute:   end,
		})
	}

	return &domain.EmployeeProfile{
		EmployeeID:  raw.EmployeeID,
		DisplayName: raw.DisplayName,
		Blocks:      blocks,
	}, nil
}

// toDomainBusyIntervals преобразует сырые занятые интервалы в доменные
func toDomainBusyIntervals(raw []RawBusyInterval, loc *time.Location) ([]domain.BusyInterval, error) {
	intervals := make([]domain.BusyInterval, 0, len(raw))

	for _, ri := range raw {
		date, err := time.ParseInLocation(domain.DateFormat, ri.Date, loc)
		if err != nil {
			return nil, fmt.Errorf("%w: bad date %q for employee %d: %v", ErrInvalidResponse, ri.Date, ri.EmployeeID, err)
		}

		start, err := timestr.ToMinutes(ri.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: bad start time %q for employee %d: %v", ErrInvalidResponse, ri.StartTime, ri.EmployeeID, err)
		}
		end, err := timestr.ToMinutes(ri.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: bad end time %q for employee %d: %v", ErrInvalidResponse, ri.EndTime, ri.EmployeeID, err)
		}

		intervals = append(intervals, domain.BusyInterval{
			EmployeeID:  ri.EmployeeID,
			Date:        date,
			StartMinute: start,
			EndMinute:   end,
		})
	}

	return intervals, nil
}
