package get_month_availability

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getMonthAvailability "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_month_availability"
)

// MonthAvailabilityResponse HTTP response model
type MonthAvailabilityResponse struct {
	ServiceID        int64             `json:"serviceId"`
	Year             int               `json:"year"`
	Month            int               `json:"month"`
	WindowStart      string            `json:"windowStart"`
	WindowEnd        *string           `json:"windowEnd,omitempty"`
	Days             map[string][]Slot `json:"days"`
	DroppedEmployees int               `json:"droppedEmployees,omitempty"`
}

// Slot модель временного слота
type Slot struct {
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	EmployeeIDs     []int64 `json:"employeeIds"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getMonthAvailability.Response) *MonthAvailabilityResponse {
	days := make(map[string][]Slot, len(resp.Days))
	for date, slots := range resp.Days {
		converted := make([]Slot, len(slots))
		for i, s := range slots {
			converted[i] = Slot{
				StartTime:       s.StartTime,
				DurationMinutes: s.DurationMinutes,
				EmployeeIDs:     s.EmployeeIDs,
			}
		}
		days[date] = converted
	}

	out := &MonthAvailabilityResponse{
		ServiceID:        resp.ServiceID,
		Year:             resp.Year,
		Month:            int(resp.Month),
		WindowStart:      resp.WindowStart.Format(domain.DateFormat),
		Days:             days,
		DroppedEmployees: resp.DroppedEmployees,
	}
	if resp.WindowEnd != nil {
		end := resp.WindowEnd.Format(domain.DateFormat)
		out.WindowEnd = &end
	}
	return out
}
