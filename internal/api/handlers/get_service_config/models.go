package get_service_config

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/services"
)

// ServiceConfigResponse HTTP response model
type ServiceConfigResponse struct {
	ServiceID     int64      `json:"serviceId"`
	Name          string     `json:"name"`
	Settings      Settings   `json:"settings"`
	UsingDefaults bool       `json:"usingDefaults"`
	Employees     []Employee `json:"employees"`
}

// Settings действующие настройки слотов услуги
type Settings struct {
	DurationMinutes    int       `json:"durationMinutes"`
	IntervalMinutes    int       `json:"intervalMinutes"`
	BufferMinutes      int       `json:"bufferMinutes"`
	MinimumNoticeHours int       `json:"minimumNoticeHours"`
	DateRange          DateRange `json:"dateRange"`
}

// DateRange политика диапазона дат бронирования
type DateRange struct {
	Type   string  `json:"type"`
	Amount *int    `json:"amount,omitempty"`
	Unit   *string `json:"unit,omitempty"`
	Start  *string `json:"start,omitempty"`
	End    *string `json:"end,omitempty"`
}

// Employee сотрудник, назначенный на услугу
type Employee struct {
	EmployeeID  int64  `json:"employeeId"`
	DisplayName string `json:"displayName,omitempty"`
	IsDefault   bool   `json:"isDefault"`
}

// FromConfigView конвертирует модель сервиса в HTTP response
func FromConfigView(view *services.ConfigView) *ServiceConfigResponse {
	employees := make([]Employee, len(view.Employees))
	for i, e := range view.Employees {
		employees[i] = Employee{
			EmployeeID:  e.EmployeeID,
			DisplayName: e.DisplayName,
			IsDefault:   e.IsDefault,
		}
	}

	return &ServiceConfigResponse{
		ServiceID:     view.Service.ID,
		Name:          view.Service.Name,
		Settings:      toSettings(view.Settings),
		UsingDefaults: view.UsingDefaults,
		Employees:     employees,
	}
}

func toSettings(s domain.ServiceSettings) Settings {
	out := Settings{
		DurationMinutes:    s.DurationMinutes,
		IntervalMinutes:    s.IntervalMinutes,
		BufferMinutes:      s.BufferMinutes,
		MinimumNoticeHours: s.MinimumNoticeHours,
		DateRange:          DateRange{Type: string(s.DateRange.Type)},
	}

	switch s.DateRange.Type {
	case domain.RangeRolling:
		amount := s.DateRange.Amount
		unit := string(s.DateRange.Unit)
		out.DateRange.Amount = &amount
		out.DateRange.Unit = &unit
	case domain.RangeFixed:
		start := s.DateRange.Start.Format(domain.DateFormat)
		end := s.DateRange.End.Format(domain.DateFormat)
		out.DateRange.Start = &start
		out.DateRange.End = &end
	}

	return out
}
