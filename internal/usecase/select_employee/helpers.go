package select_employee

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/gather"
)

// busyFor отбирает занятые интервалы одного сотрудника на одну дату
func busyFor(all []domain.BusyInterval, employeeID int64, date time.Time) []domain.BusyInterval {
	result := make([]domain.BusyInterval, 0)
	for _, b := range all {
		if b.EmployeeID == employeeID && b.SameDate(date) {
			result = append(result, b)
		}
	}
	return result
}

// displayNames собирает отображаемые имена: имя из профиля провайдера
// приоритетнее имени из назначения
func displayNames(assignments []domain.EmployeeAssignment, data *gather.Result) map[int64]string {
	names := make(map[int64]string, len(assignments))
	for _, a := range assignments {
		names[a.EmployeeID] = a.DisplayName
	}
	for id, profile := range data.Profiles {
		if profile.DisplayName != "" {
			names[id] = profile.DisplayName
		}
	}
	return names
}
