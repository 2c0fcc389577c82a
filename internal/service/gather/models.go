package gather

import "github.com/m04kA/SMC-AvailabilityService/internal/domain"

// Result результат массовой загрузки данных за период.
// ResolvedEmployees/DroppedEmployees позволяют вызывающему коду отличить
// "никто не доступен" от "часть данных не удалось получить".
type Result struct {
	Profiles          map[int64]*domain.EmployeeProfile
	BusyIntervals     []domain.BusyInterval
	ResolvedEmployees int
	DroppedEmployees  int
}

// Degraded сообщает, что хотя бы один профиль сотрудника не был получен
func (r *Result) Degraded() bool {
	return r.DroppedEmployees > 0
}
