package select_employee

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	selectEmployee "github.com/m04kA/SMC-AvailabilityService/internal/usecase/select_employee"
)

// SelectEmployeeResponse HTTP response model.
// Selected дублирует первого кандидата для удобства клиентов
type SelectEmployeeResponse struct {
	ServiceID int64       `json:"serviceId"`
	Date      string      `json:"date"`
	Time      string      `json:"time"`
	Selected  *Candidate  `json:"selected,omitempty"`
	Employees []Candidate `json:"employees"`
}

// Candidate модель доступного сотрудника
type Candidate struct {
	EmployeeID  int64  `json:"employeeId"`
	DisplayName string `json:"displayName,omitempty"`
	IsDefault   bool   `json:"isDefault"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *selectEmployee.Response, timeStr string) *SelectEmployeeResponse {
	employees := make([]Candidate, len(resp.Employees))
	for i, c := range resp.Employees {
		employees[i] = Candidate{
			EmployeeID:  c.EmployeeID,
			DisplayName: c.DisplayName,
			IsDefault:   c.IsDefault,
		}
	}

	out := &SelectEmployeeResponse{
		ServiceID: resp.ServiceID,
		Date:      resp.Date.Format(domain.DateFormat),
		Time:      timeStr,
		Employees: employees,
	}
	if len(employees) > 0 {
		out.Selected = &employees[0]
	}
	return out
}
