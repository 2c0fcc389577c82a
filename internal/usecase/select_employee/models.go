package select_employee

import "time"

// Request модель запроса подбора сотрудника на конкретный слот
type Request struct {
	ServiceID int64
	Date      string // Дата в формате YYYY-MM-DD
	Time      string // Время в 12-часовом формате, например "9:00am"
}

// Response ранжированный список сотрудников, доступных в запрошенный слот.
// Пустой список Employees - нормальный результат: слот никому не подходит
type Response struct {
	ServiceID   int64
	Date        time.Time
	StartMinute int
	Employees   []Candidate // Дефолтный сотрудник первым, далее по возрастанию ID
}

// Candidate один доступный сотрудник
type Candidate struct {
	EmployeeID  int64
	DisplayName string
	IsDefault   bool
}

// Selected возвращает лучшего кандидата или nil, если никто не доступен
func (r *Response) Selected() *Candidate {
	if len(r.Employees) == 0 {
		return nil
	}
	return &r.Employees[0]
}
