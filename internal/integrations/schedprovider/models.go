package schedprovider

// RawWorkingBlock один рабочий интервал из ответа провайдера
type RawWorkingBlock struct {
	Day       string `json:"day"`        // день недели в нижнем регистре: "monday".."sunday"
	StartTime string `json:"start_time"` // "HH:MM"
	EndTime   string `json:"end_time"`   // "HH:MM"
}

// WorkingHoursResponse сырой профиль рабочих часов сотрудника
type WorkingHoursResponse struct {
	EmployeeID   int64             `json:"employee_id"`
	DisplayName  string            `json:"display_name"`
	WorkingHours []RawWorkingBlock `json:"working_hours"`
}

// RawBusyInterval занятый интервал в расписании сотрудника
type RawBusyInterval struct {
	EmployeeID int64  `json:"employee_id"`
	Date       string `json:"date"`       // YYYY-MM-DD
	StartTime  string `json:"start_time"` // "HH:MM"
	EndTime    string `json:"end_time"`   // "HH:MM"
}

// BusyIntervalsResponse ответ провайдера на запрос занятых интервалов
type BusyIntervalsResponse struct {
	Intervals []RawBusyInterval `json:"busy_intervals"`
}

// ErrorResponse модель ошибки от провайдера
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
