package create_booking

// Request модель запроса создания бронирования.
// EmployeeID не обязателен: без него сотрудника подбирает сервис
type Request struct {
	UserID     int64
	ServiceID  int64
	Date       string // Дата в формате YYYY-MM-DD
	Time       string // Время в 12-часовом формате, например "9:00am"
	EmployeeID *int64 // Явный выбор сотрудника (опционально)
	Notes      *string
}
