package get_month_availability

import (
	"time"
)

// Request модель запроса месячного календаря доступности
type Request struct {
	ServiceID int64      // ID услуги
	Year      int        // Год
	Month     time.Month // Месяц (1-12)
}

// Response месячный календарь: дата -> отсортированные по времени слоты.
// Дата без доступных сотрудников в Days отсутствует, а не присутствует с
// пустым списком. "Вне окна бронирования" отличим по WindowStart/WindowEnd.
type Response struct {
	ServiceID int64
	Year      int
	Month     time.Month

	// Границы окна бронирования, применённые к месяцу
	WindowStart time.Time
	WindowEnd   *time.Time

	// Дата (YYYY-MM-DD) -> слоты по возрастанию времени
	Days map[string][]Slot

	// Количество сотрудников, чьи профили не удалось получить.
	// Ненулевое значение означает деградированный, но рабочий ответ
	DroppedEmployees int
}

// Slot один бронируемый слот на дату
type Slot struct {
	StartMinute     int     // Смещение в минутах от полуночи (для сортировки)
	StartTime       string  // Отображаемое время, например "9:00am"
	DurationMinutes int     // Длительность услуги
	EmployeeIDs     []int64 // Сотрудники, доступные в этот слот (по возрастанию ID)
}
