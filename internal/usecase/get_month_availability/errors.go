package get_month_availability

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidSettings возвращается при некорректных настройках услуги.
	// Частичный ответ при сломанных настройках не имеет смысла
	ErrInvalidSettings = errors.New("invalid service settings")

	// ErrInvalidWindow возвращается, когда фиксированный диапазон дат
	// заканчивается раньше, чем начинается
	ErrInvalidWindow = errors.New("invalid booking window")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
