package create_booking

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrNoEligibleEmployees возвращается, когда ни один сотрудник
	// (или запрошенный сотрудник) не доступен в выбранный слот
	ErrNoEligibleEmployees = errors.New("no eligible employees for slot")

	// ErrSlotTaken возвращается, когда слот заняли между проверкой
	// доступности и созданием бронирования
	ErrSlotTaken = errors.New("slot already taken")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
