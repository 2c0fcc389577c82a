package schedprovider

import "errors"

var (
	// ErrEmployeeNotFound возвращается, когда у провайдера нет профиля сотрудника
	ErrEmployeeNotFound = errors.New("schedprovider client: employee not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("schedprovider client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе провайдера
	ErrInvalidResponse = errors.New("schedprovider client: invalid response")
)
