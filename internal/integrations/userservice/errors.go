package userservice

import "errors"

var (
	// ErrCustomerNotFound возвращается, когда пользователь не найден
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("userservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("userservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что UserService недоступен и расчёт продолжается без истории заказов
	ErrServiceDegraded = errors.New("userservice unavailable: graceful degradation applied")
)
