package pricing

import "errors"

var (
	// ErrConfigNotFound возвращается, когда rate card не найден
	ErrConfigNotFound = errors.New("pricing service: config not found")

	// ErrUserNotFound возвращается, когда пользователь не найден в UserService
	ErrUserNotFound = errors.New("pricing service: user not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав управления rate card
	ErrAccessDenied = errors.New("pricing service: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("pricing service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("pricing service: internal error")
)
