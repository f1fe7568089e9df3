package preview_estimate

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден в UserService
	ErrUserNotFound = errors.New("preview_estimate: user not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав управления rate card
	ErrAccessDenied = errors.New("preview_estimate: access denied")

	// ErrInvalidConfig возвращается, когда кандидатный rate card не проходит валидацию
	ErrInvalidConfig = errors.New("preview_estimate: invalid pricing config")

	// ErrInvalidInput возвращается при некорректном синтетическом заказе
	ErrInvalidInput = errors.New("preview_estimate: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("preview_estimate: internal error")
)
