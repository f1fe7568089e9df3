package cancellation_quote

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном запросе
	ErrInvalidInput = errors.New("cancellation_quote: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancellation_quote: internal error")
)
