package estimate_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном запросе
	// (отрицательные количества, неизвестный тип комнаты или услуги)
	ErrInvalidInput = errors.New("estimate_booking: invalid input data")

	// ErrPricingUnavailable возвращается, когда rate card неполон для запроса
	// Booking flow обязан показать "расчёт временно недоступен" и заблокировать
	// оформление - подменять цену значением по умолчанию нельзя
	ErrPricingUnavailable = errors.New("estimate_booking: pricing unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("estimate_booking: internal error")
)
