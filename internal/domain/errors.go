package domain

import "errors"

var (
	// ErrValidation возвращается, когда сам запрос на расчёт некорректен
	// (отрицательные количества, неизвестный тип комнаты или услуги)
	// Ошибка пользовательская: booking flow просит клиента исправить выбор
	ErrValidation = errors.New("domain: invalid estimate request")

	// ErrConfiguration возвращается, когда в rate card нет записи,
	// необходимой запросу. Ошибка операторская: расчёт прерывается,
	// цена никогда не подменяется нулём или значением по умолчанию
	ErrConfiguration = errors.New("domain: pricing configuration incomplete")
)
