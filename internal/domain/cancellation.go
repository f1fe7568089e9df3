package domain

import (
	"time"

	"github.com/m04kA/CMP-EstimateService/pkg/types"
)

// Окна политики отмены
const (
	// FreeCancellationWindow за сколько до начала уборки отмена бесплатна
	FreeCancellationWindow = 24 * time.Hour

	// FlatFeeCancellationWindow в интервале [2ч, 24ч) до начала берётся фиксированный штраф
	FlatFeeCancellationWindow = 2 * time.Hour
)

// CancellationFee возвращает штраф за отмену бронирования
// Три ветки по времени до начала уборки:
//   - не менее 24 часов: бесплатно
//   - от 2 до 24 часов: фиксированный штраф (но не больше суммы заказа)
//   - менее 2 часов или после начала: удерживается депозит
func CancellationFee(cfg *PricingConfig, totalPrice types.Money, bookingStart, now time.Time) types.Money {
	untilStart := bookingStart.Sub(now)

	if untilStart >= FreeCancellationWindow {
		return 0
	}

	if untilStart >= FlatFeeCancellationWindow {
		fee := cfg.Discount.CancellationFeeFlat
		if fee > totalPrice {
			return totalPrice
		}
		return fee
	}

	return totalPrice.MulPercentHalfUp(cfg.Discount.DepositPercent)
}
