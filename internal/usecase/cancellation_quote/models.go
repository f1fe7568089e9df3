package cancellation_quote

import (
	"time"

	"github.com/m04kA/CMP-EstimateService/pkg/types"
)

// Ветки политики отмены в ответе
const (
	BranchFree    = "free"     // до начала не менее 24 часов
	BranchFlatFee = "flat_fee" // от 2 до 24 часов
	BranchDeposit = "deposit"  // менее 2 часов или после начала
)

// Request модель запроса расчёта штрафа за отмену
type Request struct {
	BookingStart time.Time   // Время начала уборки
	TotalPrice   types.Money // Итоговая цена бронирования
}

// Response модель ответа с расчётом штрафа
type Response struct {
	Fee              types.Money `json:"fee"`              // Штраф за отмену
	FreeCancellation bool        `json:"freeCancellation"` // true, если отмена бесплатна
	PolicyBranch     string      `json:"policyBranch"`     // Применённая ветка политики
}
