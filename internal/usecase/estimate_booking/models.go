package estimate_booking

import (
	"github.com/m04kA/CMP-EstimateService/internal/domain"
	"github.com/m04kA/CMP-EstimateService/pkg/types"
)

// Request модель запроса на расчёт стоимости бронирования
type Request struct {
	CustomerID          *int64                  // ID клиента (опционально, для поиска истории заказов)
	ServiceType         domain.ServiceType      // Тариф уборки
	Rooms               []domain.RoomSelection  // Выбранные комнаты
	Addons              []domain.AddonSelection // Выбранные дополнительные услуги
	BookingHistoryCount *int                    // Число завершённых заказов (если booking flow уже знает его)
}

// Response модель ответа с расчётом
type Response struct {
	BasePrice       types.Money // Базовая цена тарифа
	RoomsPrice      types.Money // Цена выбранных комнат
	AddonsPrice     types.Money // Цена дополнительных услуг
	Subtotal        types.Money // Сумма до скидки
	DiscountApplied types.Money // Применённая скидка (0, если нет права)
	TotalPrice      types.Money // Итоговая цена

	EstimatedDurationMinutes int // Расчётная длительность уборки
	RecommendedCleanerCount  int // Рекомендуемое число клинеров

	DepositDue types.Money // Депозит при бронировании
	BalanceDue types.Money // Остаток к оплате в день уборки

	ConfigVersion int // Версия rate card, по которой сделан расчёт (0 = seed)
}

// fromDomainResult конвертирует результат расчёта в response
func fromDomainResult(result *domain.EstimateResult, configVersion int) *Response {
	return &Response{
		BasePrice:                result.BasePrice,
		RoomsPrice:               result.RoomsPrice,
		AddonsPrice:              result.AddonsPrice,
		Subtotal:                 result.Subtotal,
		DiscountApplied:          result.DiscountApplied,
		TotalPrice:               result.TotalPrice,
		EstimatedDurationMinutes: result.EstimatedDurationMinutes,
		RecommendedCleanerCount:  result.RecommendedCleanerCount,
		DepositDue:               result.DepositDue,
		BalanceDue:               result.BalanceDue,
		ConfigVersion:            configVersion,
	}
}
