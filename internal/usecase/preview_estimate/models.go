package preview_estimate

import (
	"github.com/m04kA/CMP-EstimateService/internal/domain"
	"github.com/m04kA/CMP-EstimateService/internal/service/pricing/models"
	"github.com/m04kA/CMP-EstimateService/pkg/types"
)

// Request модель запроса на preview расчёта по кандидатному rate card
// Администратор видит эффект изменений настроек до их сохранения
type Request struct {
	UserID int64 // ID пользователя (для проверки прав)

	Config *models.PricingConfigPayload // Кандидатный rate card (полный)

	// Синтетический заказ для прогона
	ServiceType         domain.ServiceType
	Rooms               []domain.RoomSelection
	Addons              []domain.AddonSelection
	BookingHistoryCount int
}

// Response модель ответа с расчётом по кандидатному rate card
type Response struct {
	BasePrice       types.Money
	RoomsPrice      types.Money
	AddonsPrice     types.Money
	Subtotal        types.Money
	DiscountApplied types.Money
	TotalPrice      types.Money

	EstimatedDurationMinutes int
	RecommendedCleanerCount  int

	DepositDue types.Money
	BalanceDue types.Money
}

func fromDomainResult(result *domain.EstimateResult) *Response {
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
	}
}
