package preview_estimate

import (
	"github.com/m04kA/CMP-EstimateService/internal/domain"
	"github.com/m04kA/CMP-EstimateService/internal/service/pricing/models"
	previewEstimate "github.com/m04kA/CMP-EstimateService/internal/usecase/preview_estimate"
	"github.com/m04kA/CMP-EstimateService/pkg/types"
)

// RoomSelection HTTP model выбранной комнаты
type RoomSelection struct {
	Kind  string `json:"kind"`
	Count int    `json:"count"`
}

// AddonSelection HTTP model выбранной дополнительной услуги
type AddonSelection struct {
	Kind     string `json:"kind"`
	Quantity int    `json:"quantity,omitempty"`
}

// PreviewEstimateRequest HTTP request model
// config - кандидатный rate card целиком, order - синтетический заказ для прогона
type PreviewEstimateRequest struct {
	Config *models.PricingConfigPayload `json:"config"`

	ServiceType         string           `json:"serviceType"`
	Rooms               []RoomSelection  `json:"rooms,omitempty"`
	Addons              []AddonSelection `json:"addons,omitempty"`
	BookingHistoryCount int              `json:"bookingHistoryCount,omitempty"`
}

// PreviewEstimateResponse HTTP response model
type PreviewEstimateResponse struct {
	BasePrice       types.Money `json:"basePrice"`
	RoomsPrice      types.Money `json:"roomsPrice"`
	AddonsPrice     types.Money `json:"addonsPrice"`
	Subtotal        types.Money `json:"subtotal"`
	DiscountApplied types.Money `json:"discountApplied"`
	TotalPrice      types.Money `json:"totalPrice"`

	EstimatedDurationMinutes int `json:"estimatedDurationMinutes"`
	RecommendedCleanerCount  int `json:"recommendedCleanerCount"`

	DepositDue types.Money `json:"depositDue"`
	BalanceDue types.Money `json:"balanceDue"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *PreviewEstimateRequest) ToUseCaseRequest(userID int64) *previewEstimate.Request {
	rooms := make([]domain.RoomSelection, 0, len(r.Rooms))
	for _, room := range r.Rooms {
		rooms = append(rooms, domain.RoomSelection{
			Kind:  domain.RoomKind(room.Kind),
			Count: room.Count,
		})
	}

	addons := make([]domain.AddonSelection, 0, len(r.Addons))
	for _, addon := range r.Addons {
		addons = append(addons, domain.AddonSelection{
			Kind:     domain.AddonKind(addon.Kind),
			Quantity: addon.Quantity,
		})
	}

	return &previewEstimate.Request{
		UserID:              userID,
		Config:              r.Config,
		ServiceType:         domain.ServiceType(r.ServiceType),
		Rooms:               rooms,
		Addons:              addons,
		BookingHistoryCount: r.BookingHistoryCount,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *previewEstimate.Response) *PreviewEstimateResponse {
	return &PreviewEstimateResponse{
		BasePrice:                resp.BasePrice,
		RoomsPrice:               resp.RoomsPrice,
		AddonsPrice:              resp.AddonsPrice,
		Subtotal:                 resp.Subtotal,
		DiscountApplied:          resp.DiscountApplied,
		TotalPrice:               resp.TotalPrice,
		EstimatedDurationMinutes: resp.EstimatedDurationMinutes,
		RecommendedCleanerCount:  resp.RecommendedCleanerCount,
		DepositDue:               resp.DepositDue,
		BalanceDue:               resp.BalanceDue,
	}
}
