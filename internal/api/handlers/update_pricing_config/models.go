package update_pricing_config

import (
	"github.com/m04kA/CMP-EstimateService/internal/domain"
	"github.com/m04kA/CMP-EstimateService/internal/service/pricing/models"
	"github.com/m04kA/CMP-EstimateService/pkg/types"
)

// UpdatePricingConfigRequest HTTP request model
// Все секции опциональны - не переданные сохраняют текущие значения
type UpdatePricingConfigRequest struct {
	ServicePrices        map[domain.ServiceType]types.Money `json:"servicePrices,omitempty"`
	RoomPrices           map[domain.RoomKind]types.Money    `json:"roomPrices,omitempty"`
	AddonPrices          map[domain.AddonKind]types.Money   `json:"addonPrices,omitempty"`
	DurationCoefficients *models.DurationCoefficients       `json:"durationCoefficients,omitempty"`
	DiscountPolicy       *models.DiscountPolicy             `json:"discountPolicy,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
// userID берётся из middleware, а не из тела запроса
func (r *UpdatePricingConfigRequest) ToServiceRequest(userID int64) *models.UpdatePricingConfigRequest {
	return &models.UpdatePricingConfigRequest{
		UserID:               userID,
		ServicePrices:        r.ServicePrices,
		RoomPrices:           r.RoomPrices,
		AddonPrices:          r.AddonPrices,
		DurationCoefficients: r.DurationCoefficients,
		DiscountPolicy:       r.DiscountPolicy,
	}
}
