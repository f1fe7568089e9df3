package get_pricing_config

import (
	"github.com/m04kA/CMP-EstimateService/internal/domain"
	"github.com/m04kA/CMP-EstimateService/internal/service/pricing/models"
)

// GetDefaultConfigResponse возвращает seed rate card
// Используется, когда в базе ещё нет ни одной сохранённой версии
func GetDefaultConfigResponse() *models.PricingConfigResponse {
	return models.FromDomainConfig(domain.DefaultPricingConfig())
}
