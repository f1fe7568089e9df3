package update_pricing_config

import (
	"context"

	"github.com/m04kA/CMP-EstimateService/internal/service/pricing/models"
)

type PricingService interface {
	Update(ctx context.Context, req *models.UpdatePricingConfigRequest) (*models.PricingConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
