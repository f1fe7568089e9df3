package get_pricing_config

import (
	"context"

	"github.com/m04kA/CMP-EstimateService/internal/service/pricing/models"
)

type PricingService interface {
	GetActive(ctx context.Context) (*models.PricingConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
