package get_pricing_versions

import (
	"context"

	"github.com/m04kA/CMP-EstimateService/internal/service/pricing/models"
)

type PricingService interface {
	ListVersions(ctx context.Context, userID int64) (*models.PricingConfigListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
