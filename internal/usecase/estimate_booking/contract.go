package estimate_booking

import (
	"context"

	"github.com/m04kA/CMP-EstimateService/internal/domain"
	"github.com/m04kA/CMP-EstimateService/internal/integrations/userservice"
)

// ConfigRepository интерфейс репозитория rate card
type ConfigRepository interface {
	GetActive(ctx context.Context) (*domain.PricingConfig, error)
}

// UserServiceClient интерфейс клиента для UserService
type UserServiceClient interface {
	GetCustomerWithGracefulDegradation(ctx context.Context, userID int64) (*userservice.Customer, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
