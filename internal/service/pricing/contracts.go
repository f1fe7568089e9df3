package pricing

import (
	"context"

	"github.com/m04kA/CMP-EstimateService/internal/domain"
	"github.com/m04kA/CMP-EstimateService/internal/integrations/userservice"
)

// ConfigRepository интерфейс репозитория версий rate card
type ConfigRepository interface {
	GetActive(ctx context.Context) (*domain.PricingConfig, error)
	GetByVersion(ctx context.Context, version int) (*domain.PricingConfig, error)
	Create(ctx context.Context, config *domain.PricingConfig) (*domain.PricingConfig, error)
	ListVersions(ctx context.Context) ([]*domain.PricingConfig, error)
}

// UserServiceClient интерфейс клиента для UserService
type UserServiceClient interface {
	GetCustomer(ctx context.Context, userID int64) (*userservice.Customer, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
