package cancellation_quote

import (
	"context"
	"time"

	"github.com/m04kA/CMP-EstimateService/internal/domain"
)

// ConfigRepository интерфейс репозитория rate card
type ConfigRepository interface {
	GetActive(ctx context.Context) (*domain.PricingConfig, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
