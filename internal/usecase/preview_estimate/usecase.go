package preview_estimate

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CMP-EstimateService/internal/domain"
	userClient "github.com/m04kA/CMP-EstimateService/internal/integrations/userservice"
)

// UseCase use case для live preview изменений rate card
type UseCase struct {
	userClient UserServiceClient
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(userClient UserServiceClient, logger Logger) *UseCase {
	return &UseCase{
		userClient: userClient,
		logger:     logger,
	}
}

// Execute прогоняет синтетический заказ через кандидатный rate card
// Ничего не сохраняет: кандидат существует только в рамках запроса
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PreviewEstimate: user=%d, service=%s", req.UserID, req.ServiceType)

	// 1. Валидация входных данных
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.Config == nil {
		return nil, fmt.Errorf("%w: pricing config payload is required", ErrInvalidInput)
	}
	if req.BookingHistoryCount < 0 {
		return nil, fmt.Errorf("%w: bookingHistoryCount must be non-negative", ErrInvalidInput)
	}

	// 2. Проверяем права доступа (только back-office)
	customer, err := uc.userClient.GetCustomer(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userClient.ErrCustomerNotFound) {
			uc.logger.Warn("PreviewEstimate: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("PreviewEstimate: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}
	if !customer.IsBackOffice() {
		uc.logger.Warn("PreviewEstimate: user=%d with role=%s is not allowed to preview pricing",
			req.UserID, customer.Role)
		return nil, ErrAccessDenied
	}

	// 3. Валидируем кандидатный rate card целиком - preview обязан падать
	// на тех же дырах конфигурации, на которых упадёт продакшен
	config := req.Config.ToDomainConfig()
	if err := config.Validate(); err != nil {
		uc.logger.Warn("PreviewEstimate: candidate config rejected: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	// 4. Выполняем расчёт по кандидату
	result, err := domain.Estimate(&domain.EstimateRequest{
		ServiceType:                 req.ServiceType,
		Rooms:                       req.Rooms,
		Addons:                      req.Addons,
		CustomerBookingHistoryCount: req.BookingHistoryCount,
	}, config)

	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			uc.logger.Warn("PreviewEstimate: estimate rejected: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)

		case errors.Is(err, domain.ErrConfiguration):
			uc.logger.Warn("PreviewEstimate: candidate config incomplete: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)

		default:
			uc.logger.Error("PreviewEstimate: estimate failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("PreviewEstimate: total=%s, duration=%dmin", result.TotalPrice, result.EstimatedDurationMinutes)
	return fromDomainResult(result), nil
}
