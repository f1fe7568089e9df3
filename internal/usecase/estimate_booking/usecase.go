package estimate_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CMP-EstimateService/internal/domain"
	configRepo "github.com/m04kA/CMP-EstimateService/internal/infra/storage/pricingconfig"
	userClient "github.com/m04kA/CMP-EstimateService/internal/integrations/userservice"
)

// UseCase use case расчёта стоимости бронирования
type UseCase struct {
	configRepo ConfigRepository
	userClient UserServiceClient
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	configRepo ConfigRepository,
	userClient UserServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		configRepo: configRepo,
		userClient: userClient,
		logger:     logger,
	}
}

// Execute выполняет расчёт стоимости и длительности по действующему rate card
// Конфигурация читается один раз на запрос - расчёт идёт по согласованному snapshot
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("EstimateBooking: service=%s, rooms=%d, addons=%d",
		req.ServiceType, len(req.Rooms), len(req.Addons))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("EstimateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Определяем историю заказов клиента для скидки
	historyCount, err := uc.resolveHistoryCount(ctx, req)
	if err != nil {
		return nil, err
	}

	// 3. Получаем действующий rate card
	config, err := uc.configRepo.GetActive(ctx)
	if err != nil && !errors.Is(err, configRepo.ErrConfigNotFound) {
		uc.logger.Error("EstimateBooking: failed to get pricing config: %v", err)
		return nil, fmt.Errorf("%w: failed to get pricing config: %v", ErrInternal, err)
	}

	// Если администратор ещё не сохранял настройки, действует seed-конфигурация
	if config == nil {
		config = domain.DefaultPricingConfig()
		uc.logger.Info("EstimateBooking: no stored config, using seed defaults")
	} else {
		uc.logger.Info("EstimateBooking: using config version=%d", config.Version)
	}

	// 4. Выполняем расчёт
	result, err := domain.Estimate(&domain.EstimateRequest{
		ServiceType:                 req.ServiceType,
		Rooms:                       req.Rooms,
		Addons:                      req.Addons,
		CustomerBookingHistoryCount: historyCount,
	}, config)

	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			uc.logger.Warn("EstimateBooking: estimate rejected: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)

		case errors.Is(err, domain.ErrConfiguration):
			// Дыра в rate card - операторская проблема, цену не подменяем
			uc.logger.Error("EstimateBooking: pricing config incomplete (version=%d): %v", config.Version, err)
			return nil, fmt.Errorf("%w: %v", ErrPricingUnavailable, err)

		default:
			uc.logger.Error("EstimateBooking: estimate failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("EstimateBooking: total=%s, duration=%dmin, cleaners=%d, discount=%s",
		result.TotalPrice, result.EstimatedDurationMinutes, result.RecommendedCleanerCount, result.DiscountApplied)

	return fromDomainResult(result, config.Version), nil
}

// resolveHistoryCount определяет число завершённых заказов клиента
// Приоритет: явно переданное значение > данные UserService > 0
// При недоступности UserService расчёт продолжается без скидки
func (uc *UseCase) resolveHistoryCount(ctx context.Context, req *Request) (int, error) {
	if req.BookingHistoryCount != nil {
		return *req.BookingHistoryCount, nil
	}

	if req.CustomerID == nil {
		return 0, nil
	}

	customer, err := uc.userClient.GetCustomerWithGracefulDegradation(ctx, *req.CustomerID)
	if err != nil {
		if errors.Is(err, userClient.ErrCustomerNotFound) {
			uc.logger.Warn("EstimateBooking: customer id=%d not found, estimating without discount", *req.CustomerID)
			return 0, nil
		}
		if errors.Is(err, userClient.ErrServiceDegraded) {
			uc.logger.Warn("EstimateBooking: userservice degraded, estimating without discount for customer=%d", *req.CustomerID)
			return 0, nil
		}
		uc.logger.Error("EstimateBooking: failed to get customer id=%d: %v", *req.CustomerID, err)
		return 0, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}

	return customer.CompletedBookings, nil
}
