package cancellation_quote

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/CMP-EstimateService/internal/domain"
	configRepo "github.com/m04kA/CMP-EstimateService/internal/infra/storage/pricingconfig"
)

// UseCase use case расчёта штрафа за отмену бронирования
type UseCase struct {
	configRepo   ConfigRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(configRepo ConfigRepository, logger Logger) *UseCase {
	return NewUseCaseWithTimeProvider(configRepo, &RealTimeProvider{}, logger)
}

// NewUseCaseWithTimeProvider создает use case с заданным провайдером времени
func NewUseCaseWithTimeProvider(configRepo ConfigRepository, timeProvider TimeProvider, logger Logger) *UseCase {
	return &UseCase{
		configRepo:   configRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute рассчитывает штраф за отмену по действующей политике
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancellationQuote: booking_start=%s, total=%s",
		req.BookingStart.Format("2006-01-02 15:04"), req.TotalPrice)

	// 1. Валидация входных данных
	if req.BookingStart.IsZero() {
		return nil, fmt.Errorf("%w: bookingStart is required", ErrInvalidInput)
	}
	if req.TotalPrice.IsNegative() {
		return nil, fmt.Errorf("%w: totalPrice must be non-negative", ErrInvalidInput)
	}

	// 2. Получаем действующий rate card (политика отмены - его часть)
	config, err := uc.configRepo.GetActive(ctx)
	if err != nil && !errors.Is(err, configRepo.ErrConfigNotFound) {
		uc.logger.Error("CancellationQuote: failed to get pricing config: %v", err)
		return nil, fmt.Errorf("%w: failed to get pricing config: %v", ErrInternal, err)
	}
	if config == nil {
		config = domain.DefaultPricingConfig()
		uc.logger.Info("CancellationQuote: no stored config, using seed defaults")
	}

	// 3. Считаем штраф
	now := uc.timeProvider.Now()
	fee := domain.CancellationFee(config, req.TotalPrice, req.BookingStart, now)

	branch := policyBranch(req.BookingStart, now)
	uc.logger.Info("CancellationQuote: fee=%s, branch=%s", fee, branch)

	return &Response{
		Fee:              fee,
		FreeCancellation: branch == BranchFree,
		PolicyBranch:     branch,
	}, nil
}

// policyBranch определяет применённую ветку политики по времени до начала
func policyBranch(bookingStart, now time.Time) string {
	untilStart := bookingStart.Sub(now)

	switch {
	case untilStart >= domain.FreeCancellationWindow:
		return BranchFree
	case untilStart >= domain.FlatFeeCancellationWindow:
		return BranchFlatFee
	default:
		return BranchDeposit
	}
}
