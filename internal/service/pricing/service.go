package pricing

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CMP-EstimateService/internal/domain"
	configRepo "github.com/m04kA/CMP-EstimateService/internal/infra/storage/pricingconfig"
	userClient "github.com/m04kA/CMP-EstimateService/internal/integrations/userservice"
	"github.com/m04kA/CMP-EstimateService/internal/service/pricing/models"
)

// Service сервис управления rate card
type Service struct {
	configRepo ConfigRepository
	userClient UserServiceClient
	txManager  TransactionManager
	logger     Logger
}

// NewService создает новый экземпляр сервиса rate card
func NewService(
	configRepo ConfigRepository,
	userClient UserServiceClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		configRepo: configRepo,
		userClient: userClient,
		txManager:  txManager,
		logger:     logger,
	}
}

// GetActive получает действующую версию rate card
// Публичный метод - доступен booking flow без аутентификации
func (s *Service) GetActive(ctx context.Context) (*models.PricingConfigResponse, error) {
	s.logger.Info("GetActive: fetching active pricing config")

	config, err := s.configRepo.GetActive(ctx)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Warn("GetActive: no pricing config stored yet")
			return nil, ErrConfigNotFound
		}
		s.logger.Error("GetActive: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetActive - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetActive: successfully fetched config version=%d", config.Version)
	return models.FromDomainConfig(config), nil
}

// Update сохраняет новую версию rate card
// Доступно только back-office пользователям (admin, supervisor)
// Частичное обновление: не переданные секции берутся из текущей версии
// Чтение текущей версии и вставка новой выполняются в сериализуемой транзакции,
// чтобы параллельные сохранения настроек не перезаписали друг друга
func (s *Service) Update(ctx context.Context, req *models.UpdatePricingConfigRequest) (*models.PricingConfigResponse, error) {
	s.logger.Info("Update: updating pricing config by user=%d", req.UserID)

	// 1. Проверяем права доступа
	if err := s.checkBackOfficeAccess(ctx, req.UserID, "Update"); err != nil {
		return nil, err
	}

	var result *domain.PricingConfig

	// 2. Читаем текущую версию и вставляем новую атомарно
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		current, err := s.configRepo.GetActive(txCtx)
		if err != nil && !errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Error("Update: failed to get active config: %v", err)
			return fmt.Errorf("%w: failed to get active config: %v", ErrInternal, err)
		}

		// Если сохранённой версии ещё нет, базой служит seed-конфигурация
		if current == nil {
			current = domain.DefaultPricingConfig()
			s.logger.Info("Update: no stored config, starting from seed defaults")
		}

		next := current.Clone()
		next.ID = 0
		next.Version = current.Version + 1
		req.ApplyToConfig(next)

		if err := next.Validate(); err != nil {
			s.logger.Warn("Update: validation failed: %v", err)
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		created, err := s.configRepo.Create(txCtx, next)
		if err != nil {
			s.logger.Error("Update: repository error: %v", err)
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("Update: successfully created config version=%d by user=%d", result.Version, req.UserID)
	return models.FromDomainConfig(result), nil
}

// ListVersions получает историю версий rate card
// Доступно только back-office пользователям
func (s *Service) ListVersions(ctx context.Context, userID int64) (*models.PricingConfigListResponse, error) {
	s.logger.Info("ListVersions: fetching config versions by user=%d", userID)

	if err := s.checkBackOfficeAccess(ctx, userID, "ListVersions"); err != nil {
		return nil, err
	}

	configs, err := s.configRepo.ListVersions(ctx)
	if err != nil {
		s.logger.Error("ListVersions: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListVersions - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListVersions: successfully fetched %d versions", len(configs))
	return models.FromDomainConfigList(configs), nil
}

// Вспомогательные методы

// checkBackOfficeAccess проверяет, что пользователь имеет back-office роль
func (s *Service) checkBackOfficeAccess(ctx context.Context, userID int64, op string) error {
	customer, err := s.userClient.GetCustomer(ctx, userID)
	if err != nil {
		if errors.Is(err, userClient.ErrCustomerNotFound) {
			s.logger.Warn("%s: user id=%d not found", op, userID)
			return ErrUserNotFound
		}
		s.logger.Error("%s: failed to get user id=%d: %v", op, userID, err)
		return fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	if !customer.IsBackOffice() {
		s.logger.Warn("%s: user=%d with role=%s is not allowed to manage pricing", op, userID, customer.Role)
		return ErrAccessDenied
	}

	return nil
}
