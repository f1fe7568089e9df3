package estimate_booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CMP-EstimateService/internal/domain"
	configRepo "github.com/m04kA/CMP-EstimateService/internal/infra/storage/pricingconfig"
	"github.com/m04kA/CMP-EstimateService/internal/integrations/userservice"
	"github.com/m04kA/CMP-EstimateService/pkg/ptr"
	"github.com/m04kA/CMP-EstimateService/pkg/types"
)

type mockConfigRepo struct {
	config *domain.PricingConfig
	err    error
}

func (m *mockConfigRepo) GetActive(_ context.Context) (*domain.PricingConfig, error) {
	return m.config, m.err
}

type mockUserClient struct {
	customer *userservice.Customer
	err      error
	calls    int
}

func (m *mockUserClient) GetCustomerWithGracefulDegradation(_ context.Context, _ int64) (*userservice.Customer, error) {
	m.calls++
	return m.customer, m.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestExecute_UsesStoredConfig(t *testing.T) {
	cfg := domain.DefaultPricingConfig()
	cfg.Version = 3

	uc := NewUseCase(&mockConfigRepo{config: cfg}, &mockUserClient{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceType: domain.ServiceStandard,
		Rooms: []domain.RoomSelection{
			{Kind: domain.RoomBedroom, Count: 2},
			{Kind: domain.RoomBathroom, Count: 1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, types.Money(13400), resp.TotalPrice)
	assert.Equal(t, types.Money(2680), resp.DepositDue)
	assert.Equal(t, 3, resp.ConfigVersion)
}

func TestExecute_FallsBackToSeedConfig(t *testing.T) {
	repo := &mockConfigRepo{err: configRepo.ErrConfigNotFound}
	uc := NewUseCase(repo, &mockUserClient{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ServiceType: domain.ServiceMoveInOut})
	require.NoError(t, err)

	assert.Equal(t, types.Money(19900), resp.TotalPrice)
	assert.Equal(t, 0, resp.ConfigVersion)
}

func TestExecute_ResolvesHistoryFromUserService(t *testing.T) {
	userClient := &mockUserClient{
		customer: &userservice.Customer{ID: 42, CompletedBookings: 12},
	}
	uc := NewUseCase(&mockConfigRepo{config: domain.DefaultPricingConfig()}, userClient, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		CustomerID:  ptr.Ptr(int64(42)),
		ServiceType: domain.ServiceDeep,
		Rooms: []domain.RoomSelection{
			{Kind: domain.RoomKitchen, Count: 1},
		},
		Addons: []domain.AddonSelection{
			{Kind: domain.AddonInsideFridge},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, userClient.calls)
	assert.Equal(t, types.Money(3210), resp.DiscountApplied)
	assert.Equal(t, types.Money(18190), resp.TotalPrice)
}

func TestExecute_ExplicitHistorySkipsUserService(t *testing.T) {
	userClient := &mockUserClient{}
	uc := NewUseCase(&mockConfigRepo{config: domain.DefaultPricingConfig()}, userClient, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		CustomerID:          ptr.Ptr(int64(42)),
		ServiceType:         domain.ServiceStandard,
		BookingHistoryCount: ptr.Ptr(12),
	})
	require.NoError(t, err)

	assert.Equal(t, 0, userClient.calls)
	assert.True(t, resp.DiscountApplied > 0)
}

func TestExecute_UserServiceDegradedMeansNoDiscount(t *testing.T) {
	// Недоступность UserService не блокирует расчёт, скидка не применяется
	userClient := &mockUserClient{err: userservice.ErrServiceDegraded}
	uc := NewUseCase(&mockConfigRepo{config: domain.DefaultPricingConfig()}, userClient, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		CustomerID:  ptr.Ptr(int64(42)),
		ServiceType: domain.ServiceStandard,
	})
	require.NoError(t, err)

	assert.Equal(t, types.Money(0), resp.DiscountApplied)
}

func TestExecute_CustomerNotFoundMeansNoDiscount(t *testing.T) {
	userClient := &mockUserClient{err: userservice.ErrCustomerNotFound}
	uc := NewUseCase(&mockConfigRepo{config: domain.DefaultPricingConfig()}, userClient, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		CustomerID:  ptr.Ptr(int64(42)),
		ServiceType: domain.ServiceStandard,
	})
	require.NoError(t, err)

	assert.Equal(t, types.Money(0), resp.DiscountApplied)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := NewUseCase(&mockConfigRepo{config: domain.DefaultPricingConfig()}, &mockUserClient{}, noopLogger{})

	tests := []struct {
		name string
		req  *Request
	}{
		{"missing service type", &Request{}},
		{"non-positive customer id", &Request{ServiceType: domain.ServiceStandard, CustomerID: ptr.Ptr(int64(0))}},
		{"negative history", &Request{ServiceType: domain.ServiceStandard, BookingHistoryCount: ptr.Ptr(-1)}},
		{"negative room count", &Request{
			ServiceType: domain.ServiceStandard,
			Rooms:       []domain.RoomSelection{{Kind: domain.RoomBedroom, Count: -1}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_IncompleteConfigIsPricingUnavailable(t *testing.T) {
	cfg := domain.DefaultPricingConfig()
	delete(cfg.ServicePrices, domain.ServiceDeep)

	uc := NewUseCase(&mockConfigRepo{config: cfg}, &mockUserClient{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ServiceType: domain.ServiceDeep})
	assert.ErrorIs(t, err, ErrPricingUnavailable)
}

func TestExecute_RepositoryFailureIsInternal(t *testing.T) {
	uc := NewUseCase(&mockConfigRepo{err: errors.New("connection refused")}, &mockUserClient{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ServiceType: domain.ServiceStandard})
	assert.ErrorIs(t, err, ErrInternal)
}
