package preview_estimate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CMP-EstimateService/internal/domain"
	"github.com/m04kA/CMP-EstimateService/internal/integrations/userservice"
	"github.com/m04kA/CMP-EstimateService/internal/service/pricing/models"
	"github.com/m04kA/CMP-EstimateService/pkg/types"
)

type mockUserClient struct {
	customer *userservice.Customer
	err      error
}

func (m *mockUserClient) GetCustomer(_ context.Context, _ int64) (*userservice.Customer, error) {
	return m.customer, m.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func defaultPayload() *models.PricingConfigPayload {
	cfg := domain.DefaultPricingConfig()
	return &models.PricingConfigPayload{
		ServicePrices: cfg.ServicePrices,
		RoomPrices:    cfg.RoomPrices,
		AddonPrices:   cfg.AddonPrices,
		DurationCoefficients: models.DurationCoefficients{
			BaseMinutes:         cfg.Durations.BaseMinutes,
			RoomMinutes:         cfg.Durations.RoomMinutes,
			PerOtherRoomMinutes: cfg.Durations.PerOtherRoomMinutes,
			AddonMinutes:        cfg.Durations.AddonMinutes,
			ServiceMultipliers:  cfg.Durations.ServiceMultipliers,
		},
		DiscountPolicy: models.DiscountPolicy{
			TopBookerDiscountPercent: cfg.Discount.TopBookerDiscountPercent,
			TopBookerCategory:        cfg.Discount.TopBookerCategory,
			DepositPercent:           cfg.Discount.DepositPercent,
			CancellationFeeFlat:      cfg.Discount.CancellationFeeFlat,
		},
	}
}

func adminClient() *mockUserClient {
	return &mockUserClient{customer: &userservice.Customer{ID: 1, Role: userservice.RoleAdmin}}
}

func TestExecute_PreviewCandidateConfig(t *testing.T) {
	uc := NewUseCase(adminClient(), noopLogger{})

	// Кандидат с поднятой ценой Standard: preview считает по нему, ничего не сохраняя
	payload := defaultPayload()
	payload.ServicePrices[domain.ServiceStandard] = 9900

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:      1,
		Config:      payload,
		ServiceType: domain.ServiceStandard,
		Rooms: []domain.RoomSelection{
			{Kind: domain.RoomBedroom, Count: 2},
			{Kind: domain.RoomBathroom, Count: 1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, types.Money(9900), resp.BasePrice)
	assert.Equal(t, types.Money(14400), resp.TotalPrice)
	assert.Equal(t, 165, resp.EstimatedDurationMinutes)
}

func TestExecute_AccessControl(t *testing.T) {
	tests := []struct {
		name    string
		client  *mockUserClient
		wantErr error
	}{
		{"customer denied", &mockUserClient{customer: &userservice.Customer{ID: 2, Role: userservice.RoleCustomer}}, ErrAccessDenied},
		{"cleaner denied", &mockUserClient{customer: &userservice.Customer{ID: 2, Role: userservice.RoleCleaner}}, ErrAccessDenied},
		{"unknown user", &mockUserClient{err: userservice.ErrCustomerNotFound}, ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(tt.client, noopLogger{})

			_, err := uc.Execute(context.Background(), &Request{
				UserID:      2,
				Config:      defaultPayload(),
				ServiceType: domain.ServiceStandard,
			})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_RejectsIncompleteCandidate(t *testing.T) {
	uc := NewUseCase(adminClient(), noopLogger{})

	payload := defaultPayload()
	delete(payload.ServicePrices, domain.ServiceDeep)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:      1,
		Config:      payload,
		ServiceType: domain.ServiceStandard,
	})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(adminClient(), noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 0, Config: defaultPayload()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{UserID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
