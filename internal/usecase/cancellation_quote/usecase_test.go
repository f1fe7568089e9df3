package cancellation_quote

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CMP-EstimateService/internal/domain"
	configRepo "github.com/m04kA/CMP-EstimateService/internal/infra/storage/pricingconfig"
	"github.com/m04kA/CMP-EstimateService/pkg/types"
)

type mockConfigRepo struct {
	config *domain.PricingConfig
	err    error
}

func (m *mockConfigRepo) GetActive(_ context.Context) (*domain.PricingConfig, error) {
	return m.config, m.err
}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestExecute_PolicyBranches(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	total := types.Money(15900)

	tests := []struct {
		name       string
		start      time.Time
		wantFee    types.Money
		wantFree   bool
		wantBranch string
	}{
		{"two days before start", now.Add(48 * time.Hour), 0, true, BranchFree},
		{"twelve hours before start", now.Add(12 * time.Hour), 2500, false, BranchFlatFee},
		{"one hour before start", now.Add(1 * time.Hour), 3180, false, BranchDeposit},
		{"after start", now.Add(-2 * time.Hour), 3180, false, BranchDeposit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCaseWithTimeProvider(
				&mockConfigRepo{config: domain.DefaultPricingConfig()},
				fixedTimeProvider{now: now},
				noopLogger{},
			)

			resp, err := uc.Execute(context.Background(), &Request{
				BookingStart: tt.start,
				TotalPrice:   total,
			})
			require.NoError(t, err)

			assert.Equal(t, tt.wantFee, resp.Fee)
			assert.Equal(t, tt.wantFree, resp.FreeCancellation)
			assert.Equal(t, tt.wantBranch, resp.PolicyBranch)
		})
	}
}

func TestExecute_SeedPolicyWhenNoConfigStored(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	uc := NewUseCaseWithTimeProvider(
		&mockConfigRepo{err: configRepo.ErrConfigNotFound},
		fixedTimeProvider{now: now},
		noopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		BookingStart: now.Add(12 * time.Hour),
		TotalPrice:   types.Money(15900),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultCancellationFeeFlat, resp.Fee)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&mockConfigRepo{config: domain.DefaultPricingConfig()}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{TotalPrice: types.Money(100)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		BookingStart: time.Now().Add(time.Hour),
		TotalPrice:   types.Money(-1),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
