package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CMP-EstimateService/pkg/types"
)

func TestPricingConfig_Validate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, DefaultPricingConfig().Validate())
	})

	tests := []struct {
		name   string
		mutate func(cfg *PricingConfig)
	}{
		{"missing service price", func(cfg *PricingConfig) { delete(cfg.ServicePrices, ServiceDeep) }},
		{"negative service price", func(cfg *PricingConfig) { cfg.ServicePrices[ServiceDeep] = -1 }},
		{"missing room price", func(cfg *PricingConfig) { delete(cfg.RoomPrices, RoomKitchen) }},
		{"missing addon price", func(cfg *PricingConfig) { delete(cfg.AddonPrices, AddonInsideOven) }},
		{"missing multiplier", func(cfg *PricingConfig) { delete(cfg.Durations.ServiceMultipliers, ServiceDeep) }},
		{"non-positive multiplier", func(cfg *PricingConfig) { cfg.Durations.ServiceMultipliers[ServiceDeep] = 0 }},
		{"unknown key in service prices", func(cfg *PricingConfig) { cfg.ServicePrices[ServiceType("luxury")] = 100 }},
		{"negative room minutes", func(cfg *PricingConfig) { cfg.Durations.RoomMinutes[RoomBedroom] = -5 }},
		{"negative base minutes", func(cfg *PricingConfig) { cfg.Durations.BaseMinutes = -1 }},
		{"discount percent above 100", func(cfg *PricingConfig) { cfg.Discount.TopBookerDiscountPercent = 101 }},
		{"negative deposit percent", func(cfg *PricingConfig) { cfg.Discount.DepositPercent = -1 }},
		{"unknown category", func(cfg *PricingConfig) { cfg.Discount.TopBookerCategory = "2-4" }},
		{"negative flat fee", func(cfg *PricingConfig) { cfg.Discount.CancellationFeeFlat = -100 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultPricingConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestPricingConfig_ValidateAllowsPartialDurations(t *testing.T) {
	// Каталоги длительностей могут быть неполными - действует fallback
	cfg := DefaultPricingConfig()
	delete(cfg.Durations.RoomMinutes, RoomGarage)
	delete(cfg.Durations.AddonMinutes, AddonDishWashing)

	assert.NoError(t, cfg.Validate())
}

func TestPricingConfig_ValidateAllowsMicrowaveDuration(t *testing.T) {
	// Микроволновка присутствует только в каталоге длительностей
	cfg := DefaultPricingConfig()
	require.Contains(t, cfg.Durations.AddonMinutes, AddonMicrowave)
	require.NotContains(t, cfg.AddonPrices, AddonMicrowave)

	assert.NoError(t, cfg.Validate())
}

func TestPricingConfig_CloneIsDeep(t *testing.T) {
	original := DefaultPricingConfig()
	clone := original.Clone()

	clone.ServicePrices[ServiceStandard] = 1
	clone.RoomPrices[RoomBedroom] = 1
	clone.AddonPrices[AddonInsideFridge] = 1
	clone.Durations.RoomMinutes[RoomBedroom] = 1
	clone.Durations.AddonMinutes[AddonInsideFridge] = 1
	clone.Durations.ServiceMultipliers[ServiceStandard] = 9.9

	assert.Equal(t, types.Money(8900), original.ServicePrices[ServiceStandard])
	assert.Equal(t, types.Money(1500), original.RoomPrices[RoomBedroom])
	assert.Equal(t, types.Money(3500), original.AddonPrices[AddonInsideFridge])
	assert.Equal(t, 30, original.Durations.RoomMinutes[RoomBedroom])
	assert.Equal(t, 20, original.Durations.AddonMinutes[AddonInsideFridge])
	assert.Equal(t, 1.0, original.Durations.ServiceMultipliers[ServiceStandard])
}

func TestTopBookerCategory_Matches(t *testing.T) {
	assert.True(t, CategoryAll.Matches(0))
	assert.True(t, CategoryBookings5to9.Matches(5))
	assert.True(t, CategoryBookings5to9.Matches(9))
	assert.False(t, CategoryBookings5to9.Matches(10))
	assert.True(t, CategoryBookings21Plus.Matches(21))
	assert.True(t, CategoryBookings21Plus.Matches(1000))
	assert.False(t, CategoryBookings21Plus.Matches(20))
	assert.False(t, TopBookerCategory("2-4").Matches(3))
}
