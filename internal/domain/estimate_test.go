package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CMP-EstimateService/pkg/types"
)

func TestEstimate_StandardCleaning(t *testing.T) {
	// Standard, 2 спальни + 1 ванная, без допуслуг и скидки
	req := &EstimateRequest{
		ServiceType: ServiceStandard,
		Rooms: []RoomSelection{
			{Kind: RoomBedroom, Count: 2},
			{Kind: RoomBathroom, Count: 1},
		},
	}

	result, err := Estimate(req, DefaultPricingConfig())
	require.NoError(t, err)

	assert.Equal(t, types.Money(8900), result.BasePrice)
	assert.Equal(t, types.Money(4500), result.RoomsPrice)
	assert.Equal(t, types.Money(0), result.AddonsPrice)
	assert.Equal(t, types.Money(13400), result.Subtotal)
	assert.Equal(t, types.Money(0), result.DiscountApplied)
	assert.Equal(t, types.Money(13400), result.TotalPrice)
	assert.Equal(t, types.Money(2680), result.DepositDue)
	assert.Equal(t, types.Money(10720), result.BalanceDue)

	// 60 + 2*30 + 1*45 = 165, множитель 1.0
	assert.Equal(t, 165, result.EstimatedDurationMinutes)
	assert.Equal(t, 1, result.RecommendedCleanerCount)
}

func TestEstimate_DeepCleaningWithDiscount(t *testing.T) {
	// Deep, кухня + холодильник, клиент с 12 завершёнными заказами
	req := &EstimateRequest{
		ServiceType: ServiceDeep,
		Rooms: []RoomSelection{
			{Kind: RoomKitchen, Count: 1},
		},
		Addons: []AddonSelection{
			{Kind: AddonInsideFridge},
		},
		CustomerBookingHistoryCount: 12,
	}

	result, err := Estimate(req, DefaultPricingConfig())
	require.NoError(t, err)

	assert.Equal(t, types.Money(15900), result.BasePrice)
	assert.Equal(t, types.Money(2000), result.RoomsPrice)
	assert.Equal(t, types.Money(3500), result.AddonsPrice)
	assert.Equal(t, types.Money(21400), result.Subtotal)

	// 15% от 214.00 = 32.10
	assert.Equal(t, types.Money(3210), result.DiscountApplied)
	assert.Equal(t, types.Money(18190), result.TotalPrice)

	// (60 + 45 + 20) * 1.5 = 187.5 -> 188 (half-up)
	assert.Equal(t, 188, result.EstimatedDurationMinutes)
	assert.Equal(t, 1, result.RecommendedCleanerCount)
}

func TestEstimate_MoveInOutMinimumBooking(t *testing.T) {
	// Move In/Out без комнат и допуслуг
	req := &EstimateRequest{ServiceType: ServiceMoveInOut}

	result, err := Estimate(req, DefaultPricingConfig())
	require.NoError(t, err)

	assert.Equal(t, types.Money(19900), result.BasePrice)
	assert.Equal(t, types.Money(19900), result.Subtotal)
	assert.Equal(t, types.Money(19900), result.TotalPrice)

	// 60 * 2.0 = 120
	assert.Equal(t, 120, result.EstimatedDurationMinutes)
	assert.Equal(t, 1, result.RecommendedCleanerCount)
}

func TestEstimate_NegativeRoomCount(t *testing.T) {
	req := &EstimateRequest{
		ServiceType: ServiceStandard,
		Rooms: []RoomSelection{
			{Kind: RoomBedroom, Count: -1},
		},
	}

	result, err := Estimate(req, DefaultPricingConfig())
	assert.ErrorIs(t, err, ErrValidation)
	assert.Nil(t, result)
}

func TestEstimate_UnknownServiceType(t *testing.T) {
	req := &EstimateRequest{ServiceType: ServiceType("luxury")}

	result, err := Estimate(req, DefaultPricingConfig())
	assert.ErrorIs(t, err, ErrConfiguration)
	assert.Nil(t, result)
}

func TestEstimate_PostConstructionLargeJob(t *testing.T) {
	// Post-Construction, 4 спальни + 3 ванные
	req := &EstimateRequest{
		ServiceType: ServicePostConstruction,
		Rooms: []RoomSelection{
			{Kind: RoomBedroom, Count: 4},
			{Kind: RoomBathroom, Count: 3},
		},
	}

	result, err := Estimate(req, DefaultPricingConfig())
	require.NoError(t, err)

	// (60 + 4*30 + 3*45) * 2.5 = 315 * 2.5 = 787.5 -> 788
	assert.Equal(t, 788, result.EstimatedDurationMinutes)
	assert.Equal(t, 4, result.RecommendedCleanerCount)
}

func TestEstimate_DiscountCategoryBoundaries(t *testing.T) {
	// Границы диапазона "10-15" включительны
	tests := []struct {
		name     string
		history  int
		eligible bool
	}{
		{"below range", 9, false},
		{"lower bound", 10, true},
		{"upper bound", 15, true},
		{"above range", 16, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &EstimateRequest{
				ServiceType:                 ServiceStandard,
				CustomerBookingHistoryCount: tt.history,
			}

			result, err := Estimate(req, DefaultPricingConfig())
			require.NoError(t, err)

			if tt.eligible {
				assert.True(t, result.DiscountApplied > 0, "discount expected for history=%d", tt.history)
			} else {
				assert.Equal(t, types.Money(0), result.DiscountApplied)
			}
		})
	}
}

func TestEstimate_UnitBasedAddonQuantity(t *testing.T) {
	cfg := DefaultPricingConfig()

	// 3 окна: 3 * 10.00 = 30.00 и 3 * 10 минут
	req := &EstimateRequest{
		ServiceType: ServiceStandard,
		Addons: []AddonSelection{
			{Kind: AddonInsideWindows, Quantity: 3},
		},
	}

	result, err := Estimate(req, cfg)
	require.NoError(t, err)
	assert.Equal(t, types.Money(3000), result.AddonsPrice)
	assert.Equal(t, 90, result.EstimatedDurationMinutes)

	// Unit-based услуга без количества - ошибка валидации
	req.Addons[0].Quantity = 0
	_, err = Estimate(req, cfg)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestEstimate_FlatAddonCountedOnce(t *testing.T) {
	// Номинальное количество у flat-услуги не умножает цену
	req := &EstimateRequest{
		ServiceType: ServiceStandard,
		Addons: []AddonSelection{
			{Kind: AddonInsideFridge, Quantity: 5},
		},
	}

	result, err := Estimate(req, DefaultPricingConfig())
	require.NoError(t, err)
	assert.Equal(t, types.Money(3500), result.AddonsPrice)
}

func TestEstimate_RoomWithoutDurationUsesFallback(t *testing.T) {
	cfg := DefaultPricingConfig()
	delete(cfg.Durations.RoomMinutes, RoomGarage)

	req := &EstimateRequest{
		ServiceType: ServiceStandard,
		Rooms: []RoomSelection{
			{Kind: RoomGarage, Count: 2},
		},
	}

	result, err := Estimate(req, cfg)
	require.NoError(t, err)

	// 60 + 2 * perOtherRoom(20) = 100
	assert.Equal(t, 100, result.EstimatedDurationMinutes)
}

func TestEstimate_AddonWithoutDurationAddsNoMinutes(t *testing.T) {
	cfg := DefaultPricingConfig()
	delete(cfg.Durations.AddonMinutes, AddonPetHairRemoval)

	req := &EstimateRequest{
		ServiceType: ServiceStandard,
		Addons: []AddonSelection{
			{Kind: AddonPetHairRemoval},
		},
	}

	result, err := Estimate(req, cfg)
	require.NoError(t, err)

	assert.Equal(t, 60, result.EstimatedDurationMinutes)
	assert.Equal(t, types.Money(3000), result.AddonsPrice)
}

func TestEstimate_MissingRoomPrice(t *testing.T) {
	cfg := DefaultPricingConfig()
	delete(cfg.RoomPrices, RoomKitchen)

	req := &EstimateRequest{
		ServiceType: ServiceStandard,
		Rooms: []RoomSelection{
			{Kind: RoomKitchen, Count: 1},
		},
	}

	_, err := Estimate(req, cfg)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestEstimate_UnknownRoomKind(t *testing.T) {
	req := &EstimateRequest{
		ServiceType: ServiceStandard,
		Rooms: []RoomSelection{
			{Kind: RoomKind("ballroom"), Count: 1},
		},
	}

	_, err := Estimate(req, DefaultPricingConfig())
	assert.ErrorIs(t, err, ErrValidation)
}
