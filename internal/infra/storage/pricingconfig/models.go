package pricingconfig

import (
	"encoding/json"
	"fmt"

	"github.com/m04kA/CMP-EstimateService/internal/domain"
	"github.com/m04kA/CMP-EstimateService/pkg/types"
)

// JSONB-представления каталогов rate card
// Ценовые карты сериализуются напрямую (ключи - строковые enum-типы,
// Money хранится десятичной строкой), структурным записям нужны json-теги

type durationCoefficientsPayload struct {
	BaseMinutes         int                            `json:"baseMinutes"`
	RoomMinutes         map[domain.RoomKind]int        `json:"roomMinutes"`
	PerOtherRoomMinutes int                            `json:"perOtherRoomMinutes"`
	AddonMinutes        map[domain.AddonKind]int       `json:"addonMinutes"`
	ServiceMultipliers  map[domain.ServiceType]float64 `json:"serviceMultipliers"`
}

type discountPolicyPayload struct {
	TopBookerDiscountPercent float64                  `json:"topBookerDiscountPercent"`
	TopBookerCategory        domain.TopBookerCategory `json:"topBookerCategory"`
	DepositPercent           float64                  `json:"depositPercent"`
	CancellationFeeFlat      types.Money              `json:"cancellationFeeFlat"`
}

// encodePayloads сериализует каталоги конфигурации в JSONB-колонки
func encodePayloads(config *domain.PricingConfig) (servicePrices, roomPrices, addonPrices, durations, discount []byte, err error) {
	servicePrices, err = json.Marshal(config.ServicePrices)
	if err != nil {
		return nil, nil, nil, nil, nil, fmt.Errorf("%w: service prices: %v", ErrEncodePayload, err)
	}

	roomPrices, err = json.Marshal(config.RoomPrices)
	if err != nil {
		return nil, nil, nil, nil, nil, fmt.Errorf("%w: room prices: %v", ErrEncodePayload, err)
	}

	addonPrices, err = json.Marshal(config.AddonPrices)
	if err != nil {
		return nil, nil, nil, nil, nil, fmt.Errorf("%w: addon prices: %v", ErrEncodePayload, err)
	}

	durations, err = json.Marshal(durationCoefficientsPayload{
		BaseMinutes:         config.Durations.BaseMinutes,
		RoomMinutes:         config.Durations.RoomMinutes,
		PerOtherRoomMinutes: config.Durations.PerOtherRoomMinutes,
		AddonMinutes:        config.Durations.AddonMinutes,
		ServiceMultipliers:  config.Durations.ServiceMultipliers,
	})
	if err != nil {
		return nil, nil, nil, nil, nil, fmt.Errorf("%w: duration coefficients: %v", ErrEncodePayload, err)
	}

	discount, err = json.Marshal(discountPolicyPayload{
		TopBookerDiscountPercent: config.Discount.TopBookerDiscountPercent,
		TopBookerCategory:        config.Discount.TopBookerCategory,
		DepositPercent:           config.Discount.DepositPercent,
		CancellationFeeFlat:      config.Discount.CancellationFeeFlat,
	})
	if err != nil {
		return nil, nil, nil, nil, nil, fmt.Errorf("%w: discount policy: %v", ErrEncodePayload, err)
	}

	return servicePrices, roomPrices, addonPrices, durations, discount, nil
}

// decodePayloads восстанавливает каталоги конфигурации из JSONB-колонок
func decodePayloads(config *domain.PricingConfig, servicePrices, roomPrices, addonPrices, durations, discount []byte) error {
	if err := json.Unmarshal(servicePrices, &config.ServicePrices); err != nil {
		return fmt.Errorf("%w: service prices: %v", ErrDecodePayload, err)
	}

	if err := json.Unmarshal(roomPrices, &config.RoomPrices); err != nil {
		return fmt.Errorf("%w: room prices: %v", ErrDecodePayload, err)
	}

	if err := json.Unmarshal(addonPrices, &config.AddonPrices); err != nil {
		return fmt.Errorf("%w: addon prices: %v", ErrDecodePayload, err)
	}

	var durationsPayload durationCoefficientsPayload
	if err := json.Unmarshal(durations, &durationsPayload); err != nil {
		return fmt.Errorf("%w: duration coefficients: %v", ErrDecodePayload, err)
	}
	config.Durations = domain.DurationCoefficients{
		BaseMinutes:         durationsPayload.BaseMinutes,
		RoomMinutes:         durationsPayload.RoomMinutes,
		PerOtherRoomMinutes: durationsPayload.PerOtherRoomMinutes,
		AddonMinutes:        durationsPayload.AddonMinutes,
		ServiceMultipliers:  durationsPayload.ServiceMultipliers,
	}

	var discountPayload discountPolicyPayload
	if err := json.Unmarshal(discount, &discountPayload); err != nil {
		return fmt.Errorf("%w: discount policy: %v", ErrDecodePayload, err)
	}
	config.Discount = domain.DiscountPolicy{
		TopBookerDiscountPercent: discountPayload.TopBookerDiscountPercent,
		TopBookerCategory:        discountPayload.TopBookerCategory,
		DepositPercent:           discountPayload.DepositPercent,
		CancellationFeeFlat:      discountPayload.CancellationFeeFlat,
	}

	return nil
}
