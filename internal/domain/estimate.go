package domain

import (
	"fmt"
	"math"

	"github.com/m04kA/CMP-EstimateService/pkg/types"
)

// RoomSelection выбранный тип комнаты с количеством
type RoomSelection struct {
	Kind  RoomKind
	Count int
}

// AddonSelection выбранная дополнительная услуга
// Quantity применяется только к unit-based услугам (окна, корзины, часы);
// для остальных учитывается сам факт выбора
type AddonSelection struct {
	Kind     AddonKind
	Quantity int
}

// EstimateRequest структурное описание заказа для расчёта
type EstimateRequest struct {
	ServiceType                 ServiceType
	Rooms                       []RoomSelection
	Addons                      []AddonSelection
	CustomerBookingHistoryCount int
}

// EstimateResult результат расчёта цены и длительности
type EstimateResult struct {
	BasePrice       types.Money
	RoomsPrice      types.Money
	AddonsPrice     types.Money
	Subtotal        types.Money
	DiscountApplied types.Money
	TotalPrice      types.Money

	EstimatedDurationMinutes int
	RecommendedCleanerCount  int

	DepositDue types.Money
	BalanceDue types.Money
}

// Estimate рассчитывает цену, длительность и рекомендуемое число клинеров
// по запросу и снимку rate card. Чистая функция: без I/O, без состояния,
// одинаковый вход даёт бит-в-бит одинаковый результат
func Estimate(req *EstimateRequest, cfg *PricingConfig) (*EstimateResult, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is nil", ErrValidation)
	}
	if cfg == nil {
		return nil, fmt.Errorf("%w: pricing config is nil", ErrConfiguration)
	}

	if req.CustomerBookingHistoryCount < 0 {
		return nil, fmt.Errorf("%w: booking history count must be non-negative", ErrValidation)
	}

	// Базовая цена тарифа. Неизвестный тариф - дыра в каталоге, не ошибка клиента:
	// цены для него не существует по определению
	basePrice, ok := cfg.ServicePrices[req.ServiceType]
	if !ok {
		return nil, fmt.Errorf("%w: no price for service type %q", ErrConfiguration, req.ServiceType)
	}

	roomsPrice, err := roomsPrice(req.Rooms, cfg)
	if err != nil {
		return nil, err
	}

	addonsPrice, err := addonsPrice(req.Addons, cfg)
	if err != nil {
		return nil, err
	}

	subtotal := basePrice.Add(roomsPrice).Add(addonsPrice)

	discount := types.Money(0)
	if cfg.Discount.TopBookerCategory.Matches(req.CustomerBookingHistoryCount) {
		discount = subtotal.MulPercentHalfUp(cfg.Discount.TopBookerDiscountPercent)
	}

	total := subtotal.Sub(discount)
	if total < 0 {
		total = 0
	}

	deposit := total.MulPercentHalfUp(cfg.Discount.DepositPercent)
	// Баланс считается вычитанием, поэтому deposit + balance == total всегда точно
	balance := total.Sub(deposit)

	minutes, err := estimateDuration(req, cfg)
	if err != nil {
		return nil, err
	}

	return &EstimateResult{
		BasePrice:                basePrice,
		RoomsPrice:               roomsPrice,
		AddonsPrice:              addonsPrice,
		Subtotal:                 subtotal,
		DiscountApplied:          discount,
		TotalPrice:               total,
		EstimatedDurationMinutes: minutes,
		RecommendedCleanerCount:  cleanerCount(minutes),
		DepositDue:               deposit,
		BalanceDue:               balance,
	}, nil
}

// roomsPrice суммирует цену выбранных комнат
// Каталог цен комнат закрытый: неизвестный тип - ошибка валидации,
// отсутствие цены для известного типа - испорченный rate card
func roomsPrice(rooms []RoomSelection, cfg *PricingConfig) (types.Money, error) {
	total := types.Money(0)

	for _, room := range rooms {
		if !room.Kind.Valid() {
			return 0, fmt.Errorf("%w: unknown room kind %q", ErrValidation, room.Kind)
		}
		if room.Count < 0 {
			return 0, fmt.Errorf("%w: room count for %q must be non-negative", ErrValidation, room.Kind)
		}
		if room.Count > MaxRoomCount {
			return 0, fmt.Errorf("%w: room count for %q exceeds %d", ErrValidation, room.Kind, MaxRoomCount)
		}

		price, ok := cfg.RoomPrices[room.Kind]
		if !ok {
			return 0, fmt.Errorf("%w: no price for room kind %q", ErrConfiguration, room.Kind)
		}

		total = total.Add(price.MulInt(int64(room.Count)))
	}

	return total, nil
}

// addonsPrice суммирует цену выбранных дополнительных услуг
func addonsPrice(addons []AddonSelection, cfg *PricingConfig) (types.Money, error) {
	total := types.Money(0)

	for _, addon := range addons {
		if !addon.Kind.Valid() {
			return 0, fmt.Errorf("%w: unknown addon kind %q", ErrValidation, addon.Kind)
		}

		price, ok := cfg.AddonPrices[addon.Kind]
		if !ok {
			return 0, fmt.Errorf("%w: no price for addon kind %q", ErrConfiguration, addon.Kind)
		}

		if addon.Kind.IsUnitBased() {
			if addon.Quantity < 1 {
				return 0, fmt.Errorf("%w: quantity for %q must be at least 1", ErrValidation, addon.Kind)
			}
			if addon.Quantity > MaxAddonQuantity {
				return 0, fmt.Errorf("%w: quantity for %q exceeds %d", ErrValidation, addon.Kind, MaxAddonQuantity)
			}
			total = total.Add(price.MulInt(int64(addon.Quantity)))
			continue
		}

		// Flat-услуга учитывается один раз независимо от номинального количества
		if addon.Quantity < 0 {
			return 0, fmt.Errorf("%w: quantity for %q must be non-negative", ErrValidation, addon.Kind)
		}
		total = total.Add(price)
	}

	return total, nil
}

// estimateDuration накапливает минуты по комнатам и услугам, затем один раз
// применяет множитель тарифа ко всей сумме (округление half-up)
func estimateDuration(req *EstimateRequest, cfg *PricingConfig) (int, error) {
	minutes := cfg.Durations.BaseMinutes

	for _, room := range req.Rooms {
		perRoom, ok := cfg.Durations.RoomMinutes[room.Kind]
		if !ok {
			// Документированный fallback для типов комнат без норматива
			perRoom = cfg.Durations.PerOtherRoomMinutes
		}
		minutes += perRoom * room.Count
	}

	for _, addon := range req.Addons {
		perUnit, ok := cfg.Durations.AddonMinutes[addon.Kind]
		if !ok {
			// Услуга без норматива времени не добавляет минут (документированный fallback)
			continue
		}

		quantity := 1
		if addon.Kind.IsUnitBased() {
			quantity = addon.Quantity
		}
		minutes += perUnit * quantity
	}

	multiplier, ok := cfg.Durations.ServiceMultipliers[req.ServiceType]
	if !ok {
		return 0, fmt.Errorf("%w: no duration multiplier for service type %q", ErrConfiguration, req.ServiceType)
	}

	return int(math.Floor(float64(minutes)*multiplier + 0.5)), nil
}

// cleanerCount возвращает ceil(minutes / MinutesPerCleaner), минимум 1
func cleanerCount(minutes int) int {
	count := (minutes + MinutesPerCleaner - 1) / MinutesPerCleaner
	if count < 1 {
		return 1
	}
	return count
}
