package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/CMP-EstimateService/pkg/types"
)

// TopBookerCategory represents the booking-history range eligible for the discount
type TopBookerCategory string

const (
	CategoryAll            TopBookerCategory = "all"
	CategoryBookings5to9   TopBookerCategory = "5-9"
	CategoryBookings10to15 TopBookerCategory = "10-15"
	CategoryBookings16to20 TopBookerCategory = "16-20"
	CategoryBookings21Plus TopBookerCategory = "21+"
)

// Valid returns true if the category is one of the known ranges
func (c TopBookerCategory) Valid() bool {
	switch c {
	case CategoryAll, CategoryBookings5to9, CategoryBookings10to15,
		CategoryBookings16to20, CategoryBookings21Plus:
		return true
	default:
		return false
	}
}

// Matches returns true if a customer with the given completed-booking count
// falls into the category. Boundaries are inclusive
func (c TopBookerCategory) Matches(completedBookings int) bool {
	switch c {
	case CategoryAll:
		return true
	case CategoryBookings5to9:
		return completedBookings >= 5 && completedBookings <= 9
	case CategoryBookings10to15:
		return completedBookings >= 10 && completedBookings <= 15
	case CategoryBookings16to20:
		return completedBookings >= 16 && completedBookings <= 20
	case CategoryBookings21Plus:
		return completedBookings >= 21
	default:
		return false
	}
}

// DurationCoefficients нормативы времени уборки
type DurationCoefficients struct {
	BaseMinutes         int                     // фиксированный минимум на любой заказ
	RoomMinutes         map[RoomKind]int        // минуты на одну комнату каждого типа
	PerOtherRoomMinutes int                     // fallback для типов комнат без норматива
	AddonMinutes        map[AddonKind]int       // минуты на дополнительную услугу (за единицу)
	ServiceMultipliers  map[ServiceType]float64 // множитель итоговой длительности по тарифу
}

// DiscountPolicy политика скидок и депозита
type DiscountPolicy struct {
	TopBookerDiscountPercent float64           // [0, 100]
	TopBookerCategory        TopBookerCategory // диапазон истории заказов для скидки
	DepositPercent           float64           // [0, 100], доля суммы при бронировании
	CancellationFeeFlat      types.Money       // фиксированный штраф за отмену
}

// PricingConfig represents a single version of the admin-editable rate card
// Read-only from the estimator's perspective; new versions are appended by
// the admin settings flow
type PricingConfig struct {
	ID      int64
	Version int

	ServicePrices map[ServiceType]types.Money
	RoomPrices    map[RoomKind]types.Money
	AddonPrices   map[AddonKind]types.Money
	Durations     DurationCoefficients
	Discount      DiscountPolicy

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate проверяет целостность rate card перед сохранением или preview
// Полнота каталогов цен обязательна (estimator работает в режиме fail closed),
// каталоги длительностей могут быть частичными - для них определён fallback
func (c *PricingConfig) Validate() error {
	for _, st := range AllServiceTypes() {
		price, ok := c.ServicePrices[st]
		if !ok {
			return fmt.Errorf("service price for %q is missing", st)
		}
		if price.IsNegative() {
			return fmt.Errorf("service price for %q is negative", st)
		}

		mult, ok := c.Durations.ServiceMultipliers[st]
		if !ok {
			return fmt.Errorf("duration multiplier for %q is missing", st)
		}
		if mult <= 0 {
			return fmt.Errorf("duration multiplier for %q must be positive", st)
		}
	}
	for st := range c.ServicePrices {
		if !st.Valid() {
			return fmt.Errorf("unknown service type %q in servicePrices", st)
		}
	}
	for st := range c.Durations.ServiceMultipliers {
		if !st.Valid() {
			return fmt.Errorf("unknown service type %q in serviceMultipliers", st)
		}
	}

	for _, rk := range AllRoomKinds() {
		price, ok := c.RoomPrices[rk]
		if !ok {
			return fmt.Errorf("room price for %q is missing", rk)
		}
		if price.IsNegative() {
			return fmt.Errorf("room price for %q is negative", rk)
		}
	}
	for rk := range c.RoomPrices {
		if !rk.Valid() {
			return fmt.Errorf("unknown room kind %q in roomPrices", rk)
		}
	}
	for rk, minutes := range c.Durations.RoomMinutes {
		if !rk.Valid() {
			return fmt.Errorf("unknown room kind %q in roomMinutes", rk)
		}
		if minutes < 0 {
			return fmt.Errorf("room minutes for %q is negative", rk)
		}
	}

	for _, ak := range AllAddonKinds() {
		price, ok := c.AddonPrices[ak]
		if !ok {
			return fmt.Errorf("addon price for %q is missing", ak)
		}
		if price.IsNegative() {
			return fmt.Errorf("addon price for %q is negative", ak)
		}
	}
	for ak := range c.AddonPrices {
		if !ak.Valid() {
			return fmt.Errorf("unknown addon kind %q in addonPrices", ak)
		}
	}
	for ak, minutes := range c.Durations.AddonMinutes {
		if !ak.ValidForDuration() {
			return fmt.Errorf("unknown addon kind %q in addonMinutes", ak)
		}
		if minutes < 0 {
			return fmt.Errorf("addon minutes for %q is negative", ak)
		}
	}

	if c.Durations.BaseMinutes < 0 {
		return fmt.Errorf("baseMinutes must be non-negative")
	}
	if c.Durations.PerOtherRoomMinutes < 0 {
		return fmt.Errorf("perOtherRoomMinutes must be non-negative")
	}

	if c.Discount.TopBookerDiscountPercent < 0 || c.Discount.TopBookerDiscountPercent > 100 {
		return fmt.Errorf("topBookerDiscountPercent must be in [0, 100]")
	}
	if c.Discount.DepositPercent < 0 || c.Discount.DepositPercent > 100 {
		return fmt.Errorf("depositPercent must be in [0, 100]")
	}
	if !c.Discount.TopBookerCategory.Valid() {
		return fmt.Errorf("unknown top booker category %q", c.Discount.TopBookerCategory)
	}
	if c.Discount.CancellationFeeFlat.IsNegative() {
		return fmt.Errorf("cancellationFeeFlat must be non-negative")
	}

	return nil
}

// Clone возвращает глубокую копию конфигурации
// Нужна при формировании новой версии, чтобы не мутировать прочитанный snapshot
func (c *PricingConfig) Clone() *PricingConfig {
	clone := *c

	clone.ServicePrices = make(map[ServiceType]types.Money, len(c.ServicePrices))
	for k, v := range c.ServicePrices {
		clone.ServicePrices[k] = v
	}

	clone.RoomPrices = make(map[RoomKind]types.Money, len(c.RoomPrices))
	for k, v := range c.RoomPrices {
		clone.RoomPrices[k] = v
	}

	clone.AddonPrices = make(map[AddonKind]types.Money, len(c.AddonPrices))
	for k, v := range c.AddonPrices {
		clone.AddonPrices[k] = v
	}

	clone.Durations.RoomMinutes = make(map[RoomKind]int, len(c.Durations.RoomMinutes))
	for k, v := range c.Durations.RoomMinutes {
		clone.Durations.RoomMinutes[k] = v
	}

	clone.Durations.AddonMinutes = make(map[AddonKind]int, len(c.Durations.AddonMinutes))
	for k, v := range c.Durations.AddonMinutes {
		clone.Durations.AddonMinutes[k] = v
	}

	clone.Durations.ServiceMultipliers = make(map[ServiceType]float64, len(c.Durations.ServiceMultipliers))
	for k, v := range c.Durations.ServiceMultipliers {
		clone.Durations.ServiceMultipliers[k] = v
	}

	return &clone
}
