package domain

import "github.com/m04kA/CMP-EstimateService/pkg/types"

// MinutesPerCleaner норматив: один клинер на каждые 4 часа расчётной длительности
const MinutesPerCleaner = 240

// Business validation constants
const (
	MaxRoomCount     = 50
	MaxAddonQuantity = 100
)

// Seed-значения rate card. Используются при первом запуске (версия 0)
// и как fallback, пока администратор не сохранил собственную конфигурацию
const (
	DefaultDiscountPercent     = 15.0
	DefaultDepositPercent      = 20.0
	DefaultCancellationFeeFlat = types.Money(2500) // 25.00
	DefaultBaseMinutes         = 60
	DefaultPerOtherRoomMinutes = 20
)

// DefaultTopBookerCategory диапазон истории заказов для скидки по умолчанию
const DefaultTopBookerCategory = CategoryBookings10to15

// DefaultPricingConfig возвращает seed-версию rate card (Version = 0, ID = 0)
func DefaultPricingConfig() *PricingConfig {
	return &PricingConfig{
		ServicePrices: map[ServiceType]types.Money{
			ServiceStandard:         8900,  // 89.00
			ServiceDeep:             15900, // 159.00
			ServiceMoveInOut:        19900, // 199.00
			ServicePostConstruction: 24900, // 249.00
		},
		RoomPrices: map[RoomKind]types.Money{
			RoomBedroom:      1500,
			RoomBathroom:     1500,
			RoomToilet:       1000,
			RoomKitchen:      2000,
			RoomLivingRoom:   1500,
			RoomDiningRoom:   1000,
			RoomLaundryRoom:  1000,
			RoomBalconyPatio: 1000,
			RoomBasement:     2000,
			RoomGarage:       2000,
			RoomHomeOffice:   1000,
		},
		AddonPrices: map[AddonKind]types.Money{
			AddonInsideWindows:  1000, // за окно
			AddonInsideFridge:   3500,
			AddonInsideOven:     3500,
			AddonLaundryService: 2000, // за корзину
			AddonPetHairRemoval: 3000,
			AddonOrganization:   5000, // за час
			AddonDishWashing:    2500,
		},
		Durations: DurationCoefficients{
			BaseMinutes: DefaultBaseMinutes,
			RoomMinutes: map[RoomKind]int{
				RoomBedroom:      30,
				RoomBathroom:     45,
				RoomToilet:       15,
				RoomKitchen:      45,
				RoomLivingRoom:   30,
				RoomDiningRoom:   20,
				RoomLaundryRoom:  20,
				RoomBalconyPatio: 20,
				RoomBasement:     30,
				RoomGarage:       30,
				RoomHomeOffice:   20,
			},
			PerOtherRoomMinutes: DefaultPerOtherRoomMinutes,
			AddonMinutes: map[AddonKind]int{
				AddonInsideFridge:   20,
				AddonInsideOven:     30,
				AddonMicrowave:      10,
				AddonDishWashing:    20,
				AddonLaundryService: 30, // за корзину
				AddonInsideWindows:  10, // за окно
				AddonPetHairRemoval: 30,
				AddonOrganization:   60, // за час
			},
			ServiceMultipliers: map[ServiceType]float64{
				ServiceStandard:         1.0,
				ServiceDeep:             1.5,
				ServiceMoveInOut:        2.0,
				ServicePostConstruction: 2.5,
			},
		},
		Discount: DiscountPolicy{
			TopBookerDiscountPercent: DefaultDiscountPercent,
			TopBookerCategory:        DefaultTopBookerCategory,
			DepositPercent:           DefaultDepositPercent,
			CancellationFeeFlat:      DefaultCancellationFeeFlat,
		},
	}
}
