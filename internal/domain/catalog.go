package domain

// ServiceType represents the cleaning product tier
type ServiceType string

const (
	ServiceStandard         ServiceType = "standard"
	ServiceDeep             ServiceType = "deep"
	ServiceMoveInOut        ServiceType = "move_in_out"
	ServicePostConstruction ServiceType = "post_construction"
)

// AllServiceTypes возвращает полный каталог тарифов
func AllServiceTypes() []ServiceType {
	return []ServiceType{
		ServiceStandard,
		ServiceDeep,
		ServiceMoveInOut,
		ServicePostConstruction,
	}
}

// Valid returns true if the service type is part of the catalog
func (s ServiceType) Valid() bool {
	switch s {
	case ServiceStandard, ServiceDeep, ServiceMoveInOut, ServicePostConstruction:
		return true
	default:
		return false
	}
}

// RoomKind represents a category of room that can be added to a booking
type RoomKind string

const (
	RoomBedroom      RoomKind = "bedroom"
	RoomBathroom     RoomKind = "bathroom"
	RoomToilet       RoomKind = "toilet"
	RoomKitchen      RoomKind = "kitchen"
	RoomLivingRoom   RoomKind = "living_room"
	RoomDiningRoom   RoomKind = "dining_room"
	RoomLaundryRoom  RoomKind = "laundry_room"
	RoomBalconyPatio RoomKind = "balcony_patio"
	RoomBasement     RoomKind = "basement"
	RoomGarage       RoomKind = "garage"
	RoomHomeOffice   RoomKind = "home_office"
)

// AllRoomKinds возвращает полный каталог комнат
func AllRoomKinds() []RoomKind {
	return []RoomKind{
		RoomBedroom,
		RoomBathroom,
		RoomToilet,
		RoomKitchen,
		RoomLivingRoom,
		RoomDiningRoom,
		RoomLaundryRoom,
		RoomBalconyPatio,
		RoomBasement,
		RoomGarage,
		RoomHomeOffice,
	}
}

// Valid returns true if the room kind is part of the catalog
func (r RoomKind) Valid() bool {
	switch r {
	case RoomBedroom, RoomBathroom, RoomToilet, RoomKitchen, RoomLivingRoom,
		RoomDiningRoom, RoomLaundryRoom, RoomBalconyPatio, RoomBasement,
		RoomGarage, RoomHomeOffice:
		return true
	default:
		return false
	}
}

// AddonKind represents an optional extra task added to a booking
type AddonKind string

const (
	AddonInsideWindows  AddonKind = "inside_windows"
	AddonInsideFridge   AddonKind = "inside_fridge"
	AddonInsideOven     AddonKind = "inside_oven"
	AddonLaundryService AddonKind = "laundry_service"
	AddonPetHairRemoval AddonKind = "pet_hair_removal"
	AddonOrganization   AddonKind = "organization"
	AddonDishWashing    AddonKind = "dish_washing"

	// AddonMicrowave присутствует только в каталоге длительностей:
	// услуга пока не продаётся отдельно, но норматив времени уже есть
	AddonMicrowave AddonKind = "microwave"
)

// AllAddonKinds возвращает каталог продаваемых дополнительных услуг
func AllAddonKinds() []AddonKind {
	return []AddonKind{
		AddonInsideWindows,
		AddonInsideFridge,
		AddonInsideOven,
		AddonLaundryService,
		AddonPetHairRemoval,
		AddonOrganization,
		AddonDishWashing,
	}
}

// Valid returns true if the addon kind can be selected in a booking
func (a AddonKind) Valid() bool {
	switch a {
	case AddonInsideWindows, AddonInsideFridge, AddonInsideOven,
		AddonLaundryService, AddonPetHairRemoval, AddonOrganization,
		AddonDishWashing:
		return true
	default:
		return false
	}
}

// ValidForDuration returns true if the addon kind may appear in the duration catalog
func (a AddonKind) ValidForDuration() bool {
	return a.Valid() || a == AddonMicrowave
}

// IsUnitBased returns true if the addon price and duration scale with quantity
// (per window, per laundry basket, per organization hour)
func (a AddonKind) IsUnitBased() bool {
	switch a {
	case AddonInsideWindows, AddonLaundryService, AddonOrganization:
		return true
	default:
		return false
	}
}
