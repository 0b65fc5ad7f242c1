package entity

// Listing status lifecycle: DRAFT -> PENDING -> APPROVED.
// Owner edits always reset back to PENDING.
const (
	StatusDraft    = "DRAFT"
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
)

const (
	RoleClient = "CLIENT"
	RoleAdmin  = "ADMIN"
)

const (
	PropertyTypeApartment  = "APARTMENT"
	PropertyTypeHouse      = "HOUSE"
	PropertyTypeVilla      = "VILLA"
	PropertyTypeStudio     = "STUDIO"
	PropertyTypeGuestHouse = "GUEST_HOUSE"
	PropertyTypeHotel      = "HOTEL"
	PropertyTypeCabin      = "CABIN"
)

const (
	RentalTypeShortTerm = "SHORT_TERM"
	RentalTypeLongTerm  = "LONG_TERM"
)

const (
	PriceRangeBudget   = "BUDGET"
	PriceRangeModerate = "MODERATE"
	PriceRangePremium  = "PREMIUM"
)

// Entity kinds shared by contact clicks and location-of-month.
const (
	EntityProperty   = "PROPERTY"
	EntityService    = "SERVICE"
	EntityRestaurant = "RESTAURANT"
	EntityAttraction = "ATTRACTION"
)

const (
	ContactPhone = "PHONE"
	ContactEmail = "EMAIL"
)

var ServiceCategories = []string{
	"SKI_SCHOOL", "SKI_RENTAL", "SNOWBOARD_LESSONS", "HIKING_GUIDE",
	"BIKE_RENTAL", "HORSE_RIDING", "SPA_WELLNESS", "MASSAGE",
	"TAXI_TRANSFER", "CAR_RENTAL", "PHOTOGRAPHY", "EVENT_PLANNING",
	"CLEANING", "PLUMBING", "ELECTRICAL", "CARPENTRY",
	"CHILDCARE", "TOUR_GUIDE", "QUAD_SAFARI", "PARAGLIDING",
}

func ValidStatus(s string) bool {
	return s == StatusDraft || s == StatusPending || s == StatusApproved
}

func ValidPropertyType(s string) bool {
	switch s {
	case PropertyTypeApartment, PropertyTypeHouse, PropertyTypeVilla, PropertyTypeStudio,
		PropertyTypeGuestHouse, PropertyTypeHotel, PropertyTypeCabin:
		return true
	}
	return false
}

func ValidRentalType(s string) bool {
	return s == RentalTypeShortTerm || s == RentalTypeLongTerm
}

func ValidPriceRange(s string) bool {
	return s == PriceRangeBudget || s == PriceRangeModerate || s == PriceRangePremium
}

func ValidEntityType(s string) bool {
	return s == EntityProperty || s == EntityService || s == EntityRestaurant || s == EntityAttraction
}

func ValidContactType(s string) bool {
	return s == ContactPhone || s == ContactEmail
}

func ValidServiceCategory(s string) bool {
	for _, c := range ServiceCategories {
		if c == s {
			return true
		}
	}
	return false
}
