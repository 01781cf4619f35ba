package entities

// Care levels a facility can offer.
const (
	CareTypeIndependentLiving = "Independent Living"
	CareTypeAssistedLiving    = "Assisted Living"
	CareTypeMemoryCare        = "Memory Care"
	CareTypeSkilledNursing    = "Skilled Nursing"
)

// Bed availability statuses. Exactly one applies to a facility.
const (
	BedAvailableNow        = "Available Now"
	BedLimitedAvailability = "Limited Availability"
	BedWaitlistOnly        = "Waitlist Only"
)

// CareHome represents one senior-care facility in the directory.
// Records are immutable after creation; ids are assigned monotonically.
//
// StartingPrice, Rating and Distance are decimal values kept as strings to
// avoid binary floating-point error; the query engine parses them at the
// filter/sort boundary.
type CareHome struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	ZipCode     string `json:"zipCode"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Website     string `json:"website,omitempty"`

	StartingPrice    string `json:"startingPrice"`
	PriceDescription string `json:"priceDescription"`

	Latitude  string `json:"latitude,omitempty"`
	Longitude string `json:"longitude,omitempty"`
	Distance  string `json:"distance,omitempty"` // miles, precomputed for search results

	Rating      string `json:"rating"`
	ReviewCount int    `json:"reviewCount"`

	CareTypes []string `json:"careTypes"`
	Amenities []string `json:"amenities"`
	RoomTypes []string `json:"roomTypes"`

	BedAvailability string `json:"bedAvailability"`

	// Images is ordered; the first entry is the primary image.
	Images []string `json:"images"`

	Featured             bool `json:"featured"`
	PetFriendly          bool `json:"petFriendly"`
	WheelchairAccessible bool `json:"wheelchairAccessible"`
	MedicalStaff24_7     bool `json:"medicalStaff24_7"`
}
