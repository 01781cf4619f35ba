package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carewise/carehome-directory/internal/domain/entities"
)

// CareHomeRepository defines the interface for care home data operations
type CareHomeRepository interface {
	// Create inserts a care home, assigning the next monotonic id when
	// none is set
	Create(ctx context.Context, careHome *entities.CareHome) error

	// GetByID retrieves a care home by id
	GetByID(ctx context.Context, id int) (*entities.CareHome, error)

	// List returns every care home in insertion order
	List(ctx context.Context) ([]*entities.CareHome, error)
}

// Sort keys accepted by the search operation.
const (
	SortRecommended  = "recommended"
	SortPriceLow     = "price_low"
	SortPriceHigh    = "price_high"
	SortDistance     = "distance"
	SortRating       = "rating"
	SortAvailability = "availability"
)

// Pagination defaults and bounds.
const (
	DefaultPage  = 1
	DefaultLimit = 12
	MaxLimit     = 50
)

// SearchFilters defines the criteria for a care home search. Zero values
// (empty strings, empty slices, nil bounds) impose no constraint.
type SearchFilters struct {
	Location        string
	Keyword         string
	CareTypes       []string
	BedAvailability []string
	Amenities       []string
	RoomTypes       []string
	MinPrice        *decimal.Decimal
	MaxPrice        *decimal.Decimal
	MinRating       *decimal.Decimal
	SortBy          string
	Page            int
	Limit           int
}

// SearchResult holds one page of matches plus the filtered, pre-pagination
// total.
type SearchResult struct {
	CareHomes  []*entities.CareHome
	Total      int
	SearchTime float64 // milliseconds
}
