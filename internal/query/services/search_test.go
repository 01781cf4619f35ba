package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carewise/carehome-directory/internal/adapters/memstore"
	"github.com/carewise/carehome-directory/internal/domain/entities"
	"github.com/carewise/carehome-directory/internal/domain/repositories"
	services "github.com/carewise/carehome-directory/internal/query/services"
)

func newQueryService(t *testing.T) *services.CareHomeQueryService {
	t.Helper()
	store, err := memstore.NewSeededCareHomeStore()
	require.NoError(t, err)
	return services.NewCareHomeQueryService(store)
}

func dec(t *testing.T, value string) *decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(value)
	require.NoError(t, err)
	return &d
}

func ids(homes []*entities.CareHome) []int {
	out := make([]int, len(homes))
	for i, careHome := range homes {
		out[i] = careHome.ID
	}
	return out
}

func prices(homes []*entities.CareHome) []string {
	out := make([]string, len(homes))
	for i, careHome := range homes {
		out[i] = careHome.StartingPrice
	}
	return out
}

func search(t *testing.T, filters repositories.SearchFilters) *repositories.SearchResult {
	t.Helper()
	if filters.Page == 0 {
		filters.Page = repositories.DefaultPage
	}
	if filters.Limit == 0 {
		filters.Limit = repositories.DefaultLimit
	}
	result, err := newQueryService(t).Search(context.Background(), filters)
	require.NoError(t, err)
	return result
}

func TestSearch_PriceLowOrdersAscending(t *testing.T) {
	result := search(t, repositories.SearchFilters{SortBy: repositories.SortPriceLow})

	assert.Equal(t, 6, result.Total)
	assert.Equal(t, []string{"2800", "3200", "3800", "4200", "5600", "6500"}, prices(result.CareHomes))
}

func TestSearch_PriceHighOrdersDescending(t *testing.T) {
	result := search(t, repositories.SearchFilters{SortBy: repositories.SortPriceHigh})

	assert.Equal(t, []string{"6500", "5600", "4200", "3800", "3200", "2800"}, prices(result.CareHomes))
}

func TestSearch_BedAvailabilityMembership(t *testing.T) {
	result := search(t, repositories.SearchFilters{
		BedAvailability: []string{entities.BedWaitlistOnly},
	})

	require.Equal(t, 1, result.Total)
	assert.Equal(t, "Harbor View Senior Living", result.CareHomes[0].Name)
}

func TestSearch_AmenitiesRequireEveryRequested(t *testing.T) {
	result := search(t, repositories.SearchFilters{
		Amenities: []string{"Pet Friendly", "Dining Room"},
	})

	assert.Equal(t, []int{1, 5}, ids(result.CareHomes))
	for _, careHome := range result.CareHomes {
		assert.Contains(t, careHome.Amenities, "Pet Friendly")
		assert.Contains(t, careHome.Amenities, "Dining Room")
	}
}

func TestSearch_KeywordMatchesAcrossFields(t *testing.T) {
	// "memory" hits the specialist by name and every facility offering
	// Memory Care as a care type.
	result := search(t, repositories.SearchFilters{Keyword: "memory"})

	assert.Equal(t, []int{1, 3}, ids(result.CareHomes))
}

func TestSearch_KeywordIsCaseInsensitive(t *testing.T) {
	lower := search(t, repositories.SearchFilters{Keyword: "sunrise"})
	upper := search(t, repositories.SearchFilters{Keyword: "SUNRISE"})

	require.Equal(t, 1, lower.Total)
	assert.Equal(t, ids(lower.CareHomes), ids(upper.CareHomes))
}

func TestSearch_LocationMatchesCityStateZip(t *testing.T) {
	tests := []struct {
		name     string
		location string
		wantIDs  []int
	}{
		{"city substring", "san francisco", []int{1, 2, 3, 4, 5, 6}},
		{"state case-insensitive", "ca", []int{1, 2, 3, 4, 5, 6}},
		{"zip code", "94123", []int{4}},
		{"no match", "sacramento", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := search(t, repositories.SearchFilters{Location: tt.location})
			assert.Equal(t, tt.wantIDs, ids(result.CareHomes))
		})
	}
}

func TestSearch_ConjunctionAcrossCriteriaGroups(t *testing.T) {
	filters := repositories.SearchFilters{
		CareTypes: []string{entities.CareTypeAssistedLiving},
		MaxPrice:  dec(t, "4000"),
	}
	result := search(t, filters)

	assert.Equal(t, []int{2, 5}, ids(result.CareHomes))
	for _, careHome := range result.CareHomes {
		assert.Contains(t, careHome.CareTypes, entities.CareTypeAssistedLiving)
		price, err := decimal.NewFromString(careHome.StartingPrice)
		require.NoError(t, err)
		assert.True(t, price.LessThanOrEqual(decimal.NewFromInt(4000)))
	}
}

func TestSearch_PriceBoundsAreInclusive(t *testing.T) {
	atMin := search(t, repositories.SearchFilters{MinPrice: dec(t, "6500")})
	assert.Equal(t, []int{4}, ids(atMin.CareHomes))

	atMax := search(t, repositories.SearchFilters{MaxPrice: dec(t, "2800")})
	assert.Equal(t, []int{6}, ids(atMax.CareHomes))
}

func TestSearch_MinRatingInclusive(t *testing.T) {
	result := search(t, repositories.SearchFilters{MinRating: dec(t, "4.9")})

	assert.Equal(t, []int{2, 4}, ids(result.CareHomes))
}

func TestSearch_RoomTypesAnyMatch(t *testing.T) {
	result := search(t, repositories.SearchFilters{
		RoomTypes: []string{"Two Bedroom", "Semi-Private"},
	})

	// Any overlap qualifies: the memory care homes offer Semi-Private,
	// Bayshore offers Two Bedroom.
	assert.Equal(t, []int{3, 5, 6}, ids(result.CareHomes))
}

func TestFilter_AmenityAllVersusCareTypeAnyAsymmetry(t *testing.T) {
	careHome := &entities.CareHome{
		ID:              7,
		Name:            "Asymmetry House",
		StartingPrice:   "1000",
		Rating:          "4.0",
		CareTypes:       []string{entities.CareTypeAssistedLiving, entities.CareTypeMemoryCare},
		Amenities:       []string{"Dining Room", "Garden Views"},
		RoomTypes:       []string{"Private Room"},
		BedAvailability: entities.BedAvailableNow,
	}
	homes := []*entities.CareHome{careHome}

	// Amenities: one requested amenity missing excludes the record.
	excluded := services.Filter(homes, repositories.SearchFilters{
		Amenities: []string{"Dining Room", "Swimming Pool"},
	})
	assert.Empty(t, excluded)

	// Care types: a single overlap is enough even when another requested
	// type is missing.
	included := services.Filter(homes, repositories.SearchFilters{
		CareTypes: []string{entities.CareTypeAssistedLiving, entities.CareTypeSkilledNursing},
	})
	assert.Equal(t, []int{7}, ids(included))
}

func TestFilter_EmptyCriteriaImposeNoConstraint(t *testing.T) {
	homes := memstore.DefaultCareHomes()

	result := services.Filter(homes, repositories.SearchFilters{
		CareTypes: []string{},
		Amenities: []string{},
		RoomTypes: []string{},
	})

	assert.Len(t, result, len(homes))
	assert.Equal(t, ids(homes), ids(result))
}

func TestFilter_PreservesInputOrder(t *testing.T) {
	homes := memstore.DefaultCareHomes()

	result := services.Filter(homes, repositories.SearchFilters{
		BedAvailability: []string{entities.BedAvailableNow},
	})

	assert.Equal(t, []int{1, 3, 5, 6}, ids(result))
}

func TestSort_RecommendedPutsFeaturedFirstThenRatingDesc(t *testing.T) {
	homes := memstore.DefaultCareHomes()

	services.Sort(homes, repositories.SortRecommended)

	// Featured: 2 and 4 share rating 4.9 (original order kept), then 1.
	// Non-featured by rating: 3, 5, 6.
	assert.Equal(t, []int{2, 4, 1, 3, 5, 6}, ids(homes))
}

func TestSort_UnrecognizedKeyFallsBackToRecommended(t *testing.T) {
	recommended := memstore.DefaultCareHomes()
	services.Sort(recommended, repositories.SortRecommended)

	unknown := memstore.DefaultCareHomes()
	services.Sort(unknown, "popularity")

	assert.Equal(t, ids(recommended), ids(unknown))
}

func TestSort_AvailabilityRanksStatuses(t *testing.T) {
	homes := memstore.DefaultCareHomes()

	services.Sort(homes, repositories.SortAvailability)

	// Available Now (1,3,5,6 in original order), Limited (2), Waitlist (4).
	assert.Equal(t, []int{1, 3, 5, 6, 2, 4}, ids(homes))
}

func TestSort_DistanceAscendingMissingTreatedAsZero(t *testing.T) {
	noDistance := &entities.CareHome{ID: 9, StartingPrice: "1000", Rating: "4.0"}
	homes := append(memstore.DefaultCareHomes(), noDistance)

	services.Sort(homes, repositories.SortDistance)

	// Missing distance sorts as zero, ahead of every measured facility.
	assert.Equal(t, []int{9, 3, 1, 2, 4, 5, 6}, ids(homes))
}

func TestSort_NumericNotLexical(t *testing.T) {
	homes := []*entities.CareHome{
		{ID: 1, StartingPrice: "10", Rating: "4.0"},
		{ID: 2, StartingPrice: "9", Rating: "4.0"},
	}

	services.Sort(homes, repositories.SortPriceLow)

	// Lexically "10" < "9"; numerically 9 < 10.
	assert.Equal(t, []int{2, 1}, ids(homes))
}

func TestSort_IsStableAndIdempotent(t *testing.T) {
	homes := memstore.DefaultCareHomes()

	services.Sort(homes, repositories.SortRating)
	once := ids(homes)

	// Ids 2 and 4 share rating 4.9; stability keeps 2 first.
	assert.Equal(t, []int{2, 4, 1, 3, 5, 6}, once)

	services.Sort(homes, repositories.SortRating)
	assert.Equal(t, once, ids(homes))
}

func TestPaginate_SplitsAndReportsTotal(t *testing.T) {
	result := search(t, repositories.SearchFilters{Page: 1, Limit: 2})

	assert.Len(t, result.CareHomes, 2)
	assert.Equal(t, 6, result.Total)
}

func TestPaginate_TotalInvariantAcrossPages(t *testing.T) {
	filters := repositories.SearchFilters{
		CareTypes: []string{entities.CareTypeAssistedLiving},
		Limit:     1,
	}

	filters.Page = 1
	first := search(t, filters)
	filters.Page = 2
	second := search(t, filters)

	assert.Equal(t, first.Total, second.Total)
	assert.Equal(t, 4, first.Total)
}

func TestPaginate_ConcatenatedPagesReproduceFullSet(t *testing.T) {
	full := search(t, repositories.SearchFilters{SortBy: repositories.SortPriceLow, Limit: 50})
	require.Equal(t, 6, full.Total)

	var collected []int
	for page := 1; page <= 3; page++ {
		result := search(t, repositories.SearchFilters{
			SortBy: repositories.SortPriceLow,
			Page:   page,
			Limit:  2,
		})
		collected = append(collected, ids(result.CareHomes)...)
	}

	assert.Equal(t, ids(full.CareHomes), collected)
}

func TestPaginate_PageBeyondRangeReturnsEmptyWithTotal(t *testing.T) {
	result := search(t, repositories.SearchFilters{Page: 5, Limit: 12})

	assert.Empty(t, result.CareHomes)
	assert.Equal(t, 6, result.Total)
}

func TestPaginate_LastPartialPage(t *testing.T) {
	result := search(t, repositories.SearchFilters{Page: 2, Limit: 4})

	assert.Len(t, result.CareHomes, 2)
	assert.Equal(t, 6, result.Total)
}

func TestSearch_GetByID(t *testing.T) {
	service := newQueryService(t)

	careHome, err := service.GetByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Serenity Memory Care", careHome.Name)

	_, err = service.GetByID(context.Background(), 9999)
	assert.Error(t, err)
}
