package services

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/carewise/carehome-directory/internal/domain/entities"
	"github.com/carewise/carehome-directory/internal/domain/repositories"
)

// availabilityRank orders bed availability statuses for the availability
// sort; unknown values sink to the bottom.
func availabilityRank(status string) int {
	switch status {
	case entities.BedAvailableNow:
		return 0
	case entities.BedLimitedAvailability:
		return 1
	case entities.BedWaitlistOnly:
		return 2
	default:
		return 3
	}
}

// Sort orders homes in place by the given sort key. Ordering is stable:
// equal keys keep their original relative order. An empty or unrecognized
// key falls back to the recommended composite ordering (featured first,
// then rating descending). Numeric keys compare as parsed decimals, never
// as raw strings.
func Sort(homes []*entities.CareHome, sortBy string) {
	switch sortBy {
	case repositories.SortPriceLow:
		sort.SliceStable(homes, func(i, j int) bool {
			return price(homes[i]).LessThan(price(homes[j]))
		})
	case repositories.SortPriceHigh:
		sort.SliceStable(homes, func(i, j int) bool {
			return price(homes[i]).GreaterThan(price(homes[j]))
		})
	case repositories.SortDistance:
		sort.SliceStable(homes, func(i, j int) bool {
			return distance(homes[i]).LessThan(distance(homes[j]))
		})
	case repositories.SortRating:
		sort.SliceStable(homes, func(i, j int) bool {
			return rating(homes[i]).GreaterThan(rating(homes[j]))
		})
	case repositories.SortAvailability:
		sort.SliceStable(homes, func(i, j int) bool {
			return availabilityRank(homes[i].BedAvailability) < availabilityRank(homes[j].BedAvailability)
		})
	default: // recommended
		sort.SliceStable(homes, func(i, j int) bool {
			if homes[i].Featured != homes[j].Featured {
				return homes[i].Featured
			}
			return rating(homes[i]).GreaterThan(rating(homes[j]))
		})
	}
}

func price(careHome *entities.CareHome) decimal.Decimal {
	return parseDecimal(careHome.StartingPrice)
}

func rating(careHome *entities.CareHome) decimal.Decimal {
	return parseDecimal(careHome.Rating)
}

// distance treats a missing value as zero.
func distance(careHome *entities.CareHome) decimal.Decimal {
	return parseDecimal(careHome.Distance)
}
