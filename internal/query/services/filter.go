package services

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/carewise/carehome-directory/internal/domain/entities"
	"github.com/carewise/carehome-directory/internal/domain/repositories"
)

// Filter evaluates every care home against the active criteria in filters,
// preserving the relative order of the input. Criteria combine
// conjunctively; an absent or empty criterion imposes no constraint.
func Filter(homes []*entities.CareHome, filters repositories.SearchFilters) []*entities.CareHome {
	matched := make([]*entities.CareHome, 0, len(homes))
	for _, careHome := range homes {
		if matches(careHome, filters) {
			matched = append(matched, careHome)
		}
	}
	return matched
}

func matches(careHome *entities.CareHome, f repositories.SearchFilters) bool {
	if f.Keyword != "" && !matchesKeyword(careHome, f.Keyword) {
		return false
	}
	if f.Location != "" && !matchesLocation(careHome, f.Location) {
		return false
	}
	if len(f.CareTypes) > 0 && !intersects(careHome.CareTypes, f.CareTypes) {
		return false
	}
	if len(f.BedAvailability) > 0 && !containsString(f.BedAvailability, careHome.BedAvailability) {
		return false
	}
	// Amenities are ALL-match: every requested amenity must be present.
	// careTypes and roomTypes stay ANY-match; the asymmetry is load-bearing.
	if len(f.Amenities) > 0 && !supersetOf(careHome.Amenities, f.Amenities) {
		return false
	}
	if len(f.RoomTypes) > 0 && !intersects(careHome.RoomTypes, f.RoomTypes) {
		return false
	}
	if f.MinPrice != nil && parseDecimal(careHome.StartingPrice).LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && parseDecimal(careHome.StartingPrice).GreaterThan(*f.MaxPrice) {
		return false
	}
	if f.MinRating != nil && parseDecimal(careHome.Rating).LessThan(*f.MinRating) {
		return false
	}
	return true
}

// matchesKeyword reports whether the keyword appears, case-insensitively, in
// the name, description, any amenity, or any care type.
func matchesKeyword(careHome *entities.CareHome, keyword string) bool {
	kw := strings.ToLower(keyword)
	if strings.Contains(strings.ToLower(careHome.Name), kw) {
		return true
	}
	if strings.Contains(strings.ToLower(careHome.Description), kw) {
		return true
	}
	if anyContains(careHome.Amenities, kw) {
		return true
	}
	return anyContains(careHome.CareTypes, kw)
}

// matchesLocation reports whether the free-text location appears in the
// city, state, or zip code. Substring containment only; no geocoding.
func matchesLocation(careHome *entities.CareHome, location string) bool {
	loc := strings.ToLower(location)
	return strings.Contains(strings.ToLower(careHome.City), loc) ||
		strings.Contains(strings.ToLower(careHome.State), loc) ||
		strings.Contains(strings.ToLower(careHome.ZipCode), loc)
}

func anyContains(values []string, loweredSubstr string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), loweredSubstr) {
			return true
		}
	}
	return false
}

// intersects reports whether the record set shares at least one element
// with the query set.
func intersects(recordSet, querySet []string) bool {
	for _, q := range querySet {
		if containsString(recordSet, q) {
			return true
		}
	}
	return false
}

// supersetOf reports whether the record set contains every element of the
// query set.
func supersetOf(recordSet, querySet []string) bool {
	for _, q := range querySet {
		if !containsString(recordSet, q) {
			return false
		}
	}
	return true
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

// parseDecimal parses a stored decimal string, treating a missing or
// malformed value as zero. Record fields are validated at seed time, so the
// zero fallback only covers optional fields like distance.
func parseDecimal(value string) decimal.Decimal {
	if value == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero
	}
	return d
}
