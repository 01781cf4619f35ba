package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/carewise/carehome-directory/internal/domain/repositories"
	query "github.com/carewise/carehome-directory/internal/query/services"
	apperrors "github.com/carewise/carehome-directory/pkg/errors"
)

// CareHomeHandler handles care home HTTP requests
type CareHomeHandler struct {
	queries *query.CareHomeQueryService
}

// NewCareHomeHandler creates a new care home handler
func NewCareHomeHandler(queries *query.CareHomeQueryService) *CareHomeHandler {
	return &CareHomeHandler{queries: queries}
}

// SearchCareHomes handles GET /api/care-homes
func (h *CareHomeHandler) SearchCareHomes(w http.ResponseWriter, r *http.Request) {
	filters, fieldErrs := parseSearchFilters(r.URL.Query())
	if len(fieldErrs) > 0 {
		respondWithAppError(w, apperrors.NewFieldValidationError("invalid filter parameters", fieldErrs))
		return
	}

	result, err := h.queries.Search(r.Context(), filters)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"careHomes": result.CareHomes,
		"total":     result.Total,
	})
}

// GetCareHome handles GET /api/care-homes/{id}
func (h *CareHomeHandler) GetCareHome(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id < 1 {
		respondWithError(w, http.StatusBadRequest, "invalid care home ID")
		return
	}

	careHome, err := h.queries.GetByID(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, careHome)
}

// parseSearchFilters validates raw query parameters into SearchFilters,
// collecting one problem per offending field. Invalid input never reaches
// the filter chain. Set-valued parameters accept repeated occurrences.
func parseSearchFilters(q url.Values) (repositories.SearchFilters, []apperrors.FieldError) {
	var fieldErrs []apperrors.FieldError

	filters := repositories.SearchFilters{
		Location:        q.Get("location"),
		Keyword:         q.Get("keyword"),
		CareTypes:       q["careTypes"],
		BedAvailability: q["bedAvailability"],
		Amenities:       q["amenities"],
		RoomTypes:       q["roomTypes"],
		SortBy:          q.Get("sortBy"),
		Page:            repositories.DefaultPage,
		Limit:           repositories.DefaultLimit,
	}

	filters.MinPrice = parseDecimalParam(q, "minPrice", &fieldErrs)
	filters.MaxPrice = parseDecimalParam(q, "maxPrice", &fieldErrs)
	filters.MinRating = parseDecimalParam(q, "minRating", &fieldErrs)

	if raw := q.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			fieldErrs = append(fieldErrs, apperrors.FieldError{
				Field:   "page",
				Message: "must be an integer greater than or equal to 1",
			})
		} else {
			filters.Page = n
		}
	}

	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > repositories.MaxLimit {
			fieldErrs = append(fieldErrs, apperrors.FieldError{
				Field:   "limit",
				Message: "must be an integer between 1 and 50",
			})
		} else {
			filters.Limit = n
		}
	}

	if filters.SortBy != "" && !validSortKey(filters.SortBy) {
		fieldErrs = append(fieldErrs, apperrors.FieldError{
			Field:   "sortBy",
			Message: "must be one of recommended, price_low, price_high, distance, rating, availability",
		})
	}

	return filters, fieldErrs
}

// parseDecimalParam parses an optional non-negative decimal query
// parameter. Unparseable or negative values are recorded as field errors,
// never silently coerced.
func parseDecimalParam(q url.Values, name string, fieldErrs *[]apperrors.FieldError) *decimal.Decimal {
	raw := q.Get(name)
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		*fieldErrs = append(*fieldErrs, apperrors.FieldError{
			Field:   name,
			Message: "must be a number",
		})
		return nil
	}
	if d.IsNegative() {
		*fieldErrs = append(*fieldErrs, apperrors.FieldError{
			Field:   name,
			Message: "must not be negative",
		})
		return nil
	}
	return &d
}

func validSortKey(sortBy string) bool {
	switch sortBy {
	case repositories.SortRecommended,
		repositories.SortPriceLow,
		repositories.SortPriceHigh,
		repositories.SortDistance,
		repositories.SortRating,
		repositories.SortAvailability:
		return true
	}
	return false
}
