package services

import (
	"context"
	"fmt"
	"time"

	"github.com/carewise/carehome-directory/internal/domain/entities"
	"github.com/carewise/carehome-directory/internal/domain/repositories"
)

// CareHomeQueryService handles read-only care home operations. It is
// backend-agnostic: any CareHomeRepository can sit behind it.
type CareHomeQueryService struct {
	repo repositories.CareHomeRepository
}

// NewCareHomeQueryService creates a new care home query service
func NewCareHomeQueryService(repo repositories.CareHomeRepository) *CareHomeQueryService {
	return &CareHomeQueryService{repo: repo}
}

// Search runs the filter, sort, paginate pipeline over the full
// collection. The order is fixed: sorting must see the filtered set, and
// Total must reflect the filtered, pre-pagination cardinality. Nothing is
// cached across calls.
func (s *CareHomeQueryService) Search(ctx context.Context, filters repositories.SearchFilters) (*repositories.SearchResult, error) {
	start := time.Now()

	homes, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list care homes: %w", err)
	}

	// Page and limit arrive validated from the boundary; normalize anyway
	// so a direct caller cannot produce a negative slice offset.
	page := filters.Page
	if page < 1 {
		page = repositories.DefaultPage
	}
	limit := filters.Limit
	if limit < 1 || limit > repositories.MaxLimit {
		limit = repositories.DefaultLimit
	}

	filtered := Filter(homes, filters)
	Sort(filtered, filters.SortBy)
	pageSlice, total := Paginate(filtered, page, limit)

	return &repositories.SearchResult{
		CareHomes:  pageSlice,
		Total:      total,
		SearchTime: float64(time.Since(start).Microseconds()) / 1000.0,
	}, nil
}

// GetByID retrieves a single care home.
func (s *CareHomeQueryService) GetByID(ctx context.Context, id int) (*entities.CareHome, error) {
	return s.repo.GetByID(ctx, id)
}
