package services

import (
	"github.com/carewise/carehome-directory/internal/domain/entities"
)

// Paginate slices homes for the requested page and reports the
// pre-pagination total. A page beyond the last returns an empty slice with
// the correct total rather than an error.
func Paginate(homes []*entities.CareHome, page, limit int) ([]*entities.CareHome, int) {
	total := len(homes)
	offset := (page - 1) * limit
	if offset >= total {
		return []*entities.CareHome{}, total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return homes[offset:end], total
}
