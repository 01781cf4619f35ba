package repositories

import (
	"context"

	"github.com/carewise/carehome-directory/internal/domain/entities"
)

// InquiryRepository defines the interface for inquiry data operations.
// The collection is append-only; no core query reads inquiries back.
type InquiryRepository interface {
	// Create appends an inquiry, assigning the next monotonic id
	Create(ctx context.Context, inquiry *entities.Inquiry) error
}
