package services

import (
	"context"
	"time"

	"github.com/carewise/carehome-directory/internal/domain/entities"
	"github.com/carewise/carehome-directory/internal/domain/repositories"
)

// InquiryService handles inquiry submissions.
type InquiryService struct {
	inquiries repositories.InquiryRepository
	careHomes repositories.CareHomeRepository
}

// NewInquiryService creates a new inquiry service.
func NewInquiryService(inquiries repositories.InquiryRepository, careHomes repositories.CareHomeRepository) *InquiryService {
	return &InquiryService{
		inquiries: inquiries,
		careHomes: careHomes,
	}
}

// CreateInquiryInput carries the client-supplied inquiry fields. Structural
// validation happens at the boundary; the service only enforces referential
// integrity.
type CreateInquiryInput struct {
	CareHomeID int
	Name       string
	Email      string
	Phone      string
	Message    string
}

// Create stores an inquiry after verifying the referenced care home exists.
// An unknown care home surfaces as the store's not-found error and leaves
// the inquiry collection untouched. The id and timestamp are assigned
// server-side, never client-supplied.
func (s *InquiryService) Create(ctx context.Context, input CreateInquiryInput) (*entities.Inquiry, error) {
	if _, err := s.careHomes.GetByID(ctx, input.CareHomeID); err != nil {
		return nil, err
	}

	inquiry := &entities.Inquiry{
		CareHomeID: input.CareHomeID,
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Message:    input.Message,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.inquiries.Create(ctx, inquiry); err != nil {
		return nil, err
	}
	return inquiry, nil
}
