package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/carewise/carehome-directory/internal/application/services"
	"github.com/carewise/carehome-directory/internal/domain/entities"
	apperrors "github.com/carewise/carehome-directory/pkg/errors"
)

// InquiryService defines the inquiry operations used by the handler.
type InquiryService interface {
	Create(ctx context.Context, input services.CreateInquiryInput) (*entities.Inquiry, error)
}

// InquiryHandler handles inquiry submissions.
type InquiryHandler struct {
	service InquiryService
}

// NewInquiryHandler creates a new inquiry handler.
func NewInquiryHandler(service InquiryService) *InquiryHandler {
	return &InquiryHandler{service: service}
}

type inquiryRequest struct {
	CareHomeID int    `json:"careHomeId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Message    string `json:"message"`
}

// CreateInquiry handles POST /api/inquiries
func (h *InquiryHandler) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	var payload inquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	payload.Name = strings.TrimSpace(payload.Name)
	payload.Email = strings.TrimSpace(payload.Email)
	payload.Phone = strings.TrimSpace(payload.Phone)
	payload.Message = strings.TrimSpace(payload.Message)

	if fieldErrs := validateInquiry(payload); len(fieldErrs) > 0 {
		respondWithAppError(w, apperrors.NewFieldValidationError("invalid inquiry data", fieldErrs))
		return
	}

	inquiry, err := h.service.Create(r.Context(), services.CreateInquiryInput{
		CareHomeID: payload.CareHomeID,
		Name:       payload.Name,
		Email:      payload.Email,
		Phone:      payload.Phone,
		Message:    payload.Message,
	})
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, inquiry)
}

func validateInquiry(payload inquiryRequest) []apperrors.FieldError {
	var fieldErrs []apperrors.FieldError

	if payload.CareHomeID < 1 {
		fieldErrs = append(fieldErrs, apperrors.FieldError{
			Field:   "careHomeId",
			Message: "must be a positive integer",
		})
	}
	if payload.Name == "" {
		fieldErrs = append(fieldErrs, apperrors.FieldError{
			Field:   "name",
			Message: "is required",
		})
	}
	if payload.Email == "" {
		fieldErrs = append(fieldErrs, apperrors.FieldError{
			Field:   "email",
			Message: "is required",
		})
	} else if !strings.Contains(payload.Email, "@") {
		fieldErrs = append(fieldErrs, apperrors.FieldError{
			Field:   "email",
			Message: "must be a valid email address",
		})
	}

	return fieldErrs
}
