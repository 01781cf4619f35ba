package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorMessage(t *testing.T) {
	err := NewNotFoundError("care home 7 not found")
	assert.Equal(t, "NOT_FOUND: care home 7 not found", err.Error())
}

func TestFieldValidationErrorListsFields(t *testing.T) {
	err := NewFieldValidationError("invalid filter parameters", []FieldError{
		{Field: "minPrice", Message: "must be a number"},
		{Field: "limit", Message: "must be an integer between 1 and 50"},
	})

	assert.Equal(t, ErrorTypeValidation, err.Type)
	assert.Equal(t, "VALIDATION: invalid filter parameters (minPrice, limit)", err.Error())
}

func TestInternalErrorUnwraps(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := NewInternalError("cache unavailable", cause)

	assert.Equal(t, ErrorTypeInternal, err.Type)
	assert.True(t, stderrors.Is(err, cause))
	assert.Contains(t, err.Error(), "connection refused")
}
