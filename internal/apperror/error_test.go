package apperror

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidator_UsesJSONNames(t *testing.T) {
	type request struct {
		ProductID string `json:"productId,omitempty" validate:"required"`
		Internal  string `json:"-" validate:"required"`
	}

	err := NewValidator().Struct(request{})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))

	appErr := NewValidationErr(verrs)
	assert.Equal(t, CodeValidation, appErr.Code)
	assert.Contains(t, appErr.Fields, "productId")
	assert.NotContains(t, appErr.Fields, "ProductID")
	assert.True(t, appErr.IsValidation())
}
