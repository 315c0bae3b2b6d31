package response

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	err := NewValidationError("name is required", "")
	assert.Equal(t, "VALIDATION_ERROR: name is required", err.Error())
	assert.True(t, IsCode(err, ErrCodeValidation))
	assert.False(t, IsCode(err, ErrCodeNotFound))

	internal := NewInternalError("Failed to save value", errors.New("disk full"))
	assert.Equal(t, ErrCodeInternal, internal.Code)
	assert.Contains(t, internal.Error(), "disk full")

	var appErr *AppError
	wrapped := fmt.Errorf("context: %w", NewNotFoundError("Field not found", ""))
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, ErrCodeNotFound, appErr.Code)
}
