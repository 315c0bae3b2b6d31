package dto

import (
	"time"

	"github.com/google/uuid"
)

// FieldOptionResponse represents a select option
type FieldOptionResponse struct {
	OptionID     uuid.UUID `json:"optionId"`
	FieldID      uuid.UUID `json:"fieldId"`
	Label        string    `json:"label"`
	Value        string    `json:"value"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CreateFieldOptionRequest represents the request to create a select option.
// Value is derived from Label when empty.
type CreateFieldOptionRequest struct {
	Label        string `json:"label" binding:"required,max=200"`
	Value        string `json:"value" binding:"omitempty,max=100"`
	DisplayOrder *int   `json:"displayOrder"`
}

// UpdateFieldOptionRequest represents the request to update a select option
type UpdateFieldOptionRequest struct {
	Label        *string `json:"label" binding:"omitempty,max=200"`
	Value        *string `json:"value" binding:"omitempty,max=100"`
	DisplayOrder *int    `json:"displayOrder"`
}
