package dto

import (
	"time"

	"github.com/google/uuid"
)

// CustomFieldResponse represents a custom field definition
type CustomFieldResponse struct {
	FieldID            uuid.UUID              `json:"fieldId"`
	Name               string                 `json:"name"`
	ScalarType         string                 `json:"scalarType"`
	EntityType         string                 `json:"entityType"`
	EquipmentTypeScope *string                `json:"equipmentTypeScope"`
	DisplayOrder       int                    `json:"displayOrder"`
	Metadata           map[string]interface{} `json:"metadata"`
	Options            []*FieldOptionResponse `json:"options,omitempty"`
	CreatedAt          time.Time              `json:"createdAt"`
	UpdatedAt          time.Time              `json:"updatedAt"`
}

// CreateCustomFieldRequest represents the request to create a custom field
type CreateCustomFieldRequest struct {
	Name               string                     `json:"name" binding:"required,max=255"`
	ScalarType         string                     `json:"scalarType" binding:"required"`
	EntityType         string                     `json:"entityType" binding:"required"`
	EquipmentTypeScope *string                    `json:"equipmentTypeScope" binding:"omitempty,max=100"`
	DisplayOrder       *int                       `json:"displayOrder"`
	Metadata           map[string]interface{}     `json:"metadata"`
	Options            []CreateFieldOptionRequest `json:"options" binding:"omitempty,dive"`
}

// UpdateCustomFieldRequest represents a partial update of a custom field.
// ScalarType and EntityType are accepted only when unchanged.
type UpdateCustomFieldRequest struct {
	Name               *string                `json:"name" binding:"omitempty,max=255"`
	ScalarType         *string                `json:"scalarType"`
	EntityType         *string                `json:"entityType"`
	EquipmentTypeScope *string                `json:"equipmentTypeScope" binding:"omitempty,max=100"`
	DisplayOrder       *int                   `json:"displayOrder"`
	Metadata           map[string]interface{} `json:"metadata"`
}
