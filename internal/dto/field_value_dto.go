package dto

import (
	"time"

	"github.com/google/uuid"
)

// FieldValueResponse represents a stored cell value
type FieldValueResponse struct {
	ValueID     uuid.UUID   `json:"valueId"`
	FieldID     uuid.UUID   `json:"fieldId"`
	EntityID    string      `json:"entityId"`
	TextValue   *string     `json:"textValue"`
	NumberValue *int64      `json:"numberValue"`
	SelectValue *string     `json:"selectValue"`
	Value       interface{} `json:"value"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// SetFieldValueRequest represents a direct value upsert
type SetFieldValueRequest struct {
	FieldID    uuid.UUID   `json:"fieldId" binding:"required"`
	EntityID   string      `json:"entityId" binding:"required,max=100"`
	ScalarType string      `json:"scalarType" binding:"required"`
	Value      interface{} `json:"value"`
}

// DeleteFieldValueRequest identifies a cell by body or query string
type DeleteFieldValueRequest struct {
	FieldID  string `json:"fieldId" form:"fieldId"`
	EntityID string `json:"entityId" form:"entityId"`
}

// CellEditRequest carries raw user input for one cell
type CellEditRequest struct {
	Value interface{} `json:"value"`
}

// CellEditResponse is the canonical result of an inline edit
type CellEditResponse struct {
	FieldID    uuid.UUID           `json:"fieldId"`
	EntityID   string              `json:"entityId"`
	ScalarType string              `json:"scalarType"`
	Cleared    bool                `json:"cleared"`
	Value      *FieldValueResponse `json:"value,omitempty"`
}
