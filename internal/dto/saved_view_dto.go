package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SavedViewResponse represents a saved table configuration
type SavedViewResponse struct {
	ViewID         uuid.UUID      `json:"viewId"`
	Name           string         `json:"name"`
	EntityType     string         `json:"entityType"`
	Filters        datatypes.JSON `json:"filters" swaggertype:"object"`
	Sorts          datatypes.JSON `json:"sorts" swaggertype:"array,object"`
	VisibleColumns []string       `json:"visibleColumns"`
	CreatedBy      *string        `json:"createdBy"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// CreateSavedViewRequest represents the request to save a view
type CreateSavedViewRequest struct {
	Name           string         `json:"name" binding:"required,max=255"`
	EntityType     string         `json:"entityType" binding:"required"`
	Filters        datatypes.JSON `json:"filters" swaggertype:"object"`
	Sorts          datatypes.JSON `json:"sorts" swaggertype:"array,object"`
	VisibleColumns []string       `json:"visibleColumns"`
}

// UpdateSavedViewRequest represents a partial update of a saved view
type UpdateSavedViewRequest struct {
	Name           *string        `json:"name" binding:"omitempty,max=255"`
	Filters        datatypes.JSON `json:"filters" swaggertype:"object"`
	Sorts          datatypes.JSON `json:"sorts" swaggertype:"array,object"`
	VisibleColumns []string       `json:"visibleColumns"`
}
