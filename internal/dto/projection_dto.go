package dto

import "github.com/google/uuid"

// Sort directions
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// ProjectionQuery selects the rows, view and ordering of a projection
type ProjectionQuery struct {
	EntityIDs []string
	ViewID    *uuid.UUID
	SortBy    *uuid.UUID
	Order     string
}

// ProjectionColumn describes one custom column
type ProjectionColumn struct {
	ColumnID           string    `json:"id"`
	FieldID            uuid.UUID `json:"fieldId"`
	Name               string    `json:"name"`
	ScalarType         string    `json:"scalarType"`
	DisplayOrder       int       `json:"displayOrder"`
	EquipmentTypeScope *string   `json:"equipmentTypeScope"`
}

// ProjectionCell is either empty or carries the stored value.
// Select cells also carry the option label when it is known.
type ProjectionCell struct {
	Empty bool        `json:"empty,omitempty"`
	Value interface{} `json:"value,omitempty"`
	Label string      `json:"label,omitempty"`
}

// ProjectionRow is one entity row augmented with its custom cells
type ProjectionRow struct {
	EntityID string                    `json:"entityId"`
	Kind     string                    `json:"kind,omitempty"`
	Name     string                    `json:"name,omitempty"`
	Cells    map[string]ProjectionCell `json:"cells"`
}

// ProjectionResponse is the render-ready result of a projection
type ProjectionResponse struct {
	EntityType string             `json:"entityType"`
	Columns    []ProjectionColumn `json:"columns"`
	Rows       []ProjectionRow    `json:"rows"`
}
