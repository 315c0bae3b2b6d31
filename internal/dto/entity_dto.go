package dto

import "time"

// EntityResponse represents a field value subject
type EntityResponse struct {
	EntityID   string    `json:"entityId"`
	EntityType string    `json:"entityType"`
	Kind       string    `json:"kind"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// UpsertEntityRequest registers or updates a subject
type UpsertEntityRequest struct {
	EntityType string `json:"entityType" binding:"required"`
	Kind       string `json:"kind" binding:"omitempty,max=100"`
	Name       string `json:"name" binding:"omitempty,max=255"`
}
