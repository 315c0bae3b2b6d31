package domain

import "gorm.io/datatypes"

// SavedView is a named table configuration for one entity type
type SavedView struct {
	BaseModel
	Name           string         `gorm:"type:varchar(255);not null" json:"name"`
	EntityType     EntityType     `gorm:"type:varchar(30);not null;index:idx_saved_views_entity_type" json:"entityType"`
	Filters        datatypes.JSON `json:"filters"`
	Sorts          datatypes.JSON `json:"sorts"`
	VisibleColumns datatypes.JSON `json:"visibleColumns"`
	CreatedBy      *string        `gorm:"type:varchar(100)" json:"createdBy"`
}

// TableName specifies the table name for SavedView
func (SavedView) TableName() string {
	return "saved_views"
}
