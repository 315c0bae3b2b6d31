package domain

import (
	"strings"

	"gorm.io/datatypes"
)

// ScalarType is the kind of value a custom field holds
type ScalarType string

// ScalarType constants
const (
	ScalarTypeText   ScalarType = "text"
	ScalarTypeNumber ScalarType = "number"
	ScalarTypeSelect ScalarType = "select"
)

// Valid reports whether the scalar type is one of the supported kinds
func (s ScalarType) Valid() bool {
	switch s {
	case ScalarTypeText, ScalarTypeNumber, ScalarTypeSelect:
		return true
	}
	return false
}

// EntityType is the category of row a custom field attaches to
type EntityType string

// EntityType constants
const (
	EntityTypeEquipment   EntityType = "equipment"
	EntityTypeMaintenance EntityType = "maintenance"
	EntityTypeSite        EntityType = "site"
)

// ParseEntityType normalises user input into an EntityType.
// The plural "sites" is still sent by older clients.
func ParseEntityType(s string) (EntityType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "equipment":
		return EntityTypeEquipment, true
	case "maintenance":
		return EntityTypeMaintenance, true
	case "site", "sites":
		return EntityTypeSite, true
	}
	return "", false
}

// CustomField is a user-defined column attached to one entity type
type CustomField struct {
	BaseModel
	Name               string            `gorm:"type:varchar(255);not null" json:"name"`
	ScalarType         ScalarType        `gorm:"type:varchar(20);not null" json:"scalarType"`
	EntityType         EntityType        `gorm:"type:varchar(30);not null;index:idx_custom_fields_entity_order,priority:1" json:"entityType"`
	EquipmentTypeScope *string           `gorm:"type:varchar(100)" json:"equipmentTypeScope"`
	DisplayOrder       int               `gorm:"not null;default:0;index:idx_custom_fields_entity_order,priority:2" json:"displayOrder"`
	Metadata           datatypes.JSONMap `json:"metadata"`
}

// TableName specifies the table name for CustomField
func (CustomField) TableName() string {
	return "custom_fields"
}

// AppliesTo reports whether the field surfaces on a row of the given kind.
// Unscoped fields apply to every row of their entity type.
func (f *CustomField) AppliesTo(kind string) bool {
	if f.EquipmentTypeScope == nil || *f.EquipmentTypeScope == "" {
		return true
	}
	return strings.EqualFold(*f.EquipmentTypeScope, kind)
}
