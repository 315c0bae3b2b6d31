package domain

import "github.com/google/uuid"

// CustomFieldOption is one enumerated choice of a select field
type CustomFieldOption struct {
	BaseModel
	FieldID      uuid.UUID    `gorm:"type:uuid;not null;index:idx_custom_field_options_field_order,priority:1" json:"fieldId"`
	Label        string       `gorm:"type:varchar(200);not null" json:"label"`
	Value        string       `gorm:"type:varchar(100);not null" json:"value"`
	DisplayOrder int          `gorm:"not null;default:0;index:idx_custom_field_options_field_order,priority:2" json:"displayOrder"`
	Field        *CustomField `gorm:"foreignKey:FieldID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for CustomFieldOption
func (CustomFieldOption) TableName() string {
	return "custom_field_options"
}
