package domain

import "time"

// Entity is an equipment, maintenance or site row that custom field values attach to.
// Kind carries the equipment type used by scoped fields.
type Entity struct {
	ID         string     `gorm:"type:varchar(100);primaryKey" json:"id"`
	EntityType EntityType `gorm:"type:varchar(30);not null;index:idx_entities_entity_type" json:"entityType"`
	Kind       string     `gorm:"type:varchar(100)" json:"kind"`
	Name       string     `gorm:"type:varchar(255)" json:"name"`
	CreatedAt  time.Time  `gorm:"not null" json:"createdAt"`
	UpdatedAt  time.Time  `gorm:"not null" json:"updatedAt"`
}

// TableName specifies the table name for Entity
func (Entity) TableName() string {
	return "entities"
}
