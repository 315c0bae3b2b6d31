package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fleet-field-api/internal/database"
	"fleet-field-api/internal/domain"
)

// setupTestDB opens a single-connection in-memory SQLite database with the full schema
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), database.GormConfig())
	require.NoError(t, err, "failed to open database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db))
	return db
}

func seedEntity(t *testing.T, db *gorm.DB, id string, kind string) *domain.Entity {
	t.Helper()
	entity := &domain.Entity{ID: id, EntityType: domain.EntityTypeEquipment, Kind: kind, Name: id}
	require.NoError(t, db.Create(entity).Error)
	return entity
}

func seedField(t *testing.T, db *gorm.DB, name string, scalarType domain.ScalarType, order int) *domain.CustomField {
	t.Helper()
	field := &domain.CustomField{
		Name:         name,
		ScalarType:   scalarType,
		EntityType:   domain.EntityTypeEquipment,
		DisplayOrder: order,
	}
	require.NoError(t, NewCustomFieldRepository(db).Create(context.Background(), field))
	return field
}

func textValue(fieldID domain.CustomField, entityID, text string) *domain.CustomFieldValue {
	v := &domain.CustomFieldValue{FieldID: fieldID.ID, EntityID: entityID}
	v.SetCell(domain.TextCell{Text: text})
	return v
}
