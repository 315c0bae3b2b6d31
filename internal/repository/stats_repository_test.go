package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleet-field-api/internal/domain"
)

func TestStatsRepository_Snapshot(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	empty, err := NewStatsRepository(db).Snapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty.FieldsByEntityType)
	assert.Zero(t, empty.Options)
	assert.Zero(t, empty.Values)

	seedEntity(t, db, "EX-1", "Excavator")
	hours := seedField(t, db, "Hours", domain.ScalarTypeText, 0)
	fuel := seedField(t, db, "Fuel", domain.ScalarTypeSelect, 1)
	require.NoError(t, NewCustomFieldRepository(db).Create(ctx, &domain.CustomField{
		Name:       "Crew",
		ScalarType: domain.ScalarTypeText,
		EntityType: domain.EntityTypeSite,
	}))
	require.NoError(t, NewFieldOptionRepository(db).Create(ctx, &domain.CustomFieldOption{FieldID: fuel.ID, Label: "Diesel", Value: "diesel"}))
	_, err = NewFieldValueRepository(db).Upsert(ctx, textValue(*hours, "EX-1", "1200"))
	require.NoError(t, err)

	stats, err := NewStatsRepository(db).Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.FieldsByEntityType[domain.EntityTypeEquipment])
	assert.Equal(t, int64(1), stats.FieldsByEntityType[domain.EntityTypeSite])
	assert.Zero(t, stats.FieldsByEntityType[domain.EntityTypeMaintenance])
	assert.Equal(t, int64(1), stats.Options)
	assert.Equal(t, int64(1), stats.Values)
}
