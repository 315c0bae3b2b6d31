package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"fleet-field-api/internal/domain"
)

func TestSavedViewRepository_CRUD(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSavedViewRepository(db)
	ctx := context.Background()

	view := &domain.SavedView{
		Name:           "Heavy equipment",
		EntityType:     domain.EntityTypeEquipment,
		Filters:        datatypes.JSON(`{"kind":"Excavator"}`),
		Sorts:          datatypes.JSON(`[{"column":"name","direction":"asc"}]`),
		VisibleColumns: datatypes.JSON(`["name"]`),
	}
	require.NoError(t, repo.Create(ctx, view))
	require.NoError(t, repo.Create(ctx, &domain.SavedView{Name: "Sites", EntityType: domain.EntityTypeSite}))

	equipment := domain.EntityTypeEquipment
	list, err := repo.List(ctx, &equipment)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.JSONEq(t, `{"kind":"Excavator"}`, string(list[0].Filters))

	all, err := repo.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	view.Name = "Excavators"
	require.NoError(t, repo.Update(ctx, view))
	found, err := repo.FindByID(ctx, view.ID)
	require.NoError(t, err)
	assert.Equal(t, "Excavators", found.Name)

	require.NoError(t, repo.Delete(ctx, view.ID))
	_, err = repo.FindByID(ctx, view.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, view.ID), gorm.ErrRecordNotFound)
}
