package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"fleet-field-api/internal/domain"
	"fleet-field-api/internal/dto"
	"fleet-field-api/internal/response"
)

func TestSavedViewService_CRUD(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	view, err := env.views.CreateView(ctx, &dto.CreateSavedViewRequest{
		Name:           "Broken excavators",
		EntityType:     "equipment",
		Filters:        datatypes.JSON(`{"status":"broken"}`),
		Sorts:          datatypes.JSON(`[{"column":"name","order":"asc"}]`),
		VisibleColumns: []string{"name", " custom_x ", ""},
	}, "user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "custom_x"}, view.VisibleColumns)
	require.NotNil(t, view.CreatedBy)
	assert.Equal(t, "user-1", *view.CreatedBy)
	assert.Equal(t, domain.EventViewCreated, env.publisher.last().Type)

	fetched, err := env.views.GetView(ctx, view.ViewID)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"broken"}`, string(fetched.Filters))

	updated, err := env.views.UpdateView(ctx, view.ViewID, &dto.UpdateSavedViewRequest{
		Name:           strPtr("Everything"),
		VisibleColumns: []string{},
	})
	require.NoError(t, err)
	assert.Equal(t, "Everything", updated.Name)
	assert.Empty(t, updated.VisibleColumns)
	assert.JSONEq(t, `{"status":"broken"}`, string(updated.Filters), "omitted attributes are kept")

	list, err := env.views.ListViews(ctx, "equipment")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	none, err := env.views.ListViews(ctx, "site")
	require.NoError(t, err)
	assert.Empty(t, none)

	require.NoError(t, env.views.DeleteView(ctx, view.ViewID))
	_, err = env.views.GetView(ctx, view.ViewID)
	assert.True(t, response.IsCode(err, response.ErrCodeNotFound))
}

func TestSavedViewService_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.views.CreateView(ctx, &dto.CreateSavedViewRequest{Name: " ", EntityType: "equipment"}, "")
	assert.True(t, response.IsCode(err, response.ErrCodeValidation))

	_, err = env.views.CreateView(ctx, &dto.CreateSavedViewRequest{Name: "x", EntityType: "planes"}, "")
	assert.True(t, response.IsCode(err, response.ErrCodeValidation))

	_, err = env.views.ListViews(ctx, "planes")
	assert.True(t, response.IsCode(err, response.ErrCodeValidation))

	err = env.views.DeleteView(ctx, uuid.New())
	assert.True(t, response.IsCode(err, response.ErrCodeNotFound))

	view, err := env.views.CreateView(ctx, &dto.CreateSavedViewRequest{Name: "x", EntityType: "site"}, "")
	require.NoError(t, err)
	assert.Nil(t, view.CreatedBy)
	_, err = env.views.UpdateView(ctx, view.ViewID, &dto.UpdateSavedViewRequest{Name: strPtr("")})
	assert.True(t, response.IsCode(err, response.ErrCodeValidation))
}
