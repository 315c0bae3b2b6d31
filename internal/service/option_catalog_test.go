package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"fleet-field-api/internal/domain"
	"fleet-field-api/internal/dto"
	"fleet-field-api/internal/response"
)

func TestOptionCatalog_CreateOptionDerivesToken(t *testing.T) {
	env := newTestEnv(t)
	field := env.createField(t, "Status", "select", "equipment")

	tests := []struct {
		label string
		value string
		want  string
	}{
		{"Needs Repair", "", "needs_repair"},
		{"Réparé", "", "repare"},
		{"Tier 2 (Heavy)", "", "tier_2_heavy"},
		{"Out of service", "OOS", "OOS"},
	}

	for i, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			option := env.createOption(t, field, tt.label, tt.value)
			assert.Equal(t, tt.want, option.Value)
			assert.Equal(t, tt.label, option.Label)
			assert.Equal(t, i, option.DisplayOrder, "display order defaults to the option count")
		})
	}

	options, err := env.options.ListOptions(context.Background(), field.FieldID)
	require.NoError(t, err)
	require.Len(t, options, len(tests))
	for i := 1; i < len(options); i++ {
		assert.LessOrEqual(t, options[i-1].DisplayOrder, options[i].DisplayOrder)
	}
}

func TestOptionCatalog_CreateOptionValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	text := env.createField(t, "Notes", "text", "equipment")
	sel := env.createField(t, "Status", "select", "equipment")

	_, err := env.options.CreateOption(ctx, uuid.New(), &dto.CreateFieldOptionRequest{Label: "x"})
	assert.True(t, response.IsCode(err, response.ErrCodeNotFound))

	_, err = env.options.CreateOption(ctx, text.FieldID, &dto.CreateFieldOptionRequest{Label: "x"})
	assert.True(t, response.IsCode(err, response.ErrCodeValidation))

	_, err = env.options.CreateOption(ctx, sel.FieldID, &dto.CreateFieldOptionRequest{Label: "  "})
	assert.True(t, response.IsCode(err, response.ErrCodeValidation))

	_, err = env.options.CreateOption(ctx, sel.FieldID, &dto.CreateFieldOptionRequest{Label: "???"})
	assert.True(t, response.IsCode(err, response.ErrCodeValidation))
}

func TestOptionCatalog_DuplicateTokenIsAcceptedWithWarning(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	env := newTestEnvWithLogger(t, zap.New(core))
	field := env.createField(t, "Status", "select", "equipment")

	env.createOption(t, field, "Red", "red")
	env.createOption(t, field, "Crimson", "red")

	options, err := env.options.ListOptions(context.Background(), field.FieldID)
	require.NoError(t, err)
	assert.Len(t, options, 2)
	assert.Equal(t, 1, logs.FilterMessage("Duplicate option value").Len())
}

func TestOptionCatalog_UpdateAndDelete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	field := env.createField(t, "Status", "select", "site")
	option := env.createOption(t, field, "Open", "")

	updated, err := env.options.UpdateOption(ctx, option.OptionID, &dto.UpdateFieldOptionRequest{
		Label:        strPtr("Open for work"),
		DisplayOrder: intPtr(3),
	})
	require.NoError(t, err)
	assert.Equal(t, "Open for work", updated.Label)
	assert.Equal(t, "open", updated.Value)
	assert.Equal(t, 3, updated.DisplayOrder)

	event := env.publisher.last()
	assert.Equal(t, domain.EventOptionUpdated, event.Type)
	assert.Equal(t, domain.EntityTypeSite, event.EntityType)

	_, err = env.options.UpdateOption(ctx, option.OptionID, &dto.UpdateFieldOptionRequest{Value: strPtr(" ")})
	assert.True(t, response.IsCode(err, response.ErrCodeValidation))

	require.NoError(t, env.options.DeleteOption(ctx, option.OptionID))
	assert.Equal(t, domain.EventOptionDeleted, env.publisher.last().Type)

	err = env.options.DeleteOption(ctx, option.OptionID)
	assert.True(t, response.IsCode(err, response.ErrCodeNotFound))

	_, err = env.options.UpdateOption(ctx, option.OptionID, &dto.UpdateFieldOptionRequest{Label: strPtr("x")})
	assert.True(t, response.IsCode(err, response.ErrCodeNotFound))
}
