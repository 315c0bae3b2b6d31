package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleet-field-api/internal/domain"
	"fleet-field-api/internal/metrics"
	"fleet-field-api/internal/response"
)

func TestEditCoordinator_Coercion(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.registerEntity(t, "equipment", "EX-1", "Excavator")

	text := env.createField(t, "Notes", "text", "equipment")
	number := env.createField(t, "Hours", "number", "equipment")
	sel := env.createField(t, "Status", "select", "equipment")
	env.createOption(t, sel, "Ready", "ready")
	env.createOption(t, sel, "None (legacy)", "None")

	tests := []struct {
		name      string
		fieldID   uuid.UUID
		raw       interface{}
		wantErr   string
		cleared   bool
		wantValue interface{}
	}{
		{"text trimmed", text.FieldID, "  welded  ", "", false, "welded"},
		{"text from number", text.FieldID, 12, "", false, "12"},
		{"text blank clears", text.FieldID, "   ", "", true, nil},
		{"text nil clears", text.FieldID, nil, "", true, nil},
		{"text object rejected", text.FieldID, map[string]interface{}{"a": 1}, response.ErrCodeValidation, false, nil},
		{"number string", number.FieldID, "42", "", false, int64(42)},
		{"number json float", number.FieldID, float64(7), "", false, int64(7)},
		{"number integral decimal", number.FieldID, "42.0", "", false, int64(42)},
		{"number negative", number.FieldID, "-3", "", false, int64(-3)},
		{"number fraction rejected", number.FieldID, "4.5", response.ErrCodeValidation, false, nil},
		{"number text rejected", number.FieldID, "abc", response.ErrCodeValidation, false, nil},
		{"number bool rejected", number.FieldID, true, response.ErrCodeValidation, false, nil},
		{"number too large rejected", number.FieldID, "1e300", response.ErrCodeValidation, false, nil},
		{"number blank clears", number.FieldID, " ", "", true, nil},
		{"number nil clears", number.FieldID, nil, "", true, nil},
		{"select valid", sel.FieldID, "ready", "", false, "ready"},
		{"select unknown rejected", sel.FieldID, "broken", response.ErrCodeValidation, false, nil},
		{"select none clears", sel.FieldID, "none", "", true, nil},
		{"select None is an option token", sel.FieldID, "None", "", false, "None"},
		{"select NONE rejected", sel.FieldID, "NONE", response.ErrCodeValidation, false, nil},
		{"select blank clears", sel.FieldID, "", "", true, nil},
		{"unknown field", uuid.New(), "x", response.ErrCodeNotFound, false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := env.editor.SubmitCellEdit(ctx, tt.fieldID, "EX-1", tt.raw)
			if tt.wantErr != "" {
				assert.True(t, response.IsCode(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.cleared, result.Cleared)
			if tt.cleared {
				assert.Nil(t, result.Value)
				return
			}
			require.NotNil(t, result.Value)
			assert.Equal(t, tt.wantValue, result.Value.Value)
		})
	}
}

func TestEditCoordinator_ClearDeletesStoredValue(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.registerEntity(t, "equipment", "EX-1", "")
	field := env.createField(t, "Notes", "text", "equipment")

	_, err := env.editor.SubmitCellEdit(ctx, field.FieldID, "EX-1", "first")
	require.NoError(t, err)

	result, err := env.editor.SubmitCellEdit(ctx, field.FieldID, "EX-1", "")
	require.NoError(t, err)
	assert.True(t, result.Cleared)

	values, err := env.values.GetValuesForEntity(ctx, "EX-1")
	require.NoError(t, err)
	assert.Empty(t, values)

	assert.Equal(t, domain.EventValueDeleted, env.publisher.last().Type)
}

func TestEditCoordinator_RequiresRegisteredEntityOfFieldType(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.registerEntity(t, "site", "SITE-1", "")
	field := env.createField(t, "Notes", "text", "equipment")

	_, err := env.editor.SubmitCellEdit(ctx, field.FieldID, "EX-404", "x")
	assert.True(t, response.IsCode(err, response.ErrCodeNotFound))

	_, err = env.editor.SubmitCellEdit(ctx, field.FieldID, "SITE-1", "x")
	assert.True(t, response.IsCode(err, response.ErrCodeValidation))

	_, err = env.editor.SubmitCellEdit(ctx, field.FieldID, "  ", "x")
	assert.True(t, response.IsCode(err, response.ErrCodeValidation))
}

func TestEditCoordinator_RecordsOutcomes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.registerEntity(t, "equipment", "EX-1", "")
	field := env.createField(t, "Hours", "number", "equipment")

	_, err := env.editor.SubmitCellEdit(ctx, field.FieldID, "EX-1", "10")
	require.NoError(t, err)
	_, err = env.editor.SubmitCellEdit(ctx, field.FieldID, "EX-1", "ten")
	require.Error(t, err)
	_, err = env.editor.SubmitCellEdit(ctx, field.FieldID, "EX-1", "")
	require.NoError(t, err)

	edits := env.metrics.CellEditsTotal
	assert.Equal(t, float64(1), testutil.ToFloat64(edits.WithLabelValues("number", metrics.EditOutcomeSet)))
	assert.Equal(t, float64(1), testutil.ToFloat64(edits.WithLabelValues("number", metrics.EditOutcomeRejected)))
	assert.Equal(t, float64(1), testutil.ToFloat64(edits.WithLabelValues("number", metrics.EditOutcomeCleared)))
}
