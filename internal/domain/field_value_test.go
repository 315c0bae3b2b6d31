package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInteger(t *testing.T) {
	tests := []struct {
		name    string
		raw     interface{}
		want    int64
		wantErr error
	}{
		{"string integer", "42", 42, nil},
		{"padded string", "  -7 ", -7, nil},
		{"integral decimal string", "42.0", 42, nil},
		{"leading zero", "010", 10, nil},
		{"json number", float64(12), 12, nil},
		{"native int", 5, 5, nil},
		{"fraction", "4.5", 0, ErrNotANumber},
		{"word", "abc", 0, ErrNotANumber},
		{"empty", "", 0, ErrNotANumber},
		{"nil", nil, 0, ErrNotANumber},
		{"bool", true, 0, ErrNotANumber},
		{"nan", "NaN", 0, ErrNotANumber},
		{"too large", "1e300", 0, ErrNumberOutOfRange},
		{"int too large", int64(MaxSafeInteger + 1), 0, ErrNumberOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInteger(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewCell(t *testing.T) {
	cell, err := NewCell(ScalarTypeText, "done")
	require.NoError(t, err)
	assert.Equal(t, TextCell{Text: "done"}, cell)

	cell, err = NewCell(ScalarTypeNumber, "42")
	require.NoError(t, err)
	assert.Equal(t, NumberCell{Number: 42}, cell)
	assert.Equal(t, "42", cell.String())

	cell, err = NewCell(ScalarTypeSelect, "red")
	require.NoError(t, err)
	assert.Equal(t, ScalarTypeSelect, cell.ScalarType())
	assert.Equal(t, "red", cell.Raw())

	_, err = NewCell(ScalarType("date"), "2024-01-01")
	assert.ErrorIs(t, err, ErrUnsupportedScalarType)
}

func TestCustomFieldValue_SetCellClearsOtherSlots(t *testing.T) {
	v := &CustomFieldValue{}

	v.SetCell(TextCell{Text: "done"})
	assert.Equal(t, 1, v.PopulatedSlots())
	require.NotNil(t, v.TextValue)

	v.SetCell(NumberCell{Number: 9})
	assert.Equal(t, 1, v.PopulatedSlots())
	assert.Nil(t, v.TextValue)
	require.NotNil(t, v.NumberValue)
	assert.Equal(t, int64(9), *v.NumberValue)

	v.SetCell(SelectCell{Token: "green"})
	assert.Equal(t, 1, v.PopulatedSlots())
	assert.Nil(t, v.NumberValue)

	cell, ok := v.Cell()
	require.True(t, ok)
	assert.Equal(t, SelectCell{Token: "green"}, cell)

	_, ok = (&CustomFieldValue{}).Cell()
	assert.False(t, ok)
}
