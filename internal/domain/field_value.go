package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cast"
)

// MaxSafeInteger bounds number cells so values survive a round-trip
// through JSON clients that decode numbers as IEEE-754 doubles.
const MaxSafeInteger = 1<<53 - 1

var (
	// ErrNotANumber is returned when number input is not an integral value
	ErrNotANumber = errors.New("value is not an integer")
	// ErrNumberOutOfRange is returned when number input exceeds MaxSafeInteger
	ErrNumberOutOfRange = errors.New("value is out of range")
	// ErrUnsupportedScalarType is returned for a scalar type outside the enum
	ErrUnsupportedScalarType = errors.New("unsupported scalar type")
)

// CustomFieldValue stores the value of one field on one entity.
// Exactly one of the slots is populated, matching the field's scalar type.
type CustomFieldValue struct {
	BaseModel
	FieldID     uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:uq_custom_field_values_field_entity,priority:1" json:"fieldId"`
	EntityID    string       `gorm:"type:varchar(100);not null;index:idx_custom_field_values_entity_id;uniqueIndex:uq_custom_field_values_field_entity,priority:2" json:"entityId"`
	TextValue   *string      `gorm:"type:text" json:"textValue"`
	NumberValue *int64       `gorm:"type:bigint" json:"numberValue"`
	SelectValue *string      `gorm:"type:varchar(100)" json:"selectValue"`
	Field       *CustomField `gorm:"foreignKey:FieldID;constraint:OnDelete:CASCADE" json:"-"`
	Entity      *Entity      `gorm:"foreignKey:EntityID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for CustomFieldValue
func (CustomFieldValue) TableName() string {
	return "custom_field_values"
}

// CellValue is the payload of a cell. Its concrete type is one of
// TextCell, NumberCell or SelectCell.
type CellValue interface {
	ScalarType() ScalarType
	// Raw returns the payload as a JSON-friendly scalar
	Raw() interface{}
	String() string
	isCellValue()
}

// TextCell holds free text
type TextCell struct{ Text string }

// NumberCell holds an integer
type NumberCell struct{ Number int64 }

// SelectCell holds an option token
type SelectCell struct{ Token string }

func (TextCell) ScalarType() ScalarType   { return ScalarTypeText }
func (NumberCell) ScalarType() ScalarType { return ScalarTypeNumber }
func (SelectCell) ScalarType() ScalarType { return ScalarTypeSelect }

func (c TextCell) Raw() interface{}   { return c.Text }
func (c NumberCell) Raw() interface{} { return c.Number }
func (c SelectCell) Raw() interface{} { return c.Token }

func (c TextCell) String() string   { return c.Text }
func (c NumberCell) String() string { return fmt.Sprintf("%d", c.Number) }
func (c SelectCell) String() string { return c.Token }

func (TextCell) isCellValue()   {}
func (NumberCell) isCellValue() {}
func (SelectCell) isCellValue() {}

// NewCell converts raw input into the cell variant for the scalar type.
// Text and select input is stored verbatim; number input must be integral.
func NewCell(scalarType ScalarType, raw interface{}) (CellValue, error) {
	switch scalarType {
	case ScalarTypeText:
		s, err := cast.ToStringE(raw)
		if err != nil {
			return nil, err
		}
		return TextCell{Text: s}, nil
	case ScalarTypeNumber:
		n, err := ParseInteger(raw)
		if err != nil {
			return nil, err
		}
		return NumberCell{Number: n}, nil
	case ScalarTypeSelect:
		s, err := cast.ToStringE(raw)
		if err != nil {
			return nil, err
		}
		return SelectCell{Token: s}, nil
	}
	return nil, ErrUnsupportedScalarType
}

// ParseInteger accepts integers, integral floats and their string forms
func ParseInteger(raw interface{}) (int64, error) {
	var f float64
	switch v := raw.(type) {
	case nil, bool:
		return 0, ErrNotANumber
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		n, err := cast.ToInt64E(v)
		if err != nil {
			return 0, ErrNotANumber
		}
		if n > MaxSafeInteger || n < -MaxSafeInteger {
			return 0, ErrNumberOutOfRange
		}
		return n, nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, ErrNotANumber
		}
		parsed, err := cast.ToFloat64E(s)
		if err != nil {
			return 0, ErrNotANumber
		}
		f = parsed
	default:
		parsed, err := cast.ToFloat64E(v)
		if err != nil {
			return 0, ErrNotANumber
		}
		f = parsed
	}

	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, ErrNotANumber
	}
	if math.Abs(f) > MaxSafeInteger {
		return 0, ErrNumberOutOfRange
	}
	return int64(f), nil
}

// Cell returns the populated slot as a CellValue. ok is false for a row
// with no populated slot.
func (v *CustomFieldValue) Cell() (cell CellValue, ok bool) {
	switch {
	case v.TextValue != nil:
		return TextCell{Text: *v.TextValue}, true
	case v.NumberValue != nil:
		return NumberCell{Number: *v.NumberValue}, true
	case v.SelectValue != nil:
		return SelectCell{Token: *v.SelectValue}, true
	}
	return nil, false
}

// SetCell writes the cell into its slot and clears the other two
func (v *CustomFieldValue) SetCell(cell CellValue) {
	v.TextValue, v.NumberValue, v.SelectValue = nil, nil, nil
	switch c := cell.(type) {
	case TextCell:
		text := c.Text
		v.TextValue = &text
	case NumberCell:
		n := c.Number
		v.NumberValue = &n
	case SelectCell:
		token := c.Token
		v.SelectValue = &token
	}
}

// PopulatedSlots counts non-null slots; a well-formed row has exactly one
func (v *CustomFieldValue) PopulatedSlots() int {
	n := 0
	if v.TextValue != nil {
		n++
	}
	if v.NumberValue != nil {
		n++
	}
	if v.SelectValue != nil {
		n++
	}
	return n
}
