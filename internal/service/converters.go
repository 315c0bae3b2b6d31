package service

import (
	"encoding/json"

	"fleet-field-api/internal/domain"
	"fleet-field-api/internal/dto"
)

func toCustomFieldResponse(field *domain.CustomField) *dto.CustomFieldResponse {
	return &dto.CustomFieldResponse{
		FieldID:            field.ID,
		Name:               field.Name,
		ScalarType:         string(field.ScalarType),
		EntityType:         string(field.EntityType),
		EquipmentTypeScope: field.EquipmentTypeScope,
		DisplayOrder:       field.DisplayOrder,
		Metadata:           map[string]interface{}(field.Metadata),
		CreatedAt:          field.CreatedAt,
		UpdatedAt:          field.UpdatedAt,
	}
}

func toFieldOptionResponse(option *domain.CustomFieldOption) *dto.FieldOptionResponse {
	return &dto.FieldOptionResponse{
		OptionID:     option.ID,
		FieldID:      option.FieldID,
		Label:        option.Label,
		Value:        option.Value,
		DisplayOrder: option.DisplayOrder,
		CreatedAt:    option.CreatedAt,
		UpdatedAt:    option.UpdatedAt,
	}
}

func toFieldValueResponse(value *domain.CustomFieldValue) *dto.FieldValueResponse {
	resp := &dto.FieldValueResponse{
		ValueID:     value.ID,
		FieldID:     value.FieldID,
		EntityID:    value.EntityID,
		TextValue:   value.TextValue,
		NumberValue: value.NumberValue,
		SelectValue: value.SelectValue,
		CreatedAt:   value.CreatedAt,
		UpdatedAt:   value.UpdatedAt,
	}
	if cell, ok := value.Cell(); ok {
		resp.Value = cell.Raw()
	}
	return resp
}

func toFieldValueResponses(values []*domain.CustomFieldValue) []*dto.FieldValueResponse {
	responses := make([]*dto.FieldValueResponse, len(values))
	for i, value := range values {
		responses[i] = toFieldValueResponse(value)
	}
	return responses
}

func toEntityResponse(entity *domain.Entity) *dto.EntityResponse {
	return &dto.EntityResponse{
		EntityID:   entity.ID,
		EntityType: string(entity.EntityType),
		Kind:       entity.Kind,
		Name:       entity.Name,
		CreatedAt:  entity.CreatedAt,
		UpdatedAt:  entity.UpdatedAt,
	}
}

func toSavedViewResponse(view *domain.SavedView) *dto.SavedViewResponse {
	return &dto.SavedViewResponse{
		ViewID:         view.ID,
		Name:           view.Name,
		EntityType:     string(view.EntityType),
		Filters:        view.Filters,
		Sorts:          view.Sorts,
		VisibleColumns: decodeColumns(view.VisibleColumns),
		CreatedBy:      view.CreatedBy,
		CreatedAt:      view.CreatedAt,
		UpdatedAt:      view.UpdatedAt,
	}
}

// decodeColumns reads a JSON array of column ids; anything else yields nil
func decodeColumns(raw []byte) []string {
	if len(raw) == 0 {
		return nil
	}
	var columns []string
	if err := json.Unmarshal(raw, &columns); err != nil {
		return nil
	}
	return columns
}
