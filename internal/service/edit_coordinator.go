package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cast"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fleet-field-api/internal/domain"
	"fleet-field-api/internal/dto"
	"fleet-field-api/internal/metrics"
	"fleet-field-api/internal/repository"
	"fleet-field-api/internal/response"
)

// ClearSelection is the select input that clears a cell
const ClearSelection = "none"

// EditCoordinator defines the write path for inline cell edits
type EditCoordinator interface {
	SubmitCellEdit(ctx context.Context, fieldID uuid.UUID, entityID string, raw interface{}) (*dto.CellEditResponse, error)
}

// editCoordinatorImpl is the implementation of EditCoordinator
type editCoordinatorImpl struct {
	fieldRepo  repository.CustomFieldRepository
	optionRepo repository.FieldOptionRepository
	values     ValueStore
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewEditCoordinator creates a new instance of EditCoordinator
func NewEditCoordinator(
	fieldRepo repository.CustomFieldRepository,
	optionRepo repository.FieldOptionRepository,
	values ValueStore,
	m *metrics.Metrics,
	logger *zap.Logger,
) EditCoordinator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &editCoordinatorImpl{
		fieldRepo:  fieldRepo,
		optionRepo: optionRepo,
		values:     values,
		metrics:    m,
		logger:     logger,
	}
}

// SubmitCellEdit coerces raw input to the field's scalar type and stores it.
// Blank input, and the "none" selection, delete the cell instead.
func (s *editCoordinatorImpl) SubmitCellEdit(ctx context.Context, fieldID uuid.UUID, entityID string, raw interface{}) (*dto.CellEditResponse, error) {
	field, err := s.fieldRepo.FindByID(ctx, fieldID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Custom field not found", "")
		}
		return nil, repositoryError(s.logger, "Failed to fetch custom field", err)
	}

	entityID = strings.TrimSpace(entityID)
	if entityID == "" {
		return nil, s.reject(field, response.NewValidationError("Entity ID is required", ""))
	}

	coerced, cleared, err := s.coerce(ctx, field, raw)
	if err != nil {
		return nil, s.reject(field, err)
	}

	result := &dto.CellEditResponse{
		FieldID:    field.ID,
		EntityID:   entityID,
		ScalarType: string(field.ScalarType),
	}

	if cleared {
		if err := s.values.DeleteValue(ctx, field.ID, entityID); err != nil {
			return nil, s.reject(field, err)
		}
		result.Cleared = true
		s.metrics.RecordCellEdit(string(field.ScalarType), metrics.EditOutcomeCleared)
		return result, nil
	}

	stored, err := s.values.SetValue(ctx, field.ID, entityID, string(field.ScalarType), coerced)
	if err != nil {
		return nil, s.reject(field, err)
	}
	result.Value = stored
	s.metrics.RecordCellEdit(string(field.ScalarType), metrics.EditOutcomeSet)
	return result, nil
}

// coerce returns the value to store, or cleared=true when the input empties the cell
func (s *editCoordinatorImpl) coerce(ctx context.Context, field *domain.CustomField, raw interface{}) (interface{}, bool, error) {
	switch field.ScalarType {
	case domain.ScalarTypeText:
		text, err := cast.ToStringE(raw)
		if err != nil {
			return nil, false, response.NewValidationError("Text value must be a scalar", err.Error())
		}
		text = strings.TrimSpace(text)
		if text == "" {
			return nil, true, nil
		}
		return text, false, nil

	case domain.ScalarTypeNumber:
		if raw == nil {
			return nil, true, nil
		}
		if str, ok := raw.(string); ok && strings.TrimSpace(str) == "" {
			return nil, true, nil
		}
		n, err := domain.ParseInteger(raw)
		if err != nil {
			return nil, false, response.NewValidationError(fmt.Sprintf("%v is not a valid number", raw), err.Error())
		}
		return n, false, nil

	case domain.ScalarTypeSelect:
		token, err := cast.ToStringE(raw)
		if err != nil {
			return nil, false, response.NewValidationError("Selection must be an option value", err.Error())
		}
		token = strings.TrimSpace(token)
		if token == "" || token == ClearSelection {
			return nil, true, nil
		}
		options, err := s.optionRepo.FindByFieldID(ctx, field.ID)
		if err != nil {
			return nil, false, repositoryError(s.logger, "Failed to fetch field options", err)
		}
		for _, option := range options {
			if option.Value == token {
				return token, false, nil
			}
		}
		return nil, false, response.NewValidationError(fmt.Sprintf("%q is not an option of this field", token), "")
	}

	return nil, false, response.NewValidationError(fmt.Sprintf("Unsupported scalar type: %s", field.ScalarType), "")
}

// reject counts validation failures before handing the error back
func (s *editCoordinatorImpl) reject(field *domain.CustomField, err error) error {
	if response.IsCode(err, response.ErrCodeValidation) {
		s.metrics.RecordCellEdit(string(field.ScalarType), metrics.EditOutcomeRejected)
	}
	return err
}
