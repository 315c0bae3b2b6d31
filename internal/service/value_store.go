package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fleet-field-api/internal/domain"
	"fleet-field-api/internal/dto"
	"fleet-field-api/internal/events"
	"fleet-field-api/internal/metrics"
	"fleet-field-api/internal/repository"
	"fleet-field-api/internal/response"
)

// ValueStore defines the interface for the field x entity value matrix
type ValueStore interface {
	GetValuesForEntity(ctx context.Context, entityID string) ([]*dto.FieldValueResponse, error)
	GetValuesForField(ctx context.Context, fieldID uuid.UUID) ([]*dto.FieldValueResponse, error)
	SetValue(ctx context.Context, fieldID uuid.UUID, entityID string, scalarType string, raw interface{}) (*dto.FieldValueResponse, error)
	DeleteValue(ctx context.Context, fieldID uuid.UUID, entityID string) error
}

// valueStoreImpl is the implementation of ValueStore
type valueStoreImpl struct {
	fieldRepo  repository.CustomFieldRepository
	valueRepo  repository.FieldValueRepository
	entityRepo repository.EntityRepository
	notifier   notifier
	logger     *zap.Logger
}

// NewValueStore creates a new instance of ValueStore
func NewValueStore(
	fieldRepo repository.CustomFieldRepository,
	valueRepo repository.FieldValueRepository,
	entityRepo repository.EntityRepository,
	publisher events.Publisher,
	m *metrics.Metrics,
	logger *zap.Logger,
) ValueStore {
	n := newNotifier(publisher, m, logger)
	return &valueStoreImpl{
		fieldRepo:  fieldRepo,
		valueRepo:  valueRepo,
		entityRepo: entityRepo,
		notifier:   n,
		logger:     n.logger,
	}
}

// GetValuesForEntity returns every stored value of one entity
func (s *valueStoreImpl) GetValuesForEntity(ctx context.Context, entityID string) ([]*dto.FieldValueResponse, error) {
	values, err := s.valueRepo.FindByEntityID(ctx, strings.TrimSpace(entityID))
	if err != nil {
		return nil, repositoryError(s.logger, "Failed to fetch field values", err)
	}
	return toFieldValueResponses(values), nil
}

// GetValuesForField returns every stored value of one field
func (s *valueStoreImpl) GetValuesForField(ctx context.Context, fieldID uuid.UUID) ([]*dto.FieldValueResponse, error) {
	values, err := s.valueRepo.FindByFieldID(ctx, fieldID)
	if err != nil {
		return nil, repositoryError(s.logger, "Failed to fetch field values", err)
	}
	return toFieldValueResponses(values), nil
}

// SetValue upserts the cell (fieldID, entityID). The raw value goes into the
// slot of scalarType, which must match the field; the other slots are cleared.
// An existing row keeps its id.
func (s *valueStoreImpl) SetValue(ctx context.Context, fieldID uuid.UUID, entityID string, scalarType string, raw interface{}) (*dto.FieldValueResponse, error) {
	st, err := parseScalarType(scalarType)
	if err != nil {
		return nil, err
	}

	entityID = strings.TrimSpace(entityID)
	if entityID == "" {
		return nil, response.NewValidationError("Entity ID is required", "")
	}

	field, err := s.fieldRepo.FindByID(ctx, fieldID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Custom field not found", "")
		}
		return nil, repositoryError(s.logger, "Failed to fetch custom field", err)
	}
	if field.ScalarType != st {
		return nil, response.NewValidationError(
			fmt.Sprintf("Field %s holds %s values, not %s", field.ID, field.ScalarType, st), "")
	}

	entity, err := s.entityRepo.FindByID(ctx, entityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Entity not found", "")
		}
		return nil, repositoryError(s.logger, "Failed to fetch entity", err)
	}
	if err := checkSubject(field, entity); err != nil {
		return nil, err
	}

	cell, err := domain.NewCell(st, raw)
	if err != nil {
		return nil, response.NewValidationError(fmt.Sprintf("Invalid %s value", st), err.Error())
	}

	value := &domain.CustomFieldValue{FieldID: field.ID, EntityID: entityID}
	value.SetCell(cell)

	stored, err := s.valueRepo.Upsert(ctx, value)
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, response.NewNotFoundError("Custom field or entity no longer exists", "")
		}
		return nil, repositoryError(s.logger, "Failed to store field value", err)
	}

	s.logger.Info("Field value set",
		zap.String("field_id", field.ID.String()),
		zap.String("entity_id", entityID),
		zap.String("value_id", stored.ID.String()),
	)
	s.notifier.publish(ctx, domain.NewChangeEvent(domain.EventValueSet, field.EntityType).
		WithField(field.ID).
		WithEntity(entityID))

	return toFieldValueResponse(stored), nil
}

// DeleteValue removes the cell if present; absence is not an error
func (s *valueStoreImpl) DeleteValue(ctx context.Context, fieldID uuid.UUID, entityID string) error {
	entityID = strings.TrimSpace(entityID)
	if entityID == "" {
		return response.NewValidationError("Entity ID is required", "")
	}

	removed, err := s.valueRepo.Delete(ctx, fieldID, entityID)
	if err != nil {
		return repositoryError(s.logger, "Failed to delete field value", err)
	}
	if !removed {
		return nil
	}

	var entityType domain.EntityType
	if field, err := s.fieldRepo.FindByID(ctx, fieldID); err == nil {
		entityType = field.EntityType
	}

	s.logger.Info("Field value deleted",
		zap.String("field_id", fieldID.String()),
		zap.String("entity_id", entityID),
	)
	s.notifier.publish(ctx, domain.NewChangeEvent(domain.EventValueDeleted, entityType).
		WithField(fieldID).
		WithEntity(entityID))

	return nil
}

// checkSubject rejects entities the field does not apply to
func checkSubject(field *domain.CustomField, entity *domain.Entity) error {
	if entity.EntityType != field.EntityType {
		return response.NewValidationError(
			fmt.Sprintf("Field applies to %s rows, entity %s is %s", field.EntityType, entity.ID, entity.EntityType), "")
	}
	if !field.AppliesTo(entity.Kind) {
		return response.NewValidationError(
			fmt.Sprintf("Field is scoped to %s, entity %s is %q", *field.EquipmentTypeScope, entity.ID, entity.Kind), "")
	}
	return nil
}
