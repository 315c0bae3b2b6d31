package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"fleet-field-api/internal/domain"
	"fleet-field-api/internal/dto"
	"fleet-field-api/internal/events"
	"fleet-field-api/internal/metrics"
	"fleet-field-api/internal/repository"
	"fleet-field-api/internal/response"
)

// FieldRegistry defines the interface for custom field definitions
type FieldRegistry interface {
	ListFields(ctx context.Context, entityType string) ([]*dto.CustomFieldResponse, error)
	GetField(ctx context.Context, fieldID uuid.UUID) (*dto.CustomFieldResponse, error)
	CreateField(ctx context.Context, req *dto.CreateCustomFieldRequest) (*dto.CustomFieldResponse, error)
	UpdateField(ctx context.Context, fieldID uuid.UUID, req *dto.UpdateCustomFieldRequest) (*dto.CustomFieldResponse, error)
	DeleteField(ctx context.Context, fieldID uuid.UUID) error
}

// fieldRegistryImpl is the implementation of FieldRegistry
type fieldRegistryImpl struct {
	fieldRepo repository.CustomFieldRepository
	notifier  notifier
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewFieldRegistry creates a new instance of FieldRegistry
func NewFieldRegistry(
	fieldRepo repository.CustomFieldRepository,
	publisher events.Publisher,
	m *metrics.Metrics,
	logger *zap.Logger,
) FieldRegistry {
	n := newNotifier(publisher, m, logger)
	return &fieldRegistryImpl{
		fieldRepo: fieldRepo,
		notifier:  n,
		metrics:   m,
		logger:    n.logger,
	}
}

// ListFields returns fields in column order. An empty entity type lists every field.
func (s *fieldRegistryImpl) ListFields(ctx context.Context, entityType string) ([]*dto.CustomFieldResponse, error) {
	var filter *domain.EntityType
	if strings.TrimSpace(entityType) != "" {
		et, ok := domain.ParseEntityType(entityType)
		if !ok {
			return nil, response.NewValidationError(fmt.Sprintf("Invalid entity type: %s", entityType), "")
		}
		filter = &et
	}

	fields, err := s.fieldRepo.List(ctx, filter)
	if err != nil {
		return nil, repositoryError(s.logger, "Failed to fetch custom fields", err)
	}

	responses := make([]*dto.CustomFieldResponse, len(fields))
	for i, field := range fields {
		responses[i] = toCustomFieldResponse(field)
	}
	return responses, nil
}

// GetField returns a single field
func (s *fieldRegistryImpl) GetField(ctx context.Context, fieldID uuid.UUID) (*dto.CustomFieldResponse, error) {
	field, err := s.findField(ctx, fieldID)
	if err != nil {
		return nil, err
	}
	return toCustomFieldResponse(field), nil
}

// CreateField registers a field. Without an explicit display order the field
// is appended after the existing fields of its entity type.
func (s *fieldRegistryImpl) CreateField(ctx context.Context, req *dto.CreateCustomFieldRequest) (*dto.CustomFieldResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, response.NewValidationError("Field name is required", "")
	}

	scalarType, err := parseScalarType(req.ScalarType)
	if err != nil {
		return nil, err
	}

	entityType, ok := domain.ParseEntityType(req.EntityType)
	if !ok {
		return nil, response.NewValidationError(fmt.Sprintf("Invalid entity type: %s", req.EntityType), "")
	}

	if len(req.Options) > 0 && scalarType != domain.ScalarTypeSelect {
		return nil, response.NewValidationError("Options are only allowed on select fields", "")
	}

	field := &domain.CustomField{
		Name:               name,
		ScalarType:         scalarType,
		EntityType:         entityType,
		EquipmentTypeScope: normalizeScope(req.EquipmentTypeScope),
		Metadata:           datatypes.JSONMap(req.Metadata),
	}

	if req.DisplayOrder != nil {
		field.DisplayOrder = *req.DisplayOrder
	} else {
		count, err := s.fieldRepo.CountByEntityType(ctx, entityType)
		if err != nil {
			return nil, repositoryError(s.logger, "Failed to count custom fields", err)
		}
		field.DisplayOrder = int(count)
	}

	options := make([]*domain.CustomFieldOption, 0, len(req.Options))
	for i, optReq := range req.Options {
		label := strings.TrimSpace(optReq.Label)
		if label == "" {
			return nil, response.NewValidationError("Option label is required", "")
		}
		value, err := optionToken(label, optReq.Value)
		if err != nil {
			return nil, err
		}
		order := i
		if optReq.DisplayOrder != nil {
			order = *optReq.DisplayOrder
		}
		options = append(options, &domain.CustomFieldOption{
			Label:        label,
			Value:        value,
			DisplayOrder: order,
		})
	}

	if len(options) > 0 {
		err = s.fieldRepo.CreateWithOptions(ctx, field, options)
	} else {
		err = s.fieldRepo.Create(ctx, field)
	}
	if err != nil {
		return nil, repositoryError(s.logger, "Failed to create custom field", err)
	}

	s.metrics.IncrementFieldCreated()
	s.logger.Info("Custom field created",
		zap.String("field_id", field.ID.String()),
		zap.String("entity_type", string(field.EntityType)),
		zap.String("scalar_type", string(field.ScalarType)),
		zap.Int("display_order", field.DisplayOrder),
		zap.Int("options", len(options)),
	)
	s.notifier.publish(ctx, domain.NewChangeEvent(domain.EventFieldCreated, field.EntityType).WithField(field.ID))

	resp := toCustomFieldResponse(field)
	for _, option := range options {
		resp.Options = append(resp.Options, toFieldOptionResponse(option))
	}
	return resp, nil
}

// UpdateField merges the supplied attributes over the stored field.
// The scalar and entity types are fixed once created.
func (s *fieldRegistryImpl) UpdateField(ctx context.Context, fieldID uuid.UUID, req *dto.UpdateCustomFieldRequest) (*dto.CustomFieldResponse, error) {
	field, err := s.findField(ctx, fieldID)
	if err != nil {
		return nil, err
	}

	if req.ScalarType != nil {
		scalarType, err := parseScalarType(*req.ScalarType)
		if err != nil {
			return nil, err
		}
		if scalarType != field.ScalarType {
			return nil, response.NewValidationError("Scalar type cannot be changed after creation", "")
		}
	}

	if req.EntityType != nil {
		entityType, ok := domain.ParseEntityType(*req.EntityType)
		if !ok {
			return nil, response.NewValidationError(fmt.Sprintf("Invalid entity type: %s", *req.EntityType), "")
		}
		if entityType != field.EntityType {
			return nil, response.NewValidationError("Entity type cannot be changed after creation", "")
		}
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, response.NewValidationError("Field name is required", "")
		}
		field.Name = name
	}
	if req.DisplayOrder != nil {
		field.DisplayOrder = *req.DisplayOrder
	}
	if req.EquipmentTypeScope != nil {
		field.EquipmentTypeScope = normalizeScope(req.EquipmentTypeScope)
	}
	if req.Metadata != nil {
		field.Metadata = datatypes.JSONMap(req.Metadata)
	}

	if err := s.fieldRepo.Update(ctx, field); err != nil {
		return nil, repositoryError(s.logger, "Failed to update custom field", err)
	}

	s.logger.Info("Custom field updated", zap.String("field_id", field.ID.String()))
	s.notifier.publish(ctx, domain.NewChangeEvent(domain.EventFieldUpdated, field.EntityType).WithField(field.ID))

	return toCustomFieldResponse(field), nil
}

// DeleteField removes a field with its options and values in one transaction
func (s *fieldRegistryImpl) DeleteField(ctx context.Context, fieldID uuid.UUID) error {
	field, err := s.findField(ctx, fieldID)
	if err != nil {
		return err
	}

	result, err := s.fieldRepo.DeleteCascade(ctx, fieldID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Custom field not found", "")
		}
		return repositoryError(s.logger, "Failed to delete custom field", err)
	}

	s.metrics.IncrementFieldDeleted()
	s.logger.Info("Custom field deleted",
		zap.String("field_id", fieldID.String()),
		zap.Int64("options_removed", result.Options),
		zap.Int64("values_removed", result.Values),
	)
	s.notifier.publish(ctx, domain.NewChangeEvent(domain.EventFieldDeleted, field.EntityType).WithField(fieldID))

	return nil
}

func (s *fieldRegistryImpl) findField(ctx context.Context, fieldID uuid.UUID) (*domain.CustomField, error) {
	field, err := s.fieldRepo.FindByID(ctx, fieldID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Custom field not found", "")
		}
		return nil, repositoryError(s.logger, "Failed to fetch custom field", err)
	}
	return field, nil
}

// parseScalarType validates a scalar type from user input
func parseScalarType(raw string) (domain.ScalarType, error) {
	scalarType := domain.ScalarType(strings.ToLower(strings.TrimSpace(raw)))
	if !scalarType.Valid() {
		return "", response.NewValidationError(fmt.Sprintf("Invalid scalar type: %s", raw), "")
	}
	return scalarType, nil
}

// normalizeScope trims the scope; blank means unscoped
func normalizeScope(scope *string) *string {
	if scope == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*scope)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// optionToken returns the explicit token, or one derived from the label
func optionToken(label, explicit string) (string, error) {
	if value := strings.TrimSpace(explicit); value != "" {
		return value, nil
	}
	value := domain.NormalizeOptionToken(label)
	if value == "" {
		return "", response.NewValidationError(fmt.Sprintf("Option label %q does not produce a usable value", label), "")
	}
	return value, nil
}
