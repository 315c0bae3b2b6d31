package service

import (
	"context"
	"errors"
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

// OptionCatalog defines the interface for select field options
type OptionCatalog interface {
	ListOptions(ctx context.Context, fieldID uuid.UUID) ([]*dto.FieldOptionResponse, error)
	CreateOption(ctx context.Context, fieldID uuid.UUID, req *dto.CreateFieldOptionRequest) (*dto.FieldOptionResponse, error)
	UpdateOption(ctx context.Context, optionID uuid.UUID, req *dto.UpdateFieldOptionRequest) (*dto.FieldOptionResponse, error)
	DeleteOption(ctx context.Context, optionID uuid.UUID) error
}

// optionCatalogImpl is the implementation of OptionCatalog
type optionCatalogImpl struct {
	fieldRepo  repository.CustomFieldRepository
	optionRepo repository.FieldOptionRepository
	notifier   notifier
	logger     *zap.Logger
}

// NewOptionCatalog creates a new instance of OptionCatalog
func NewOptionCatalog(
	fieldRepo repository.CustomFieldRepository,
	optionRepo repository.FieldOptionRepository,
	publisher events.Publisher,
	m *metrics.Metrics,
	logger *zap.Logger,
) OptionCatalog {
	n := newNotifier(publisher, m, logger)
	return &optionCatalogImpl{
		fieldRepo:  fieldRepo,
		optionRepo: optionRepo,
		notifier:   n,
		logger:     n.logger,
	}
}

// ListOptions returns the options of a field in picker order.
// An unknown field has no options.
func (s *optionCatalogImpl) ListOptions(ctx context.Context, fieldID uuid.UUID) ([]*dto.FieldOptionResponse, error) {
	options, err := s.optionRepo.FindByFieldID(ctx, fieldID)
	if err != nil {
		return nil, repositoryError(s.logger, "Failed to fetch field options", err)
	}

	responses := make([]*dto.FieldOptionResponse, len(options))
	for i, option := range options {
		responses[i] = toFieldOptionResponse(option)
	}
	return responses, nil
}

// CreateOption adds an option to a select field. Duplicate tokens are
// accepted; cells holding that token then match the first option.
func (s *optionCatalogImpl) CreateOption(ctx context.Context, fieldID uuid.UUID, req *dto.CreateFieldOptionRequest) (*dto.FieldOptionResponse, error) {
	field, err := s.fieldRepo.FindByID(ctx, fieldID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Custom field not found", "")
		}
		return nil, repositoryError(s.logger, "Failed to fetch custom field", err)
	}
	if field.ScalarType != domain.ScalarTypeSelect {
		return nil, response.NewValidationError("Options can only be added to select fields", "")
	}

	label := strings.TrimSpace(req.Label)
	if label == "" {
		return nil, response.NewValidationError("Option label is required", "")
	}
	value, err := optionToken(label, req.Value)
	if err != nil {
		return nil, err
	}

	exists, err := s.optionRepo.ExistsByFieldAndValue(ctx, fieldID, value)
	if err != nil {
		return nil, repositoryError(s.logger, "Failed to check for duplicates", err)
	}
	if exists {
		s.logger.Warn("Duplicate option value",
			zap.String("field_id", fieldID.String()),
			zap.String("value", value),
		)
	}

	option := &domain.CustomFieldOption{
		FieldID: fieldID,
		Label:   label,
		Value:   value,
	}
	if req.DisplayOrder != nil {
		option.DisplayOrder = *req.DisplayOrder
	} else {
		count, err := s.optionRepo.CountByFieldID(ctx, fieldID)
		if err != nil {
			return nil, repositoryError(s.logger, "Failed to count field options", err)
		}
		option.DisplayOrder = int(count)
	}

	if err := s.optionRepo.Create(ctx, option); err != nil {
		return nil, repositoryError(s.logger, "Failed to create field option", err)
	}

	s.logger.Info("Field option created",
		zap.String("option_id", option.ID.String()),
		zap.String("field_id", fieldID.String()),
		zap.String("value", value),
	)
	s.notifier.publish(ctx, domain.NewChangeEvent(domain.EventOptionCreated, field.EntityType).
		WithField(fieldID).
		WithOption(option.ID))

	return toFieldOptionResponse(option), nil
}

// UpdateOption updates label, value or order of an option.
// Cells already holding the old token are not rewritten.
func (s *optionCatalogImpl) UpdateOption(ctx context.Context, optionID uuid.UUID, req *dto.UpdateFieldOptionRequest) (*dto.FieldOptionResponse, error) {
	option, err := s.findOption(ctx, optionID)
	if err != nil {
		return nil, err
	}

	if req.Label != nil {
		label := strings.TrimSpace(*req.Label)
		if label == "" {
			return nil, response.NewValidationError("Option label is required", "")
		}
		option.Label = label
	}
	if req.Value != nil {
		value := strings.TrimSpace(*req.Value)
		if value == "" {
			return nil, response.NewValidationError("Option value must not be empty", "")
		}
		option.Value = value
	}
	if req.DisplayOrder != nil {
		option.DisplayOrder = *req.DisplayOrder
	}

	if err := s.optionRepo.Update(ctx, option); err != nil {
		return nil, repositoryError(s.logger, "Failed to update field option", err)
	}

	s.logger.Info("Field option updated", zap.String("option_id", optionID.String()))
	s.notifier.publish(ctx, domain.NewChangeEvent(domain.EventOptionUpdated, s.entityTypeOf(ctx, option.FieldID)).
		WithField(option.FieldID).
		WithOption(optionID))

	return toFieldOptionResponse(option), nil
}

// DeleteOption removes a single option
func (s *optionCatalogImpl) DeleteOption(ctx context.Context, optionID uuid.UUID) error {
	option, err := s.findOption(ctx, optionID)
	if err != nil {
		return err
	}

	if err := s.optionRepo.Delete(ctx, optionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Field option not found", "")
		}
		return repositoryError(s.logger, "Failed to delete field option", err)
	}

	s.logger.Info("Field option deleted",
		zap.String("option_id", optionID.String()),
		zap.String("field_id", option.FieldID.String()),
	)
	s.notifier.publish(ctx, domain.NewChangeEvent(domain.EventOptionDeleted, s.entityTypeOf(ctx, option.FieldID)).
		WithField(option.FieldID).
		WithOption(optionID))

	return nil
}

func (s *optionCatalogImpl) findOption(ctx context.Context, optionID uuid.UUID) (*domain.CustomFieldOption, error) {
	option, err := s.optionRepo.FindByID(ctx, optionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Field option not found", "")
		}
		return nil, repositoryError(s.logger, "Failed to fetch field option", err)
	}
	return option, nil
}

// entityTypeOf labels an event; a lookup failure leaves the type blank
func (s *optionCatalogImpl) entityTypeOf(ctx context.Context, fieldID uuid.UUID) domain.EntityType {
	field, err := s.fieldRepo.FindByID(ctx, fieldID)
	if err != nil {
		return ""
	}
	return field.EntityType
}
