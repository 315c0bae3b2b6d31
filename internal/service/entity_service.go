package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"fleet-field-api/internal/domain"
	"fleet-field-api/internal/dto"
	"fleet-field-api/internal/events"
	"fleet-field-api/internal/metrics"
	"fleet-field-api/internal/repository"
	"fleet-field-api/internal/response"
)

const maxEntityIDLength = 100

// EntityService defines the interface for the field value subject registry
type EntityService interface {
	UpsertEntity(ctx context.Context, entityID string, req *dto.UpsertEntityRequest) (*dto.EntityResponse, error)
	ListEntities(ctx context.Context, entityType string) ([]*dto.EntityResponse, error)
	DeleteEntity(ctx context.Context, entityID string) error
}

// entityServiceImpl is the implementation of EntityService
type entityServiceImpl struct {
	entityRepo repository.EntityRepository
	notifier   notifier
	logger     *zap.Logger
}

// NewEntityService creates a new instance of EntityService
func NewEntityService(
	entityRepo repository.EntityRepository,
	publisher events.Publisher,
	m *metrics.Metrics,
	logger *zap.Logger,
) EntityService {
	n := newNotifier(publisher, m, logger)
	return &entityServiceImpl{
		entityRepo: entityRepo,
		notifier:   n,
		logger:     n.logger,
	}
}

// UpsertEntity registers a subject or updates its kind and name.
// An existing subject keeps its entity type.
func (s *entityServiceImpl) UpsertEntity(ctx context.Context, entityID string, req *dto.UpsertEntityRequest) (*dto.EntityResponse, error) {
	entityID = strings.TrimSpace(entityID)
	if entityID == "" {
		return nil, response.NewValidationError("Entity ID is required", "")
	}
	if len(entityID) > maxEntityIDLength {
		return nil, response.NewValidationError(fmt.Sprintf("Entity ID must be at most %d characters", maxEntityIDLength), "")
	}

	entityType, ok := domain.ParseEntityType(req.EntityType)
	if !ok {
		return nil, response.NewValidationError(fmt.Sprintf("Invalid entity type: %s", req.EntityType), "")
	}

	existing, err := s.entityRepo.FindByID(ctx, entityID)
	switch {
	case err == nil:
		if existing.EntityType != entityType {
			return nil, response.NewValidationError(
				fmt.Sprintf("Entity %s is already registered as %s", entityID, existing.EntityType), "")
		}
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, repositoryError(s.logger, "Failed to fetch entity", err)
	}

	stored, err := s.entityRepo.Upsert(ctx, &domain.Entity{
		ID:         entityID,
		EntityType: entityType,
		Kind:       strings.TrimSpace(req.Kind),
		Name:       strings.TrimSpace(req.Name),
	})
	if err != nil {
		return nil, repositoryError(s.logger, "Failed to save entity", err)
	}

	s.logger.Info("Entity saved",
		zap.String("entity_id", stored.ID),
		zap.String("entity_type", string(stored.EntityType)),
		zap.String("kind", stored.Kind),
	)
	return toEntityResponse(stored), nil
}

// ListEntities lists subjects ordered by id
func (s *entityServiceImpl) ListEntities(ctx context.Context, entityType string) ([]*dto.EntityResponse, error) {
	var filter *domain.EntityType
	if strings.TrimSpace(entityType) != "" {
		et, ok := domain.ParseEntityType(entityType)
		if !ok {
			return nil, response.NewValidationError(fmt.Sprintf("Invalid entity type: %s", entityType), "")
		}
		filter = &et
	}

	entities, err := s.entityRepo.List(ctx, filter)
	if err != nil {
		return nil, repositoryError(s.logger, "Failed to fetch entities", err)
	}

	responses := make([]*dto.EntityResponse, len(entities))
	for i, entity := range entities {
		responses[i] = toEntityResponse(entity)
	}
	return responses, nil
}

// DeleteEntity removes a subject together with all of its values
func (s *entityServiceImpl) DeleteEntity(ctx context.Context, entityID string) error {
	entityID = strings.TrimSpace(entityID)
	entity, err := s.entityRepo.FindByID(ctx, entityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Entity not found", "")
		}
		return repositoryError(s.logger, "Failed to fetch entity", err)
	}

	removed, err := s.entityRepo.DeleteCascade(ctx, entityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Entity not found", "")
		}
		return repositoryError(s.logger, "Failed to delete entity", err)
	}

	s.logger.Info("Entity deleted",
		zap.String("entity_id", entityID),
		zap.Int64("values_removed", removed),
	)
	s.notifier.publish(ctx, domain.NewChangeEvent(domain.EventEntityDeleted, entity.EntityType).WithEntity(entityID))

	return nil
}
