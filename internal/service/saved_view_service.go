package service

import (
	"context"
	"encoding/json"
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

// SavedViewService defines the interface for saved table configurations
type SavedViewService interface {
	ListViews(ctx context.Context, entityType string) ([]*dto.SavedViewResponse, error)
	GetView(ctx context.Context, viewID uuid.UUID) (*dto.SavedViewResponse, error)
	CreateView(ctx context.Context, req *dto.CreateSavedViewRequest, createdBy string) (*dto.SavedViewResponse, error)
	UpdateView(ctx context.Context, viewID uuid.UUID, req *dto.UpdateSavedViewRequest) (*dto.SavedViewResponse, error)
	DeleteView(ctx context.Context, viewID uuid.UUID) error
}

// savedViewServiceImpl is the implementation of SavedViewService
type savedViewServiceImpl struct {
	viewRepo repository.SavedViewRepository
	notifier notifier
	logger   *zap.Logger
}

// NewSavedViewService creates a new instance of SavedViewService
func NewSavedViewService(
	viewRepo repository.SavedViewRepository,
	publisher events.Publisher,
	m *metrics.Metrics,
	logger *zap.Logger,
) SavedViewService {
	n := newNotifier(publisher, m, logger)
	return &savedViewServiceImpl{
		viewRepo: viewRepo,
		notifier: n,
		logger:   n.logger,
	}
}

// ListViews lists saved views, optionally for one entity type
func (s *savedViewServiceImpl) ListViews(ctx context.Context, entityType string) ([]*dto.SavedViewResponse, error) {
	var filter *domain.EntityType
	if strings.TrimSpace(entityType) != "" {
		et, ok := domain.ParseEntityType(entityType)
		if !ok {
			return nil, response.NewValidationError(fmt.Sprintf("Invalid entity type: %s", entityType), "")
		}
		filter = &et
	}

	views, err := s.viewRepo.List(ctx, filter)
	if err != nil {
		return nil, repositoryError(s.logger, "Failed to fetch saved views", err)
	}

	responses := make([]*dto.SavedViewResponse, len(views))
	for i, view := range views {
		responses[i] = toSavedViewResponse(view)
	}
	return responses, nil
}

// GetView returns a single saved view
func (s *savedViewServiceImpl) GetView(ctx context.Context, viewID uuid.UUID) (*dto.SavedViewResponse, error) {
	view, err := s.findView(ctx, viewID)
	if err != nil {
		return nil, err
	}
	return toSavedViewResponse(view), nil
}

// CreateView saves a view. createdBy is empty when auth is disabled.
func (s *savedViewServiceImpl) CreateView(ctx context.Context, req *dto.CreateSavedViewRequest, createdBy string) (*dto.SavedViewResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, response.NewValidationError("View name is required", "")
	}

	entityType, ok := domain.ParseEntityType(req.EntityType)
	if !ok {
		return nil, response.NewValidationError(fmt.Sprintf("Invalid entity type: %s", req.EntityType), "")
	}

	columns, err := encodeColumns(req.VisibleColumns)
	if err != nil {
		return nil, err
	}

	view := &domain.SavedView{
		Name:           name,
		EntityType:     entityType,
		Filters:        req.Filters,
		Sorts:          req.Sorts,
		VisibleColumns: columns,
	}
	if createdBy != "" {
		view.CreatedBy = &createdBy
	}

	if err := s.viewRepo.Create(ctx, view); err != nil {
		return nil, repositoryError(s.logger, "Failed to create saved view", err)
	}

	s.logger.Info("Saved view created",
		zap.String("view_id", view.ID.String()),
		zap.String("entity_type", string(entityType)),
	)
	s.notifier.publish(ctx, domain.NewChangeEvent(domain.EventViewCreated, entityType).WithView(view.ID))

	return toSavedViewResponse(view), nil
}

// UpdateView merges the supplied attributes over the stored view
func (s *savedViewServiceImpl) UpdateView(ctx context.Context, viewID uuid.UUID, req *dto.UpdateSavedViewRequest) (*dto.SavedViewResponse, error) {
	view, err := s.findView(ctx, viewID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, response.NewValidationError("View name is required", "")
		}
		view.Name = name
	}
	if req.Filters != nil {
		view.Filters = req.Filters
	}
	if req.Sorts != nil {
		view.Sorts = req.Sorts
	}
	if req.VisibleColumns != nil {
		columns, err := encodeColumns(req.VisibleColumns)
		if err != nil {
			return nil, err
		}
		view.VisibleColumns = columns
	}

	if err := s.viewRepo.Update(ctx, view); err != nil {
		return nil, repositoryError(s.logger, "Failed to update saved view", err)
	}

	s.logger.Info("Saved view updated", zap.String("view_id", viewID.String()))
	s.notifier.publish(ctx, domain.NewChangeEvent(domain.EventViewUpdated, view.EntityType).WithView(viewID))

	return toSavedViewResponse(view), nil
}

// DeleteView removes a saved view
func (s *savedViewServiceImpl) DeleteView(ctx context.Context, viewID uuid.UUID) error {
	view, err := s.findView(ctx, viewID)
	if err != nil {
		return err
	}

	if err := s.viewRepo.Delete(ctx, viewID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Saved view not found", "")
		}
		return repositoryError(s.logger, "Failed to delete saved view", err)
	}

	s.logger.Info("Saved view deleted", zap.String("view_id", viewID.String()))
	s.notifier.publish(ctx, domain.NewChangeEvent(domain.EventViewDeleted, view.EntityType).WithView(viewID))

	return nil
}

func (s *savedViewServiceImpl) findView(ctx context.Context, viewID uuid.UUID) (*domain.SavedView, error) {
	view, err := s.viewRepo.FindByID(ctx, viewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Saved view not found", "")
		}
		return nil, repositoryError(s.logger, "Failed to fetch saved view", err)
	}
	return view, nil
}

// encodeColumns stores visible column ids as a JSON array
func encodeColumns(columns []string) (datatypes.JSON, error) {
	if columns == nil {
		return nil, nil
	}
	trimmed := make([]string, 0, len(columns))
	for _, column := range columns {
		if column = strings.TrimSpace(column); column != "" {
			trimmed = append(trimmed, column)
		}
	}
	raw, err := json.Marshal(trimmed)
	if err != nil {
		return nil, response.NewValidationError("Invalid visible columns", err.Error())
	}
	return datatypes.JSON(raw), nil
}
