package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fleet-field-api/internal/domain"
	"fleet-field-api/internal/dto"
	"fleet-field-api/internal/repository"
	"fleet-field-api/internal/response"
)

// ColumnPrefix prefixes custom column ids so they never collide with static columns
const ColumnPrefix = "custom_"

// ColumnID returns the column id of a field
func ColumnID(fieldID uuid.UUID) string {
	return ColumnPrefix + fieldID.String()
}

// Projection defines the read path that merges custom fields into table rows
type Projection interface {
	Project(ctx context.Context, entityType string, query *dto.ProjectionQuery) (*dto.ProjectionResponse, error)
}

// projectionImpl is the implementation of Projection. It holds no state
// between calls.
type projectionImpl struct {
	fieldRepo  repository.CustomFieldRepository
	optionRepo repository.FieldOptionRepository
	valueRepo  repository.FieldValueRepository
	entityRepo repository.EntityRepository
	viewRepo   repository.SavedViewRepository
	logger     *zap.Logger
}

// NewProjection creates a new instance of Projection
func NewProjection(
	fieldRepo repository.CustomFieldRepository,
	optionRepo repository.FieldOptionRepository,
	valueRepo repository.FieldValueRepository,
	entityRepo repository.EntityRepository,
	viewRepo repository.SavedViewRepository,
	logger *zap.Logger,
) Projection {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &projectionImpl{
		fieldRepo:  fieldRepo,
		optionRepo: optionRepo,
		valueRepo:  valueRepo,
		entityRepo: entityRepo,
		viewRepo:   viewRepo,
		logger:     logger,
	}
}

// Project builds the custom columns of entityType and one cell per applicable
// (row, field). Values are fetched once per field and indexed by entity id.
func (s *projectionImpl) Project(ctx context.Context, entityType string, query *dto.ProjectionQuery) (*dto.ProjectionResponse, error) {
	et, ok := domain.ParseEntityType(entityType)
	if !ok {
		return nil, response.NewValidationError(fmt.Sprintf("Invalid entity type: %s", entityType), "")
	}
	if query == nil {
		query = &dto.ProjectionQuery{}
	}

	order := strings.ToLower(strings.TrimSpace(query.Order))
	if order == "" {
		order = dto.SortAsc
	}
	if order != dto.SortAsc && order != dto.SortDesc {
		return nil, response.NewValidationError(fmt.Sprintf("Invalid sort order: %s", query.Order), "")
	}

	fields, err := s.fieldRepo.List(ctx, &et)
	if err != nil {
		return nil, repositoryError(s.logger, "Failed to fetch custom fields", err)
	}

	if query.ViewID != nil {
		fields, err = s.applyView(ctx, et, *query.ViewID, fields)
		if err != nil {
			return nil, err
		}
	}

	rows, err := s.candidateRows(ctx, et, query.EntityIDs)
	if err != nil {
		return nil, err
	}

	labels, err := s.optionLabels(ctx, fields)
	if err != nil {
		return nil, err
	}

	columns := make([]dto.ProjectionColumn, 0, len(fields))
	for _, field := range fields {
		columns = append(columns, dto.ProjectionColumn{
			ColumnID:           ColumnID(field.ID),
			FieldID:            field.ID,
			Name:               field.Name,
			ScalarType:         string(field.ScalarType),
			DisplayOrder:       field.DisplayOrder,
			EquipmentTypeScope: field.EquipmentTypeScope,
		})

		values, err := s.valueRepo.FindByFieldID(ctx, field.ID)
		if err != nil {
			return nil, repositoryError(s.logger, "Failed to fetch field values", err)
		}
		byEntity := make(map[string]*domain.CustomFieldValue, len(values))
		for _, value := range values {
			byEntity[value.EntityID] = value
		}

		key := field.ID.String()
		for i := range rows {
			if !field.AppliesTo(rows[i].Kind) {
				continue
			}
			rows[i].Cells[key] = resolveCell(byEntity[rows[i].EntityID], labels[field.ID])
		}
	}

	if query.SortBy != nil {
		if !containsField(fields, *query.SortBy) {
			return nil, response.NewValidationError(fmt.Sprintf("Unknown sort column: %s", *query.SortBy), "")
		}
		sortRows(rows, query.SortBy.String(), order == dto.SortDesc)
	}

	return &dto.ProjectionResponse{
		EntityType: string(et),
		Columns:    columns,
		Rows:       rows,
	}, nil
}

// applyView keeps only the columns a saved view lists; an empty list keeps all
func (s *projectionImpl) applyView(ctx context.Context, et domain.EntityType, viewID uuid.UUID, fields []*domain.CustomField) ([]*domain.CustomField, error) {
	view, err := s.viewRepo.FindByID(ctx, viewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Saved view not found", "")
		}
		return nil, repositoryError(s.logger, "Failed to fetch saved view", err)
	}
	if view.EntityType != et {
		return nil, response.NewValidationError(
			fmt.Sprintf("Saved view belongs to %s, not %s", view.EntityType, et), "")
	}

	visible := decodeColumns(view.VisibleColumns)
	if len(visible) == 0 {
		return fields, nil
	}

	wanted := make(map[string]bool, len(visible))
	for _, column := range visible {
		wanted[strings.TrimPrefix(column, ColumnPrefix)] = true
	}

	filtered := make([]*domain.CustomField, 0, len(fields))
	for _, field := range fields {
		if wanted[field.ID.String()] {
			filtered = append(filtered, field)
		}
	}
	return filtered, nil
}

// candidateRows returns the explicit ids in request order, or every
// registered entity of the type. Unknown ids become rows without a kind.
func (s *projectionImpl) candidateRows(ctx context.Context, et domain.EntityType, ids []string) ([]dto.ProjectionRow, error) {
	if len(ids) == 0 {
		entities, err := s.entityRepo.List(ctx, &et)
		if err != nil {
			return nil, repositoryError(s.logger, "Failed to fetch entities", err)
		}
		rows := make([]dto.ProjectionRow, len(entities))
		for i, entity := range entities {
			rows[i] = newRow(entity.ID, entity)
		}
		return rows, nil
	}

	unique := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}

	entities, err := s.entityRepo.FindByIDs(ctx, unique)
	if err != nil {
		return nil, repositoryError(s.logger, "Failed to fetch entities", err)
	}
	known := make(map[string]*domain.Entity, len(entities))
	for _, entity := range entities {
		if entity.EntityType == et {
			known[entity.ID] = entity
		}
	}

	rows := make([]dto.ProjectionRow, len(unique))
	for i, id := range unique {
		rows[i] = newRow(id, known[id])
	}
	return rows, nil
}

// optionLabels maps token to label for every select field, first option wins
func (s *projectionImpl) optionLabels(ctx context.Context, fields []*domain.CustomField) (map[uuid.UUID]map[string]string, error) {
	var selectIDs []uuid.UUID
	for _, field := range fields {
		if field.ScalarType == domain.ScalarTypeSelect {
			selectIDs = append(selectIDs, field.ID)
		}
	}

	labels := make(map[uuid.UUID]map[string]string, len(selectIDs))
	if len(selectIDs) == 0 {
		return labels, nil
	}

	options, err := s.optionRepo.FindByFieldIDs(ctx, selectIDs)
	if err != nil {
		return nil, repositoryError(s.logger, "Failed to fetch field options", err)
	}
	for _, option := range options {
		byToken, ok := labels[option.FieldID]
		if !ok {
			byToken = make(map[string]string)
			labels[option.FieldID] = byToken
		}
		if _, dup := byToken[option.Value]; !dup {
			byToken[option.Value] = option.Label
		}
	}
	return labels, nil
}

func newRow(id string, entity *domain.Entity) dto.ProjectionRow {
	row := dto.ProjectionRow{EntityID: id, Cells: make(map[string]dto.ProjectionCell)}
	if entity != nil {
		row.Kind = entity.Kind
		row.Name = entity.Name
	}
	return row
}

// resolveCell turns a stored value into a cell; a missing value is explicitly empty
func resolveCell(value *domain.CustomFieldValue, labels map[string]string) dto.ProjectionCell {
	if value == nil {
		return dto.ProjectionCell{Empty: true}
	}
	cell, ok := value.Cell()
	if !ok {
		return dto.ProjectionCell{Empty: true}
	}
	result := dto.ProjectionCell{Value: cell.Raw()}
	if sel, ok := cell.(domain.SelectCell); ok {
		result.Label = labels[sel.Token]
	}
	return result
}

func containsField(fields []*domain.CustomField, id uuid.UUID) bool {
	for _, field := range fields {
		if field.ID == id {
			return true
		}
	}
	return false
}

// sortRows orders rows by one custom column. Empty and missing cells go last
// in either direction; numbers compare numerically, text case-insensitively.
func sortRows(rows []dto.ProjectionRow, key string, desc bool) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, aok := rows[i].Cells[key]
		b, bok := rows[j].Cells[key]
		aEmpty := !aok || a.Empty
		bEmpty := !bok || b.Empty
		if aEmpty || bEmpty {
			return !aEmpty && bEmpty
		}
		c := compareCells(a.Value, b.Value)
		if desc {
			return c > 0
		}
		return c < 0
	})
}

func compareCells(a, b interface{}) int {
	an, aNum := a.(int64)
	bn, bNum := b.(int64)
	if aNum && bNum {
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		}
		return 0
	}
	return strings.Compare(strings.ToLower(fmt.Sprint(a)), strings.ToLower(fmt.Sprint(b)))
}
