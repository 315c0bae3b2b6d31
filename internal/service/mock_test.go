package service

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"fleet-field-api/internal/domain"
	"fleet-field-api/internal/repository"
)

// MockCustomFieldRepository is a mock implementation of CustomFieldRepository
type MockCustomFieldRepository struct {
	CreateFunc            func(ctx context.Context, field *domain.CustomField) error
	CreateWithOptionsFunc func(ctx context.Context, field *domain.CustomField, options []*domain.CustomFieldOption) error
	FindByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.CustomField, error)
	ListFunc              func(ctx context.Context, entityType *domain.EntityType) ([]*domain.CustomField, error)
	CountByEntityTypeFunc func(ctx context.Context, entityType domain.EntityType) (int64, error)
	UpdateFunc            func(ctx context.Context, field *domain.CustomField) error
	DeleteCascadeFunc     func(ctx context.Context, id uuid.UUID) (*repository.CascadeResult, error)
}

func (m *MockCustomFieldRepository) Create(ctx context.Context, field *domain.CustomField) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, field)
	}
	return nil
}

func (m *MockCustomFieldRepository) CreateWithOptions(ctx context.Context, field *domain.CustomField, options []*domain.CustomFieldOption) error {
	if m.CreateWithOptionsFunc != nil {
		return m.CreateWithOptionsFunc(ctx, field, options)
	}
	return nil
}

func (m *MockCustomFieldRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.CustomField, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCustomFieldRepository) List(ctx context.Context, entityType *domain.EntityType) ([]*domain.CustomField, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, entityType)
	}
	return nil, nil
}

func (m *MockCustomFieldRepository) CountByEntityType(ctx context.Context, entityType domain.EntityType) (int64, error) {
	if m.CountByEntityTypeFunc != nil {
		return m.CountByEntityTypeFunc(ctx, entityType)
	}
	return 0, nil
}

func (m *MockCustomFieldRepository) Update(ctx context.Context, field *domain.CustomField) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, field)
	}
	return nil
}

func (m *MockCustomFieldRepository) DeleteCascade(ctx context.Context, id uuid.UUID) (*repository.CascadeResult, error) {
	if m.DeleteCascadeFunc != nil {
		return m.DeleteCascadeFunc(ctx, id)
	}
	return &repository.CascadeResult{}, nil
}

// MockFieldValueRepository is a mock implementation of FieldValueRepository
type MockFieldValueRepository struct {
	UpsertFunc               func(ctx context.Context, value *domain.CustomFieldValue) (*domain.CustomFieldValue, error)
	FindByFieldAndEntityFunc func(ctx context.Context, fieldID uuid.UUID, entityID string) (*domain.CustomFieldValue, error)
	FindByEntityIDFunc       func(ctx context.Context, entityID string) ([]*domain.CustomFieldValue, error)
	FindByFieldIDFunc        func(ctx context.Context, fieldID uuid.UUID) ([]*domain.CustomFieldValue, error)
	DeleteFunc               func(ctx context.Context, fieldID uuid.UUID, entityID string) (bool, error)
}

func (m *MockFieldValueRepository) Upsert(ctx context.Context, value *domain.CustomFieldValue) (*domain.CustomFieldValue, error) {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, value)
	}
	return value, nil
}

func (m *MockFieldValueRepository) FindByFieldAndEntity(ctx context.Context, fieldID uuid.UUID, entityID string) (*domain.CustomFieldValue, error) {
	if m.FindByFieldAndEntityFunc != nil {
		return m.FindByFieldAndEntityFunc(ctx, fieldID, entityID)
	}
	return nil, nil
}

func (m *MockFieldValueRepository) FindByEntityID(ctx context.Context, entityID string) ([]*domain.CustomFieldValue, error) {
	if m.FindByEntityIDFunc != nil {
		return m.FindByEntityIDFunc(ctx, entityID)
	}
	return nil, nil
}

func (m *MockFieldValueRepository) FindByFieldID(ctx context.Context, fieldID uuid.UUID) ([]*domain.CustomFieldValue, error) {
	if m.FindByFieldIDFunc != nil {
		return m.FindByFieldIDFunc(ctx, fieldID)
	}
	return nil, nil
}

func (m *MockFieldValueRepository) Delete(ctx context.Context, fieldID uuid.UUID, entityID string) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, fieldID, entityID)
	}
	return false, nil
}

// MockEntityRepository is a mock implementation of EntityRepository
type MockEntityRepository struct {
	UpsertFunc        func(ctx context.Context, entity *domain.Entity) (*domain.Entity, error)
	FindByIDFunc      func(ctx context.Context, id string) (*domain.Entity, error)
	FindByIDsFunc     func(ctx context.Context, ids []string) ([]*domain.Entity, error)
	ListFunc          func(ctx context.Context, entityType *domain.EntityType) ([]*domain.Entity, error)
	DeleteCascadeFunc func(ctx context.Context, id string) (int64, error)
}

func (m *MockEntityRepository) Upsert(ctx context.Context, entity *domain.Entity) (*domain.Entity, error) {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, entity)
	}
	return entity, nil
}

func (m *MockEntityRepository) FindByID(ctx context.Context, id string) (*domain.Entity, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockEntityRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Entity, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *MockEntityRepository) List(ctx context.Context, entityType *domain.EntityType) ([]*domain.Entity, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, entityType)
	}
	return nil, nil
}

func (m *MockEntityRepository) DeleteCascade(ctx context.Context, id string) (int64, error) {
	if m.DeleteCascadeFunc != nil {
		return m.DeleteCascadeFunc(ctx, id)
	}
	return 0, nil
}

// recordingPublisher keeps every published event and fails with err when set
type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.ChangeEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event domain.ChangeEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) types() []domain.ChangeEventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]domain.ChangeEventType, len(p.events))
	for i, event := range p.events {
		types[i] = event.Type
	}
	return types
}

func (p *recordingPublisher) last() domain.ChangeEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.events[len(p.events)-1]
}

func (p *recordingPublisher) reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = nil
}
