package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-field-api/internal/domain"
)

// SavedViewRepository defines the interface for saved view data access
type SavedViewRepository interface {
	Create(ctx context.Context, view *domain.SavedView) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.SavedView, error)
	List(ctx context.Context, entityType *domain.EntityType) ([]*domain.SavedView, error)
	Update(ctx context.Context, view *domain.SavedView) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type savedViewRepositoryImpl struct {
	db *gorm.DB
}

// NewSavedViewRepository creates a new instance of SavedViewRepository
func NewSavedViewRepository(db *gorm.DB) SavedViewRepository {
	return &savedViewRepositoryImpl{db: db}
}

func (r *savedViewRepositoryImpl) Create(ctx context.Context, view *domain.SavedView) error {
	return r.db.WithContext(ctx).Create(view).Error
}

func (r *savedViewRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.SavedView, error) {
	var view domain.SavedView
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&view).Error; err != nil {
		return nil, err
	}
	return &view, nil
}

func (r *savedViewRepositoryImpl) List(ctx context.Context, entityType *domain.EntityType) ([]*domain.SavedView, error) {
	var views []*domain.SavedView
	query := r.db.WithContext(ctx)
	if entityType != nil {
		query = query.Where("entity_type = ?", *entityType)
	}
	if err := query.Order("created_at ASC").Find(&views).Error; err != nil {
		return nil, err
	}
	return views, nil
}

func (r *savedViewRepositoryImpl) Update(ctx context.Context, view *domain.SavedView) error {
	return r.db.WithContext(ctx).Save(view).Error
}

func (r *savedViewRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.SavedView{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
