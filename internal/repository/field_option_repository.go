package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-field-api/internal/domain"
)

// FieldOptionRepository defines the interface for select option data access
type FieldOptionRepository interface {
	Create(ctx context.Context, option *domain.CustomFieldOption) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.CustomFieldOption, error)
	FindByFieldID(ctx context.Context, fieldID uuid.UUID) ([]*domain.CustomFieldOption, error)
	FindByFieldIDs(ctx context.Context, fieldIDs []uuid.UUID) ([]*domain.CustomFieldOption, error)
	CountByFieldID(ctx context.Context, fieldID uuid.UUID) (int64, error)
	ExistsByFieldAndValue(ctx context.Context, fieldID uuid.UUID, value string) (bool, error)
	Update(ctx context.Context, option *domain.CustomFieldOption) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// fieldOptionRepositoryImpl is the GORM implementation of FieldOptionRepository
type fieldOptionRepositoryImpl struct {
	db *gorm.DB
}

// NewFieldOptionRepository creates a new instance of FieldOptionRepository
func NewFieldOptionRepository(db *gorm.DB) FieldOptionRepository {
	return &fieldOptionRepositoryImpl{db: db}
}

// Create creates a new option
func (r *fieldOptionRepositoryImpl) Create(ctx context.Context, option *domain.CustomFieldOption) error {
	return r.db.WithContext(ctx).Create(option).Error
}

// FindByID finds an option by ID
func (r *fieldOptionRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.CustomFieldOption, error) {
	var option domain.CustomFieldOption
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&option).Error; err != nil {
		return nil, err
	}
	return &option, nil
}

// FindByFieldID finds the options of a field, ordered by display_order
func (r *fieldOptionRepositoryImpl) FindByFieldID(ctx context.Context, fieldID uuid.UUID) ([]*domain.CustomFieldOption, error) {
	var options []*domain.CustomFieldOption
	if err := r.db.WithContext(ctx).
		Where("field_id = ?", fieldID).
		Order("display_order ASC").
		Order("created_at ASC").
		Find(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}

// FindByFieldIDs finds the options of several fields in a single query
func (r *fieldOptionRepositoryImpl) FindByFieldIDs(ctx context.Context, fieldIDs []uuid.UUID) ([]*domain.CustomFieldOption, error) {
	if len(fieldIDs) == 0 {
		return []*domain.CustomFieldOption{}, nil
	}

	var options []*domain.CustomFieldOption
	if err := r.db.WithContext(ctx).
		Where("field_id IN ?", fieldIDs).
		Order("display_order ASC").
		Order("created_at ASC").
		Find(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}

// CountByFieldID counts the options of a field
func (r *fieldOptionRepositoryImpl) CountByFieldID(ctx context.Context, fieldID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.CustomFieldOption{}).
		Where("field_id = ?", fieldID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByFieldAndValue reports whether a field has an option with the given token
func (r *fieldOptionRepositoryImpl) ExistsByFieldAndValue(ctx context.Context, fieldID uuid.UUID, value string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.CustomFieldOption{}).
		Where("field_id = ? AND value = ?", fieldID, value).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update saves all columns of an option
func (r *fieldOptionRepositoryImpl) Update(ctx context.Context, option *domain.CustomFieldOption) error {
	return r.db.WithContext(ctx).Save(option).Error
}

// Delete deletes an option; gorm.ErrRecordNotFound when absent
func (r *fieldOptionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.CustomFieldOption{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
