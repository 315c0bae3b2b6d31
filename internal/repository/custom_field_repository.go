package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-field-api/internal/domain"
)

// CustomFieldRepository defines the interface for custom field data access
type CustomFieldRepository interface {
	Create(ctx context.Context, field *domain.CustomField) error
	CreateWithOptions(ctx context.Context, field *domain.CustomField, options []*domain.CustomFieldOption) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.CustomField, error)
	List(ctx context.Context, entityType *domain.EntityType) ([]*domain.CustomField, error)
	CountByEntityType(ctx context.Context, entityType domain.EntityType) (int64, error)
	Update(ctx context.Context, field *domain.CustomField) error
	DeleteCascade(ctx context.Context, id uuid.UUID) (*CascadeResult, error)
}

// CascadeResult reports how many dependent rows a cascading delete removed
type CascadeResult struct {
	Options int64
	Values  int64
}

// customFieldRepositoryImpl is the GORM implementation of CustomFieldRepository
type customFieldRepositoryImpl struct {
	db *gorm.DB
}

// NewCustomFieldRepository creates a new instance of CustomFieldRepository
func NewCustomFieldRepository(db *gorm.DB) CustomFieldRepository {
	return &customFieldRepositoryImpl{db: db}
}

// Create creates a new custom field
func (r *customFieldRepositoryImpl) Create(ctx context.Context, field *domain.CustomField) error {
	return r.db.WithContext(ctx).Create(field).Error
}

// CreateWithOptions creates a select field and its initial options in one transaction
func (r *customFieldRepositoryImpl) CreateWithOptions(ctx context.Context, field *domain.CustomField, options []*domain.CustomFieldOption) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(field).Error; err != nil {
			return err
		}
		if len(options) == 0 {
			return nil
		}
		for _, opt := range options {
			opt.FieldID = field.ID
		}
		return tx.Create(&options).Error
	})
}

// FindByID finds a custom field by ID
func (r *customFieldRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.CustomField, error) {
	var field domain.CustomField
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&field).Error; err != nil {
		return nil, err
	}
	return &field, nil
}

// List returns fields ordered by display_order, then creation time.
// A nil entityType returns every field.
func (r *customFieldRepositoryImpl) List(ctx context.Context, entityType *domain.EntityType) ([]*domain.CustomField, error) {
	var fields []*domain.CustomField
	query := r.db.WithContext(ctx)
	if entityType != nil {
		query = query.Where("entity_type = ?", *entityType)
	}
	if err := query.
		Order("display_order ASC").
		Order("created_at ASC").
		Find(&fields).Error; err != nil {
		return nil, err
	}
	return fields, nil
}

// CountByEntityType counts fields registered for an entity type
func (r *customFieldRepositoryImpl) CountByEntityType(ctx context.Context, entityType domain.EntityType) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.CustomField{}).
		Where("entity_type = ?", entityType).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Update saves all columns of a custom field
func (r *customFieldRepositoryImpl) Update(ctx context.Context, field *domain.CustomField) error {
	return r.db.WithContext(ctx).Save(field).Error
}

// DeleteCascade deletes a field together with its options and values.
// Returns gorm.ErrRecordNotFound, and rolls back, when the field does not exist.
func (r *customFieldRepositoryImpl) DeleteCascade(ctx context.Context, id uuid.UUID) (*CascadeResult, error) {
	result := &CascadeResult{}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		opts := tx.Where("field_id = ?", id).Delete(&domain.CustomFieldOption{})
		if opts.Error != nil {
			return opts.Error
		}
		result.Options = opts.RowsAffected

		values := tx.Where("field_id = ?", id).Delete(&domain.CustomFieldValue{})
		if values.Error != nil {
			return values.Error
		}
		result.Values = values.RowsAffected

		field := tx.Where("id = ?", id).Delete(&domain.CustomField{})
		if field.Error != nil {
			return field.Error
		}
		if field.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
