package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fleet-field-api/internal/domain"
)

// FieldValueRepository defines the interface for cell value data access
type FieldValueRepository interface {
	Upsert(ctx context.Context, value *domain.CustomFieldValue) (*domain.CustomFieldValue, error)
	FindByFieldAndEntity(ctx context.Context, fieldID uuid.UUID, entityID string) (*domain.CustomFieldValue, error)
	FindByEntityID(ctx context.Context, entityID string) ([]*domain.CustomFieldValue, error)
	FindByFieldID(ctx context.Context, fieldID uuid.UUID) ([]*domain.CustomFieldValue, error)
	Delete(ctx context.Context, fieldID uuid.UUID, entityID string) (bool, error)
}

// fieldValueRepositoryImpl is the GORM implementation of FieldValueRepository
type fieldValueRepositoryImpl struct {
	db *gorm.DB
}

// NewFieldValueRepository creates a new instance of FieldValueRepository
func NewFieldValueRepository(db *gorm.DB) FieldValueRepository {
	return &fieldValueRepositoryImpl{db: db}
}

// upsertClause resolves a (field_id, entity_id) conflict by overwriting
// all three slots, so slots not set by the new value become NULL
func upsertClause() clause.OnConflict {
	return clause.OnConflict{
		Columns: []clause.Column{{Name: "field_id"}, {Name: "entity_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"text_value",
			"number_value",
			"select_value",
			"updated_at",
		}),
	}
}

// Upsert inserts the value or overwrites the slots of the existing row for
// the same (field_id, entity_id), then reads the stored row back. The id of
// an existing row is preserved.
func (r *fieldValueRepositoryImpl) Upsert(ctx context.Context, value *domain.CustomFieldValue) (*domain.CustomFieldValue, error) {
	var stored domain.CustomFieldValue
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(upsertClause()).Create(value).Error; err != nil {
			return err
		}
		return tx.
			Where("field_id = ? AND entity_id = ?", value.FieldID, value.EntityID).
			First(&stored).Error
	})
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// FindByFieldAndEntity finds the value of one cell
func (r *fieldValueRepositoryImpl) FindByFieldAndEntity(ctx context.Context, fieldID uuid.UUID, entityID string) (*domain.CustomFieldValue, error) {
	var value domain.CustomFieldValue
	if err := r.db.WithContext(ctx).
		Where("field_id = ? AND entity_id = ?", fieldID, entityID).
		First(&value).Error; err != nil {
		return nil, err
	}
	return &value, nil
}

// FindByEntityID finds every stored value of one entity
func (r *fieldValueRepositoryImpl) FindByEntityID(ctx context.Context, entityID string) ([]*domain.CustomFieldValue, error) {
	var values []*domain.CustomFieldValue
	if err := r.db.WithContext(ctx).
		Where("entity_id = ?", entityID).
		Order("created_at ASC").
		Find(&values).Error; err != nil {
		return nil, err
	}
	return values, nil
}

// FindByFieldID finds every stored value of one field
func (r *fieldValueRepositoryImpl) FindByFieldID(ctx context.Context, fieldID uuid.UUID) ([]*domain.CustomFieldValue, error) {
	var values []*domain.CustomFieldValue
	if err := r.db.WithContext(ctx).
		Where("field_id = ?", fieldID).
		Order("entity_id ASC").
		Find(&values).Error; err != nil {
		return nil, err
	}
	return values, nil
}

// Delete removes the value of one cell. Deleting an absent cell is not an
// error; the boolean reports whether a row was removed.
func (r *fieldValueRepositoryImpl) Delete(ctx context.Context, fieldID uuid.UUID, entityID string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("field_id = ? AND entity_id = ?", fieldID, entityID).
		Delete(&domain.CustomFieldValue{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
