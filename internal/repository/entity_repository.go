package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fleet-field-api/internal/domain"
)

// EntityRepository defines the interface for field value subjects
type EntityRepository interface {
	Upsert(ctx context.Context, entity *domain.Entity) (*domain.Entity, error)
	FindByID(ctx context.Context, id string) (*domain.Entity, error)
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Entity, error)
	List(ctx context.Context, entityType *domain.EntityType) ([]*domain.Entity, error)
	DeleteCascade(ctx context.Context, id string) (int64, error)
}

// entityRepositoryImpl is the GORM implementation of EntityRepository
type entityRepositoryImpl struct {
	db *gorm.DB
}

// NewEntityRepository creates a new instance of EntityRepository
func NewEntityRepository(db *gorm.DB) EntityRepository {
	return &entityRepositoryImpl{db: db}
}

// Upsert registers an entity or updates its kind and name
func (r *entityRepositoryImpl) Upsert(ctx context.Context, entity *domain.Entity) (*domain.Entity, error) {
	var stored domain.Entity
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"kind", "name", "updated_at"}),
		}).Create(entity).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", entity.ID).First(&stored).Error
	})
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// FindByID finds an entity by ID
func (r *entityRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Entity, error) {
	var entity domain.Entity
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&entity).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

// FindByIDs finds several entities in a single query; unknown ids are skipped
func (r *entityRepositoryImpl) FindByIDs(ctx context.Context, ids []string) ([]*domain.Entity, error) {
	if len(ids) == 0 {
		return []*domain.Entity{}, nil
	}

	var entities []*domain.Entity
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// List returns entities ordered by id. A nil entityType returns every entity.
func (r *entityRepositoryImpl) List(ctx context.Context, entityType *domain.EntityType) ([]*domain.Entity, error) {
	var entities []*domain.Entity
	query := r.db.WithContext(ctx)
	if entityType != nil {
		query = query.Where("entity_type = ?", *entityType)
	}
	if err := query.Order("id ASC").Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// DeleteCascade deletes an entity and all its values in one transaction and
// returns the number of values removed
func (r *entityRepositoryImpl) DeleteCascade(ctx context.Context, id string) (int64, error) {
	var removed int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		values := tx.Where("entity_id = ?", id).Delete(&domain.CustomFieldValue{})
		if values.Error != nil {
			return values.Error
		}
		removed = values.RowsAffected

		entity := tx.Where("id = ?", id).Delete(&domain.Entity{})
		if entity.Error != nil {
			return entity.Error
		}
		if entity.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}
