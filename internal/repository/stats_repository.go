package repository

import (
	"context"

	"gorm.io/gorm"

	"fleet-field-api/internal/domain"
)

// FieldStats is a point-in-time count of stored custom field rows
type FieldStats struct {
	FieldsByEntityType map[domain.EntityType]int64
	Options            int64
	Values             int64
}

// StatsRepository reads aggregate counts for the metrics job
type StatsRepository interface {
	Snapshot(ctx context.Context) (*FieldStats, error)
}

type statsRepositoryImpl struct {
	db *gorm.DB
}

// NewStatsRepository creates a new instance of StatsRepository
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepositoryImpl{db: db}
}

// Snapshot counts fields per entity type, options and values
func (r *statsRepositoryImpl) Snapshot(ctx context.Context) (*FieldStats, error) {
	db := r.db.WithContext(ctx)
	stats := &FieldStats{FieldsByEntityType: map[domain.EntityType]int64{}}

	var rows []struct {
		EntityType domain.EntityType
		Total      int64
	}
	if err := db.Model(&domain.CustomField{}).
		Select("entity_type, COUNT(*) AS total").
		Group("entity_type").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		stats.FieldsByEntityType[row.EntityType] = row.Total
	}

	if err := db.Model(&domain.CustomFieldOption{}).Count(&stats.Options).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.CustomFieldValue{}).Count(&stats.Values).Error; err != nil {
		return nil, err
	}
	return stats, nil
}
