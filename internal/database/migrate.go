package database

import (
	"fmt"
	"time"

	"github.com/go-gormigrate/gormigrate/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fleet-field-api/internal/domain"
)

// modelInfo holds information about a domain model and its table name
type modelInfo struct {
	model     interface{}
	tableName string
}

// models lists every table in dependency order: referenced tables first
func models() []modelInfo {
	return []modelInfo{
		{&domain.Entity{}, "entities"},
		{&domain.CustomField{}, "custom_fields"},
		{&domain.CustomFieldOption{}, "custom_field_options"},
		{&domain.CustomFieldValue{}, "custom_field_values"},
		{&domain.SavedView{}, "saved_views"},
	}
}

// AutoMigrate runs GORM auto-migration for all domain models
func AutoMigrate(db *gorm.DB) error {
	list := models()
	all := make([]interface{}, 0, len(list))
	for _, m := range list {
		all = append(all, m.model)
	}

	if err := db.AutoMigrate(all...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}
	return nil
}

// migrations are applied in order on databases created before the
// schema reached its current shape
func migrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "202501150900_custom_fields",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(
					&domain.Entity{},
					&domain.CustomField{},
					&domain.CustomFieldOption{},
					&domain.CustomFieldValue{},
				)
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("custom_field_values", "custom_field_options", "custom_fields", "entities")
			},
		},
		{
			ID: "202503020900_saved_views",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&domain.SavedView{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("saved_views")
			},
		},
	}
}

// Migrate brings the schema up to date. A clean database is initialised
// from the current models in one step.
func Migrate(db *gorm.DB, logger *zap.Logger) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, migrations())

	m.InitSchema(func(tx *gorm.DB) error {
		logger.Info("Clean database detected, running full schema initialization")
		return SafeAutoMigrate(tx, logger)
	})

	if err := m.Migrate(); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

// SafeAutoMigrate migrates each model separately and logs whether the
// table was created or updated
func SafeAutoMigrate(db *gorm.DB, logger *zap.Logger) error {
	migrator := db.Migrator()
	list := models()

	logger.Info("Starting safe auto-migration",
		zap.Int("total_models", len(list)),
	)

	for _, m := range list {
		tableExists := migrator.HasTable(m.model)

		if err := db.AutoMigrate(m.model); err != nil {
			logger.Error("Failed to migrate table",
				zap.String("table", m.tableName),
				zap.Bool("table_existed", tableExists),
				zap.Error(err),
			)
			return fmt.Errorf("failed to migrate table %s: %w", m.tableName, err)
		}

		logger.Info("Successfully migrated table",
			zap.String("table", m.tableName),
			zap.Bool("was_existing", tableExists),
		)
	}

	return nil
}

// MigrateWithRetry runs Migrate up to maxRetries times with linear backoff
func MigrateWithRetry(db *gorm.DB, logger *zap.Logger, maxRetries int) error {
	var err error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		err = Migrate(db, logger)
		if err == nil {
			return nil
		}

		if attempt < maxRetries {
			backoff := time.Duration(attempt) * time.Second
			logger.Warn("Migration attempt failed, retrying...",
				zap.Int("attempt", attempt),
				zap.Int("max_retries", maxRetries),
				zap.Duration("backoff", backoff),
				zap.Error(err),
			)
			time.Sleep(backoff)
		}
	}

	return fmt.Errorf("migration failed after %d attempts: %w", maxRetries, err)
}
