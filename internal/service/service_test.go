package service

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fleet-field-api/internal/database"
	"fleet-field-api/internal/dto"
	"fleet-field-api/internal/metrics"
	"fleet-field-api/internal/repository"
)

// testEnv wires every service to one in-memory SQLite database
type testEnv struct {
	db         *gorm.DB
	publisher  *recordingPublisher
	metrics    *metrics.Metrics
	fields     FieldRegistry
	options    OptionCatalog
	values     ValueStore
	editor     EditCoordinator
	projection Projection
	entities   EntityService
	views      SavedViewService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithLogger(t, zap.NewNop())
}

func newTestEnvWithLogger(t *testing.T, logger *zap.Logger) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), database.GormConfig())
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.AutoMigrate(db))
	t.Cleanup(func() { _ = sqlDB.Close() })

	fieldRepo := repository.NewCustomFieldRepository(db)
	optionRepo := repository.NewFieldOptionRepository(db)
	valueRepo := repository.NewFieldValueRepository(db)
	entityRepo := repository.NewEntityRepository(db)
	viewRepo := repository.NewSavedViewRepository(db)

	publisher := &recordingPublisher{}
	m := metrics.NewWithRegistry(prometheus.NewRegistry(), logger)

	values := NewValueStore(fieldRepo, valueRepo, entityRepo, publisher, m, logger)
	return &testEnv{
		db:         db,
		publisher:  publisher,
		metrics:    m,
		fields:     NewFieldRegistry(fieldRepo, publisher, m, logger),
		options:    NewOptionCatalog(fieldRepo, optionRepo, publisher, m, logger),
		values:     values,
		editor:     NewEditCoordinator(fieldRepo, optionRepo, values, m, logger),
		projection: NewProjection(fieldRepo, optionRepo, valueRepo, entityRepo, viewRepo, logger),
		entities:   NewEntityService(entityRepo, publisher, m, logger),
		views:      NewSavedViewService(viewRepo, publisher, m, logger),
	}
}

func (e *testEnv) registerEntity(t *testing.T, entityType, id, kind string) {
	t.Helper()
	_, err := e.entities.UpsertEntity(context.Background(), id, &dto.UpsertEntityRequest{
		EntityType: entityType,
		Kind:       kind,
		Name:       id,
	})
	require.NoError(t, err)
}

func (e *testEnv) createField(t *testing.T, name, scalarType, entityType string) *dto.CustomFieldResponse {
	t.Helper()
	field, err := e.fields.CreateField(context.Background(), &dto.CreateCustomFieldRequest{
		Name:       name,
		ScalarType: scalarType,
		EntityType: entityType,
	})
	require.NoError(t, err)
	return field
}

func (e *testEnv) createOption(t *testing.T, field *dto.CustomFieldResponse, label, value string) *dto.FieldOptionResponse {
	t.Helper()
	option, err := e.options.CreateOption(context.Background(), field.FieldID, &dto.CreateFieldOptionRequest{
		Label: label,
		Value: value,
	})
	require.NoError(t, err)
	return option
}

func intPtr(n int) *int { return &n }

func strPtr(s string) *string { return &s }
