package job

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"fleet-field-api/internal/domain"
	"fleet-field-api/internal/metrics"
	"fleet-field-api/internal/repository"
)

const snapshotTimeout = 30 * time.Second

var entityTypes = []domain.EntityType{
	domain.EntityTypeEquipment,
	domain.EntityTypeMaintenance,
	domain.EntityTypeSite,
}

// StatsJob refreshes the custom field business gauges from the database
type StatsJob struct {
	statsRepo repository.StatsRepository
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewStatsJob creates a new StatsJob instance
func NewStatsJob(
	statsRepo repository.StatsRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) *StatsJob {
	return &StatsJob{
		statsRepo: statsRepo,
		metrics:   m,
		logger:    logger,
	}
}

// Run executes one refresh. Entity types without fields are reported as zero.
func (j *StatsJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), snapshotTimeout)
	defer cancel()

	stats, err := j.statsRepo.Snapshot(ctx)
	if err != nil {
		j.logger.Error("Failed to collect custom field stats",
			zap.Error(err),
		)
		return
	}

	var fields int64
	for _, entityType := range entityTypes {
		count := stats.FieldsByEntityType[entityType]
		fields += count
		j.metrics.SetFieldsTotal(string(entityType), count)
	}
	j.metrics.SetOptionsTotal(stats.Options)
	j.metrics.SetValuesTotal(stats.Values)

	j.logger.Debug("Custom field stats refreshed",
		zap.Int64("fields", fields),
		zap.Int64("options", stats.Options),
		zap.Int64("values", stats.Values),
	)
}

// Schedule registers the job on c with the given cron spec and runs it once
// immediately so the gauges are populated before the first tick.
func (j *StatsJob) Schedule(c *cron.Cron, spec string) (cron.EntryID, error) {
	id, err := c.AddJob(spec, j)
	if err != nil {
		return 0, err
	}
	j.Run()
	j.logger.Info("Stats job scheduled", zap.String("schedule", spec))
	return id, nil
}
