package database

import (
	"database/sql"
	"time"

	"gorm.io/gorm"
)

const queryStartKey = "metrics:query_start_time"

// MetricsRecorder is an interface for recording database metrics
type MetricsRecorder interface {
	RecordDBQuery(operation, table string, duration time.Duration, err error)
	UpdateDBStats(stats sql.DBStats)
}

// timed returns a pair of callbacks that measure one statement and
// report it under operation
func timed(operation string, recorder MetricsRecorder) (before, after func(*gorm.DB)) {
	before = func(db *gorm.DB) {
		db.InstanceSet(queryStartKey, time.Now())
	}
	after = func(db *gorm.DB) {
		startTime, ok := db.InstanceGet(queryStartKey)
		if !ok {
			return
		}
		table := db.Statement.Table
		if table == "" {
			table = "unknown"
		}
		recorder.RecordDBQuery(operation, table, time.Since(startTime.(time.Time)), db.Error)
	}
	return before, after
}

// RegisterMetricsCallbacks registers GORM callbacks for metrics collection.
// Upserts go through the create chain and are reported as "insert".
func RegisterMetricsCallbacks(db *gorm.DB, recorder MetricsRecorder) {
	cb := db.Callback()

	before, after := timed("select", recorder)
	cb.Query().Before("gorm:query").Register("metrics:query_before", before)
	cb.Query().After("gorm:query").Register("metrics:query_after", after)

	before, after = timed("insert", recorder)
	cb.Create().Before("gorm:create").Register("metrics:create_before", before)
	cb.Create().After("gorm:create").Register("metrics:create_after", after)

	before, after = timed("update", recorder)
	cb.Update().Before("gorm:update").Register("metrics:update_before", before)
	cb.Update().After("gorm:update").Register("metrics:update_after", after)

	before, after = timed("delete", recorder)
	cb.Delete().Before("gorm:delete").Register("metrics:delete_before", before)
	cb.Delete().After("gorm:delete").Register("metrics:delete_after", after)

	before, after = timed("raw", recorder)
	cb.Raw().Before("gorm:raw").Register("metrics:raw_before", before)
	cb.Raw().After("gorm:raw").Register("metrics:raw_after", after)
}

// StartDBStatsCollector reports connection pool stats every interval
// until the returned channel is closed
func StartDBStatsCollector(db *gorm.DB, recorder MetricsRecorder, interval time.Duration) chan struct{} {
	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				sqlDB, err := db.DB()
				if err != nil {
					continue
				}
				recorder.UpdateDBStats(sqlDB.Stats())
			case <-done:
				return
			}
		}
	}()

	return done
}
