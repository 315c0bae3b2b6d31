package metrics

import (
	"database/sql"
	"strings"
	"time"
)

// UpdateDBStats updates the connection pool metrics. sql.DBStats wait
// figures are cumulative; the counters receive the growth since the last call.
func (m *Metrics) UpdateDBStats(stats sql.DBStats) {
	m.safeExecute("UpdateDBStats", func() {
		m.DBConnectionsOpen.Set(float64(stats.OpenConnections))
		m.DBConnectionsInUse.Set(float64(stats.InUse))
		m.DBConnectionsIdle.Set(float64(stats.Idle))
		m.DBConnectionsMax.Set(float64(stats.MaxOpenConnections))

		m.poolMu.Lock()
		defer m.poolMu.Unlock()
		if waits := stats.WaitCount - m.lastWaits; waits > 0 {
			m.DBConnectionWaitTotal.Add(float64(waits))
		}
		if waited := stats.WaitDuration - m.lastWaitTime; waited > 0 {
			m.DBConnectionWaitDuration.Add(waited.Seconds())
		}
		m.lastWaits = stats.WaitCount
		m.lastWaitTime = stats.WaitDuration
	})
}

// RecordDBQuery records one statement, labelled by lowercase operation and table
func (m *Metrics) RecordDBQuery(operation, table string, duration time.Duration, err error) {
	m.safeExecute("RecordDBQuery", func() {
		operation = strings.ToLower(operation)
		m.DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())

		if err != nil {
			m.DBQueryErrors.WithLabelValues(operation, table).Inc()
		}
	})
}
