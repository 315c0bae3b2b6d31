package metrics

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestIncrementFieldCreatedAndDeleted(t *testing.T) {
	m := getTestMetrics()

	m.IncrementFieldCreated()
	m.IncrementFieldCreated()
	m.IncrementFieldDeleted()

	assert.Equal(t, float64(2), getCounterValue(t, m.CustomFieldCreatedTotal))
	assert.Equal(t, float64(1), getCounterValue(t, m.CustomFieldDeletedTotal))
}

func TestRecordCellEdit(t *testing.T) {
	m := getTestMetrics()

	m.RecordCellEdit("number", EditOutcomeSet)
	m.RecordCellEdit("number", EditOutcomeRejected)
	m.RecordCellEdit("number", EditOutcomeRejected)
	m.RecordCellEdit("select", EditOutcomeCleared)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.CellEditsTotal.WithLabelValues("number", EditOutcomeSet)))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.CellEditsTotal.WithLabelValues("number", EditOutcomeRejected)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CellEditsTotal.WithLabelValues("select", EditOutcomeCleared)))
}

func TestSetGauges(t *testing.T) {
	m := getTestMetrics()

	tests := []struct {
		name  string
		count int64
	}{
		{"zero", 0},
		{"one", 1},
		{"many", 42},
		{"large number", 1000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.SetFieldsTotal("equipment", tt.count)
			m.SetOptionsTotal(tt.count)
			m.SetValuesTotal(tt.count)

			assert.Equal(t, float64(tt.count), testutil.ToFloat64(m.CustomFieldsTotal.WithLabelValues("equipment")))
			assert.Equal(t, float64(tt.count), getGaugeValue(t, m.FieldOptionsTotal))
			assert.Equal(t, float64(tt.count), getGaugeValue(t, m.FieldValuesTotal))
		})
	}
}

func TestRecordEventPublish(t *testing.T) {
	m := getTestMetrics()

	m.RecordEventPublish("redis", nil)
	m.RecordEventPublish("redis", errors.New("connection refused"))
	m.SetEventSubscribers(3)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.EventsPublishedTotal.WithLabelValues("redis", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.EventsPublishedTotal.WithLabelValues("redis", "error")))
	assert.Equal(t, float64(3), getGaugeValue(t, m.EventSubscribers))
}

func TestRecordDBQueryAndStats(t *testing.T) {
	m := getTestMetrics()

	m.RecordDBQuery("SELECT", "custom_fields", 5*time.Millisecond, nil)
	m.RecordDBQuery("insert", "custom_field_values", time.Millisecond, errors.New("duplicate key"))
	m.UpdateDBStats(sql.DBStats{OpenConnections: 4, InUse: 1, Idle: 3, MaxOpenConnections: 25, WaitCount: 2, WaitDuration: time.Second})
	m.UpdateDBStats(sql.DBStats{OpenConnections: 4, InUse: 1, Idle: 3, MaxOpenConnections: 25, WaitCount: 5, WaitDuration: 3 * time.Second})

	assert.Equal(t, 1, testutil.CollectAndCount(m.DBQueryErrors))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("insert", "custom_field_values")))
	assert.Equal(t, float64(4), getGaugeValue(t, m.DBConnectionsOpen))
	assert.Equal(t, float64(25), getGaugeValue(t, m.DBConnectionsMax))
	assert.Equal(t, float64(5), testutil.ToFloat64(m.DBConnectionWaitTotal), "cumulative waits are not double counted")
	assert.Equal(t, float64(3), testutil.ToFloat64(m.DBConnectionWaitDuration))
}

func TestNilMetricsAreNoOps(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncrementFieldCreated()
		m.RecordCellEdit("text", EditOutcomeSet)
		m.RecordHTTPRequest("GET", "/", 200, time.Millisecond)
		m.RecordDBQuery("select", "entities", time.Millisecond, nil)
		m.RecordEventPublish("broker", nil)
	})
}

func TestSafeExecuteRecoversPanic(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry(), zap.NewNop())

	assert.NotPanics(t, func() {
		m.safeExecute("explode", func() { panic("boom") })
	})

	// metrics keep working after a recovered panic
	m.IncrementFieldCreated()
	assert.Equal(t, float64(1), getCounterValue(t, m.CustomFieldCreatedTotal))
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	registry := prometheus.NewRegistry()
	NewWithRegistry(registry, nil)

	assert.Panics(t, func() { NewWithRegistry(registry, nil) })
}

func getCounterValue(t *testing.T, counter prometheus.Counter) float64 {
	t.Helper()
	var metric dto.Metric
	if err := counter.Write(&metric); err != nil {
		t.Fatalf("Failed to write counter: %v", err)
	}
	return metric.GetCounter().GetValue()
}

func getGaugeValue(t *testing.T, gauge prometheus.Gauge) float64 {
	t.Helper()
	var metric dto.Metric
	if err := gauge.Write(&metric); err != nil {
		t.Fatalf("Failed to write gauge: %v", err)
	}
	return metric.GetGauge().GetValue()
}
