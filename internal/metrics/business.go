package metrics

// Cell edit outcomes
const (
	EditOutcomeSet      = "set"
	EditOutcomeCleared  = "cleared"
	EditOutcomeRejected = "rejected"
)

// IncrementFieldCreated increments the custom field creation counter
func (m *Metrics) IncrementFieldCreated() {
	m.safeExecute("IncrementFieldCreated", func() {
		m.CustomFieldCreatedTotal.Inc()
	})
}

// IncrementFieldDeleted increments the custom field deletion counter
func (m *Metrics) IncrementFieldDeleted() {
	m.safeExecute("IncrementFieldDeleted", func() {
		m.CustomFieldDeletedTotal.Inc()
	})
}

// RecordCellEdit counts one inline edit
func (m *Metrics) RecordCellEdit(scalarType, outcome string) {
	m.safeExecute("RecordCellEdit", func() {
		m.CellEditsTotal.WithLabelValues(scalarType, outcome).Inc()
	})
}

// SetFieldsTotal sets the field gauge for one entity type
func (m *Metrics) SetFieldsTotal(entityType string, count int64) {
	m.safeExecute("SetFieldsTotal", func() {
		m.CustomFieldsTotal.WithLabelValues(entityType).Set(float64(count))
	})
}

// SetOptionsTotal sets the select option gauge
func (m *Metrics) SetOptionsTotal(count int64) {
	m.safeExecute("SetOptionsTotal", func() {
		m.FieldOptionsTotal.Set(float64(count))
	})
}

// SetValuesTotal sets the stored value gauge
func (m *Metrics) SetValuesTotal(count int64) {
	m.safeExecute("SetValuesTotal", func() {
		m.FieldValuesTotal.Set(float64(count))
	})
}
