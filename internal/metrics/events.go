package metrics

// RecordEventPublish counts one change event publish attempt
func (m *Metrics) RecordEventPublish(transport string, err error) {
	m.safeExecute("RecordEventPublish", func() {
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		m.EventsPublishedTotal.WithLabelValues(transport, outcome).Inc()
	})
}

// SetEventSubscribers sets the live subscriber gauge
func (m *Metrics) SetEventSubscribers(count int) {
	m.safeExecute("SetEventSubscribers", func() {
		m.EventSubscribers.Set(float64(count))
	})
}
