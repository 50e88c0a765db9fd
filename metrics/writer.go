package metrics

// MetricsWriter records request outcomes for a single endpoint.
// It implements the paprika_common.StatusHandler interface.
type MetricsWriter struct {
	endpoint string
}

// NewMetricsWriter creates a writer bound to an endpoint label
func NewMetricsWriter(endpoint string) *MetricsWriter {
	return &MetricsWriter{endpoint: endpoint}
}

// OnRequest records a completed request attempt with its status
func (w *MetricsWriter) OnRequest(status string) {
	RequestsTotal.WithLabelValues(w.endpoint, status).Inc()
}

// OnRetry records a retry event
func (w *MetricsWriter) OnRetry() {
	RetriesTotal.WithLabelValues(w.endpoint).Inc()
}
