package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"
)

// MetricsPrefix is the prefix used for all metrics
const MetricsPrefix = "coincli_"

// Endpoint constants used as metric labels
const (
	EndpointCoins   = "coins"
	EndpointTickers = "tickers"
	EndpointGlobal  = "global"
)

var (
	// RequestsTotal counts HTTP requests to the CoinPaprika API per endpoint
	// Cardinality: ~9 (3 endpoints x 3 statuses)
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "requests_total",
			Help: "Total number of HTTP requests to the CoinPaprika API",
		},
		[]string{"endpoint", "status"},
	)

	// RetriesTotal counts request retries per endpoint
	RetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "retries_total",
			Help: "Total number of retried HTTP requests",
		},
		[]string{"endpoint"},
	)

	// FetchDuration tracks the duration of fetch operations per endpoint
	FetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: MetricsPrefix + "fetch_duration_seconds",
			Help: "Time taken to fetch data from the CoinPaprika API",
		},
		[]string{"endpoint"},
	)
)

// RecordFetchDuration measures and records the duration of a fetch
func RecordFetchDuration(endpoint string, start time.Time) {
	duration := time.Since(start)
	FetchDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
	logrus.Debugf("metrics: %s fetch took %.2fs", endpoint, duration.Seconds())
}
