package monitoring

import "github.com/prometheus/client_golang/prometheus"

var (
	HttpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "method"},
	)

	HttpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	ActiveConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "active_connections",
			Help: "Number of active connections",
		},
	)

	ReelInteractions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reel_interactions_total",
			Help: "Committed reel interactions by kind (like, unlike, comment, share)",
		},
		[]string{"kind"},
	)

	CounterSyncFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reel_counter_sync_failures_total",
			Help: "Denormalized counter updates that failed after the interaction was committed",
		},
		[]string{"counter"},
	)

	FetchFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fetch_failures_total",
			Help: "Failed collection and record fetches",
		},
		[]string{"resource"},
	)
)

// Register adds every collector to reg.
func Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		HttpRequestsTotal,
		HttpRequestDuration,
		ActiveConnections,
		ReelInteractions,
		CounterSyncFailures,
		FetchFailures,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
