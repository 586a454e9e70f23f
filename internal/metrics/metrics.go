package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the tracker
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight *prometheus.GaugeVec

	// Database Metrics
	DBQueriesTotal  *prometheus.CounterVec
	DBQueryDuration *prometheus.HistogramVec

	// Cache Metrics
	CacheHitsTotal   *prometheus.CounterVec
	CacheMissesTotal *prometheus.CounterVec

	// Live feed Metrics
	LiveFeedCallsTotal   *prometheus.CounterVec
	LiveFeedCallDuration *prometheus.HistogramVec

	// Business Metrics
	BoardItemsTotal         *prometheus.CounterVec
	BoardBuildDuration      *prometheus.HistogramVec
	PassportSnapshotsTotal  prometheus.Counter
	AirportCacheRefreshSize prometheus.Gauge
}

// NewMetricsRegistry registers every metric on reg. Pass
// prometheus.DefaultRegisterer in the server and a fresh registry in tests.
func NewMetricsRegistry(reg prometheus.Registerer) *MetricsRegistry {
	factory := promauto.With(reg)

	return &MetricsRegistry{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wayfarer_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "wayfarer_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "wayfarer_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		DBQueriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wayfarer_db_queries_total",
				Help: "Total database queries by operation type",
			},
			[]string{"query_type"},
		),
		DBQueryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "wayfarer_db_query_duration_seconds",
				Help:    "Database query execution time in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"query_type"},
		),

		CacheHitsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wayfarer_cache_hits_total",
				Help: "Total cache hits by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
		CacheMissesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wayfarer_cache_misses_total",
				Help: "Total cache misses by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),

		LiveFeedCallsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wayfarer_live_feed_calls_total",
				Help: "Live feed calls by provider, direction and outcome (ok, error, rate_limited, timeout)",
			},
			[]string{"provider", "direction", "outcome"},
		),
		LiveFeedCallDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "wayfarer_live_feed_call_duration_seconds",
				Help:    "Live feed call latency in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 4, 8, 16},
			},
			[]string{"direction"},
		),

		BoardItemsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wayfarer_board_items_total",
				Help: "Board items produced by source (stored, live, merged)",
			},
			[]string{"source"},
		),
		BoardBuildDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "wayfarer_board_build_duration_seconds",
				Help:    "Time to fetch and reconcile an airport board",
				Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"live"},
		),
		PassportSnapshotsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "wayfarer_passport_snapshots_total",
				Help: "Total passport snapshots built",
			},
		),
		AirportCacheRefreshSize: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "wayfarer_airport_code_cache_entries",
				Help: "Airport codes loaded by the last cache refresh",
			},
		),
	}
}

// NewTestRegistry builds a registry on a private Prometheus registry.
func NewTestRegistry() *MetricsRegistry {
	return NewMetricsRegistry(prometheus.NewRegistry())
}
