// Package metrics provides Prometheus metrics for the gridiron valuation service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns the Prometheus registry and every collector the service
// records into. A single default manager backs the package-level helpers.
type Manager struct {
	namespace string
	registry  *prometheus.Registry

	// Feed ingestion
	feedFetches      *prometheus.CounterVec
	feedFetchSeconds *prometheus.HistogramVec
	feedRecords      *prometheus.GaugeVec

	// Board pipeline
	boardBuilds        prometheus.Counter
	boardBuildSeconds  prometheus.Histogram
	boardSize          prometheus.Gauge
	recordsSkipped     prometheus.Counter
	unresolvedMatches  prometheus.Counter
	missingProjections prometheus.Gauge
	leaguesTracked     prometheus.Gauge

	// Lineup allocation
	lineupAllocations prometheus.Counter
	lineupEmptySlots  prometheus.Counter

	// HTTP surface
	httpRequests       *prometheus.CounterVec
	httpRequestSeconds *prometheus.HistogramVec
}

// NewManager builds a Manager with its own registry.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "gridiron",
		registry:  prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}

	factory := promauto.With(m.registry)

	m.feedFetches = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "feed_fetches_total",
		Help:      "Feed fetch attempts by source and outcome.",
	}, []string{"source", "status"})
	m.feedFetchSeconds = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "feed_fetch_duration_seconds",
		Help:      "Feed fetch latency by source.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"source"})
	m.feedRecords = factory.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "feed_records",
		Help:      "Records returned by the most recent fetch per source.",
	}, []string{"source"})

	m.boardBuilds = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "board_builds_total",
		Help:      "Completed board assembly runs.",
	})
	m.boardBuildSeconds = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "board_build_duration_seconds",
		Help:      "End-to-end board assembly latency.",
		Buckets:   prometheus.DefBuckets,
	})
	m.boardSize = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "board_entries",
		Help:      "Entries on the most recently assembled board.",
	})
	m.recordsSkipped = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "source_records_skipped_total",
		Help:      "Malformed source records skipped during assembly.",
	})
	m.unresolvedMatches = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "identity_unresolved_total",
		Help:      "Players that fell back to the default rank after no ranking match.",
	})
	m.missingProjections = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "board_missing_projections",
		Help:      "Board entries with no projection in the latest run.",
	})
	m.leaguesTracked = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "leagues_tracked",
		Help:      "Leagues with a stored board.",
	})

	m.lineupAllocations = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "lineup_allocations_total",
		Help:      "Lineup allocation runs.",
	})
	m.lineupEmptySlots = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "lineup_empty_slots_total",
		Help:      "Starter slots left unfilled across allocation runs.",
	})

	m.httpRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by endpoint, method and status.",
	}, []string{"endpoint", "method", "status"})
	m.httpRequestSeconds = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by endpoint and method.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"endpoint", "method"})

	return m
}

// Registry exposes the manager's registry for promhttp.
func (m *Manager) Registry() *prometheus.Registry { return m.registry }

var defaultManager = NewManager()

// GetRegistry returns the default manager's registry.
func GetRegistry() *prometheus.Registry { return defaultManager.Registry() }

// RecordFeedFetch records a fetch attempt outcome and its latency.
func RecordFeedFetch(source, status string, seconds float64) {
	defaultManager.feedFetches.WithLabelValues(source, status).Inc()
	defaultManager.feedFetchSeconds.WithLabelValues(source).Observe(seconds)
}

// UpdateFeedRecords sets the record count returned by the latest fetch.
func UpdateFeedRecords(source string, count int) {
	defaultManager.feedRecords.WithLabelValues(source).Set(float64(count))
}

// RecordBoardBuild records a completed board run and its latency.
func RecordBoardBuild(seconds float64) {
	defaultManager.boardBuilds.Inc()
	defaultManager.boardBuildSeconds.Observe(seconds)
}

// UpdateBoardSize sets the entry count of the latest board.
func UpdateBoardSize(n int) { defaultManager.boardSize.Set(float64(n)) }

// RecordSkippedRecord counts a malformed source record.
func RecordSkippedRecord() { defaultManager.recordsSkipped.Inc() }

// RecordUnresolvedIdentity counts a failed ranking match.
func RecordUnresolvedIdentity() { defaultManager.unresolvedMatches.Inc() }

// UpdateMissingProjections sets the count of unprojected board entries.
func UpdateMissingProjections(n int) { defaultManager.missingProjections.Set(float64(n)) }

// UpdateLeaguesTracked sets the number of leagues with a stored board.
func UpdateLeaguesTracked(n int) { defaultManager.leaguesTracked.Set(float64(n)) }

// RecordLineupAllocation counts an allocation run and its unfilled slots.
func RecordLineupAllocation(emptySlots int) {
	defaultManager.lineupAllocations.Inc()
	defaultManager.lineupEmptySlots.Add(float64(emptySlots))
}

// RecordHTTPRequest counts a served request.
func RecordHTTPRequest(endpoint, method, status string) {
	defaultManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

// RecordHTTPRequestDuration records request latency.
func RecordHTTPRequestDuration(endpoint, method string, seconds float64) {
	defaultManager.httpRequestSeconds.WithLabelValues(endpoint, method).Observe(seconds)
}
