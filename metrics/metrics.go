// Package metrics provides Prometheus metrics for the catalogue client,
// search orchestration and the search cache.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "healthdata"

var (
	// GatewayRequestsTotal counts completed catalogue API requests.
	GatewayRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gateway_requests_total",
			Help:      "Total number of catalogue API requests",
		},
		[]string{"method", "status"},
	)

	// GatewayRequestDuration measures catalogue API request duration, retries included.
	GatewayRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "gateway_request_duration_seconds",
			Help:      "Duration of catalogue API requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	// GatewayRetriesTotal counts retryable failures.
	GatewayRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gateway_retries_total",
			Help:      "Total number of retryable catalogue API failures",
		},
		[]string{"method", "status"},
	)

	// SearchDuration measures unified search duration.
	SearchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Duration of unified searches in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	// SearchResults observes the number of results of a unified search.
	SearchResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_results",
			Help:      "Distribution of unified search result counts",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250},
		},
	)

	// BestEffortFailuresTotal counts failures swallowed by best-effort operations.
	BestEffortFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "best_effort_failures_total",
			Help:      "Total number of failures replaced by an empty result",
		},
		[]string{"operation", "resource_type"},
	)

	// CacheLookupsTotal counts search cache lookups.
	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_cache_lookups_total",
			Help:      "Total number of search cache lookups",
		},
		[]string{"result"},
	)
)

// RecordRequest records a completed catalogue API request. A status of 0
// means no response was received.
func RecordRequest(method string, status int, duration float64) {
	GatewayRequestsTotal.WithLabelValues(method, statusLabel(status)).Inc()
	GatewayRequestDuration.WithLabelValues(method).Observe(duration)
}

// RecordRetry records a retryable failure.
func RecordRetry(method string, status int) {
	GatewayRetriesTotal.WithLabelValues(method, statusLabel(status)).Inc()
}

// RecordSearch records a unified search.
func RecordSearch(duration float64, results int) {
	SearchDuration.Observe(duration)
	SearchResults.Observe(float64(results))
}

// RecordBestEffortFailure records a failure swallowed by a best-effort operation.
func RecordBestEffortFailure(operation, resourceType string) {
	BestEffortFailuresTotal.WithLabelValues(operation, resourceType).Inc()
}

// RecordCacheHit records a search cache hit.
func RecordCacheHit() {
	CacheLookupsTotal.WithLabelValues("hit").Inc()
}

// RecordCacheMiss records a search cache miss.
func RecordCacheMiss() {
	CacheLookupsTotal.WithLabelValues("miss").Inc()
}

func statusLabel(status int) string {
	if status == 0 {
		return "error"
	}
	return strconv.Itoa(status)
}
