// Mawja - Bilingual Series Streaming Recommendations
// Copyright 2026 Mawja Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mawja-tv/mawja

// Package metrics defines the Prometheus instrumentation for the service.
// All collectors register on the default registry via promauto and are
// exposed on /metrics by the API router.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// APIRequestsTotal counts HTTP requests by method, route and status.
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mawja_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "path", "status"},
	)

	// APIRequestDuration observes HTTP request latency.
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mawja_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// ActiveRequests gauges in-flight HTTP requests.
	ActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mawja_api_active_requests",
			Help: "Number of in-flight API requests",
		},
	)

	// DBQueryDuration observes database query latency by query name.
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mawja_db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"query"},
	)

	// DBQueryErrors counts failed database queries by query name.
	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mawja_db_query_errors_total",
			Help: "Total number of failed database queries",
		},
		[]string{"query"},
	)

	// EngineDuration observes full recommendation pipeline latency.
	EngineDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mawja_recommend_duration_seconds",
			Help:    "Recommendation pipeline duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// EngineSections observes how many sections each response carried.
	EngineSections = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mawja_recommend_sections",
			Help:    "Number of sections per recommendation response",
			Buckets: []float64{0, 1, 2, 3, 4, 5},
		},
	)
)

// RecordAPIRequest records one completed HTTP request.
func RecordAPIRequest(method, path, status string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, path, status).Inc()
	APIRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordDBQuery records one database query, successful or not.
func RecordDBQuery(query string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(query).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(query).Inc()
	}
}

// RecordEngineRun records one completed recommendation pipeline run.
func RecordEngineRun(duration time.Duration, sections int) {
	EngineDuration.Observe(duration.Seconds())
	EngineSections.Observe(float64(sections))
}
