// StreamRec - Hybrid Recommendation Engine for Streaming Media Datasets
// Copyright 2026 Streamlytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streamlytics/streamrec

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for:
// - Database query performance (DuckDB)
// - API endpoint latency and throughput
// - Recommendation cycle duration and outcomes

var (
	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation", "table"},
	)

	DBRowsFetched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_rows_fetched_total",
			Help: "Total number of rows fetched from DuckDB",
		},
		[]string{"table"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Recommendation Cycle Metrics
	RecommendCycles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_cycles_total",
			Help: "Total number of recommendation cycles",
		},
		[]string{"outcome"}, // "success", "unknown_user", "no_data", "error"
	)

	RecommendCycleDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_cycle_duration_seconds",
			Help:    "Duration of full recommendation cycles in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
	)

	RecommendMatrixUsers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recommend_matrix_users",
			Help: "Number of distinct users in the last rating matrix",
		},
	)

	RecommendMatrixItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recommend_matrix_items",
			Help: "Number of distinct content items in the last rating matrix",
		},
	)

	RecommendEvaluationMSE = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_evaluation_mse",
			Help:    "Mean squared error of recommendation cycle evaluations",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 25},
		},
	)
)

// RecordDBQuery records a database query metric
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation, table).Inc()
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordRecommendCycle records the outcome of a recommendation cycle.
func RecordRecommendCycle(outcome string, duration time.Duration) {
	RecommendCycles.WithLabelValues(outcome).Inc()
	if outcome == "success" {
		RecommendCycleDuration.Observe(duration.Seconds())
	}
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
