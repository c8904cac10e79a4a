// Ordinal - Credit Card Rewards Recommendation Backend
// Copyright 2026 The Ordinal Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ordinal-app/ordinal

// Package metrics defines the Prometheus instrumentation for Ordinal: API
// request latency and throughput, store operation timing, authentication
// outcomes and ranking engine activity. Metrics register on the default
// registry and are served at /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API metrics
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

	// Store metrics
	StoreOpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_operation_duration_seconds",
			Help:    "Duration of store operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "record"},
	)

	StoreOpErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_operation_errors_total",
			Help: "Total number of store operation errors",
		},
		[]string{"operation", "record"},
	)

	// Authentication metrics
	AuthLogins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_logins_total",
			Help: "Total number of login attempts",
		},
		[]string{"result"}, // "success", "failure"
	)

	AuthRegistrations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "auth_registrations_total",
			Help: "Total number of user registrations",
		},
	)

	// Ranking engine metrics
	RankingPasses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ranking_passes_total",
			Help: "Total number of reward ranking passes",
		},
		[]string{"mode"}, // "personalized", "fallback", "empty"
	)

	RankingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ranking_duration_seconds",
			Help:    "Duration of one ranking pass in seconds",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		},
	)

	RankingResultSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ranking_result_size",
			Help:    "Number of rewards returned per ranking pass",
			Buckets: []float64{0, 1, 2, 3, 5, 10},
		},
	)
)

// RecordAPIRequest records one completed API request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordStoreOp records a store operation and its outcome.
func RecordStoreOp(operation, record string, duration time.Duration, err error) {
	StoreOpDuration.WithLabelValues(operation, record).Observe(duration.Seconds())
	if err != nil {
		StoreOpErrors.WithLabelValues(operation, record).Inc()
	}
}

// RecordLogin records one login attempt.
func RecordLogin(success bool) {
	if success {
		AuthLogins.WithLabelValues("success").Inc()
	} else {
		AuthLogins.WithLabelValues("failure").Inc()
	}
}

// RecordRegistration records one successful registration.
func RecordRegistration() {
	AuthRegistrations.Inc()
}

// RecordRankingPass records one ranking pass: its mode, wall time, and how
// many rewards it returned.
func RecordRankingPass(mode string, duration time.Duration, resultSize int) {
	RankingPasses.WithLabelValues(mode).Inc()
	RankingDuration.Observe(duration.Seconds())
	RankingResultSize.Observe(float64(resultSize))
}
