// Meal Explorer - Recipe Discovery and Collection Tracking
// Copyright 2026 Anand (anand880441-source)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/anand880441-source/meal-explorer

// Package metrics provides Prometheus instrumentation for the collection
// core: store mutations, badge unlocks, catalog request latency, and HTTP
// traffic. Metrics are served at /metrics by the API router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// storeMutations counts mutator calls per store and operation.
	storeMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_mutations_total",
			Help: "Total domain store mutations",
		},
		[]string{"store", "op"},
	)

	// badgeUnlocks counts new badge unlocks per badge key.
	badgeUnlocks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "badge_unlocks_total",
			Help: "Total badge unlocks",
		},
		[]string{"badge"},
	)

	// catalogRequestDuration tracks outbound catalog API latency.
	catalogRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_request_duration_seconds",
			Help:    "Recipe catalog request latency",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"endpoint", "status"},
	)

	// httpRequests counts inbound API requests.
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
)

// RecordStoreMutation increments the mutation counter for a store operation.
func RecordStoreMutation(store, op string) {
	storeMutations.WithLabelValues(store, op).Inc()
}

// RecordBadgeUnlock increments the unlock counter for a badge key.
func RecordBadgeUnlock(badge string) {
	badgeUnlocks.WithLabelValues(badge).Inc()
}

// ObserveCatalogRequest records one outbound catalog request.
func ObserveCatalogRequest(endpoint, status string, seconds float64) {
	catalogRequestDuration.WithLabelValues(endpoint, status).Observe(seconds)
}

// RecordHTTPRequest records one inbound API request.
func RecordHTTPRequest(method, path, status string) {
	httpRequests.WithLabelValues(method, path, status).Inc()
}
