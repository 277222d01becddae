// Promodex - Behavioral Discount Recommendation Engine
// Copyright 2026 Promodex Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/promodex/promodex

// Package metrics defines the Prometheus instrumentation for Promodex:
// API latency and throughput, discount decision outcomes by rule, the
// alternatives fallback, and the sizes of the in-memory stores. All
// collectors are registered on the default registry via promauto and exposed
// through /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promodex_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "promodex_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "promodex_api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promodex_api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Decision Metrics
	DiscountDecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promodex_discount_decisions_total",
			Help: "Total number of discount decisions by matched rule",
		},
		[]string{"rule"}, // rule name, or "none" when no rule matched
	)

	DiscountMarginClamps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "promodex_discount_margin_clamps_total",
			Help: "Total number of discounts reduced to the margin cap",
		},
	)

	AlternativeSearchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "promodex_alternative_searches_total",
			Help: "Total number of cheaper-alternative fallback searches",
		},
	)

	AlternativesReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "promodex_alternatives_returned",
			Help:    "Number of alternatives returned per fallback search",
			Buckets: []float64{0, 1, 2, 3},
		},
	)

	// Store Metrics
	CatalogProducts = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "promodex_catalog_products",
			Help: "Number of products loaded from the catalog CSV",
		},
	)

	BehavioralEvents = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "promodex_behavioral_events",
			Help: "Number of behavioral events loaded from the event CSV",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit records a rate limit rejection for an endpoint
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordDiscountDecision records the outcome of one discount evaluation.
// rule is the matched rule name, or empty when no rule fired.
func RecordDiscountDecision(rule string, clamped bool) {
	if rule == "" {
		rule = "none"
	}
	DiscountDecisionsTotal.WithLabelValues(rule).Inc()
	if clamped {
		DiscountMarginClamps.Inc()
	}
}

// RecordAlternativeSearch records one fallback search and how many
// alternatives it produced
func RecordAlternativeSearch(returned int) {
	AlternativeSearchesTotal.Inc()
	AlternativesReturned.Observe(float64(returned))
}

// SetStoreSizes publishes the loaded row counts after startup
func SetStoreSizes(catalogProducts, behavioralEvents int) {
	CatalogProducts.Set(float64(catalogProducts))
	BehavioralEvents.Set(float64(behavioralEvents))
}
