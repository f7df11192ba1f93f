// Package metrics exposes Prometheus collectors for the HTTP layer and the
// insights pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts requests by route template, method and status.
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "memorycompanion",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	// HTTPDuration tracks request latency by route template.
	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "memorycompanion",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	// InsightRequests counts insight generations.
	// Labels: outcome (ok, empty, unauthorized, not_found, upstream_error)
	InsightRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "memorycompanion",
			Subsystem: "insights",
			Name:      "requests_total",
			Help:      "Total number of insight generations by outcome",
		},
		[]string{"outcome"},
	)

	// ReflectionsAnalyzed observes how many eligible reflections each run scanned.
	ReflectionsAnalyzed = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "memorycompanion",
			Subsystem: "insights",
			Name:      "reflections_analyzed",
			Help:      "Eligible reflections per insight generation",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 200, 365, 730},
		},
	)

	// ProfileCacheLookups counts identity cache lookups.
	// Labels: result (hit, miss, error)
	ProfileCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "memorycompanion",
			Subsystem: "profile_cache",
			Name:      "lookups_total",
			Help:      "Total number of profile cache lookups",
		},
		[]string{"result"},
	)
)

// Outcome labels for InsightRequests.
const (
	OutcomeOK            = "ok"
	OutcomeEmpty         = "empty"
	OutcomeUnauthorized  = "unauthorized"
	OutcomeNotFound      = "not_found"
	OutcomeUpstreamError = "upstream_error"
)
