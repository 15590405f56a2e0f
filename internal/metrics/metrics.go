// Package metrics exposes Prometheus collectors for the matching service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MatchRequests counts match requests received, including rejected ones.
	MatchRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "matchengine_match_requests_total",
		Help: "Total match requests received.",
	})

	// ValidationFailures counts requests rejected at the validation boundary.
	ValidationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "matchengine_validation_failures_total",
		Help: "Match requests rejected by validation.",
	})

	// ExtractionFailures counts uploads the text-extraction collaborator
	// could not convert.
	ExtractionFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "matchengine_extraction_failures_total",
		Help: "Document uploads that failed text extraction.",
	})

	// MatchDuration observes time spent scoring and ranking one request.
	MatchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "matchengine_match_duration_seconds",
		Help:    "Time spent scoring and ranking one match request.",
		Buckets: prometheus.DefBuckets,
	})
)
