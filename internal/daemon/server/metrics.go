package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Summarize endpoint metrics, exposed at /metrics.
var (
	// summarizeRequests counts summarize calls by outcome:
	// ok | bad_request | error.
	summarizeRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sitelog",
		Name:      "summarize_requests_total",
		Help:      "Total summarize requests by outcome.",
	}, []string{"outcome"})

	// summarizeDuration tracks successful request latency.
	summarizeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "sitelog",
		Name:      "summarize_duration_seconds",
		Help:      "Latency of successful summarize requests.",
		Buckets:   prometheus.DefBuckets,
	})

	// labelsMatched counts assigned category labels.
	labelsMatched = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sitelog",
		Name:      "labels_matched_total",
		Help:      "Category labels assigned to summarize responses.",
	}, []string{"label"})
)
