// Package metrics exposes Prometheus collectors for the HTTP surface and
// the auth flow. All collectors are registered on the default registry and
// served from /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts requests by method, route pattern and status class
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "docuvault",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests processed, partitioned by method, route and status.",
	}, []string{"method", "route", "status"})

	// HTTPDuration observes request latency by route pattern
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "docuvault",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds, partitioned by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})

	// AuthAttempts counts authentication attempts by outcome
	AuthAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "docuvault",
		Subsystem: "auth",
		Name:      "attempts_total",
		Help:      "Authentication attempts, partitioned by operation and outcome.",
	}, []string{"operation", "outcome"})

	// UsersCreated counts successful signups
	UsersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "docuvault",
		Name:      "users_created_total",
		Help:      "Accounts created since process start.",
	})

	// DocumentsCreated counts successful document creations
	DocumentsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "docuvault",
		Name:      "documents_created_total",
		Help:      "Documents created since process start.",
	})
)
