// Package metrics defines and registers all custom Prometheus metrics for the
// store client and its sandbox backend. It is the single source of truth for
// metric names, labels, and help strings.
//
// Metrics are registered with the default registry on import via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mystore"

// ── Client transport metrics ──────────────────────────────────────────────────

// APIRequestsTotal counts outbound requests to the catalog backend.
// Labels are filled in by promhttp:
//   - code:   HTTP status code of the response (e.g. "200", "404")
//   - method: lower-cased HTTP method (e.g. "get")
var APIRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "client",
		Name:      "api_requests_total",
		Help:      "Total number of requests sent to the catalog API.",
	},
	[]string{"code", "method"},
)

// APIRequestDuration measures round-trip latency of outbound requests.
var APIRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "client",
		Name:      "api_request_duration_seconds",
		Help:      "Round-trip duration of requests sent to the catalog API.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"code", "method"},
)

// APIRequestsInFlight tracks requests currently awaiting a response.
var APIRequestsInFlight = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "client",
		Name:      "api_requests_in_flight",
		Help:      "Number of catalog API requests awaiting a response.",
	},
)

// ── Client use-case metrics ───────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "client",
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// PositionReadsTotal counts geolocation lookups.
// Label:
//   - result: "success" or "failure"
var PositionReadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "client",
		Name:      "position_reads_total",
		Help:      "Total number of current-position lookups, by result.",
	},
	[]string{"result"},
)

// ── Sandbox backend metrics ───────────────────────────────────────────────────

// ProductsWrittenTotal counts catalog mutations served by the sandbox API.
// Label:
//   - op: "create", "update" or "delete"
var ProductsWrittenTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "sandbox",
		Name:      "products_written_total",
		Help:      "Total number of product mutations, by operation.",
	},
	[]string{"op"},
)

// TokensIssuedTotal counts access tokens signed by the sandbox API.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "sandbox",
		Name:      "tokens_issued_total",
		Help:      "Total number of access tokens issued.",
	},
)

func Result(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}
