// Package metrics defines and registers the custom Prometheus metrics of the
// catgraph API. It is the single source of truth for metric names, labels and
// help strings. Metrics are registered with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catgraph"

// ── GraphQL metrics ───────────────────────────────────────────────────────────

// GraphQLOperationsTotal counts executed GraphQL operations.
// Labels:
//   - operation: the operation name sent by the client, or "anonymous"
//   - outcome: "ok" or "error" (at least one error in the response)
var GraphQLOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "graphql_operations_total",
		Help:      "Total number of GraphQL operations executed.",
	},
	[]string{"operation", "outcome"},
)

// GraphQLOperationDuration measures execution time of a whole operation.
var GraphQLOperationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "graphql_operation_duration_seconds",
		Help:      "Duration of GraphQL operation execution.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)

// GraphQLErrorsTotal counts errors returned to clients.
// Label:
//   - code: the extensions.code attached to the error (e.g. "UNAUTHORIZED")
var GraphQLErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "graphql_errors_total",
		Help:      "Total number of GraphQL errors returned, by code.",
	},
	[]string{"code"},
)

// PersistedQueriesTotal counts automatic persisted query lookups.
// Label:
//   - result: "hit", "miss" or "register"
var PersistedQueriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "persisted_queries_total",
		Help:      "Total number of persisted query lookups, labelled by result.",
	},
	[]string{"result"},
)

// ── Auth service metrics ──────────────────────────────────────────────────────

// UpstreamRequestsTotal counts requests sent to the auth service.
// Labels:
//   - endpoint: route template (e.g. "GET /users/{id}")
//   - code: HTTP status code, or "error" when no response was received
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_upstream_requests_total",
		Help:      "Total number of requests sent to the auth service.",
	},
	[]string{"endpoint", "code"},
)

// UpstreamRequestDuration measures auth service round trips.
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "auth_upstream_request_duration_seconds",
		Help:      "Duration of requests to the auth service.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"endpoint"},
)

// ── Cat metrics ───────────────────────────────────────────────────────────────

// CatsCreatedTotal counts cats created through createCat.
var CatsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cats_created_total",
		Help:      "Total number of cats created.",
	},
)
