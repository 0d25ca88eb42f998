// Package metrics defines and registers the custom Prometheus metrics for
// the catalog API. It is the single source of truth for metric names,
// labels, and help strings; HTTP-level latency comes from the
// echoprometheus middleware and is not duplicated here.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog"

// TokensIssuedTotal counts access tokens issued by the password grant.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of access tokens issued.",
	},
)

// LoginAttemptsTotal counts token requests by outcome.
// Label:
//   - result: "success", "invalid_credentials", "invalid_client", "throttled"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of password-grant attempts, by result.",
	},
	[]string{"result"},
)

// EntityWritesTotal counts successful mutating operations on resources.
// Labels:
//   - resource: "category", "product", "user"
//   - operation: "create", "update", "delete"
var EntityWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entity_writes_total",
		Help:      "Total number of successful create/update/delete operations, by resource.",
	},
	[]string{"resource", "operation"},
)
