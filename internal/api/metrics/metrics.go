// Package metrics defines and registers all custom Prometheus metrics for the
// Breathe Right API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry on package import
// via promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "breatheright"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// TokenVerificationsTotal counts bearer token verifications in the auth middleware.
// Label:
//   - result: "ok", "expired", or "invalid"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of session token verifications, labelled by result.",
	},
	[]string{"result"},
)

// ── Health log metrics ────────────────────────────────────────────────────────

// HealthLogsCreatedTotal counts newly created symptom logs.
// Label:
//   - cough_severity: "1" through "5"
var HealthLogsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "health_logs_created_total",
		Help:      "Total number of health logs created, by reported cough severity.",
	},
	[]string{"cough_severity"},
)

// ── Emergency alert metrics ───────────────────────────────────────────────────

// AlertsEnqueuedTotal counts alerts accepted onto the dispatcher queue.
var AlertsEnqueuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "alerts_enqueued_total",
		Help:      "Total number of emergency alerts enqueued for processing.",
	},
)

// AlertsProcessedTotal counts alerts that completed processing.
// Label:
//   - result: "ok" or "error"
var AlertsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "alerts_processed_total",
		Help:      "Total number of emergency alerts processed, labelled by result.",
	},
	[]string{"result"},
)

// AlertsQueueDepth tracks the current number of alerts waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AlertsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "alerts_queue_depth",
		Help:      "Current number of alerts pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
