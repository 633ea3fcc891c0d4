// Package metrics defines and registers all custom Prometheus metrics for the
// portal API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation through promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// ── Route guard ───────────────────────────────────────────────────────────────

// GuardDecisionsTotal counts route guard outcomes.
// Label:
//   - decision: "skip", "public", "allow" or "redirect"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of route guard decisions, by outcome.",
	},
	[]string{"decision"},
)

// ── Auth ──────────────────────────────────────────────────────────────────────

// SignInsTotal counts completed sign-ins.
// Labels:
//   - provider: OAuth provider id (e.g. "google")
//   - is_new_user: "true" when the identity was created by this sign-in
var SignInsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sign_ins_total",
		Help:      "Total number of successful sign-ins.",
	},
	[]string{"provider", "is_new_user"},
)

// SignInErrorsTotal counts failed sign-in callbacks.
// Label:
//   - type: the auth error type (e.g. "AccessDenied", "InvalidCheck")
var SignInErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sign_in_errors_total",
		Help:      "Total number of failed sign-in callbacks, by auth error type.",
	},
	[]string{"type"},
)

// ── Bug reports ───────────────────────────────────────────────────────────────

// SubmissionsTotal counts bug report submissions.
// Label:
//   - result: "accepted", "invalid" or "error"
var SubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bug_report_submissions_total",
		Help:      "Total number of bug report submissions, by result.",
	},
	[]string{"result"},
)

// ── Web vitals ────────────────────────────────────────────────────────────────

// WebVitals records client-reported web vital values.
// Label:
//   - name: metric name (LCP, INP, CLS, TTFB, FCP)
var WebVitals = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "web_vitals",
		Help:      "Client-reported web vital values (milliseconds, CLS unitless).",
		Buckets:   []float64{0.05, 0.1, 0.25, 100, 200, 500, 600, 1200, 1800, 2500, 3000, 4000, 8000},
	},
	[]string{"name"},
)

// WebVitalsRatingTotal counts server-computed ratings.
// Labels:
//   - name: metric name
//   - rating: "good", "needs-improvement" or "poor"
var WebVitalsRatingTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "web_vitals_rating_total",
		Help:      "Total number of web vital samples, by server-computed rating.",
	},
	[]string{"name", "rating"},
)

// ── Background events ─────────────────────────────────────────────────────────

// EventsDroppedTotal counts events discarded because a worker queue was full.
var EventsDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_dropped_total",
		Help:      "Total number of background events dropped on a full worker queue.",
	},
)
