// Package metrics defines and registers all custom Prometheus metrics for
// the HR portal API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hrportal"

// LoginAttemptsTotal counts login attempts by outcome.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// PostsCreatedTotal counts news posts created.
var PostsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_created_total",
		Help:      "Total number of news posts created.",
	},
)

// PostsDeletedTotal counts news posts deleted.
var PostsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_deleted_total",
		Help:      "Total number of news posts deleted.",
	},
)

// UploadsRejectedTotal counts rejected image uploads.
// Label:
//   - reason: "extension" or "size"
var UploadsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_rejected_total",
		Help:      "Total number of rejected image uploads, by reason.",
	},
	[]string{"reason"},
)

// ReferralsCreatedTotal counts referral submissions.
var ReferralsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "referrals_created_total",
		Help:      "Total number of referrals submitted.",
	},
)

// ReferralExportsTotal counts CSV exports of the referral list.
var ReferralExportsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "referral_exports_total",
		Help:      "Total number of referral CSV exports.",
	},
)
