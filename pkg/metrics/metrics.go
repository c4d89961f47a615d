package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portfolio"

// ContactSubmissions counts finished submissions by outcome
// (accepted, rejected, unavailable, failed).
var ContactSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "contact_submissions_total",
	Help:      "number of contact form submissions by outcome",
}, []string{"outcome"})

// AutoReplyFailures counts swallowed auto-reply delivery failures.
// These never surface to the caller, so this counter is the only
// place they remain visible.
var AutoReplyFailures = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "auto_reply_failures_total",
	Help:      "number of auto-reply emails that failed to send",
})
