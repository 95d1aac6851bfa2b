package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Failure reasons reported by lifecycle operations.
const (
	ReasonValidation        = "validation"
	ReasonNotFound          = "not_found"
	ReasonInvalidTransition = "invalid_transition"
	ReasonStorage           = "storage"
)

var (
	lifecycleTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hr",
		Subsystem: "lifecycle",
		Name:      "transitions_total",
		Help:      "Total number of committed employee status transitions broken down by source and target status.",
	}, []string{"from", "to"})

	lifecycleRecords = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hr",
		Subsystem: "lifecycle",
		Name:      "records_total",
		Help:      "Total number of event records written broken down by kind.",
	}, []string{"kind"})

	lifecycleFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hr",
		Subsystem: "lifecycle",
		Name:      "failures_total",
		Help:      "Total number of failed lifecycle operations broken down by operation and reason.",
	}, []string{"operation", "reason"})
)

// RecordTransition counts a committed status change.
func RecordTransition(from, to string) {
	lifecycleTransitions.WithLabelValues(from, to).Inc()
}

func RecordEvent(kind string) {
	lifecycleRecords.WithLabelValues(kind).Inc()
}

func RecordFailure(operation, reason string) {
	if reason == "" {
		reason = "other"
	}
	lifecycleFailures.WithLabelValues(operation, reason).Inc()
}
