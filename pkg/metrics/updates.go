package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// UpdateMetrics records metadata for dispatched chat updates.
type UpdateMetrics struct {
	duration *prometheus.HistogramVec
	handled  *prometheus.CounterVec
}

// NewUpdateMetrics registers the update metrics on the provided registerer.
func NewUpdateMetrics(reg prometheus.Registerer) *UpdateMetrics {
	if reg == nil {
		return &UpdateMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "update_duration_seconds",
		Help:    "Duration of chat update handling in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"kind"})
	handled := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "updates_handled_total",
		Help: "Chat updates handled, by kind and outcome.",
	}, []string{"kind", "outcome"})
	reg.MustRegister(duration, handled)
	return &UpdateMetrics{
		duration: duration,
		handled:  handled,
	}
}

// ObserveDuration records the handling duration for the update kind.
func (u *UpdateMetrics) ObserveDuration(kind string, duration time.Duration) {
	if u == nil || u.duration == nil {
		return
	}
	u.duration.WithLabelValues(normalizeLabel(kind)).Observe(duration.Seconds())
}

// IncHandled increments the handled counter for the kind/outcome pair.
func (u *UpdateMetrics) IncHandled(kind, outcome string) {
	if u == nil || u.handled == nil {
		return
	}
	u.handled.WithLabelValues(normalizeLabel(kind), normalizeLabel(outcome)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
