package engine

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	opsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "primed",
			Subsystem: "engine",
			Name:      "operations_total",
			Help:      "Total completed engine operations",
		},
		[]string{"op", "backend"},
	)

	opDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "primed",
			Subsystem: "engine",
			Name:      "operation_duration_seconds",
			Help:      "Duration of engine operations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"op", "backend"},
	)

	backendSelected = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "primed",
			Subsystem: "engine",
			Name:      "backend_selected",
			Help:      "1 for the backend the dispatcher resolved to",
		},
		[]string{"backend"},
	)
)

func init() {
	prometheus.MustRegister(opsTotal, opDuration, backendSelected)
}

func observeOp(op string, kind Kind, start time.Time) {
	opsTotal.WithLabelValues(op, string(kind)).Inc()
	opDuration.WithLabelValues(op, string(kind)).Observe(time.Since(start).Seconds())
}

// markSelected is called exactly once, from the resolution path.
func markSelected(kind Kind) {
	backendSelected.WithLabelValues(string(kind)).Set(1)
}
