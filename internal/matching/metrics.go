package matching

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeMatched   = "matched"
	outcomeFallback  = "fallback"
	outcomeExhausted = "exhausted"
)

type engineMetrics struct {
	assignments *prometheus.CounterVec
	attempts    prometheus.Histogram
}

func newEngineMetrics(reg prometheus.Registerer) (*engineMetrics, error) {
	m := &engineMetrics{
		assignments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "matchy",
			Subsystem: "engine",
			Name:      "assignments_total",
			Help:      "Assignment calls by outcome (matched, fallback, exhausted).",
		}, []string{"outcome"}),
		attempts: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "matchy",
			Subsystem: "engine",
			Name:      "attempts",
			Help:      "Bin-packing passes run per assignment call.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
	}

	var err error
	if m.assignments, err = register(reg, m.assignments); err != nil {
		return nil, err
	}
	if m.attempts, err = register(reg, m.attempts); err != nil {
		return nil, err
	}

	return m, nil
}

// register reuses a collector that an earlier engine already registered on reg.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func (m *engineMetrics) observe(outcome string, attempts int) {
	if m == nil {
		return
	}
	m.assignments.WithLabelValues(outcome).Inc()
	m.attempts.Observe(float64(attempts))
}
