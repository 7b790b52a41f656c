package backend

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts outbound backend calls by operation and outcome.
type Metrics struct {
	calls   *prometheus.CounterVec
	latency *prometheus.HistogramVec
}

// NewMetrics builds the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portfolio",
			Subsystem: "backend",
			Name:      "calls_total",
			Help:      "Count of calls made to the portfolio API",
		}, []string{"op", "outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "portfolio",
			Subsystem: "backend",
			Name:      "call_duration_seconds",
			Help:      "Latency of calls made to the portfolio API",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		}, []string{"op"}),
	}
	if reg != nil {
		reg.MustRegister(m.calls, m.latency)
	}
	return m
}

func (m *Metrics) observe(op string, err error, d time.Duration) {
	if m == nil {
		return
	}
	m.calls.WithLabelValues(op, outcome(err)).Inc()
	m.latency.WithLabelValues(op).Observe(d.Seconds())
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return "api_error"
	}
	return "transport_error"
}
