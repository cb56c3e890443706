package enrichlayer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus instrumentation for the request engine.
// Attach it with WithMetrics; one Metrics value may be shared by
// several clients against the same registry.
type Metrics struct {
	attempts *prometheus.CounterVec
	retries  *prometheus.CounterVec
	inFlight prometheus.Gauge
}

// NewMetrics registers the client metrics on reg and returns the
// collector set. Pass prometheus.DefaultRegisterer to use the default
// registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		attempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "enrichlayer_attempts_total",
				Help: "Total number of physical HTTP attempts",
			},
			[]string{"endpoint"},
		),
		retries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "enrichlayer_retries_total",
				Help: "Total number of rate-limit backoff retries",
			},
			[]string{"endpoint"},
		),
		inFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "enrichlayer_in_flight_requests",
				Help: "Number of physical HTTP requests currently in flight",
			},
		),
	}
}

// Attempt implements the engine recorder.
func (m *Metrics) Attempt(endpoint string) {
	m.attempts.WithLabelValues(endpoint).Inc()
}

// Retry implements the engine recorder.
func (m *Metrics) Retry(endpoint string) {
	m.retries.WithLabelValues(endpoint).Inc()
}

// InFlight implements the engine recorder.
func (m *Metrics) InFlight(delta int) {
	m.inFlight.Add(float64(delta))
}
