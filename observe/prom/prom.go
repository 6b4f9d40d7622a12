// Package prom provides a Prometheus-backed observer for the shutdown
// library. It exports counters for lifecycle transitions and a gauge for
// currently held delay tokens.
package prom

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics implements the shutdown.Observer interface on top of Prometheus
// collectors. All methods are safe for concurrent use.
type Metrics struct {
	triggered  prometheus.Counter
	completed  prometheus.Counter
	acquired   prometheus.Counter
	released   prometheus.Counter
	delaysHeld prometheus.Gauge
}

// New creates a Metrics observer and registers its collectors with reg.
// It panics if a collector with the same name is already registered.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		triggered: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "shutdown",
			Name:      "triggered_total",
			Help:      "Number of shutdown triggers observed.",
		}),
		completed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "shutdown",
			Name:      "completed_total",
			Help:      "Number of shutdown completions observed.",
		}),
		acquired: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "shutdown",
			Name:      "delay_tokens_acquired_total",
			Help:      "Number of delay tokens handed out.",
		}),
		released: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "shutdown",
			Name:      "delay_tokens_released_total",
			Help:      "Number of delay tokens released.",
		}),
		delaysHeld: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "shutdown",
			Name:      "delay_tokens_held",
			Help:      "Delay tokens currently held.",
		}),
	}
}

// ShutdownTriggered records a shutdown trigger.
func (m *Metrics) ShutdownTriggered() { m.triggered.Inc() }

// ShutdownCompleted records a shutdown completion.
func (m *Metrics) ShutdownCompleted() { m.completed.Inc() }

// DelayAcquired records a delay token being handed out.
func (m *Metrics) DelayAcquired() {
	m.acquired.Inc()
	m.delaysHeld.Inc()
}

// DelayReleased records a delay token being released.
func (m *Metrics) DelayReleased() {
	m.released.Inc()
	m.delaysHeld.Dec()
}
