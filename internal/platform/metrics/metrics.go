// Package metrics exposes Prometheus instrumentation for the recipient store.
package metrics

import (
	"net/http"

	"github.com/louisbranch/recipients/internal/recipient"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics tracks store mutations and the current selection size.
type Metrics struct {
	registry   *prometheus.Registry
	Operations *prometheus.CounterVec
	Selected   prometheus.Gauge
	Recipients prometheus.Gauge
}

// New creates a Metrics instance backed by its own registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		Operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "recipients_operations_total",
			Help: "Total number of recipient store operations applied",
		}, []string{"op"}),
		Selected: factory.NewGauge(prometheus.GaugeOpts{
			Name: "recipients_selected",
			Help: "Number of recipients currently selected",
		}),
		Recipients: factory.NewGauge(prometheus.GaugeOpts{
			Name: "recipients_total",
			Help: "Number of recipients held by the store",
		}),
	}
}

// Observe records one applied store operation. It satisfies recipient.Observer.
func (m *Metrics) Observe(op recipient.Operation, next recipient.Snapshot) {
	if m == nil {
		return
	}
	m.Operations.WithLabelValues(string(op)).Inc()
	m.SetSnapshot(next)
}

// SetSnapshot refreshes the gauges from s.
func (m *Metrics) SetSnapshot(s recipient.Snapshot) {
	if m == nil {
		return
	}
	m.Selected.Set(float64(s.SelectedCount()))
	m.Recipients.Set(float64(s.Len()))
}

// Registry returns the registry the metrics are registered with.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
