package circular

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/SergeyMakeev/CircularBuffer/metric"
)

// bufferMetrics holds Prometheus metrics for buffer operations.
type bufferMetrics struct {
	// Counter metrics - incremented directly on operations
	inserts    prometheus.Counter
	removals   prometheus.Counter
	peeks      prometheus.Counter
	overwrites prometheus.Counter
	discards   prometheus.Counter

	// Gauge metrics - updated on operations
	size        prometheus.Gauge
	utilization prometheus.Gauge
}

// newBufferMetrics creates and registers buffer metrics with the provided registry.
func newBufferMetrics(registry *metric.MetricsRegistry, prefix string) (*bufferMetrics, error) {
	m := &bufferMetrics{
		inserts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "circularbuffer",
			Subsystem:   "buffer",
			Name:        "inserts_total",
			ConstLabels: prometheus.Labels{"buffer": prefix},
			Help:        "Total number of elements stored in the buffer",
		}),
		removals: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "circularbuffer",
			Subsystem:   "buffer",
			Name:        "removals_total",
			ConstLabels: prometheus.Labels{"buffer": prefix},
			Help:        "Total number of elements removed from the buffer",
		}),
		peeks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "circularbuffer",
			Subsystem:   "buffer",
			Name:        "peeks_total",
			ConstLabels: prometheus.Labels{"buffer": prefix},
			Help:        "Total number of endpoint reads",
		}),
		overwrites: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "circularbuffer",
			Subsystem:   "buffer",
			Name:        "overwrites_total",
			ConstLabels: prometheus.Labels{"buffer": prefix},
			Help:        "Total number of elements evicted by overwriting inserts",
		}),
		discards: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "circularbuffer",
			Subsystem:   "buffer",
			Name:        "discards_total",
			ConstLabels: prometheus.Labels{"buffer": prefix},
			Help:        "Total number of elements rejected by a full buffer",
		}),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "circularbuffer",
			Subsystem:   "buffer",
			Name:        "size",
			ConstLabels: prometheus.Labels{"buffer": prefix},
			Help:        "Current number of elements in the buffer",
		}),
		utilization: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "circularbuffer",
			Subsystem:   "buffer",
			Name:        "utilization",
			ConstLabels: prometheus.Labels{"buffer": prefix},
			Help:        "Buffer fill level as a fraction of capacity (0.0 to 1.0)",
		}),
	}

	// Register all metrics with the registry
	if err := registry.RegisterCounter(prefix, "buffer_inserts", m.inserts); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "buffer_removals", m.removals); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "buffer_peeks", m.peeks); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "buffer_overwrites", m.overwrites); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "buffer_discards", m.discards); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(prefix, "buffer_size", m.size); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(prefix, "buffer_utilization", m.utilization); err != nil {
		return nil, err
	}

	return m, nil
}

// recordInsert increments the insert counter and updates size/utilization.
func (m *bufferMetrics) recordInsert(size, capacity int) {
	m.inserts.Inc()
	m.size.Set(float64(size))
	m.utilization.Set(float64(size) / float64(capacity))
}

// recordRemove increments the removal counter and updates size/utilization.
func (m *bufferMetrics) recordRemove(size, capacity int) {
	m.removals.Inc()
	m.size.Set(float64(size))
	m.utilization.Set(float64(size) / float64(capacity))
}

// recordPeek increments the peek counter.
func (m *bufferMetrics) recordPeek() {
	m.peeks.Inc()
}

// recordOverwrite increments the overwrite counter.
func (m *bufferMetrics) recordOverwrite() {
	m.overwrites.Inc()
}

// recordDiscard increments the discard counter.
func (m *bufferMetrics) recordDiscard() {
	m.discards.Inc()
}

// updateSize sets the current buffer size and utilization.
func (m *bufferMetrics) updateSize(size, capacity int) {
	m.size.Set(float64(size))
	m.utilization.Set(float64(size) / float64(capacity))
}
