// Package metric provides a Prometheus metrics registry and HTTP exposition
// for buffer observability. Metric registration is name-keyed per buffer so
// duplicate registrations surface as classified errors instead of panics.
package metric

import (
	stderrors "errors"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/SergeyMakeev/CircularBuffer/errors"
)

// MetricsRegistrar defines the interface for registering buffer metrics
type MetricsRegistrar interface {
	RegisterCounter(bufferName, metricName string, counter prometheus.Counter) error
	RegisterGauge(bufferName, metricName string, gauge prometheus.Gauge) error
	RegisterHistogram(bufferName, metricName string, histogram prometheus.Histogram) error
	Unregister(bufferName, metricName string) bool
}

// MetricsRegistry manages the registration and lifecycle of metrics
type MetricsRegistry struct {
	prometheusRegistry *prometheus.Registry
	registeredMetrics  map[string]prometheus.Collector
	mu                 sync.RWMutex
}

// NewMetricsRegistry creates a new metrics registry with Go runtime metrics
func NewMetricsRegistry() *MetricsRegistry {
	prometheusRegistry := prometheus.NewRegistry()

	registry := &MetricsRegistry{
		prometheusRegistry: prometheusRegistry,
		registeredMetrics:  make(map[string]prometheus.Collector),
	}

	// Add Go runtime metrics
	registry.prometheusRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return registry
}

// PrometheusRegistry returns the underlying Prometheus registry
func (r *MetricsRegistry) PrometheusRegistry() *prometheus.Registry {
	return r.prometheusRegistry
}

// RegisterCounter registers a counter metric for a buffer
func (r *MetricsRegistry) RegisterCounter(bufferName, metricName string, counter prometheus.Counter) error {
	return r.register(bufferName, metricName, "RegisterCounter", counter)
}

// RegisterGauge registers a gauge metric for a buffer
func (r *MetricsRegistry) RegisterGauge(bufferName, metricName string, gauge prometheus.Gauge) error {
	return r.register(bufferName, metricName, "RegisterGauge", gauge)
}

// RegisterHistogram registers a histogram metric for a buffer
func (r *MetricsRegistry) RegisterHistogram(bufferName, metricName string, histogram prometheus.Histogram) error {
	return r.register(bufferName, metricName, "RegisterHistogram", histogram)
}

func (r *MetricsRegistry) register(bufferName, metricName, operation string, collector prometheus.Collector) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := fmt.Sprintf("%s.%s", bufferName, metricName)

	if _, exists := r.registeredMetrics[key]; exists {
		return errors.WrapInvalid(
			fmt.Errorf("metric %s already registered for buffer %s", metricName, bufferName),
			"MetricsRegistry", operation, "duplicate metric registration")
	}

	if err := r.prometheusRegistry.Register(collector); err != nil {
		// Check if it's a duplicate registration error from Prometheus
		var alreadyRegErr prometheus.AlreadyRegisteredError
		if stderrors.As(err, &alreadyRegErr) {
			return errors.WrapInvalid(err, "MetricsRegistry", operation,
				fmt.Sprintf("prometheus conflict for metric %s", metricName))
		}
		return errors.WrapFatal(err, "MetricsRegistry", operation,
			"failed to register collector with prometheus")
	}

	r.registeredMetrics[key] = collector
	return nil
}

// Unregister removes a metric from the registry
func (r *MetricsRegistry) Unregister(bufferName, metricName string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := fmt.Sprintf("%s.%s", bufferName, metricName)

	collector, exists := r.registeredMetrics[key]
	if !exists {
		return false
	}

	success := r.prometheusRegistry.Unregister(collector)
	if success {
		delete(r.registeredMetrics, key)
	}

	return success
}
