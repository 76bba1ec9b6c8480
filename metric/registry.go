package metric

import (
	stderrors "errors"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/chaosarts/chaosui/errors"
)

// Registrar defines the interface for registering host-specific metrics
// alongside the library's own.
type Registrar interface {
	RegisterCollector(owner, metricName string, collector prometheus.Collector) error
	Unregister(owner, metricName string) bool
}

// MetricsRegistry manages the registration and lifecycle of metrics
type MetricsRegistry struct {
	prometheusRegistry *prometheus.Registry
	Metrics            *Metrics
	registeredMetrics  map[string]prometheus.Collector
	mu                 sync.RWMutex
}

// NewMetricsRegistry creates a new metrics registry with core library metrics
func NewMetricsRegistry() *MetricsRegistry {
	prometheusRegistry := prometheus.NewRegistry()

	registry := &MetricsRegistry{
		prometheusRegistry: prometheusRegistry,
		registeredMetrics:  make(map[string]prometheus.Collector),
	}

	// Initialize and register core metrics
	registry.Metrics = NewMetrics()
	registry.registerMetrics()

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

// CoreMetrics returns the core library metrics
func (r *MetricsRegistry) CoreMetrics() *Metrics {
	return r.Metrics
}

// RegisterCollector registers a host-supplied collector under an owner and
// metric name. The owner keeps host metrics from colliding with each other;
// collisions inside Prometheus itself are reported as invalid.
func (r *MetricsRegistry) RegisterCollector(owner, metricName string, collector prometheus.Collector) error {
	if collector == nil {
		return errors.WrapInvalid(
			fmt.Errorf("nil collector for metric %s", metricName),
			"MetricsRegistry", "RegisterCollector", "collector validation")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := fmt.Sprintf("%s.%s", owner, metricName)

	if _, exists := r.registeredMetrics[key]; exists {
		return errors.WrapInvalid(
			fmt.Errorf("metric %s already registered for %s", metricName, owner),
			"MetricsRegistry", "RegisterCollector", "duplicate metric registration")
	}

	if err := r.prometheusRegistry.Register(collector); err != nil {
		var alreadyRegErr prometheus.AlreadyRegisteredError
		if stderrors.As(err, &alreadyRegErr) {
			return errors.WrapInvalid(err, "MetricsRegistry", "RegisterCollector",
				fmt.Sprintf("prometheus conflict for metric %s", metricName))
		}
		return errors.WrapFatal(err, "MetricsRegistry", "RegisterCollector",
			"register collector with prometheus")
	}

	r.registeredMetrics[key] = collector
	return nil
}

// Unregister removes a metric from the registry
func (r *MetricsRegistry) Unregister(owner, metricName string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := fmt.Sprintf("%s.%s", owner, metricName)

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

// registerMetrics registers all core library metrics
func (r *MetricsRegistry) registerMetrics() {
	r.prometheusRegistry.MustRegister(
		r.Metrics.RegistrationsTotal,
		r.Metrics.ResolutionsTotal,
		r.Metrics.InstancesActive,
		r.Metrics.QueriesTotal,
		r.Metrics.InitializationsTotal,
		r.Metrics.InitializationTime,
	)
}
