package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains all library-level metrics (not host-specific)
type Metrics struct {
	// Registry metrics
	RegistrationsTotal prometheus.Counter

	// Binder metrics
	ResolutionsTotal *prometheus.CounterVec
	InstancesActive  prometheus.Gauge
	QueriesTotal     *prometheus.CounterVec

	// Lifecycle metrics
	InitializationsTotal *prometheus.CounterVec
	InitializationTime   *prometheus.HistogramVec
}

// NewMetrics creates a new Metrics instance with all library metrics
func NewMetrics() *Metrics {
	return &Metrics{
		RegistrationsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "chaosui",
				Subsystem: "registry",
				Name:      "registrations_total",
				Help:      "Total number of component registrations",
			},
		),

		ResolutionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "chaosui",
				Subsystem: "binder",
				Name:      "resolutions_total",
				Help:      "Total number of node resolutions by outcome (cached, created, unmarked, miss, error)",
			},
			[]string{"name", "outcome"},
		),

		InstancesActive: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "chaosui",
				Subsystem: "binder",
				Name:      "instances_active",
				Help:      "Number of component instances currently cached",
			},
		),

		QueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "chaosui",
				Subsystem: "binder",
				Name:      "queries_total",
				Help:      "Total number of component queries by operation",
			},
			[]string{"operation"},
		),

		InitializationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "chaosui",
				Subsystem: "lifecycle",
				Name:      "initializations_total",
				Help:      "Total number of completed initialization runs by outcome",
			},
			[]string{"name", "outcome"},
		),

		InitializationTime: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "chaosui",
				Subsystem: "lifecycle",
				Name:      "initialization_duration_seconds",
				Help:      "Initialization run duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"name"},
		),
	}
}

// RecordRegistration increments the registration counter
func (m *Metrics) RecordRegistration() {
	m.RegistrationsTotal.Inc()
}

// RecordResolution increments the resolution counter for a name and outcome
func (m *Metrics) RecordResolution(name, outcome string) {
	m.ResolutionsTotal.WithLabelValues(name, outcome).Inc()
}

// SetInstancesActive updates the cached instance gauge
func (m *Metrics) SetInstancesActive(count int) {
	m.InstancesActive.Set(float64(count))
}

// RecordQuery increments the query counter for an operation
func (m *Metrics) RecordQuery(operation string) {
	m.QueriesTotal.WithLabelValues(operation).Inc()
}

// RecordInitialization increments the initialization counter for a name and outcome
func (m *Metrics) RecordInitialization(name, outcome string) {
	m.InitializationsTotal.WithLabelValues(name, outcome).Inc()
}

// ObserveInitializationDuration records how long an initialization run took
func (m *Metrics) ObserveInitializationDuration(name string, duration time.Duration) {
	m.InitializationTime.WithLabelValues(name).Observe(duration.Seconds())
}
