// Package metric provides Prometheus-based metrics collection for component
// binding, resolution, and initialization.
//
// The package offers a centralized metrics registry managing both core library
// metrics (registrations, resolutions, initializations, queries) and custom
// host-specific metrics. It exposes an http.Handler producing Prometheus
// format output; mounting that handler is left to the host application.
//
// # Architecture
//
// The package follows a three-layer design:
//
//  1. Core Metrics: Library-level metrics automatically registered (Metrics type)
//  2. Host Registry: Extensible registration for host-specific metrics (Registrar interface)
//  3. HTTP Handler: Metrics endpoint in Prometheus text format (Handler method)
//
// This architecture separates library concerns (binding and initialization
// metrics) from application concerns (host-specific metrics) while providing
// a unified gathering point for monitoring systems.
//
// # Basic Usage
//
// Setting up metrics collection:
//
//	registry := metric.NewMetricsRegistry()
//	http.Handle("/metrics", registry.Handler())
//
//	// Record core library metrics
//	coreMetrics := registry.CoreMetrics()
//	coreMetrics.RecordRegistration()
//	coreMetrics.RecordResolution("accordion", "created")
//	coreMetrics.RecordInitialization("accordion", "success")
//
// # Core Metrics
//
// The package automatically registers core library metrics tracking:
//
//   - Registration activity: registrations_total
//   - Name resolution: resolutions_total{name, outcome}
//   - Instance cache population: instances_active
//   - Document queries: queries_total{operation}
//   - Initialization outcomes: initializations_total{name, outcome}
//   - Initialization latency: initialization_duration_seconds{name}
//
// All core metrics use the namespace "chaosui" and a subsystem naming the
// layer they observe:
//   - chaosui_registry_registrations_total
//   - chaosui_binder_resolutions_total{name="...", outcome="..."}
//   - chaosui_lifecycle_initializations_total{name="...", outcome="success|failure"}
//
// # Host-Specific Metrics
//
// Hosts can register custom collectors through the registry:
//
//	requestCounter := prometheus.NewCounter(prometheus.CounterOpts{
//	    Name: "form_submissions_total",
//	    Help: "Total number of form submissions",
//	})
//	err := registry.RegisterCollector("forms", "form_submissions_total", requestCounter)
//
// The owner string keeps host metrics from colliding with each other; the
// same (owner, name) pair cannot be registered twice.
//
// # Registrar Interface
//
// Hosts implement against the Registrar interface for dependency injection:
//
//	type Widget struct {
//	    metrics metric.Registrar
//	}
//
// This enables testing with mock registrars and provides loose coupling.
//
// # Thread Safety
//
// All registry operations are thread-safe:
//   - Registration methods use mutex protection
//   - Metric recording is lock-free (Prometheus guarantee)
//   - CoreMetrics() returns a thread-safe shared instance
//   - PrometheusRegistry() is safe for concurrent access
//
// # Error Handling
//
// RegisterCollector returns errors for:
//
//   - Duplicate registration: attempting to register the same (owner, name) twice
//   - Prometheus conflicts: internal Prometheus registration failures
//   - Validation errors: nil collectors
//
// Duplicate and conflict errors classify as invalid; unexpected Prometheus
// failures classify as fatal. See the errors package for classification
// helpers.
package metric
