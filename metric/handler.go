package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler returns an http.Handler that exposes the registry's metrics in
// the Prometheus text format. Mounting it is left to the host application;
// the library never opens a listener of its own.
func (r *MetricsRegistry) Handler() http.Handler {
	return promhttp.HandlerFor(r.prometheusRegistry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}
