package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"scan-viewer-go/pkg/cli/client"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the web server.
type Metrics struct {
	registry *prometheus.Registry

	ScansTotal      *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// NewMetrics registers the metrics on a private registry so several servers
// can live in one process.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		ScansTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "scan_viewer_scans_total",
			Help: "The total number of scans submitted",
		}, []string{"outcome", "error_type"}), // outcome: 'ok', 'error', 'invalid'
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "scan_viewer_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

// ObserveScan counts one submission by its outcome
func (m *Metrics) ObserveScan(err error) {
	switch scanErr, ok := client.AsScanError(err); {
	case err == nil:
		m.ScansTotal.WithLabelValues("ok", "").Inc()
	case ok:
		m.ScansTotal.WithLabelValues("error", string(scanErr.Type)).Inc()
	default:
		m.ScansTotal.WithLabelValues("invalid", "").Inc()
	}
}

// ObserveRequest records the latency of one HTTP request
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.RequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
