package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the server's Prometheus collectors. Each Metrics owns its
// registry so several servers can coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	PagesGenerated  *prometheus.CounterVec
	GenerateLatency prometheus.Histogram
	Requests        *prometheus.CounterVec
	RateLimited     prometheus.Counter
	SeedsIssued     prometheus.Counter
}

// NewMetrics creates and registers all server metrics.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		PagesGenerated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "recordgen_pages_generated_total",
			Help: "Total number of record pages generated by region",
		}, []string{"region"}),

		GenerateLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "recordgen_generate_duration_seconds",
			Help:    "Duration of page generation",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		}),

		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "recordgen_http_requests_total",
			Help: "Total HTTP requests by method and status code",
		}, []string{"method", "status"}),

		RateLimited: factory.NewCounter(prometheus.CounterOpts{
			Name: "recordgen_rate_limited_total",
			Help: "Total requests rejected by the rate limiter",
		}),

		SeedsIssued: factory.NewCounter(prometheus.CounterOpts{
			Name: "recordgen_random_seeds_total",
			Help: "Total random seeds handed out",
		}),
	}
}

// ObservePage records one generated page.
func (m *Metrics) ObservePage(region string, d time.Duration) {
	if m != nil {
		m.PagesGenerated.WithLabelValues(region).Inc()
		m.GenerateLatency.Observe(d.Seconds())
	}
}

// ObserveRequest counts a finished HTTP request.
func (m *Metrics) ObserveRequest(method string, status int) {
	if m != nil {
		m.Requests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
