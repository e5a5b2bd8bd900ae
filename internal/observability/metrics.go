package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yungbote/aislechef-backend/internal/platform/logger"
	"github.com/yungbote/aislechef-backend/internal/route"
)

// Metrics owns the service's Prometheus registry. A nil *Metrics is valid and
// records nothing, so callers never need to check whether metrics are enabled.
type Metrics struct {
	registry *prometheus.Registry

	apiRequests *prometheus.CounterVec
	apiLatency  *prometheus.HistogramVec
	apiInflight prometheus.Gauge

	routeResolutions *prometheus.CounterVec
	routeEntries     *prometheus.CounterVec
	cacheLookups     *prometheus.CounterVec
}

// NewMetrics builds a registry with process and Go runtime collectors plus
// the service's own series.
func NewMetrics(log *logger.Logger) *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		apiRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "aislechef_api_requests_total",
			Help: "Total API requests by method/route/status.",
		}, []string{"method", "route", "status"}),
		apiLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "aislechef_api_request_duration_seconds",
			Help:    "API request latency in seconds.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method", "route", "status"}),
		apiInflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "aislechef_api_inflight_requests",
			Help: "API requests currently being served.",
		}),
		routeResolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "aislechef_route_resolutions_total",
			Help: "Route resolutions by source (recipe, adhoc).",
		}, []string{"source"}),
		routeEntries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "aislechef_route_entries_total",
			Help: "Resolved route entries by outcome.",
		}, []string{"outcome"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "aislechef_cache_lookups_total",
			Help: "Cache lookups by cache name and result.",
		}, []string{"cache", "result"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.apiRequests,
		m.apiLatency,
		m.apiInflight,
		m.routeResolutions,
		m.routeEntries,
		m.cacheLookups,
	)
	if log != nil {
		log.Info("metrics enabled")
	}
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveAPI(method, routePath string, status int, dur time.Duration) {
	if m == nil {
		return
	}
	if method == "" {
		method = "UNKNOWN"
	}
	if routePath == "" {
		routePath = "unknown"
	}
	code := strconv.Itoa(status)
	m.apiRequests.WithLabelValues(method, routePath, code).Inc()
	m.apiLatency.WithLabelValues(method, routePath, code).Observe(dur.Seconds())
}

func (m *Metrics) ApiInflightInc() {
	if m == nil {
		return
	}
	m.apiInflight.Inc()
}

func (m *Metrics) ApiInflightDec() {
	if m == nil {
		return
	}
	m.apiInflight.Dec()
}

// ObserveRoute records one resolution and how many of its entries matched
// the store directory.
func (m *Metrics) ObserveRoute(source string, stats route.Stats) {
	if m == nil {
		return
	}
	if source == "" {
		source = "unknown"
	}
	m.routeResolutions.WithLabelValues(source).Inc()
	m.routeEntries.WithLabelValues("resolved").Add(float64(stats.Resolved))
	m.routeEntries.WithLabelValues("unresolved").Add(float64(stats.Unresolved))
}

func (m *Metrics) ObserveCache(name string, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(name, result).Inc()
}
