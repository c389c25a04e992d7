package monitoring

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector owns the service's Prometheus registry.
type MetricsCollector struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	analysesTotal  *prometheus.CounterVec
	leaksDetected  *prometheus.CounterVec
	alertsTotal    *prometheus.CounterVec
	scenariosTotal prometheus.Counter
}

// NewMetricsCollector creates and registers the service metrics on a private registry.
func NewMetricsCollector(serviceName string) *MetricsCollector {
	prefix := strings.ReplaceAll(serviceName, "-", "_")
	reg := prometheus.NewRegistry()

	mc := &MetricsCollector{
		registry: reg,
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		analysesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_analyses_total",
				Help: "Analyses run, by transport",
			},
			[]string{"transport"},
		),
		leaksDetected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_leaks_detected_total",
				Help: "Profit leaks detected, by leak name",
			},
			[]string{"leak"},
		),
		alertsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_alerts_total",
				Help: "Leak alerts by outcome (published, suppressed, failed)",
			},
			[]string{"outcome"},
		),
		scenariosTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: prefix + "_scenarios_total",
				Help: "What-if scenario comparisons run",
			},
		),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		mc.httpRequestsTotal,
		mc.httpRequestDuration,
		mc.analysesTotal,
		mc.leaksDetected,
		mc.alertsTotal,
		mc.scenariosTotal,
	)
	return mc
}

// MetricsMiddleware records request counts and latency per route.
func (mc *MetricsCollector) MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		mc.httpRequestsTotal.WithLabelValues(c.Request.Method, endpoint, status).Inc()
		mc.httpRequestDuration.WithLabelValues(c.Request.Method, endpoint).Observe(time.Since(start).Seconds())
	}
}

// MetricsHandler serves the registry in Prometheus exposition format.
func (mc *MetricsCollector) MetricsHandler() gin.HandlerFunc {
	h := promhttp.HandlerFor(mc.registry, promhttp.HandlerOpts{Registry: mc.registry})
	return gin.WrapH(h)
}

// RecordAnalysis counts one analysis and the leaks it found.
func (mc *MetricsCollector) RecordAnalysis(transport string, leakNames []string) {
	mc.analysesTotal.WithLabelValues(transport).Inc()
	for _, name := range leakNames {
		mc.leaksDetected.WithLabelValues(name).Inc()
	}
}

// RecordAlert counts an alert outcome.
func (mc *MetricsCollector) RecordAlert(outcome string) {
	mc.alertsTotal.WithLabelValues(outcome).Inc()
}

// RecordScenario counts one scenario comparison.
func (mc *MetricsCollector) RecordScenario() {
	mc.scenariosTotal.Inc()
}
