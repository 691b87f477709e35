package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the Prometheus metrics of the service. Each collector owns
// its registry so tests can create as many as they need.
type Collector struct {
	registry *prometheus.Registry

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	Assessments     *prometheus.CounterVec
	Simulations     *prometheus.CounterVec
	ActivatedEdges  prometheus.Histogram
	OperationTiming *prometheus.HistogramVec
	RiskLevels      *prometheus.CounterVec
	ModelReloads    *prometheus.CounterVec
}

// NewCollector creates and registers the metrics under namespace
func NewCollector(namespace string) *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		Assessments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "risk_assessments_total",
			Help:      "Risk assessments by outcome",
		}, []string{"with_ci", "status"}),
		Simulations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "simulations_total",
			Help:      "What-if simulations by outcome",
		}, []string{"kind", "status"}),
		ActivatedEdges: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "simulation_activated_edges",
			Help:      "Number of edges activated per simulation",
			Buckets:   prometheus.LinearBuckets(0, 5, 10),
		}),
		OperationTiming: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "engine_operation_duration_seconds",
			Help:      "Engine operation duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.00005, 4, 8),
		}, []string{"operation"}),
		RiskLevels: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ncd_risk_level_total",
			Help:      "Assessed NCD composite risk level",
		}, []string{"level"}),
		ModelReloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "model_reloads_total",
			Help:      "Model reload attempts by outcome",
		}, []string{"status"}),
	}

	c.registry.MustRegister(
		c.HTTPRequests,
		c.HTTPDuration,
		c.Assessments,
		c.Simulations,
		c.ActivatedEdges,
		c.OperationTiming,
		c.RiskLevels,
		c.ModelReloads,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// Registry returns the registry backing the collector
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Handler serves the metrics in the Prometheus exposition format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// RecordHTTP records one served request
func (c *Collector) RecordHTTP(method, route, status string, d time.Duration) {
	c.HTTPRequests.WithLabelValues(method, route, status).Inc()
	c.HTTPDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// RecordAssessment records a risk assessment and its NCD risk level
func (c *Collector) RecordAssessment(withCI bool, level string, d time.Duration, err error) {
	c.Assessments.WithLabelValues(boolLabel(withCI), statusLabel(err)).Inc()
	c.OperationTiming.WithLabelValues("assess").Observe(d.Seconds())
	if err == nil && level != "" {
		c.RiskLevels.WithLabelValues(level).Inc()
	}
}

// RecordSimulation records a cascade run
func (c *Collector) RecordSimulation(kind string, activatedEdges int, d time.Duration, err error) {
	c.Simulations.WithLabelValues(kind, statusLabel(err)).Inc()
	c.OperationTiming.WithLabelValues("simulate").Observe(d.Seconds())
	if err == nil {
		c.ActivatedEdges.Observe(float64(activatedEdges))
	}
}

// RecordModelReload records a model reload attempt
func (c *Collector) RecordModelReload(err error) {
	c.ModelReloads.WithLabelValues(statusLabel(err)).Inc()
}

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func boolLabel(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
