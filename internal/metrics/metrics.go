// Package metrics owns the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	votesCast        *prometheus.CounterVec
	assistantCalls   *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	upstreamFailures *prometheus.CounterVec
	upstreamRejected *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
}

// New registers every collector on a fresh registry, so tests can build as
// many instances as they like.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		votesCast: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "qa_votes_cast_total",
			Help: "Votes cast by target kind",
		}, []string{"target_type"}),
		assistantCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "qa_assistant_calls_total",
			Help: "Assistant calls by operation and the implementation that served them",
		}, []string{"operation", "source"}),
		upstreamDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "qa_assistant_upstream_duration_seconds",
			Help:    "Latency of remote assistant calls",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10), // 50ms to ~25s
		}, []string{"operation"}),
		upstreamFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "qa_assistant_upstream_failures_total",
			Help: "Remote assistant calls that failed or timed out",
		}, []string{"operation"}),
		upstreamRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "qa_assistant_upstream_rejected_total",
			Help: "Remote assistant calls short-circuited by the circuit breaker",
		}, []string{"operation"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "qa_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

func (m *Metrics) VoteCast(targetType string) {
	m.votesCast.WithLabelValues(targetType).Inc()
}

func (m *Metrics) AssistantCall(operation, source string) {
	m.assistantCalls.WithLabelValues(operation, source).Inc()
}

func (m *Metrics) UpstreamLatency(operation string, d time.Duration, failed bool) {
	m.upstreamDuration.WithLabelValues(operation).Observe(d.Seconds())
	if failed {
		m.upstreamFailures.WithLabelValues(operation).Inc()
	}
}

func (m *Metrics) UpstreamRejected(operation string) {
	m.upstreamRejected.WithLabelValues(operation).Inc()
}

func (m *Metrics) ObserveRequest(method, route, status string, d time.Duration) {
	m.requestDuration.WithLabelValues(method, route, status).Observe(d.Seconds())
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
