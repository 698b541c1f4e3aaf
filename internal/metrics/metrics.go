package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsRegistry holds all Prometheus metrics for the drone API.
// Each registry owns its prometheus.Registry so several can coexist in tests.
type MetricsRegistry struct {
	reg *prometheus.Registry

	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge
	RateLimitedTotal     prometheus.Counter
	AuthFailuresTotal    prometheus.Counter

	// Mission Metrics
	MissionsSubmittedTotal  prometheus.Counter
	MissionTransitionsTotal *prometheus.CounterVec
	MissionRejectionsTotal  *prometheus.CounterVec
	ImagesGeneratedTotal    prometheus.Counter
	MissionsTracked         prometheus.GaugeFunc
}

// NewMetricsRegistry builds the registry. trackedMissions reports the current
// mission count and may be nil.
func NewMetricsRegistry(trackedMissions func() int) *MetricsRegistry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	if trackedMissions == nil {
		trackedMissions = func() int { return 0 }
	}

	return &MetricsRegistry{
		reg: reg,

		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "drone_api_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "drone_api_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "drone_api_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
		),
		RateLimitedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "drone_api_rate_limited_total",
				Help: "Requests rejected by the per-client rate limiter",
			},
		),
		AuthFailuresTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "drone_api_auth_failures_total",
				Help: "Requests rejected for a missing or wrong API key",
			},
		),

		MissionsSubmittedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "drone_missions_submitted_total",
				Help: "Total missions submitted",
			},
		),
		MissionTransitionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "drone_mission_transitions_total",
				Help: "Mission state transitions by target status",
			},
			[]string{"status"},
		),
		MissionRejectionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "drone_mission_rejections_total",
				Help: "Mission operations rejected by the store, by operation and reason",
			},
			[]string{"operation", "reason"},
		),
		ImagesGeneratedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "drone_images_generated_total",
				Help: "Total simulated images synthesized at mission completion",
			},
		),
		MissionsTracked: factory.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "drone_missions_tracked",
				Help: "Missions currently held in memory",
			},
			func() float64 { return float64(trackedMissions()) },
		),
	}
}

// Registry exposes the underlying registry for gathering.
func (m *MetricsRegistry) Registry() *prometheus.Registry {
	return m.reg
}

// Handler serves this registry in the Prometheus exposition format.
func (m *MetricsRegistry) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}
