// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"punchclock/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "punchclock"

type Metrics struct {
	registry *prometheus.Registry

	// HTTP requests by method, route and status
	RequestsTotal *prometheus.CounterVec
	// HTTP request duration by method and route
	RequestDuration *prometheus.HistogramVec
	// Requests currently being served
	RequestsInFlight prometheus.Gauge
	// Login attempts by outcome
	LoginAttempts *prometheus.CounterVec
	// Clock transitions by operation, outcome and trigger
	ClockTransitions *prometheus.CounterVec
	// Hours written by closed entries
	HoursRecorded prometheus.Histogram
	// Database statement duration by operation and status
	DBQueryDuration *prometheus.HistogramVec
}

// NewRegistry builds the registry served on /metrics, with Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: reg,
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		}, []string{"method", "route"}),
		RequestsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Number of HTTP requests currently being processed.",
		}),
		LoginAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "login_attempts_total",
			Help:      "Total number of login attempts.",
		}, []string{"status"}),
		ClockTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "clock_transitions_total",
			Help:      "Clock-in and clock-out attempts by outcome.",
		}, []string{"operation", "outcome", "trigger"}),
		HoursRecorded: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "entry_hours",
			Help:      "Duration in hours of closed time entries.",
			Buckets:   []float64{0.5, 1, 2, 4, 6, 8, 10, 12, 15},
		}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "db_query_duration_seconds",
			Help:      "Duration of database statements in seconds.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"operation", "status"}),
	}

	reg.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.RequestsInFlight,
		m.LoginAttempts,
		m.ClockTransitions,
		m.HoursRecorded,
		m.DBQueryDuration,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveHTTP records one finished request.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveLogin records a login attempt by outcome.
func (m *Metrics) ObserveLogin(status string) {
	m.LoginAttempts.WithLabelValues(status).Inc()
}

// ObserveDB records the duration and status of one database statement.
func (m *Metrics) ObserveDB(operation string, elapsed time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}

	m.DBQueryDuration.WithLabelValues(operation, status).Observe(elapsed.Seconds())
}

// ObserveClockIn implements service.ClockMetrics.
func (m *Metrics) ObserveClockIn(outcome string) {
	m.ClockTransitions.WithLabelValues("clock_in", outcome, "manual").Inc()
}

// ObserveClockOut implements service.ClockMetrics.
func (m *Metrics) ObserveClockOut(outcome string, automatic bool) {
	trigger := "manual"
	if automatic {
		trigger = "automatic"
	}

	m.ClockTransitions.WithLabelValues("clock_out", outcome, trigger).Inc()
}

// ObserveHoursRecorded implements service.ClockMetrics.
func (m *Metrics) ObserveHoursRecorded(hours float64) {
	m.HoursRecorded.Observe(hours)
}

// AsClockMetrics exposes m through the domain interface.
func AsClockMetrics(m *Metrics) service.ClockMetrics {
	return m
}
