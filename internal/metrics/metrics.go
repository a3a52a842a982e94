// Package metrics holds the Prometheus collectors of the API.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "hireecho",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hireecho",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "hireecho",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "route"},
	)

	backgroundTasks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hireecho",
			Subsystem: "background",
			Name:      "tasks_total",
			Help:      "Total number of background tasks by outcome.",
		},
		[]string{"task", "outcome"},
	)

	backgroundDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "hireecho",
			Subsystem: "background",
			Name:      "task_duration_seconds",
			Help:      "Duration of background tasks.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"task"},
	)

	backgroundInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "hireecho",
			Subsystem: "background",
			Name:      "inflight_tasks",
			Help:      "Current number of running background tasks.",
		},
	)

	applicantIncrements = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hireecho",
			Subsystem: "applications",
			Name:      "applicant_increments_total",
			Help:      "Applicant counter increments by result.",
		},
		[]string{"result"},
	)
)

// Outcomes of a background task.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomePanic   = "panic"
)

// Results of an applicant counter increment.
const (
	IncrementApplied   = "applied"
	IncrementNoMatch   = "no_match"
	IncrementFailed    = "failed"
	IncrementDuplicate = "skipped_duplicate"
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		backgroundTasks,
		backgroundDuration,
		backgroundInFlight,
		applicantIncrements,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// HTTPStarted marks a request as in flight. The returned func records its completion.
func HTTPStarted() func(method, route string, status int) {
	start := time.Now()
	httpInFlight.Inc()
	return func(method, route string, status int) {
		httpInFlight.Dec()
		if route == "" {
			route = "unmatched"
		}
		method = strings.ToUpper(method)
		httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// TaskStarted marks a background task as running.
func TaskStarted() {
	backgroundInFlight.Inc()
}

// RecordTask records the end of a background task.
func RecordTask(task, outcome string, duration time.Duration) {
	if task == "" {
		task = "unknown"
	}
	if duration <= 0 {
		duration = time.Millisecond
	}
	backgroundInFlight.Dec()
	backgroundTasks.WithLabelValues(task, outcome).Inc()
	backgroundDuration.WithLabelValues(task).Observe(duration.Seconds())
}

// RecordIncrement records the result of an applicant counter increment.
func RecordIncrement(result string) {
	applicantIncrements.WithLabelValues(result).Inc()
}
