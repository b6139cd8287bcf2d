// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels shared by LLM and tool call counters.
const (
	OutcomeOK      = "ok"
	OutcomeError   = "error"
	OutcomeUnknown = "unknown"
)

// Recorder is the metrics surface used by use cases and middleware.
type Recorder interface {
	RecordSync(status string)
	RecordLLMCall(purpose string, outcome string)
	RecordToolCall(tool string, outcome string)
	ObserveHTTPRequest(method, route string, statusCode int, duration time.Duration)
}

// Collector is the Prometheus implementation of Recorder.
type Collector struct {
	syncResults *prometheus.CounterVec
	llmCalls    *prometheus.CounterVec
	toolCalls   *prometheus.CounterVec
	httpLatency *prometheus.HistogramVec
}

// NewCollector creates a Collector and registers its metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		syncResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "course_planner_sync_results_total",
			Help: "Calendar sync results by status",
		}, []string{"status"}),
		llmCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "course_planner_llm_calls_total",
			Help: "LLM calls by purpose and outcome",
		}, []string{"purpose", "outcome"}),
		toolCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "course_planner_tool_calls_total",
			Help: "Calendar tool invocations by tool and outcome",
		}, []string{"tool", "outcome"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "course_planner_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status_code"}),
	}

	reg.MustRegister(
		c.syncResults,
		c.llmCalls,
		c.toolCalls,
		c.httpLatency,
	)

	return c
}

func (c *Collector) RecordSync(status string) {
	c.syncResults.WithLabelValues(status).Inc()
}

func (c *Collector) RecordLLMCall(purpose string, outcome string) {
	c.llmCalls.WithLabelValues(purpose, outcome).Inc()
}

func (c *Collector) RecordToolCall(tool string, outcome string) {
	c.toolCalls.WithLabelValues(tool, outcome).Inc()
}

func (c *Collector) ObserveHTTPRequest(method, route string, statusCode int, duration time.Duration) {
	c.httpLatency.WithLabelValues(method, route, strconv.Itoa(statusCode)).Observe(duration.Seconds())
}

// Handler returns the scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop discards every observation.
type Nop struct{}

func (Nop) RecordSync(string)                                     {}
func (Nop) RecordLLMCall(string, string)                          {}
func (Nop) RecordToolCall(string, string)                         {}
func (Nop) ObserveHTTPRequest(string, string, int, time.Duration) {}

var (
	_ Recorder = (*Collector)(nil)
	_ Recorder = Nop{}
)
