package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterToolInvocations    *prometheus.CounterVec
	CounterUpstreamResponses  *prometheus.CounterVec
	CounterHandleRequestPanic prometheus.Counter

	// gauges
	GaugeLifeSignal prometheus.Gauge

	// histograms
	HistogramInvocationDuration *prometheus.HistogramVec
}

func NewTestManager() *Manager {
	return NewManager("intervals_mcp", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("intervals_mcp", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterToolInvocations := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "tool_invocations",
		Help:      "The total number of tool invocations, by tool and outcome",
	}, []string{"tool", "outcome"})
	counterUpstreamResponses := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "upstream_responses",
		Help:      "The total number of Intervals.icu API responses, by status class",
	}, []string{"status_class"})
	counterHandleRequestPanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_request_panic",
		Help:      "The total number of serve request panics",
	})

	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "life_signal",
		Help:      "Set to 1 while the server is up",
	})

	histogramInvocationDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "invocation_duration_seconds",
		Help:      "Duration of MCP method handling",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})

	return &Manager{
		CounterToolInvocations:      counterToolInvocations,
		CounterUpstreamResponses:    counterUpstreamResponses,
		CounterHandleRequestPanic:   counterHandleRequestPanic,
		GaugeLifeSignal:             gaugeLifeSignal,
		HistogramInvocationDuration: histogramInvocationDuration,
	}
}

// ToolInvocation bumps the invocation counter for the given tool.
func (m *Manager) ToolInvocation(tool, outcome string) {
	if m == nil {
		return
	}
	m.CounterToolInvocations.WithLabelValues(tool, outcome).Inc()
}

// UpstreamResponse bumps the upstream response counter, labeled by status
// class (2xx, 4xx, 5xx ...). Status 0 means the request never completed.
func (m *Manager) UpstreamResponse(statusCode int) {
	if m == nil {
		return
	}
	class := "failed"
	if statusCode > 0 {
		class = strconv.Itoa(statusCode/100) + "xx"
	}
	m.CounterUpstreamResponses.WithLabelValues(class).Inc()
}

// MethodHandled records the duration of one MCP method invocation.
func (m *Manager) MethodHandled(method string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HistogramInvocationDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}
