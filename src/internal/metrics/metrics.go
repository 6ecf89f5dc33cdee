package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry      *prometheus.Registry
	remoteCalls   *prometheus.CounterVec
	remoteLatency *prometheus.HistogramVec
	pageRenders   *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		remoteCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "spride",
			Name:      "remote_calls_total",
			Help:      "Backend API calls by operation and outcome.",
		}, []string{"op", "outcome"}),
		remoteLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "spride",
			Name:      "remote_call_seconds",
			Help:      "Backend API call latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
		pageRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "spride",
			Name:      "page_renders_total",
			Help:      "Rendered pages by name.",
		}, []string{"page"}),
	}
	m.registry.MustRegister(m.remoteCalls, m.remoteLatency, m.pageRenders)
	return m
}

// ObserveCall records one backend call. A nil receiver is a no-op so tests
// can leave metrics out.
func (m *Metrics) ObserveCall(op, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.remoteCalls.WithLabelValues(op, outcome).Inc()
	m.remoteLatency.WithLabelValues(op).Observe(elapsed.Seconds())
}

func (m *Metrics) PageRendered(page string) {
	if m == nil {
		return
	}
	m.pageRenders.WithLabelValues(page).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }
