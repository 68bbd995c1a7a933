package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const SOURCE_INLINE = "inline"
const SOURCE_STORED = "stored"

// Metrics provides observability for visibility evaluation.
type Metrics struct {
	registry *prometheus.Registry

	// Evaluations by input source and workflow step name
	Evaluations *prometheus.CounterVec

	// Decision cache lookups by result
	CacheLookups *prometheus.CounterVec

	EvaluateLatency prometheus.Histogram

	CacheSize prometheus.Gauge
}

// New registers every metric on a private registry so several instances can
// coexist in one process.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		Evaluations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "engage_visibility_evaluations_total",
			Help: "Total visibility evaluations by source and workflow step",
		}, []string{"source", "step"}),

		CacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "engage_visibility_cache_lookups_total",
			Help: "Decision cache lookups by result",
		}, []string{"result"}), // result: "hit", "miss"

		EvaluateLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "engage_visibility_evaluate_duration_seconds",
			Help:    "Duration of a visibility evaluation including the cache lookup",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}),

		CacheSize: factory.NewGauge(prometheus.GaugeOpts{
			Name: "engage_visibility_cache_entries",
			Help: "Number of memoised decision sets",
		}),
	}
}

func (m *Metrics) IncrementEvaluation(source, step string) {
	if m != nil {
		m.Evaluations.WithLabelValues(source, step).Inc()
	}
}

func (m *Metrics) IncrementCacheLookup(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.CacheLookups.WithLabelValues("hit").Inc()
	} else {
		m.CacheLookups.WithLabelValues("miss").Inc()
	}
}

func (m *Metrics) ObserveEvaluateLatency(d time.Duration) {
	if m != nil {
		m.EvaluateLatency.Observe(d.Seconds())
	}
}

func (m *Metrics) SetCacheSize(n int) {
	if m != nil {
		m.CacheSize.Set(float64(n))
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
