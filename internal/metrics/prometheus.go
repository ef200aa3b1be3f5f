package metrics

import (
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/yiannitsarou/classmix/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Metric registration is lazy: nothing is registered until the first
// observation, so constructing the collector never panics on a registry that
// already carries the metrics (e.g. across tests sharing a registry).
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	runDuration      *prometheus.HistogramVec
	runIterations    prometheus.Histogram
	spreadGauges     *prometheus.GaugeVec
	stateTransitions *prometheus.CounterVec
	stateDropped     prometheus.Counter
	swapsApplied     *prometheus.CounterVec
	candidatePool    *prometheus.HistogramVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "classmix" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "classmix"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.runDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "run",
			Name:      "duration_seconds",
			Help:      "Wall-clock duration of optimization runs by outcome.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms .. ~4s
		}, []string{"outcome"})

		p.runIterations = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "run",
			Name:      "iterations",
			Help:      "Loop passes per optimization run.",
			Buckets:   []float64{1, 2, 5, 10, 20, 50, 100},
		})

		p.spreadGauges = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "run",
			Name:      "final_spread",
			Help:      "Final cross-team spread of the last finished run by metric.",
		}, []string{"metric"})

		p.stateTransitions = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "run",
			Name:      "state_transitions_total",
			Help:      "Total run state transitions by from/to state.",
		}, []string{"from", "to"})

		p.stateDropped = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "run",
			Name:      "state_changes_dropped_total",
			Help:      "State change notifications dropped due to slow subscribers.",
		})

		p.swapsApplied = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "swap",
			Name:      "applied_total",
			Help:      "Total applied swaps by candidate tier.",
		}, []string{"tier"})

		p.candidatePool = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "swap",
			Name:      "candidates_generated",
			Help:      "Improving candidates generated per iteration by tier.",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50, 100},
		}, []string{"tier"})

		p.reg.MustRegister(p.runDuration)
		p.reg.MustRegister(p.runIterations)
		p.reg.MustRegister(p.spreadGauges)
		p.reg.MustRegister(p.stateTransitions)
		p.reg.MustRegister(p.stateDropped)
		p.reg.MustRegister(p.swapsApplied)
		p.reg.MustRegister(p.candidatePool)
	})
}

// RunMetrics implementation

// RecordRunDuration observes the wall-clock time of a finished run.
func (p *PrometheusCollector) RecordRunDuration(duration float64, outcome string) {
	p.ensureRegistered()
	p.runDuration.WithLabelValues(strings.ToLower(outcome)).Observe(duration)
}

// RecordIterations observes the loop passes of a finished run.
func (p *PrometheusCollector) RecordIterations(count int) {
	p.ensureRegistered()
	p.runIterations.Observe(float64(count))
}

// RecordFinalSpreads sets the final spread gauges of a finished run.
func (p *PrometheusCollector) RecordFinalSpreads(spreads types.Spreads) {
	p.ensureRegistered()
	p.spreadGauges.WithLabelValues("high_perf").Set(float64(spreads.HighPerf))
	p.spreadGauges.WithLabelValues("boys").Set(float64(spreads.Boys))
	p.spreadGauges.WithLabelValues("girls").Set(float64(spreads.Girls))
	p.spreadGauges.WithLabelValues("proficient").Set(float64(spreads.Proficient))
}

// RecordStateTransition counts a run state transition.
func (p *PrometheusCollector) RecordStateTransition(from, to types.State) {
	p.ensureRegistered()
	p.stateTransitions.WithLabelValues(from.String(), to.String()).Inc()
}

// RecordStateChangeDropped counts a dropped state change notification.
func (p *PrometheusCollector) RecordStateChangeDropped() {
	p.ensureRegistered()
	p.stateDropped.Inc()
}

// SwapMetrics implementation

// RecordSwapApplied counts an applied swap by tier.
func (p *PrometheusCollector) RecordSwapApplied(tier types.Tier) {
	p.ensureRegistered()
	p.swapsApplied.WithLabelValues(tier.String()).Inc()
}

// RecordCandidateCount observes a generated candidate pool size by tier.
func (p *PrometheusCollector) RecordCandidateCount(tier types.Tier, count int) {
	p.ensureRegistered()
	p.candidatePool.WithLabelValues(tier.String()).Observe(float64(count))
}
