package metrics

import "github.com/yiannitsarou/classmix/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external
// metrics collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
//
// Example:
//
//	metrics := metrics.NewNop()
//	opt, err := classmix.New(&cfg, classmix.WithMetrics(metrics))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RunMetrics implementation

// RecordRunDuration discards the run duration metric.
func (n *NopMetrics) RecordRunDuration(_ /* duration */ float64, _ /* outcome */ string) {
	// No-op
}

// RecordIterations discards the iteration count metric.
func (n *NopMetrics) RecordIterations(_ /* count */ int) {
	// No-op
}

// RecordFinalSpreads discards the final spread gauges.
func (n *NopMetrics) RecordFinalSpreads(_ /* spreads */ types.Spreads) {
	// No-op
}

// RecordStateTransition discards the state transition metric.
func (n *NopMetrics) RecordStateTransition(_ /* from */, _ /* to */ types.State) {
	// No-op
}

// RecordStateChangeDropped discards the state change dropped metric.
func (n *NopMetrics) RecordStateChangeDropped() {
	// No-op
}

// SwapMetrics implementation

// RecordSwapApplied discards the applied swap metric.
func (n *NopMetrics) RecordSwapApplied(_ /* tier */ types.Tier) {
	// No-op
}

// RecordCandidateCount discards the candidate pool size metric.
func (n *NopMetrics) RecordCandidateCount(_ /* tier */ types.Tier, _ /* count */ int) {
	// No-op
}
