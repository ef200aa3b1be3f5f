package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// The optimizer is single-threaded, but state-change notifications fan out to
// subscribers, so implementations must still be thread-safe.
//
// This interface composes smaller, domain-focused interfaces for better modularity.
type MetricsCollector interface {
	RunMetrics
	SwapMetrics
}

// RunMetrics defines metrics for whole-run observations.
type RunMetrics interface {
	// RecordRunDuration records the wall-clock time of a finished run.
	//
	// Parameters:
	//   - duration: Time taken in seconds
	//   - outcome: Terminal state name ("Converged", "Stuck", "Exhausted")
	RecordRunDuration(duration float64, outcome string)

	// RecordIterations records the number of loop passes of a finished run.
	RecordIterations(count int)

	// RecordFinalSpreads sets the final spread gauges of a finished run.
	RecordFinalSpreads(spreads Spreads)

	// RecordStateTransition records a run state transition event.
	RecordStateTransition(from, to State)

	// RecordStateChangeDropped records when state change notifications are
	// dropped due to slow subscribers.
	RecordStateChangeDropped()
}

// SwapMetrics defines metrics for per-iteration swap observations.
type SwapMetrics interface {
	// RecordSwapApplied records an applied swap.
	//
	// Parameters:
	//   - tier: Candidate family of the applied swap
	RecordSwapApplied(tier Tier)

	// RecordCandidateCount records the size of a generated candidate pool.
	//
	// Parameters:
	//   - tier: Candidate family
	//   - count: Number of improving candidates generated for the tier
	RecordCandidateCount(tier Tier, count int)
}
