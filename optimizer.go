package classmix

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v4"

	"github.com/yiannitsarou/classmix/internal/engine"
	"github.com/yiannitsarou/classmix/internal/fingerprint"
	"github.com/yiannitsarou/classmix/internal/hooks"
	"github.com/yiannitsarou/classmix/internal/logging"
	"github.com/yiannitsarou/classmix/internal/metrics"
	"github.com/yiannitsarou/classmix/types"
)

// Optimizer evens out team compositions through greedy student exchanges.
//
// Optimizer is the main entry point of the Classmix library. It handles:
//   - Spread computation across all teams (high performers, boys, girls,
//     language proficiency)
//   - Candidate generation between the most and least loaded teams
//   - Swap selection, application, and audit logging
//   - Run state fan-out to subscribers
//
// Thread Safety:
//   - All public methods are safe for concurrent use
//   - Only one Optimize run may be active at a time; concurrent calls
//     return ErrAlreadyRunning
//   - The roster passed to Optimize is mutated in place and must not be
//     shared with other goroutines during the run
//
// Determinism:
// A run is single-threaded and synchronous. Identical roster content and
// configuration reproduce an identical swap log, final composition, and
// fingerprint, regardless of map iteration order or timing.
//
// Testing:
// Consumers can define minimal interfaces for mocking:
//
//	type RosterBalancer interface {
//	    Optimize(ctx context.Context, roster *classmix.Roster) (*classmix.Result, error)
//	}
type Optimizer struct {
	cfg Config

	// Optional dependencies
	hooks   *Hooks
	metrics MetricsCollector
	logger  Logger

	// State management
	state   atomic.Int32 // State
	running atomic.Bool

	// Fan-out to subscribers
	subscribers      *xsync.Map[uint64, *stateSubscriber]
	nextSubscriberID atomic.Uint64
}

// New creates a new Optimizer instance with the provided configuration.
//
// Returns a concrete *Optimizer struct following the "accept interfaces,
// return structs" principle. Consumers can define their own interfaces for
// testing if needed.
//
// Parameters:
//   - cfg: Runtime configuration; missing values are filled with defaults
//   - opts: Optional configuration (hooks, metrics, logger)
//
// Returns:
//   - *Optimizer: Initialized optimizer instance
//   - error: Validation error if configuration is invalid
//
// Example:
//
//	cfg := classmix.DefaultConfig()
//	opt, err := classmix.New(&cfg, classmix.WithLogger(log))
func New(cfg *Config, opts ...Option) (*Optimizer, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}

	// Fill in missing configuration values with defaults
	SetDefaults(cfg)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Apply options
	options := &optimizerOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Provide safe defaults for optional dependencies to avoid nil checks everywhere
	metricsCollector := options.metrics
	if metricsCollector == nil {
		metricsCollector = metrics.NewNop()
	}

	loggerInstance := options.logger
	if loggerInstance == nil {
		loggerInstance = logging.NewNop()
	}

	// Validate with warnings after logger is available
	cfg.ValidateWithWarnings(loggerInstance)

	hooksInstance := options.hooks
	if hooksInstance == nil {
		nopHooks := hooks.NewNop()
		hooksInstance = &nopHooks
	}

	o := &Optimizer{
		cfg:         *cfg,
		hooks:       hooksInstance,
		metrics:     metricsCollector,
		logger:      loggerInstance,
		subscribers: xsync.NewMap[uint64, *stateSubscriber](),
	}

	o.state.Store(int32(StateIdle))

	return o, nil
}

// Optimize runs the balancing loop on the roster until a terminal state.
//
// The roster is mutated in place; the returned Result carries the audit
// trail around that mutation (ordered swap log, final statistics, and a
// composition fingerprint). All three terminal states return a nil error:
// converging is success, and stuck or exhausted runs still leave the roster
// in the best composition the search reached.
//
// Each pass recomputes the global spreads, identifies the teams with the
// most and fewest high performers, generates improving exchanges between
// them, and applies the best one. The run ends when:
//   - every spread is at or below its target (StateConverged)
//   - the extreme-team gap closes to the high-performer target (StateConverged)
//   - no improving exchange exists between the extreme teams (StateStuck)
//   - the iteration cap is reached (StateExhausted)
//
// A nil or teamless roster is a benign no-op and converges immediately.
// Context cancellation aborts the run with the context's error; the roster
// keeps the swaps applied up to that point.
//
// Parameters:
//   - ctx: Context for cancellation
//   - roster: Team membership and student registry to balance
//
// Returns:
//   - *Result: Run summary with swap log, final stats, and fingerprint
//   - error: ErrAlreadyRunning if a run is active, or the context error
//
// Example:
//
//	result, err := opt.Optimize(ctx, roster)
//	if err != nil {
//	    return err
//	}
//	for _, sw := range result.Swaps {
//	    fmt.Printf("%s: %v <-> %v\n", sw.Tier, sw.Out, sw.In)
//	}
func (o *Optimizer) Optimize(ctx context.Context, roster *Roster) (*Result, error) {
	if !o.running.CompareAndSwap(false, true) {
		return nil, ErrAlreadyRunning
	}
	defer o.running.Store(false)

	start := time.Now()
	runID := uuid.NewString()

	// Nothing to balance; report an immediate convergence instead of failing.
	if roster == nil || len(roster.Teams) == 0 {
		o.logger.Info("optimization skipped: empty roster", "run_id", runID)
		o.transitionState(ctx, StateRunning)
		o.transitionState(ctx, StateConverged)

		return o.buildResult(runID, StateConverged, 0, make([]Swap, 0), map[string]TeamStats{}, Spreads{}, roster, start), nil
	}

	o.logger.Info("optimization started",
		"run_id", runID,
		"teams", len(roster.Teams),
		"students", roster.TotalStudents(),
	)

	o.transitionState(ctx, StateRunning)

	var (
		iterations int
		state      State
		swaps      = make([]Swap, 0, 8)
	)

	for {
		if err := ctx.Err(); err != nil {
			o.logger.Warn("optimization cancelled",
				"run_id", runID,
				"iterations", iterations,
				"swaps", len(swaps),
			)
			o.transitionState(ctx, StateIdle)

			return nil, err
		}

		iterations++

		stats := roster.Stats()
		spreads := types.SpreadsOf(stats)

		if o.hooks.OnIteration != nil {
			if err := o.hooks.OnIteration(ctx, iterations, spreads); err != nil {
				o.logError("iteration hook error", "iteration", iterations, "error", err)
			}
		}

		// Stop condition 1: every spread already within target.
		if spreads.Within(o.cfg.Targets) {
			state = StateConverged
			break
		}

		from, to, ok := engine.Extremes(roster, stats)
		if !ok {
			// A single team cannot be uneven with itself.
			state = StateConverged
			break
		}

		// Stop condition 2: the high-performer gap between the extreme
		// teams is the sole continuation gate. Once it closes, remaining
		// demographic spread is accepted as is.
		if stats[from].PerfHigh-stats[to].PerfHigh <= o.cfg.Targets.HighPerf {
			state = StateConverged
			break
		}

		cands := engine.Candidates(roster, stats, from, to)
		o.recordCandidateCounts(cands)

		best, ok := engine.Best(cands)
		if !ok {
			o.logger.Info("no improving exchange between extreme teams",
				"run_id", runID,
				"from", from,
				"to", to,
				"iteration", iterations,
			)
			state = StateStuck
			break
		}

		sw := best.Swap()
		roster.Apply(sw)
		swaps = append(swaps, sw)

		o.metrics.RecordSwapApplied(sw.Tier)
		o.logger.Debug("applied swap",
			"iteration", iterations,
			"tier", sw.Tier.String(),
			"from", sw.From,
			"to", sw.To,
			"out", sw.Out,
			"in", sw.In,
		)

		if o.hooks.OnSwapApplied != nil {
			if err := o.hooks.OnSwapApplied(ctx, sw); err != nil {
				o.logError("swap hook error", "iteration", iterations, "error", err)
			}
		}

		if iterations >= o.cfg.MaxIterations {
			state = StateExhausted
			break
		}
	}

	// The exhausted path breaks after applying a swap, so the pass-top
	// numbers are stale; recompute from the final composition.
	finalStats := roster.Stats()
	finalSpreads := types.SpreadsOf(finalStats)

	o.transitionState(ctx, state)

	result := o.buildResult(runID, state, iterations, swaps, finalStats, finalSpreads, roster, start)

	o.logger.Info("optimization finished",
		"run_id", runID,
		"state", state.String(),
		"iterations", iterations,
		"swaps", len(swaps),
		"spread_high_perf", finalSpreads.HighPerf,
		"elapsed", result.Elapsed,
	)

	return result, nil
}

// State returns the current run state.
//
// Returns:
//   - State: Current state
func (o *Optimizer) State() State {
	return State(o.state.Load())
}

// Subscribe returns a channel that receives state change notifications.
//
// The returned channel is buffered (size 4) to allow rapid transitions
// without blocking the optimization loop. The subscriber receives the
// current state immediately upon subscription. Notifications that cannot
// be delivered are dropped and counted via the metrics collector.
//
// Returns:
//   - <-chan State: Channel that receives state updates
//   - func(): Unsubscribe function to clean up resources
//
// Example:
//
//	ch, unsubscribe := opt.Subscribe()
//	defer unsubscribe()
//	go func() {
//	    for state := range ch {
//	        fmt.Printf("state: %s\n", state)
//	    }
//	}()
func (o *Optimizer) Subscribe() (<-chan State, func()) {
	id := o.nextSubscriberID.Add(1)

	// Buffer size of 4 allows Idle -> Running -> terminal sequences to be
	// queued without dropping states when a subscriber is slow to drain
	sub := &stateSubscriber{ch: make(chan types.State, 4)}
	o.subscribers.Store(id, sub)

	// Immediately send the current state
	sub.trySend(o.State(), o.metrics)

	unsubscribe := func() {
		o.removeSubscriber(id)
	}

	return sub.ch, unsubscribe
}

// removeSubscriber removes a subscriber and closes its channel.
func (o *Optimizer) removeSubscriber(id uint64) {
	if sub, ok := o.subscribers.LoadAndDelete(id); ok {
		sub.close()
	}
}

// transitionState transitions to a new state, triggers hooks, and notifies
// subscribers.
func (o *Optimizer) transitionState(ctx context.Context, to State) {
	from := o.State()
	if from == to {
		return
	}

	// Validate state transition
	if !o.isValidTransition(from, to) {
		o.logError("invalid state transition attempted",
			"from", from.String(),
			"to", to.String(),
		)

		return
	}

	o.state.Store(int32(to)) //nolint:gosec // State values are controlled enum

	o.logger.Info("state transition",
		"from", from.String(),
		"to", to.String(),
	)

	// Trigger state change hook synchronously; run ordering is part of the
	// determinism guarantee.
	if o.hooks.OnStateChanged != nil {
		if err := o.hooks.OnStateChanged(ctx, from, to); err != nil {
			o.logError("state change hook error", "from", from, "to", to, "error", err)
		}
	}

	// Record metrics (always non-nil, defaults to nopMetrics)
	o.metrics.RecordStateTransition(from, to)

	o.subscribers.Range(func(_ uint64, sub *stateSubscriber) bool {
		sub.trySend(to, o.metrics)
		return true
	})
}

// isValidTransition validates that a state transition is allowed.
//
// Returns:
//   - bool: true if transition is valid, false otherwise
func (o *Optimizer) isValidTransition(from, to State) bool {
	// Define valid state transitions; terminal states may restart because
	// an Optimizer can run sequential optimizations.
	validTransitions := map[State][]State{
		StateIdle:      {StateRunning},
		StateRunning:   {StateConverged, StateStuck, StateExhausted, StateIdle},
		StateConverged: {StateRunning},
		StateStuck:     {StateRunning},
		StateExhausted: {StateRunning},
	}

	allowedStates, exists := validTransitions[from]
	if !exists {
		return false
	}

	for _, allowed := range allowedStates {
		if allowed == to {
			return true
		}
	}

	return false
}

// recordCandidateCounts records the generated pool size for every tier,
// including zero-sized pools.
func (o *Optimizer) recordCandidateCounts(cands []engine.Candidate) {
	counts := make(map[Tier]int, 3)
	for _, c := range cands {
		counts[c.Tier]++
	}

	for _, tier := range []Tier{TierSoloStrict, TierPairStrict, TierSoloRelaxed} {
		o.metrics.RecordCandidateCount(tier, counts[tier])
	}
}

// buildResult assembles the run summary and records the whole-run metrics.
func (o *Optimizer) buildResult(
	runID string,
	state State,
	iterations int,
	swaps []Swap,
	stats map[string]TeamStats,
	spreads Spreads,
	roster *Roster,
	start time.Time,
) *Result {
	elapsed := time.Since(start)

	o.metrics.RecordRunDuration(elapsed.Seconds(), state.String())
	o.metrics.RecordIterations(iterations)
	o.metrics.RecordFinalSpreads(spreads)

	return &Result{
		RunID:       runID,
		State:       state,
		Iterations:  iterations,
		Swaps:       swaps,
		Spreads:     spreads,
		Stats:       stats,
		Fingerprint: fingerprint.Of(roster),
		Elapsed:     elapsed,
	}
}

// logError logs an error message.
func (o *Optimizer) logError(msg string, keysAndValues ...any) {
	// Logger is always non-nil (defaults to nopLogger)
	o.logger.Error(msg, keysAndValues...)
}
