package runner

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/yiannitsarou/classmix"
	"github.com/yiannitsarou/classmix/test/simulation/internal/config"
	"github.com/yiannitsarou/classmix/test/simulation/internal/logging"
	"github.com/yiannitsarou/classmix/types"
)

// Runner executes seeded optimization runs and validates every outcome.
//
// A single optimizer instance is reused across runs, so the sweep also
// exercises the sequential-restart path of the state machine.
type Runner struct {
	cfg    *config.Config
	opt    *classmix.Optimizer
	logger types.Logger
}

// New creates a runner from the simulation configuration.
//
// Extra options are passed to the optimizer; the simulation binary uses this
// to attach its metrics collector.
func New(cfg *config.Config, opts ...classmix.Option) (*Runner, error) {
	optCfg := classmix.Config{
		Targets:       cfg.Optimizer.Targets,
		MaxIterations: cfg.Optimizer.MaxIterations,
	}

	if cfg.Simulation.Verbose {
		opts = append(opts, classmix.WithLogger(logging.NewStdLogger("optimizer", true)))
	}

	opt, err := classmix.New(&optCfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create optimizer: %w", err)
	}

	return &Runner{
		cfg:    cfg,
		opt:    opt,
		logger: logging.NewStdLogger("runner", cfg.Simulation.Verbose),
	}, nil
}

// Run executes runs until the mode's stop condition and returns the report.
//
// In sweep mode the configured number of runs is executed and a cancelled
// context is an error. In soak mode cancellation (usually the duration
// timeout) ends the loop gracefully.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	report := &Report{}
	start := time.Now()

	for run := 0; ; run++ {
		if ctx.Err() != nil {
			if r.cfg.Simulation.Mode == config.ModeSoak {
				break
			}

			report.Elapsed = time.Since(start)

			return report, ctx.Err()
		}
		if r.cfg.Simulation.Mode == config.ModeSweep && run >= r.cfg.Simulation.Runs {
			break
		}

		seed := r.cfg.Simulation.Seed + int64(run)
		if err := r.runOnce(ctx, seed, report); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				continue // the top of the loop decides how to stop
			}

			report.Elapsed = time.Since(start)

			return report, fmt.Errorf("run %d (seed %d): %w", run, seed, err)
		}

		if (run+1)%100 == 0 {
			r.logger.Info("progress",
				"runs", report.Runs,
				"converged", report.Converged,
				"stuck", report.Stuck,
				"exhausted", report.Exhausted,
				"swaps", report.TotalSwaps,
			)
		}
	}

	report.Elapsed = time.Since(start)

	return report, nil
}

// runOnce generates one seeded roster, optimizes it, and validates the result.
func (r *Runner) runOnce(ctx context.Context, seed int64, report *Report) error {
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // Weak RNG acceptable for simulation data
	roster := generateRoster(rng, r.cfg.Rosters)
	before := roster.Clone()
	initial := types.SpreadsOf(roster.Stats())

	result, err := r.opt.Optimize(ctx, roster)
	if err != nil {
		return err
	}

	if err := validateRun(before, roster); err != nil {
		return err
	}
	if result.Spreads.HighPerf > initial.HighPerf {
		return fmt.Errorf("high-performer gap widened: %d -> %d", initial.HighPerf, result.Spreads.HighPerf)
	}

	report.observe(result)

	return nil
}
