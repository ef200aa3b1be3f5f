package runner

import (
	"fmt"
	"time"

	"github.com/yiannitsarou/classmix"
)

// Report aggregates the outcomes of all completed runs.
type Report struct {
	Runs            int
	Converged       int
	Stuck           int
	Exhausted       int
	TotalSwaps      int
	TotalIterations int
	Elapsed         time.Duration
}

// observe folds one run result into the report.
func (r *Report) observe(result *classmix.Result) {
	r.Runs++
	switch result.State {
	case classmix.StateConverged:
		r.Converged++
	case classmix.StateStuck:
		r.Stuck++
	case classmix.StateExhausted:
		r.Exhausted++
	}
	r.TotalSwaps += len(result.Swaps)
	r.TotalIterations += result.Iterations
}

// String renders a one-line summary.
func (r *Report) String() string {
	avgIterations := 0.0
	if r.Runs > 0 {
		avgIterations = float64(r.TotalIterations) / float64(r.Runs)
	}

	return fmt.Sprintf("runs=%d converged=%d stuck=%d exhausted=%d swaps=%d avg_iterations=%.1f elapsed=%v",
		r.Runs, r.Converged, r.Stuck, r.Exhausted, r.TotalSwaps, avgIterations, r.Elapsed)
}
