package types

import "time"

// Result summarizes a finished optimization run.
//
// The optimizer mutates the roster it was given in place; Result carries the
// audit trail around that mutation. With the same roster and configuration a
// rerun produces an identical swap log and an identical fingerprint.
type Result struct {
	// RunID uniquely identifies the run (UUID).
	RunID string `json:"run_id"`

	// State is the terminal state the loop ended in.
	State State `json:"state"`

	// Iterations is the number of loop passes, counting the pass that
	// detected the terminal condition.
	Iterations int `json:"iterations"`

	// Swaps is the ordered log of applied exchanges. Empty when the
	// roster converged immediately.
	Swaps []Swap `json:"swaps"`

	// Spreads are the final global gaps.
	Spreads Spreads `json:"spreads"`

	// Stats are the final per-team counts.
	Stats map[string]TeamStats `json:"stats"`

	// Fingerprint is a stable hash of the final team composition, useful
	// for asserting that two runs produced the same placement.
	Fingerprint uint64 `json:"fingerprint"`

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration `json:"elapsed"`
}

// Converged reports whether the run ended with every spread within target.
func (r *Result) Converged() bool {
	return r.State == StateConverged
}
