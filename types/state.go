package types

// State represents the optimization run state.
//
// A run follows a defined progression:
//
//	StateIdle → StateRunning → StateConverged/StateStuck/StateExhausted
//
// The three final states are terminal and all of them end the run normally:
// converging is success, while stuck and exhausted runs still leave the
// roster in the best composition the search reached.
type State int

const (
	// StateIdle is the initial state before an optimization starts.
	StateIdle State = iota

	// StateRunning indicates the optimization loop is iterating.
	StateRunning

	// StateConverged indicates every spread reached its target, or the
	// extreme-team gap closed below the high-performer target.
	StateConverged

	// StateStuck indicates no improving swap exists for the current
	// extreme team pair.
	StateStuck

	// StateExhausted indicates the iteration cap was reached before
	// converging.
	StateExhausted
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StateConverged:
		return "Converged"
	case StateStuck:
		return "Stuck"
	case StateExhausted:
		return "Exhausted"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the state ends a run.
func (s State) Terminal() bool {
	switch s {
	case StateConverged, StateStuck, StateExhausted:
		return true
	default:
		return false
	}
}
