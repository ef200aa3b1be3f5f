package types

import "context"

// Hooks defines callbacks for optimization run events.
//
// All hooks are optional. Unlike background-service callbacks, they run
// synchronously inside the optimization loop: the loop is deterministic and
// hook ordering is part of that guarantee. Hook errors are logged and do not
// fail the run.
//
// Best practices for hook implementation:
//   - Complete quickly; the loop waits for the hook to return
//   - Respect context cancellation for any I/O
//   - Handle errors gracefully (return error for logging)
//
// Example:
//
//	hooks := &classmix.Hooks{
//	    OnSwapApplied: func(ctx context.Context, sw classmix.Swap) error {
//	        fmt.Printf("swap %s -> %s (%v)\n", sw.From, sw.To, sw.Tier)
//	        return nil
//	    },
//	}
type Hooks struct {
	// OnSwapApplied is called after each swap is applied to the roster
	// and appended to the run log.
	OnSwapApplied func(ctx context.Context, sw Swap) error

	// OnStateChanged is called when the run state transitions.
	OnStateChanged func(ctx context.Context, from, to State) error

	// OnIteration is called at the start of every loop pass with the
	// current global spreads.
	OnIteration func(ctx context.Context, iteration int, spreads Spreads) error
}
