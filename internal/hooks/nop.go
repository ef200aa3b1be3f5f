package hooks

import (
	"context"

	"github.com/yiannitsarou/classmix/types"
)

// NopHooks implements Hooks with no-op callbacks.
//
// This is the default implementation used when no custom hooks are provided,
// eliminating the need for nil checks throughout the codebase.
type NopHooks struct{}

// NewNop creates a new no-op hooks implementation.
//
// Returns:
//   - types.Hooks: Hooks with no-op implementations
func NewNop() types.Hooks {
	h := &NopHooks{}
	return types.Hooks{
		OnSwapApplied:  h.OnSwapApplied,
		OnStateChanged: h.OnStateChanged,
		OnIteration:    h.OnIteration,
	}
}

// OnSwapApplied is a no-op implementation.
func (h *NopHooks) OnSwapApplied(ctx context.Context, sw types.Swap) error {
	return nil
}

// OnStateChanged is a no-op implementation.
func (h *NopHooks) OnStateChanged(ctx context.Context, from, to types.State) error {
	return nil
}

// OnIteration is a no-op implementation.
func (h *NopHooks) OnIteration(ctx context.Context, iteration int, spreads types.Spreads) error {
	return nil
}
