// Package classmix provides a Go library for balancing school class rosters
// through greedy student exchanges.
//
// Classmix takes a fixed set of teams with students already placed on them and
// evens out four composition statistics across the teams: high-performer
// count, boys, girls, and language-proficiency count. It never moves a locked
// student, never separates co-located friend pairs (pairs move together), and
// never changes team sizes.
//
// # Quick Start
//
// Basic usage with default settings:
//
//	import "github.com/yiannitsarou/classmix"
//
//	cfg := classmix.DefaultConfig()
//	opt, err := classmix.New(&cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := opt.Optimize(ctx, roster)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%s after %d swaps\n", result.State, len(result.Swaps))
//
// # Key Features
//
//   - Deterministic: identical roster and configuration reproduce an
//     identical swap log and final composition
//   - Respectful of placement constraints: locked students and friend
//     pairings survive every exchange
//   - Tiered search: strict attribute-matched swaps are preferred, friend
//     pairs exchange against friend pairs, and a relaxed tier keeps the
//     search moving when strict matches run out
//   - Auditable: every run returns an ordered swap log, final per-team
//     statistics, and a composition fingerprint
//
// # Architecture
//
// A run progresses through a small state machine:
//
//	Idle → Running → Converged | Stuck | Exhausted
//
// Each pass recomputes the global spreads, picks the teams with the most and
// fewest high performers, generates improving exchange candidates between
// them, and applies the best one. All three terminal states return normally;
// the roster is left in the best composition the search reached.
//
// # Advanced Usage
//
// Custom configuration with options:
//
//	cfg := classmix.Config{
//	    Targets:       classmix.Targets{HighPerf: 2, Gender: 3, Proficiency: 3},
//	    MaxIterations: 200,
//	}
//
//	hooks := &classmix.Hooks{
//	    OnSwapApplied: func(ctx context.Context, sw classmix.Swap) error {
//	        fmt.Printf("%s: %v -> %v\n", sw.Tier, sw.Out, sw.In)
//	        return nil
//	    },
//	}
//
//	opt, err := classmix.New(&cfg,
//	    classmix.WithHooks(hooks),
//	    classmix.WithLogger(logger),
//	)
//
// See the examples/ directory for complete working examples.
package classmix
