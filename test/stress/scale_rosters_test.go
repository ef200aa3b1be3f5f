package stress_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/yiannitsarou/classmix"
	"github.com/yiannitsarou/classmix/test/testutil"
	"github.com/yiannitsarou/classmix/types"
)

// TestScale_Rosters runs full optimizations over growing roster sizes.
//
// This test establishes performance baselines for realistic school sizes:
// - Iteration count and swap count per roster size
// - Wall-clock time per run
// - Structural invariants at scale (sizes, locks, pairs)
//
// The test validates that the greedy loop stays fast and correct well past
// the two-team case the unit tests cover.
//
//nolint:tparallel // Parent test has t.Parallel() call at line 33
func TestScale_Rosters(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping scale test in short mode")
	}

	requireStressEnabled(t)

	t.Parallel()

	sizes := []struct {
		teams   int
		perTeam int
	}{
		{2, 25},
		{4, 25},
		{8, 30},
		{16, 30},
	}

	for _, size := range sizes {
		t.Run(fmt.Sprintf("%dt-%ds", size.teams, size.perTeam), func(t *testing.T) {
			t.Parallel()

			seed := int64(size.teams*1000 + size.perTeam)
			roster := testutil.GenerateRoster(t, size.teams, size.perTeam, seed)
			before := roster.Clone()
			initial := types.SpreadsOf(roster.Stats())

			cfg := classmix.DefaultConfig()
			cfg.MaxIterations = 500

			opt, err := classmix.New(&cfg)
			require.NoError(t, err)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()

			start := time.Now()
			result, err := opt.Optimize(ctx, roster)
			require.NoError(t, err)
			elapsed := time.Since(start)

			require.True(t, result.State.Terminal(), "run ended in %s", result.State)
			require.LessOrEqual(t, result.Spreads.HighPerf, initial.HighPerf,
				"high-performer gap must never widen")
			testutil.AssertRosterInvariants(t, before, roster)

			t.Logf("%d students: %s after %d iterations, %d swaps, spreads %+v -> %+v in %v",
				roster.TotalStudents(), result.State, result.Iterations,
				len(result.Swaps), initial, result.Spreads, elapsed)
		})
	}
}
