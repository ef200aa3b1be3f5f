package stress_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/yiannitsarou/classmix"
	"github.com/yiannitsarou/classmix/test/testutil"
)

// TestStressSmoke runs a very short optimization to validate that the stress
// test infrastructure (roster generator, invariant assertions) still works.
// This test is intentionally fast (<1s) and always runs (even without
// CLASSMIX_STRESS) to catch obvious regressions without invoking the full suite.
func TestStressSmoke(t *testing.T) {
	// Allow skip in -short to minimize CI latency if desired.
	if testing.Short() {
		t.Skip("Skipping smoke test in short mode")
	}

	// Small roster keeps resource usage trivial.
	roster := testutil.GenerateRoster(t, 2, 12, 1)
	before := roster.Clone()

	cfg := classmix.TestConfig()
	opt, err := classmix.New(&cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := opt.Optimize(ctx, roster)
	require.NoError(t, err)

	// Basic assertions.
	require.True(t, result.State.Terminal(), "Smoke run should reach a terminal state")
	require.Greater(t, result.Elapsed, 0*time.Millisecond)
	testutil.AssertRosterInvariants(t, before, roster)
}
