package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yiannitsarou/classmix/types"
)

func cand(tier types.Tier, name string, high, gender, prof int) Candidate {
	return Candidate{
		Tier: tier,
		From: "A1", To: "A2",
		Out: []string{name},
		In:  []string{name + "-in"},
		Improvement: types.Improvement{
			HighPerf:   high,
			Gender:     gender,
			Proficient: prof,
		},
	}
}

func TestBest(t *testing.T) {
	t.Parallel()

	t.Run("empty pool reports not ok", func(t *testing.T) {
		_, ok := Best(nil)
		require.False(t, ok)
	})

	t.Run("high performer delta dominates", func(t *testing.T) {
		best, ok := Best([]Candidate{
			cand(types.TierSoloStrict, "small", 1, 4, 4),
			cand(types.TierSoloRelaxed, "big", 2, 0, 0),
		})
		require.True(t, ok)
		require.Equal(t, []string{"big"}, best.Out)
	})

	t.Run("gender delta breaks high performer ties", func(t *testing.T) {
		best, ok := Best([]Candidate{
			cand(types.TierSoloStrict, "a", 1, 0, 3),
			cand(types.TierSoloStrict, "b", 1, 2, 0),
		})
		require.True(t, ok)
		require.Equal(t, []string{"b"}, best.Out)
	})

	t.Run("proficiency delta breaks gender ties", func(t *testing.T) {
		best, ok := Best([]Candidate{
			cand(types.TierSoloStrict, "a", 1, 1, 0),
			cand(types.TierSoloStrict, "b", 1, 1, 2),
		})
		require.True(t, ok)
		require.Equal(t, []string{"b"}, best.Out)
	})

	t.Run("stricter tier wins full delta ties", func(t *testing.T) {
		best, ok := Best([]Candidate{
			cand(types.TierSoloRelaxed, "relaxed", 2, 0, 0),
			cand(types.TierSoloStrict, "strict", 2, 0, 0),
			cand(types.TierPairStrict, "pair", 2, 0, 0),
		})
		require.True(t, ok)
		require.Equal(t, []string{"strict"}, best.Out)
	})

	t.Run("full ties keep generation order", func(t *testing.T) {
		best, ok := Best([]Candidate{
			cand(types.TierSoloStrict, "first", 1, 1, 1),
			cand(types.TierSoloStrict, "second", 1, 1, 1),
		})
		require.True(t, ok)
		require.Equal(t, []string{"first"}, best.Out)
	})

	t.Run("input order is preserved", func(t *testing.T) {
		cands := []Candidate{
			cand(types.TierSoloRelaxed, "a", 0, 1, 0),
			cand(types.TierSoloStrict, "b", 2, 0, 0),
		}
		_, ok := Best(cands)
		require.True(t, ok)
		require.Equal(t, []string{"a"}, cands[0].Out)
		require.Equal(t, []string{"b"}, cands[1].Out)
	})
}
