package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yiannitsarou/classmix/types"
)

func TestExtremes(t *testing.T) {
	t.Parallel()

	t.Run("picks max and min by high performers", func(t *testing.T) {
		r := types.NewRoster()
		r.AddTeam("A1")
		r.AddTeam("A2")
		r.AddTeam("A3")
		stats := map[string]types.TeamStats{
			"A1": {PerfHigh: 1},
			"A2": {PerfHigh: 4},
			"A3": {PerfHigh: 2},
		}

		from, to, ok := Extremes(r, stats)
		require.True(t, ok)
		require.Equal(t, "A2", from)
		require.Equal(t, "A1", to)
	})

	t.Run("ties resolve to the first team in sorted order", func(t *testing.T) {
		r := types.NewRoster()
		r.AddTeam("A3")
		r.AddTeam("A1")
		r.AddTeam("A2")
		stats := map[string]types.TeamStats{
			"A1": {PerfHigh: 2},
			"A2": {PerfHigh: 2},
			"A3": {PerfHigh: 2},
		}

		from, to, ok := Extremes(r, stats)
		require.True(t, ok)
		require.Equal(t, "A1", from)
		require.Equal(t, "A1", to)
	})

	t.Run("fewer than two teams reports not ok", func(t *testing.T) {
		r := types.NewRoster()
		r.AddTeam("A1")

		_, _, ok := Extremes(r, r.Stats())
		require.False(t, ok)
	})
}

// generatorRoster builds a two-team roster with a 2-0 high performer gap.
//
//	A1: h1 (boy/prof/high), h2 (girl/prof/high), f1 (boy/prof/low)
//	A2: l1 (boy/prof/low), l2 (boy/notprof/low), l3 (girl/prof/low)
func generatorRoster() *types.Roster {
	r := types.NewRoster()
	r.AddStudent(student("h1", types.GenderBoy, types.Proficient, types.PerformanceHigh))
	r.AddStudent(student("h2", types.GenderGirl, types.Proficient, types.PerformanceHigh))
	r.AddStudent(student("f1", types.GenderBoy, types.Proficient, types.PerformanceLow))
	r.AddStudent(student("l1", types.GenderBoy, types.Proficient, types.PerformanceLow))
	r.AddStudent(student("l2", types.GenderBoy, types.NotProficient, types.PerformanceLow))
	r.AddStudent(student("l3", types.GenderGirl, types.Proficient, types.PerformanceLow))
	r.AddTeam("A1", "h1", "h2", "f1")
	r.AddTeam("A2", "l1", "l2", "l3")

	return r
}

func TestCandidates(t *testing.T) {
	t.Parallel()

	t.Run("solo tiers propose attribute matched exchanges", func(t *testing.T) {
		r := generatorRoster()
		cands := Candidates(r, r.Stats(), "A1", "A2")

		var tier1, tier3 []Candidate
		for _, c := range cands {
			switch c.Tier {
			case types.TierSoloStrict:
				tier1 = append(tier1, c)
			case types.TierSoloRelaxed:
				tier3 = append(tier3, c)
			default:
				t.Fatalf("unexpected tier %v without pairs in roster", c.Tier)
			}
		}

		// strict: h1<->l1 (boy/prof), h2<->l3 (girl/prof)
		require.Len(t, tier1, 2)
		require.Equal(t, []string{"h1"}, tier1[0].Out)
		require.Equal(t, []string{"l1"}, tier1[0].In)
		require.Equal(t, []string{"h2"}, tier1[1].Out)
		require.Equal(t, []string{"l3"}, tier1[1].In)

		// relaxed repeats the strict matches and adds h1<->l2 (gender only)
		require.Len(t, tier3, 3)
		require.Equal(t, []string{"l1"}, tier3[0].In)
		require.Equal(t, []string{"l2"}, tier3[1].In)
		require.Equal(t, []string{"l3"}, tier3[2].In)
	})

	t.Run("candidates carry the extreme pair and improvement", func(t *testing.T) {
		r := generatorRoster()
		stats := r.Stats()
		cands := Candidates(r, stats, "A1", "A2")
		require.NotEmpty(t, cands)

		for _, c := range cands {
			require.Equal(t, "A1", c.From)
			require.Equal(t, "A2", c.To)
			require.True(t, c.Improvement.Improves())
			// moving one of two highs closes the 2-0 gap completely
			require.Equal(t, 2, c.Improvement.HighPerf)
		}
	})

	t.Run("pair tier matches positionally", func(t *testing.T) {
		r := types.NewRoster()
		// A1: high pair (boy/prof, girl/prof) + locked high to keep the gap
		r.AddStudent(student("p1", types.GenderBoy, types.Proficient, types.PerformanceHigh, "p2"))
		r.AddStudent(student("p2", types.GenderGirl, types.Proficient, types.PerformanceLow))
		lockedHigh := student("k1", types.GenderBoy, types.Proficient, types.PerformanceHigh)
		lockedHigh.Locked = true
		r.AddStudent(lockedHigh)
		// A2: low pair in matching positional order
		r.AddStudent(student("q1", types.GenderBoy, types.Proficient, types.PerformanceLow, "q2"))
		r.AddStudent(student("q2", types.GenderGirl, types.Proficient, types.PerformanceLow))
		r.AddStudent(student("q3", types.GenderBoy, types.Proficient, types.PerformanceLow))
		r.AddTeam("A1", "p1", "p2", "k1")
		r.AddTeam("A2", "q1", "q2", "q3")

		cands := Candidates(r, r.Stats(), "A1", "A2")
		require.Len(t, cands, 1)
		require.Equal(t, types.TierPairStrict, cands[0].Tier)
		require.Equal(t, []string{"p1", "p2"}, cands[0].Out)
		require.Equal(t, []string{"q1", "q2"}, cands[0].In)
	})

	t.Run("pair tier rejects swapped positions", func(t *testing.T) {
		r := types.NewRoster()
		r.AddStudent(student("p1", types.GenderBoy, types.Proficient, types.PerformanceHigh, "p2"))
		r.AddStudent(student("p2", types.GenderGirl, types.Proficient, types.PerformanceLow))
		lockedHigh := student("k1", types.GenderBoy, types.Proficient, types.PerformanceHigh)
		lockedHigh.Locked = true
		r.AddStudent(lockedHigh)
		// same attribute multiset, opposite positional order
		r.AddStudent(student("q1", types.GenderGirl, types.Proficient, types.PerformanceLow, "q2"))
		r.AddStudent(student("q2", types.GenderBoy, types.Proficient, types.PerformanceLow))
		r.AddTeam("A1", "p1", "p2", "k1")
		r.AddTeam("A2", "q1", "q2")

		cands := Candidates(r, r.Stats(), "A1", "A2")
		require.Empty(t, cands)
	})

	t.Run("locked students generate nothing", func(t *testing.T) {
		r := generatorRoster()
		for _, s := range r.Students {
			s.Locked = true
		}

		require.Empty(t, Candidates(r, r.Stats(), "A1", "A2"))
	})

	t.Run("non improving proposals are discarded", func(t *testing.T) {
		// 1-1 high performers: any solo exchange keeps the spread at 0..1
		r := types.NewRoster()
		r.AddStudent(student("h1", types.GenderBoy, types.Proficient, types.PerformanceHigh))
		r.AddStudent(student("l1", types.GenderBoy, types.Proficient, types.PerformanceLow))
		r.AddStudent(student("h2", types.GenderBoy, types.Proficient, types.PerformanceHigh))
		r.AddStudent(student("l2", types.GenderBoy, types.Proficient, types.PerformanceLow))
		r.AddTeam("A1", "h1", "l1")
		r.AddTeam("A2", "h2", "l2")

		require.Empty(t, Candidates(r, r.Stats(), "A1", "A2"))
	})
}
