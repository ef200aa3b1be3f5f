package engine

import "github.com/yiannitsarou/classmix/types"

// Evaluate scores a proposed exchange between two teams.
//
// The exchange is simulated on a copy of the current per-team counts: each
// outgoing student's buckets move from the overloaded team to the underloaded
// one and each incoming student's buckets move the other way. The four global
// spreads are then recomputed over ALL teams, not just the two involved, so a
// swap that merely shifts an extreme onto a third team scores as no
// improvement.
//
// Parameters:
//   - stats: Current per-team counts (not mutated)
//   - from: Overloaded team name
//   - to: Underloaded team name
//   - out: Students leaving from for to
//   - in: Students leaving to for from
//
// Returns:
//   - types.Improvement: Spread deltas with before/after snapshots
func Evaluate(stats map[string]types.TeamStats, from, to string, out, in []*types.Student) types.Improvement {
	adjusted := make(map[string]types.TeamStats, len(stats))
	for team, ts := range stats {
		adjusted[team] = ts
	}

	for _, s := range out {
		moveStudent(adjusted, s, from, to)
	}
	for _, s := range in {
		moveStudent(adjusted, s, to, from)
	}

	before := types.SpreadsOf(stats)
	after := types.SpreadsOf(adjusted)

	return types.Improvement{
		HighPerf:   before.HighPerf - after.HighPerf,
		Gender:     (before.Boys - after.Boys) + (before.Girls - after.Girls),
		Proficient: before.Proficient - after.Proficient,
		Before:     before,
		After:      after,
	}
}

// moveStudent shifts one student's counting buckets between two teams.
func moveStudent(stats map[string]types.TeamStats, s *types.Student, from, to string) {
	stats[from] = countStudent(stats[from], s, -1)
	stats[to] = countStudent(stats[to], s, +1)
}

// countStudent applies a student's attribute buckets to team stats with the
// given sign.
func countStudent(ts types.TeamStats, s *types.Student, delta int) types.TeamStats {
	ts.Size += delta

	switch s.Gender {
	case types.GenderGirl:
		ts.Girls += delta
	default:
		ts.Boys += delta
	}

	switch s.Proficiency {
	case types.NotProficient:
		ts.NotProficient += delta
	default:
		ts.Proficient += delta
	}

	switch s.Performance {
	case types.PerformanceHigh:
		ts.PerfHigh += delta
	case types.PerformanceMid:
		ts.PerfMid += delta
	default:
		ts.PerfLow += delta
	}

	return ts
}
