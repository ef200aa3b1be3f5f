package engine

import (
	"slices"
)

// Best selects the winning candidate from a generated pool.
//
// Candidates are ranked lexicographically: larger high-performer delta first,
// then larger combined gender delta, then larger proficiency delta, then the
// lower (stricter) tier. The sort is stable, so candidates equal on the whole
// tuple keep their generation order and the first one wins. The input slice
// is not modified.
//
// Returns:
//   - Candidate: The winning candidate (zero value when none)
//   - bool: false when the pool is empty
func Best(cands []Candidate) (Candidate, bool) {
	if len(cands) == 0 {
		return Candidate{}, false
	}

	ranked := slices.Clone(cands)
	slices.SortStableFunc(ranked, func(a, b Candidate) int {
		if d := b.Improvement.HighPerf - a.Improvement.HighPerf; d != 0 {
			return d
		}
		if d := b.Improvement.Gender - a.Improvement.Gender; d != 0 {
			return d
		}
		if d := b.Improvement.Proficient - a.Improvement.Proficient; d != 0 {
			return d
		}

		return int(a.Tier - b.Tier)
	})

	return ranked[0], true
}
