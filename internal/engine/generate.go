package engine

import "github.com/yiannitsarou/classmix/types"

// Candidate is a proposed, improving exchange between the extreme teams.
type Candidate struct {
	// Tier is the candidate family (strict solo, pair, relaxed solo).
	Tier types.Tier

	// From is the overloaded team, To the underloaded one.
	From string
	To   string

	// Out are the names leaving From; In are the names leaving To.
	Out []string
	In  []string

	// Improvement holds the spread deltas that qualified the candidate.
	Improvement types.Improvement
}

// Swap converts the candidate into an applied-swap log entry.
func (c Candidate) Swap() types.Swap {
	return types.Swap{
		Tier:        c.Tier,
		From:        c.From,
		To:          c.To,
		Out:         c.Out,
		In:          c.In,
		Improvement: c.Improvement,
	}
}

// Extremes returns the teams with the most and fewest high performers.
//
// Teams are compared in sorted name order, so ties resolve to the first team
// in that order and repeated runs pick the same pair. A roster with fewer
// than two teams returns ok=false.
//
// Returns:
//   - from: Team with the most high performers
//   - to: Team with the fewest high performers
//   - ok: false when fewer than two teams exist
func Extremes(r *types.Roster, stats map[string]types.TeamStats) (from, to string, ok bool) {
	names := r.TeamNames()
	if len(names) < 2 {
		return "", "", false
	}

	from, to = names[0], names[0]
	for _, name := range names[1:] {
		if stats[name].PerfHigh > stats[from].PerfHigh {
			from = name
		}
		if stats[name].PerfHigh < stats[to].PerfHigh {
			to = name
		}
	}

	return from, to, true
}

// Candidates generates every improving exchange between the extreme teams,
// across all three tiers.
//
// Tier 1 matches unpaired students strictly on gender and proficiency,
// tier 2 matches friend pairs positionally on both attributes, tier 3
// relaxes the solo match to gender only. Non-improving proposals are
// discarded here, so every returned candidate is already acceptable; the
// slice order (tier, then discovery order) is the deterministic tie-break
// of last resort for selection.
//
// Parameters:
//   - r: Current roster
//   - stats: Current per-team counts (consistent with r)
//   - from: Overloaded team name
//   - to: Underloaded team name
//
// Returns:
//   - []Candidate: Improving candidates in generation order
func Candidates(r *types.Roster, stats map[string]types.TeamStats, from, to string) []Candidate {
	var cands []Candidate

	highSolos := Solos(r, from, true)
	lowSolos := Solos(r, to, false)

	// Tier 1: strict solo exchange
	for _, hs := range highSolos {
		for _, ls := range lowSolos {
			if hs.Gender != ls.Gender || hs.Proficiency != ls.Proficiency {
				continue
			}

			imp := Evaluate(stats, from, to, []*types.Student{hs}, []*types.Student{ls})
			if !imp.Improves() {
				continue
			}

			cands = append(cands, Candidate{
				Tier:        types.TierSoloStrict,
				From:        from,
				To:          to,
				Out:         []string{hs.Name},
				In:          []string{ls.Name},
				Improvement: imp,
			})
		}
	}

	// Tier 2: positional pair exchange
	for _, hp := range Pairs(r, from, true) {
		for _, lp := range Pairs(r, to, false) {
			if !pairsMatch(hp, lp) {
				continue
			}

			imp := Evaluate(stats, from, to,
				[]*types.Student{hp.First, hp.Second},
				[]*types.Student{lp.First, lp.Second})
			if !imp.Improves() {
				continue
			}

			cands = append(cands, Candidate{
				Tier:        types.TierPairStrict,
				From:        from,
				To:          to,
				Out:         hp.Names(),
				In:          lp.Names(),
				Improvement: imp,
			})
		}
	}

	// Tier 3: relaxed solo exchange (gender only)
	for _, hs := range highSolos {
		for _, ls := range lowSolos {
			if hs.Gender != ls.Gender {
				continue
			}

			imp := Evaluate(stats, from, to, []*types.Student{hs}, []*types.Student{ls})
			if !imp.Improves() {
				continue
			}

			cands = append(cands, Candidate{
				Tier:        types.TierSoloRelaxed,
				From:        from,
				To:          to,
				Out:         []string{hs.Name},
				In:          []string{ls.Name},
				Improvement: imp,
			})
		}
	}

	return cands
}

// pairsMatch reports whether two pairs match positionally on gender and
// proficiency.
func pairsMatch(a, b Pair) bool {
	return a.First.Gender == b.First.Gender &&
		a.First.Proficiency == b.First.Proficiency &&
		a.Second.Gender == b.Second.Gender &&
		a.Second.Proficiency == b.Second.Proficiency
}
