// Package engine provides swap candidate generation, scoring and selection.
//
// The engine implements one pass of the balancing loop: given the current
// roster and an extreme pair of teams, it classifies each team's movable
// members, proposes attribute-matched exchanges in three tiers, scores every
// proposal by its effect on the global spreads and picks the best one.
//
// # Design Overview
//
// Each iteration of the optimizer works on exactly two teams:
//
//  1. Extremes finds the team with the most high performers and the team
//     with the fewest (ties resolve to the first team in sorted name order)
//  2. Candidates proposes improving exchanges between that pair
//  3. Best picks the winner by lexicographic comparison of spread deltas
//
// # Candidate Tiers
//
// Candidates come in three families, tried in order of increasing
// demographic disturbance:
//
//   - Tier 1 (SoloStrict): one unpaired high performer for one unpaired
//     non-high student matching on gender AND proficiency
//   - Tier 2 (PairStrict): a co-located friend pair containing a high
//     performer for a pair with none, matching positionally on gender and
//     proficiency
//   - Tier 3 (SoloRelaxed): one unpaired high performer for one unpaired
//     non-high student matching on gender only
//
// All three tiers are generated every iteration; the tier only matters as
// the final tie-break during selection.
//
// # Movability Rules
//
// Locked students never move. A student with a co-located friend (their own
// declared links only) is not "unpaired" and is excluded from the solo
// tiers; friend pairs move together or not at all. Pair discovery treats
// links symmetrically, so a one-sided declaration still forms a pair.
//
// # Scoring
//
// A candidate is scored by simulating the exchange on a copy of the current
// per-team counts and recomputing all four global spreads. The deltas
// (before minus after) accept a candidate only if the high-performer spread
// strictly improves, or stays put while a demographic spread improves.
//
// # Determinism
//
// The engine is deterministic: teams are walked in sorted name order,
// members in membership order, and selection uses a stable sort, so the
// same roster always produces the same candidate ranking.
package engine
