package types

// Tier identifies the candidate family a swap came from.
//
// Lower tiers encode stricter attribute matching and win ties during
// selection, so the optimizer prefers swaps that disturb the demographic
// balance the least.
type Tier int

const (
	// TierSoloStrict exchanges two unpaired students matching on both
	// gender and proficiency.
	TierSoloStrict Tier = 1

	// TierPairStrict exchanges two co-located friend pairs matching
	// positionally on gender and proficiency.
	TierPairStrict Tier = 2

	// TierSoloRelaxed exchanges two unpaired students matching on gender
	// only.
	TierSoloRelaxed Tier = 3
)

// String returns the string representation of the tier.
func (t Tier) String() string {
	switch t {
	case TierSoloStrict:
		return "SoloStrict"
	case TierPairStrict:
		return "PairStrict"
	case TierSoloRelaxed:
		return "SoloRelaxed"
	default:
		return "Unknown"
	}
}

// Improvement quantifies how a swap changes the global spreads.
//
// Each delta is the spread before the swap minus the spread after it, so
// positive values are improvements. Gender sums the boys and girls deltas.
// Before and After keep the full spread snapshots for auditability.
type Improvement struct {
	// HighPerf is the high-performer spread reduction.
	HighPerf int `json:"high_perf"`

	// Gender is the combined gender spread reduction (boys delta plus
	// girls delta).
	Gender int `json:"gender"`

	// Proficient is the language-proficiency spread reduction.
	Proficient int `json:"proficient"`

	// Before and After are the global spreads around the swap.
	Before Spreads `json:"before"`
	After  Spreads `json:"after"`
}

// Improves reports whether the deltas satisfy the acceptance rule: the
// high-performer spread strictly improves, or it is untouched while at least
// one demographic spread improves. A swap that worsens the high-performer
// spread is never accepted regardless of demographic gains.
func (i Improvement) Improves() bool {
	if i.HighPerf > 0 {
		return true
	}

	return i.HighPerf == 0 && (i.Gender > 0 || i.Proficient > 0)
}

// Swap is one applied membership exchange. Entries are immutable once
// appended to the run log; together they form a replayable record of the run.
type Swap struct {
	// Tier is the candidate family the swap came from.
	Tier Tier `json:"tier"`

	// From is the overloaded team (most high performers at the time of
	// the swap); To is the underloaded one.
	From string `json:"from"`
	To   string `json:"to"`

	// Out are the students moving From -> To. One name for solo tiers,
	// two for the pair tier.
	Out []string `json:"out"`

	// In are the students moving To -> From, matching Out in length.
	In []string `json:"in"`

	// Improvement records the spread deltas that justified the swap.
	Improvement Improvement `json:"improvement"`
}
