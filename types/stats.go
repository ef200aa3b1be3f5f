package types

// TeamStats holds the per-team attribute counts driving the balance checks.
type TeamStats struct {
	// Size is the number of resolved members.
	Size int `json:"size"`

	// Boys and Girls count the gender categories.
	Boys  int `json:"boys"`
	Girls int `json:"girls"`

	// Proficient and NotProficient count the language-proficiency categories.
	Proficient    int `json:"proficient"`
	NotProficient int `json:"not_proficient"`

	// PerfLow, PerfMid and PerfHigh count the performance grades.
	PerfLow  int `json:"perf_low"`
	PerfMid  int `json:"perf_mid"`
	PerfHigh int `json:"perf_high"`
}

// add counts a single student into the stats.
func (t *TeamStats) add(s *Student) {
	t.Size++

	switch s.Gender {
	case GenderGirl:
		t.Girls++
	default:
		t.Boys++
	}

	switch s.Proficiency {
	case NotProficient:
		t.NotProficient++
	default:
		t.Proficient++
	}

	switch s.Performance {
	case PerformanceHigh:
		t.PerfHigh++
	case PerformanceMid:
		t.PerfMid++
	default:
		t.PerfLow++
	}
}

// Stats aggregates the per-team counts for every team in the roster.
//
// The aggregation is side-effect free and resolves each membership entry
// through the student registry, skipping unknown names. Teams without
// resolvable members yield zero-valued stats.
//
// Returns:
//   - map[string]TeamStats: Counts keyed by team name
func (r *Roster) Stats() map[string]TeamStats {
	stats := make(map[string]TeamStats, len(r.Teams))
	for team, names := range r.Teams {
		var ts TeamStats
		for _, name := range names {
			if s, ok := r.Students[name]; ok {
				ts.add(s)
			}
		}
		stats[team] = ts
	}

	return stats
}

// Spreads holds the four cross-team gaps the optimizer reduces.
//
// Each field is the difference between the maximum and minimum of the
// corresponding TeamStats count across all teams. A roster with zero or one
// team has all spreads at zero.
type Spreads struct {
	// HighPerf is the gap in high performers. It is the priority metric:
	// no demographic improvement is accepted at its expense.
	HighPerf int `json:"high_perf"`

	// Boys and Girls are the gender gaps, tracked per category.
	Boys  int `json:"boys"`
	Girls int `json:"girls"`

	// Proficient is the language-proficiency gap.
	Proficient int `json:"proficient"`
}

// SpreadsOf computes the four gaps over a stats aggregation.
func SpreadsOf(stats map[string]TeamStats) Spreads {
	if len(stats) < 2 {
		return Spreads{}
	}

	var (
		first = true

		minHigh, maxHigh   int
		minBoys, maxBoys   int
		minGirls, maxGirls int
		minProf, maxProf   int
	)
	for _, ts := range stats {
		if first {
			minHigh, maxHigh = ts.PerfHigh, ts.PerfHigh
			minBoys, maxBoys = ts.Boys, ts.Boys
			minGirls, maxGirls = ts.Girls, ts.Girls
			minProf, maxProf = ts.Proficient, ts.Proficient
			first = false

			continue
		}

		minHigh, maxHigh = min(minHigh, ts.PerfHigh), max(maxHigh, ts.PerfHigh)
		minBoys, maxBoys = min(minBoys, ts.Boys), max(maxBoys, ts.Boys)
		minGirls, maxGirls = min(minGirls, ts.Girls), max(maxGirls, ts.Girls)
		minProf, maxProf = min(minProf, ts.Proficient), max(maxProf, ts.Proficient)
	}

	return Spreads{
		HighPerf:   maxHigh - minHigh,
		Boys:       maxBoys - minBoys,
		Girls:      maxGirls - minGirls,
		Proficient: maxProf - minProf,
	}
}

// Within reports whether every gap is at or below its target.
func (s Spreads) Within(t Targets) bool {
	return s.HighPerf <= t.HighPerf &&
		s.Boys <= t.Gender &&
		s.Girls <= t.Gender &&
		s.Proficient <= t.Proficiency
}

// Targets holds the acceptable upper bounds for the four spreads.
//
// The gender target applies to the boys gap and the girls gap independently.
type Targets struct {
	// HighPerf is the acceptable high-performer gap (default: 3).
	HighPerf int `yaml:"highPerf" json:"high_perf"`

	// Gender is the acceptable gap for each gender count (default: 4).
	Gender int `yaml:"gender" json:"gender"`

	// Proficiency is the acceptable language-proficiency gap (default: 4).
	Proficiency int `yaml:"proficiency" json:"proficiency"`
}

// DefaultTargets returns the standard targets.
func DefaultTargets() Targets {
	return Targets{
		HighPerf:    3,
		Gender:      4,
		Proficiency: 4,
	}
}
