package testutil

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/yiannitsarou/classmix/types"
)

// GenerateRoster builds a deterministic pseudo-random roster for scale tests.
//
// Teams are named Α1, Α2, ... and filled with perTeam students carrying a
// mixed attribute distribution: performance grades in roughly equal thirds,
// alternating genders, about a quarter with limited language proficiency, a
// small number of locked students, and some adjacent same-team friend pairs
// so the pair tier has material to work with. Locked students never join a
// pair. The same seed always produces the same roster.
//
// Parameters:
//   - t: testing handle
//   - teams: number of teams to create
//   - perTeam: number of students per team
//   - seed: RNG seed; reuse a seed to reproduce a run
//
// Returns the generated roster.
func GenerateRoster(t *testing.T, teams, perTeam int, seed int64) *types.Roster {
	t.Helper()

	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // Weak RNG acceptable for test data
	roster := types.NewRoster()

	id := 0
	for ti := range teams {
		names := make([]string, 0, perTeam)
		for range perTeam {
			id++
			s := &types.Student{
				Name:        fmt.Sprintf("Μαθητής %04d", id),
				Gender:      types.GenderBoy,
				Proficiency: types.Proficient,
				Performance: types.PerformanceLow,
			}
			if rng.Intn(2) == 0 {
				s.Gender = types.GenderGirl
			}
			if rng.Intn(4) == 0 {
				s.Proficiency = types.NotProficient
			}
			switch rng.Intn(3) {
			case 0:
				s.Performance = types.PerformanceHigh
			case 1:
				s.Performance = types.PerformanceMid
			}
			if rng.Intn(20) == 0 {
				s.Locked = true
			}

			roster.AddStudent(s)
			names = append(names, s.Name)
		}

		for i := 0; i+1 < len(names); i += 2 {
			if rng.Intn(10) != 0 {
				continue
			}
			a := roster.Students[names[i]]
			b := roster.Students[names[i+1]]
			if a.Locked || b.Locked {
				continue
			}
			a.Friends = []string{b.Name}
			b.Friends = []string{a.Name}
		}

		roster.AddTeam(fmt.Sprintf("Α%d", ti+1), names...)
	}

	return roster
}
