package runner

import (
	"fmt"
	"math/rand"

	"github.com/yiannitsarou/classmix/test/simulation/internal/config"
	"github.com/yiannitsarou/classmix/types"
)

// generateRoster builds one seeded roster according to the roster knobs.
//
// The attribute mix is intentionally uneven so most runs have real work to
// do: performance grades land in rough thirds, genders alternate randomly,
// about a quarter of students lack language proficiency. Friend links form
// disjoint mutual pairs between adjacent unlocked teammates.
func generateRoster(rng *rand.Rand, cfg config.RostersConfig) *types.Roster {
	roster := types.NewRoster()

	id := 0
	for ti := range cfg.Teams {
		names := make([]string, 0, cfg.PerTeam)
		for range cfg.PerTeam {
			id++
			s := &types.Student{
				Name:        fmt.Sprintf("Μαθητής %05d", id),
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
			if rng.Float64() < cfg.LockedPercent {
				s.Locked = true
			}

			roster.AddStudent(s)
			names = append(names, s.Name)
		}

		for i := 0; i+1 < len(names); i += 2 {
			if rng.Float64() >= cfg.PairPercent {
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
