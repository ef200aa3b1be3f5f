package testing

import (
	"testing"

	"github.com/yiannitsarou/classmix/types"
)

// NewStudent returns an unlocked student with the given attributes and no
// friend links.
//
// Parameters:
//   - name: Student name (the roster identity)
//   - gender: Normalized gender category
//   - prof: Normalized language-proficiency category
//   - perf: Performance grade (1..3)
//
// Returns:
//   - *types.Student: The student record
//
// Example:
//
//	s := classmixtest.NewStudent("Μαρία", classmix.GenderGirl, classmix.Proficient, classmix.PerformanceHigh)
func NewStudent(name string, gender types.Gender, prof types.Proficiency, perf types.Performance) *types.Student {
	return &types.Student{
		Name:        name,
		Gender:      gender,
		Proficiency: prof,
		Performance: perf,
	}
}

// LockedStudent returns a student that the optimizer must never move.
//
// Parameters:
//   - name: Student name (the roster identity)
//   - gender: Normalized gender category
//   - prof: Normalized language-proficiency category
//   - perf: Performance grade (1..3)
//
// Returns:
//   - *types.Student: The locked student record
func LockedStudent(name string, gender types.Gender, prof types.Proficiency, perf types.Performance) *types.Student {
	s := NewStudent(name, gender, prof, perf)
	s.Locked = true

	return s
}

// Befriend links two students in both directions so pairing treats them as a
// mutual friend pair.
//
// Parameters:
//   - a: First student (modified in place)
//   - b: Second student (modified in place)
func Befriend(a, b *types.Student) {
	a.Friends = append(a.Friends, b.Name)
	b.Friends = append(b.Friends, a.Name)
}

// NewRoster builds a roster from a team-to-members mapping, registering every
// student record and team membership.
//
// Parameters:
//   - t: Testing context
//   - teams: Team name to member records
//
// Returns:
//   - *types.Roster: The populated roster
//
// Example:
//
//	roster := classmixtest.NewRoster(t, map[string][]*classmix.Student{
//	    "Α1": {boy1, girl1},
//	    "Α2": {boy2, girl2},
//	})
func NewRoster(t *testing.T, teams map[string][]*types.Student) *types.Roster {
	t.Helper()

	roster := types.NewRoster()
	for team, members := range teams {
		names := make([]string, 0, len(members))
		for _, s := range members {
			roster.AddStudent(s)
			names = append(names, s.Name)
		}
		roster.AddTeam(team, names...)
	}

	return roster
}

// BalancedRoster returns a two-team roster whose spreads are all zero, so an
// optimization run over it converges immediately without applying any swap.
//
// Each team holds one high-performing boy, one mid-grade girl, one low-grade
// boy with limited proficiency and one low-grade girl: identical counts in
// every balance category.
//
// Parameters:
//   - t: Testing context
//
// Returns:
//   - *types.Roster: A roster already within the default targets
func BalancedRoster(t *testing.T) *types.Roster {
	t.Helper()

	return NewRoster(t, map[string][]*types.Student{
		"Α1": {
			NewStudent("Νίκος", types.GenderBoy, types.Proficient, types.PerformanceHigh),
			NewStudent("Μαρία", types.GenderGirl, types.Proficient, types.PerformanceMid),
			NewStudent("Πέτρος", types.GenderBoy, types.NotProficient, types.PerformanceLow),
			NewStudent("Ελένη", types.GenderGirl, types.Proficient, types.PerformanceLow),
		},
		"Α2": {
			NewStudent("Κώστας", types.GenderBoy, types.Proficient, types.PerformanceHigh),
			NewStudent("Σοφία", types.GenderGirl, types.Proficient, types.PerformanceMid),
			NewStudent("Γιάννης", types.GenderBoy, types.NotProficient, types.PerformanceLow),
			NewStudent("Άννα", types.GenderGirl, types.Proficient, types.PerformanceLow),
		},
	})
}

// SkewedRoster returns a two-team roster with every high performer stacked on
// team Β1, leaving a high-performer spread of 4. One strict solo swap (a high
// performer for a low one, same gender and proficiency) brings the spread to
// 2, inside the default targets — so a run over this roster applies exactly
// one swap and converges.
//
// Parameters:
//   - t: Testing context
//
// Returns:
//   - *types.Roster: A roster guaranteed to improve by one swap
func SkewedRoster(t *testing.T) *types.Roster {
	t.Helper()

	return NewRoster(t, map[string][]*types.Student{
		"Β1": {
			NewStudent("Ορέστης", types.GenderBoy, types.Proficient, types.PerformanceHigh),
			NewStudent("Στέλιος", types.GenderBoy, types.Proficient, types.PerformanceHigh),
			NewStudent("Θάνος", types.GenderBoy, types.Proficient, types.PerformanceHigh),
			NewStudent("Μάριος", types.GenderBoy, types.Proficient, types.PerformanceHigh),
			NewStudent("Λευτέρης", types.GenderBoy, types.Proficient, types.PerformanceLow),
		},
		"Β2": {
			NewStudent("Αντώνης", types.GenderBoy, types.Proficient, types.PerformanceLow),
			NewStudent("Βασίλης", types.GenderBoy, types.Proficient, types.PerformanceLow),
			NewStudent("Δημήτρης", types.GenderBoy, types.Proficient, types.PerformanceLow),
			NewStudent("Ηλίας", types.GenderBoy, types.Proficient, types.PerformanceLow),
			NewStudent("Φώτης", types.GenderBoy, types.Proficient, types.PerformanceLow),
		},
	})
}
