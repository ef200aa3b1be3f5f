package testutil

import (
	"slices"
	"testing"

	"github.com/yiannitsarou/classmix/types"
)

// AssertRosterInvariants verifies the structural guarantees every optimization
// run must preserve: the team set and per-team sizes are unchanged, membership
// is a permutation of the original names with no duplicates, locked students
// kept their team, and friend pairs that shared a team before the run still
// share one after it.
//
// The pair check assumes friend links form disjoint mutual pairs, which is
// the shape GenerateRoster and the workbook fixtures produce. Rosters with
// chains or larger cliques match pairs greedily and may legitimately leave
// surplus links split.
//
// Parameters:
//   - t: testing handle
//   - before: clone of the roster taken before the run
//   - after: the roster the run mutated in place
func AssertRosterInvariants(t *testing.T, before, after *types.Roster) {
	t.Helper()

	if len(after.Teams) != len(before.Teams) {
		t.Fatalf("team count changed: before=%d after=%d", len(before.Teams), len(after.Teams))
	}

	seen := make(map[string]string, len(after.Students))
	for _, team := range after.TeamNames() {
		beforeMembers, ok := before.Teams[team]
		if !ok {
			t.Fatalf("team %s did not exist before the run", team)
		}
		if len(after.Teams[team]) != len(beforeMembers) {
			t.Fatalf("team %s size changed: before=%d after=%d", team, len(beforeMembers), len(after.Teams[team]))
		}

		for _, name := range after.Teams[team] {
			if prev, dup := seen[name]; dup {
				t.Fatalf("student %s assigned to both %s and %s", name, prev, team)
			}
			seen[name] = team
		}
	}

	for _, team := range before.TeamNames() {
		for _, name := range before.Teams[team] {
			now, ok := seen[name]
			if !ok {
				t.Fatalf("student %s missing after the run", name)
			}

			student, ok := before.Get(name)
			if !ok {
				t.Fatalf("student %s on team %s has no record", name, team)
			}
			if student.Locked && now != team {
				t.Fatalf("locked student %s moved from %s to %s", name, team, now)
			}

			for _, friend := range student.Friends {
				if !slices.Contains(before.Teams[team], friend) {
					continue // pair was already split before the run
				}
				if seen[friend] != now {
					t.Fatalf("friend pair %s/%s split across %s and %s", name, friend, now, seen[friend])
				}
			}
		}
	}
}
