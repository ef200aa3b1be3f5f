package engine

import "github.com/yiannitsarou/classmix/types"

// Pair is a co-located friend pair that moves as a unit.
//
// First and Second follow discovery order within the team member list; the
// order is significant for tier-2 matching, which compares pairs position by
// position.
type Pair struct {
	First  *types.Student
	Second *types.Student
}

// Names returns the pair's member names in positional order.
func (p Pair) Names() []string {
	return []string{p.First.Name, p.Second.Name}
}

// HasHigh reports whether either member is a high performer.
func (p Pair) HasHigh() bool {
	return p.First.Performance.IsHigh() || p.Second.Performance.IsHigh()
}

// Solos returns the team's movable unpaired students for one side of an
// exchange: high performers when high is true, everyone else otherwise.
//
// A student qualifies when all of the following hold:
//   - the student record resolves and is not locked
//   - the performance grade matches the requested side
//   - none of the student's own declared friends is on the same team
//
// The co-location check consults only the student's own Friends list, so a
// one-sided link declared by a teammate does not cost this student solo
// status. Results preserve membership order.
func Solos(r *types.Roster, team string, high bool) []*types.Student {
	names := r.Teams[team]
	onTeam := make(map[string]bool, len(names))
	for _, name := range names {
		onTeam[name] = true
	}

	var solos []*types.Student
	for _, name := range names {
		s, ok := r.Students[name]
		if !ok || s.Locked {
			continue
		}
		if s.Performance.IsHigh() != high {
			continue
		}
		if hasCoLocatedFriend(s, onTeam) {
			continue
		}

		solos = append(solos, s)
	}

	return solos
}

// hasCoLocatedFriend reports whether any of the student's declared friends
// is on the same team.
func hasCoLocatedFriend(s *types.Student, onTeam map[string]bool) bool {
	for _, f := range s.Friends {
		if onTeam[f] {
			return true
		}
	}

	return false
}

// Pairs returns the team's movable friend pairs for one side of an exchange:
// pairs containing at least one high performer when high is true, pairs with
// none otherwise.
//
// Discovery walks the member list in order. Each unprocessed, unlocked member
// scans the full list from the start and pairs with the first unprocessed,
// unlocked member it shares a friend link with (in either direction). Both
// members are then consumed, so every student joins at most one pair per
// iteration. Pairs failing the performance-side filter are skipped without
// consuming their members.
func Pairs(r *types.Roster, team string, high bool) []Pair {
	names := r.Teams[team]
	processed := make(map[string]bool, len(names))

	var pairs []Pair
	for _, nameA := range names {
		if processed[nameA] {
			continue
		}
		a, ok := r.Students[nameA]
		if !ok || a.Locked {
			continue
		}

		for _, nameB := range names {
			if nameB == nameA || processed[nameB] {
				continue
			}
			b, ok := r.Students[nameB]
			if !ok || b.Locked {
				continue
			}
			if !a.HasFriend(nameB) && !b.HasFriend(nameA) {
				continue
			}

			// side filter: at least one high member on the high side,
			// none on the low side
			hasHigh := a.Performance.IsHigh() || b.Performance.IsHigh()
			if hasHigh != high {
				continue
			}

			pairs = append(pairs, Pair{First: a, Second: b})
			processed[nameA] = true
			processed[nameB] = true

			break
		}
	}

	return pairs
}
