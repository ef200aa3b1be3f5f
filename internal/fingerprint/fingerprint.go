// Package fingerprint computes stable hashes of team compositions.
//
// Fingerprints make determinism auditable: two runs over the same input must
// end with the same fingerprint, and two workbooks can be compared for
// placement equality without diffing every sheet.
package fingerprint

import (
	"slices"

	"github.com/zeebo/xxh3"

	"github.com/yiannitsarou/classmix/types"
)

// Of computes a 64-bit fingerprint of the roster's team composition.
//
// The hash folds team names and their member names in canonical order (teams
// sorted, members sorted within each team) using chained xxh3 seeds: each
// hashed string becomes the seed of the next, so shifting a name across a
// boundary always changes the result. Membership order inside a team does not
// affect the fingerprint; moving a student between teams always does.
//
// Parameters:
//   - r: Roster to fingerprint (nil yields 0)
//
// Returns:
//   - uint64: Stable composition fingerprint
func Of(r *types.Roster) uint64 {
	if r == nil {
		return 0
	}

	var h uint64
	for _, team := range r.TeamNames() {
		h = xxh3.HashStringSeed(team, h)

		members := slices.Clone(r.Teams[team])
		slices.Sort(members)
		for _, name := range members {
			h = xxh3.HashStringSeed(name, h)
		}
	}

	return h
}
