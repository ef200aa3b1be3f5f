package runner

import (
	"errors"
	"fmt"
	"slices"

	"github.com/yiannitsarou/classmix/types"
)

// Sentinel errors for roster corruption detection.
var (
	ErrMembershipChanged = errors.New("membership changed")
	ErrLockedMoved       = errors.New("locked student moved")
	ErrPairSplit         = errors.New("friend pair split")
)

// MembershipError wraps team membership corruption details.
type MembershipError struct {
	Team   string
	Detail string
}

func (e *MembershipError) Error() string {
	return fmt.Sprintf("membership changed: team=%s %s", e.Team, e.Detail)
}

func (e *MembershipError) Unwrap() error {
	return ErrMembershipChanged
}

// LockedMovedError wraps an illegal move of a locked student.
type LockedMovedError struct {
	Student string
	From    string
	To      string
}

func (e *LockedMovedError) Error() string {
	return fmt.Sprintf("locked student moved: student=%s from=%s to=%s", e.Student, e.From, e.To)
}

func (e *LockedMovedError) Unwrap() error {
	return ErrLockedMoved
}

// PairSplitError wraps an illegal separation of a co-located friend pair.
type PairSplitError struct {
	First  string
	Second string
	TeamA  string
	TeamB  string
}

func (e *PairSplitError) Error() string {
	return fmt.Sprintf("friend pair split: %s on %s, %s on %s", e.First, e.TeamA, e.Second, e.TeamB)
}

func (e *PairSplitError) Unwrap() error {
	return ErrPairSplit
}

// validateRun checks the structural guarantees a run must preserve and
// returns the first violation found.
//
// The checks mirror the library's contract: same teams and sizes, membership
// a duplicate-free permutation of the input, locked students unmoved, and
// co-located mutual friend pairs still together.
func validateRun(before, after *types.Roster) error {
	if len(after.Teams) != len(before.Teams) {
		return &MembershipError{Detail: fmt.Sprintf("team count %d -> %d", len(before.Teams), len(after.Teams))}
	}

	assigned := make(map[string]string, len(after.Students))
	for team, members := range after.Teams {
		beforeMembers, ok := before.Teams[team]
		if !ok {
			return &MembershipError{Team: team, Detail: "team did not exist before the run"}
		}
		if len(members) != len(beforeMembers) {
			return &MembershipError{Team: team, Detail: fmt.Sprintf("size %d -> %d", len(beforeMembers), len(members))}
		}
		for _, name := range members {
			if prev, dup := assigned[name]; dup {
				return &MembershipError{Team: team, Detail: fmt.Sprintf("student %s also on %s", name, prev)}
			}
			assigned[name] = team
		}
	}

	for team, members := range before.Teams {
		for _, name := range members {
			now, ok := assigned[name]
			if !ok {
				return &MembershipError{Team: team, Detail: fmt.Sprintf("student %s missing", name)}
			}

			student, ok := before.Get(name)
			if !ok {
				return &MembershipError{Team: team, Detail: fmt.Sprintf("student %s has no record", name)}
			}
			if student.Locked && now != team {
				return &LockedMovedError{Student: name, From: team, To: now}
			}

			for _, friend := range student.Friends {
				if !slices.Contains(members, friend) {
					continue // pair was split before the run
				}
				if assigned[friend] != now {
					return &PairSplitError{First: name, TeamA: now, Second: friend, TeamB: assigned[friend]}
				}
			}
		}
	}

	return nil
}
