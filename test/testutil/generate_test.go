package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateRoster_Deterministic(t *testing.T) {
	a := GenerateRoster(t, 4, 25, 42)
	b := GenerateRoster(t, 4, 25, 42)

	require.Equal(t, a.Teams, b.Teams)
	require.Len(t, b.Students, len(a.Students))
	for name, s := range a.Students {
		require.Equal(t, s, b.Students[name])
	}
}

func TestGenerateRoster_Shape(t *testing.T) {
	roster := GenerateRoster(t, 3, 20, 7)

	require.Equal(t, []string{"Α1", "Α2", "Α3"}, roster.TeamNames())
	require.Equal(t, 60, roster.TotalStudents())
	for _, team := range roster.TeamNames() {
		require.Len(t, roster.Teams[team], 20)
	}

	// Friend links form disjoint mutual pairs and never involve a locked
	// student.
	for _, s := range roster.Students {
		if len(s.Friends) == 0 {
			continue
		}
		require.Len(t, s.Friends, 1)
		require.False(t, s.Locked)

		friend, ok := roster.Get(s.Friends[0])
		require.True(t, ok)
		require.True(t, friend.HasFriend(s.Name))
		require.False(t, friend.Locked)
	}

	AssertRosterInvariants(t, roster, roster.Clone())
}
