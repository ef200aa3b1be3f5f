package xlsx

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yiannitsarou/classmix/types"
)

func TestReadSourceRoster(t *testing.T) {
	t.Parallel()

	path := writeWorkbook(t, t.TempDir(), "source.xlsx", []sheetDef{
		{
			name: "ΜΑΘΗΤΕΣ",
			rows: [][]any{
				{"ΟΝΟΜΑ", "ΦΥΛΟ", "ΚΑΛΗ_ΓΝΩΣΗ_ΕΛΛΗΝΙΚΩΝ", "ΕΠΙΔΟΣΗ", "ΦΙΛΟΙ", "ΠΑΙΔΙ_ΕΚΠΑΙΔΕΥΤΙΚΟΥ", "ΖΩΗΡΟΣ", "ΙΔΙΑΙΤΕΡΟΤΗΤΑ"},
				{"Μαρία", "Κ", "Ν", 3, "Ελένη, Σοφία", "Ο", "Ο", "Ο"},
				{"Γιώργος", "Α", "Ο", 2, "", "Ν", "Ο", "Ο"},
				{"Ελένη", "Κ", "ΟΧΙ", 1, "Μαρία", "Ο", "Ο", "Ν"},
				{"", "Κ", "Ν", 3},
				{"Νίκος"},
			},
		},
		{
			// No name column: ignored entirely.
			name: "ΣΗΜΕΙΩΣΕΙΣ",
			rows: [][]any{{"ΚΕΙΜΕΝΟ"}, {"σχόλια"}},
		},
	})

	students, err := ReadSourceRoster(path)
	require.NoError(t, err)
	require.Len(t, students, 4)

	maria := students["Μαρία"]
	require.NotNil(t, maria)
	require.Equal(t, types.GenderGirl, maria.Gender)
	require.Equal(t, types.Proficient, maria.Proficiency)
	require.Equal(t, types.PerformanceHigh, maria.Performance)
	require.Equal(t, []string{"Ελένη", "Σοφία"}, maria.Friends)
	require.False(t, maria.Locked())

	giorgos := students["Γιώργος"]
	require.NotNil(t, giorgos)
	require.Equal(t, types.GenderBoy, giorgos.Gender)
	require.Equal(t, types.NotProficient, giorgos.Proficiency)
	require.Equal(t, types.PerformanceMid, giorgos.Performance)
	require.Empty(t, giorgos.Friends)
	require.True(t, giorgos.TeacherChild)
	require.True(t, giorgos.Locked())

	eleni := students["Ελένη"]
	require.NotNil(t, eleni)
	require.Equal(t, types.NotProficient, eleni.Proficiency, "ΟΧΙ normalizes by first letter")
	require.True(t, eleni.SpecialNeeds)
	require.True(t, eleni.Locked())

	t.Run("missing cells take defaults", func(t *testing.T) {
		nikos := students["Νίκος"]
		require.NotNil(t, nikos)
		require.Equal(t, types.GenderBoy, nikos.Gender)
		require.Equal(t, types.Proficient, nikos.Proficiency)
		require.Equal(t, types.PerformanceLow, nikos.Performance)
		require.Empty(t, nikos.Friends)
		require.False(t, nikos.Locked())
	})
}

func TestReadSourceRoster_NoNameColumn(t *testing.T) {
	t.Parallel()

	path := writeWorkbook(t, t.TempDir(), "source.xlsx", []sheetDef{
		{name: "ΣΗΜΕΙΩΣΕΙΣ", rows: [][]any{{"ΚΕΙΜΕΝΟ"}, {"σχόλια"}}},
	})

	_, err := ReadSourceRoster(path)
	require.ErrorIs(t, err, types.ErrMissingNameColumn)
}

func TestReadSourceRoster_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := ReadSourceRoster("does-not-exist.xlsx")
	require.Error(t, err)
}
