package xlsx

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yiannitsarou/classmix/types"
)

func TestReadRoster(t *testing.T) {
	t.Parallel()

	path := writeWorkbook(t, t.TempDir(), "filled.xlsx", []sheetDef{
		{name: "Β1", rows: [][]any{
			{"ΟΝΟΜΑ"},
			{"Άννα"}, {"Ζωή"}, {"Πέτρος"}, {"Κώστας"}, {"Άγνωστος"},
		}},
		{name: "Β2", rows: [][]any{
			{"ΟΝΟΜΑ", "ΦΥΛΟ"},
			{"Δήμητρα", "Κ"}, {"Τάσος", "Α"},
		}},
		{name: SheetPairs, rows: [][]any{
			{"ΜΑΘΗΤΗΣ Α", "ΜΑΘΗΤΗΣ Β", "ΚΑΤΗΓΟΡΙΑ ΔΥΑΔΑΣ", "ΕΠΙΔΟΣΗ", "LOCKED", "ΤΜΗΜΑ"},
			{"Άννα", "Ζωή", "Μικτής Γνώσης (Κορίτσια)", "3, 1", "ΟΧΙ", "Β1,Β1"},
			{"Πέτρος", "Κώστας", "όχι Καλή Γνώση (Αγόρια)", "2, 2", "LOCKED", "LOCKED"},
		}},
		{name: SheetSingles, rows: [][]any{
			{"ΟΝΟΜΑ", "ΦΥΛΟ", "ΚΑΛΗ_ΓΝΩΣΗ_ΕΛΛΗΝΙΚΩΝ", "ΕΠΙΔΟΣΗ", "ΚΑΤΗΓΟΡΙΑ SINGLE", "ΤΜΗΜΑ", "LOCKED"},
			{"Δήμητρα", "Κ", "Ν", 3, "Κορίτσια - Ν (Καλή γνώση)", "Β2", "ΟΧΙ"},
			{"Τάσος", "Α", "Ο", 1, "Αγόρια - Ο (όχι καλή γνώση)", "Β2", "ΟΧΙ"},
			// Re-lists a paired student; the pairs-sheet record wins.
			{"Άννα", "Α", "Ο", 1, "Αγόρια - Ο (όχι καλή γνώση)", "Β1", "ΟΧΙ"},
		}},
	})

	roster, err := ReadRoster(path)
	require.NoError(t, err)

	require.Equal(t, []string{"Β1", "Β2"}, roster.TeamNames())
	require.Equal(t, []string{"Άννα", "Ζωή", "Πέτρος", "Κώστας"}, roster.Teams["Β1"],
		"unknown membership names are dropped")
	require.Equal(t, []string{"Δήμητρα", "Τάσος"}, roster.Teams["Β2"])

	anna, ok := roster.Get("Άννα")
	require.True(t, ok)
	require.Equal(t, types.GenderGirl, anna.Gender, "pairs-sheet record wins over the singles row")
	require.Equal(t, types.Proficient, anna.Proficiency, "mixed knowledge reads as proficient")
	require.Equal(t, types.PerformanceHigh, anna.Performance)
	require.Equal(t, []string{"Ζωή"}, anna.Friends)
	require.False(t, anna.Locked)

	zoi, ok := roster.Get("Ζωή")
	require.True(t, ok)
	require.Equal(t, types.PerformanceLow, zoi.Performance)
	require.Equal(t, []string{"Άννα"}, zoi.Friends, "friend links are symmetric")

	petros, ok := roster.Get("Πέτρος")
	require.True(t, ok)
	require.Equal(t, types.GenderBoy, petros.Gender)
	require.Equal(t, types.NotProficient, petros.Proficiency)
	require.Equal(t, types.PerformanceMid, petros.Performance)
	require.True(t, petros.Locked)

	kostas, ok := roster.Get("Κώστας")
	require.True(t, ok)
	require.True(t, kostas.Locked)

	dimitra, ok := roster.Get("Δήμητρα")
	require.True(t, ok)
	require.Equal(t, types.GenderGirl, dimitra.Gender)
	require.Equal(t, types.Proficient, dimitra.Proficiency)
	require.Equal(t, types.PerformanceHigh, dimitra.Performance)
	require.Empty(t, dimitra.Friends)
}

func TestReadRoster_TeamWithoutKnownStudents(t *testing.T) {
	t.Parallel()

	path := writeWorkbook(t, t.TempDir(), "filled.xlsx", []sheetDef{
		{name: "Β1", rows: [][]any{{"ΟΝΟΜΑ"}, {"Δήμητρα"}}},
		{name: "Β3", rows: [][]any{{"ΟΝΟΜΑ"}, {"Άγνωστος"}}},
		{name: SheetSingles, rows: [][]any{
			{"ΟΝΟΜΑ", "ΦΥΛΟ", "ΚΑΛΗ_ΓΝΩΣΗ_ΕΛΛΗΝΙΚΩΝ", "ΕΠΙΔΟΣΗ"},
			{"Δήμητρα", "Κ", "Ν", 3},
		}},
	})

	roster, err := ReadRoster(path)
	require.NoError(t, err)

	// A name-column sheet with no resolvable members still registers as a
	// (empty) team.
	require.Equal(t, []string{"Β1", "Β3"}, roster.TeamNames())
	require.Empty(t, roster.Teams["Β3"])
}

func TestReadRoster_NoTeamSheets(t *testing.T) {
	t.Parallel()

	t.Run("classification sheets alone", func(t *testing.T) {
		t.Parallel()

		path := writeWorkbook(t, t.TempDir(), "filled.xlsx", []sheetDef{
			{name: SheetPairs, rows: [][]any{
				{"ΜΑΘΗΤΗΣ Α", "ΜΑΘΗΤΗΣ Β", "ΚΑΤΗΓΟΡΙΑ ΔΥΑΔΑΣ", "ΕΠΙΔΟΣΗ"},
				{"Άννα", "Ζωή", "Καλή Γνώση (Κορίτσια)", "1, 1"},
			}},
			{name: SheetSingles, rows: [][]any{
				{"ΟΝΟΜΑ", "ΦΥΛΟ", "ΚΑΛΗ_ΓΝΩΣΗ_ΕΛΛΗΝΙΚΩΝ", "ΕΠΙΔΟΣΗ"},
			}},
		})

		_, err := ReadRoster(path)
		require.ErrorIs(t, err, types.ErrNoTeamSheets)
	})

	t.Run("no name columns anywhere", func(t *testing.T) {
		t.Parallel()

		path := writeWorkbook(t, t.TempDir(), "filled.xlsx", []sheetDef{
			{name: "ΣΗΜΕΙΩΣΕΙΣ", rows: [][]any{{"ΚΕΙΜΕΝΟ"}}},
		})

		_, err := ReadRoster(path)
		require.ErrorIs(t, err, types.ErrNoTeamSheets)
	})
}

func TestSplitPairPerformance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw   string
		wantA types.Performance
		wantB types.Performance
	}{
		{"3, 1", types.PerformanceHigh, types.PerformanceLow},
		{"2,2", types.PerformanceMid, types.PerformanceMid},
		{"", types.PerformanceLow, types.PerformanceLow},
		{"3", types.PerformanceLow, types.PerformanceLow},
		{"x, 2", types.PerformanceLow, types.PerformanceMid},
	}

	for _, tt := range tests {
		a, b := splitPairPerformance(tt.raw)
		require.Equal(t, tt.wantA, a, "raw %q", tt.raw)
		require.Equal(t, tt.wantB, b, "raw %q", tt.raw)
	}
}

func TestCategoryAttributes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		category string
		gender   types.Gender
		prof     types.Proficiency
	}{
		{"Καλή Γνώση (Κορίτσια)", types.GenderGirl, types.Proficient},
		{"Καλή Γνώση (Αγόρια)", types.GenderBoy, types.Proficient},
		{"όχι Καλή Γνώση (Κορίτσια)", types.GenderGirl, types.NotProficient},
		{"όχι Καλή Γνώση (Αγόρια)", types.GenderBoy, types.NotProficient},
		{"Μικτής Γνώσης (Αγόρια)", types.GenderBoy, types.Proficient},
		{"Ομάδες Μικτού Φύλου", types.GenderBoy, types.Proficient},
	}

	for _, tt := range tests {
		gender, prof := categoryAttributes(tt.category)
		require.Equal(t, tt.gender, gender, "category %q", tt.category)
		require.Equal(t, tt.prof, prof, "category %q", tt.category)
	}
}
