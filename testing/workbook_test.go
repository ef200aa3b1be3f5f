package testing

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/yiannitsarou/classmix/types"
	"github.com/yiannitsarou/classmix/xlsx"
)

func TestWriteWorkbook(t *testing.T) {
	t.Parallel()

	path := WriteWorkbook(t, "fixture.xlsx",
		Sheet{Name: "ΠΡΩΤΟ", Rows: [][]any{{"ΟΝΟΜΑ", "ΕΠΙΔΟΣΗ"}, {"Μαρία", 3}}},
		Sheet{Name: "ΔΕΥΤΕΡΟ", Rows: [][]any{{"ΟΝΟΜΑ"}, {nil}, {"Νίκος"}}},
	)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{"ΠΡΩΤΟ", "ΔΕΥΤΕΡΟ"}, f.GetSheetList())

	value, err := f.GetCellValue("ΠΡΩΤΟ", "B2")
	require.NoError(t, err)
	require.Equal(t, "3", value)

	// nil cells stay empty
	value, err = f.GetCellValue("ΔΕΥΤΕΡΟ", "A2")
	require.NoError(t, err)
	require.Empty(t, value)

	value, err = f.GetCellValue("ΔΕΥΤΕΡΟ", "A3")
	require.NoError(t, err)
	require.Equal(t, "Νίκος", value)
}

func TestSourceWorkbook_RoundTrip(t *testing.T) {
	t.Parallel()

	girl := NewStudent("Μαρία", types.GenderGirl, types.Proficient, types.PerformanceHigh)
	girl.Friends = []string{"Κατερίνα"}
	locked := LockedStudent("Γιώργος", types.GenderBoy, types.NotProficient, types.PerformanceLow)

	path := SourceWorkbook(t, girl, locked)

	students, err := xlsx.ReadSourceRoster(path)
	require.NoError(t, err)
	require.Len(t, students, 2)

	maria := students["Μαρία"]
	require.NotNil(t, maria)
	require.Equal(t, types.GenderGirl, maria.Gender)
	require.Equal(t, types.Proficient, maria.Proficiency)
	require.Equal(t, types.PerformanceHigh, maria.Performance)
	require.Equal(t, []string{"Κατερίνα"}, maria.Friends)
	require.False(t, maria.Locked())

	giorgos := students["Γιώργος"]
	require.NotNil(t, giorgos)
	require.True(t, giorgos.Locked())
	require.Equal(t, types.NotProficient, giorgos.Proficiency)
}

func TestTemplateWorkbook(t *testing.T) {
	t.Parallel()

	path := TemplateWorkbook(t, map[string][]string{
		"Β2": {"Νίκος"},
		"Β1": {"Μαρία", "Ελένη"},
	})

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	// Team sheets come out in ascending name order.
	require.Equal(t, []string{"Β1", "Β2"}, f.GetSheetList())

	rows, err := f.GetRows("Β1")
	require.NoError(t, err)
	require.Equal(t, [][]string{{"ΟΝΟΜΑ"}, {"Μαρία"}, {"Ελένη"}}, rows)
}
