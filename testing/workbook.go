package testing

import (
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/yiannitsarou/classmix/types"
)

// Sheet is one worksheet of a workbook fixture.
type Sheet struct {
	// Name is the sheet name.
	Name string

	// Rows are the cell values, row by row, starting at A1. A nil cell is
	// left empty.
	Rows [][]any
}

// WriteWorkbook writes an xlsx workbook under t.TempDir() and returns its
// path. The temp directory is removed automatically when the test completes.
//
// Parameters:
//   - t: Testing context
//   - filename: File name for the workbook (e.g. "source.xlsx")
//   - sheets: Worksheets in order; the first replaces the default sheet
//
// Returns:
//   - string: Path of the written workbook
//
// Example:
//
//	path := classmixtest.WriteWorkbook(t, "roster.xlsx", classmixtest.Sheet{
//	    Name: "ΜΑΘΗΤΕΣ",
//	    Rows: [][]any{{"ΟΝΟΜΑ", "ΦΥΛΟ"}, {"Μαρία", "Κ"}},
//	})
func WriteWorkbook(t *testing.T, filename string, sheets ...Sheet) string {
	t.Helper()

	f := excelize.NewFile()
	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				t.Fatalf("Failed to rename first sheet to %s: %v", sheet.Name, err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			t.Fatalf("Failed to create sheet %s: %v", sheet.Name, err)
		}

		for r, row := range sheet.Rows {
			for c, value := range row {
				if value == nil {
					continue
				}
				cell, err := excelize.CoordinatesToCellName(c+1, r+1)
				if err != nil {
					t.Fatalf("Failed to build cell name for (%d,%d): %v", c+1, r+1, err)
				}
				if err := f.SetCellValue(sheet.Name, cell, value); err != nil {
					t.Fatalf("Failed to set cell %s on sheet %s: %v", cell, sheet.Name, err)
				}
			}
		}
	}

	path := filepath.Join(t.TempDir(), filename)
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save workbook %s: %v", path, err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Failed to close workbook %s: %v", path, err)
	}

	return path
}

// SourceWorkbook writes a single-sheet source roster workbook with the
// standard attribute headers and one row per student.
//
// Locked students are written with the lively flag raised, which is one of
// the three flags the source reader folds into the locked state.
//
// Parameters:
//   - t: Testing context
//   - students: Student records to list, in row order
//
// Returns:
//   - string: Path of the written workbook
func SourceWorkbook(t *testing.T, students ...*types.Student) string {
	t.Helper()

	rows := [][]any{{"ΟΝΟΜΑ", "ΦΥΛΟ", "ΚΑΛΗ_ΓΝΩΣΗ_ΕΛΛΗΝΙΚΩΝ", "ΕΠΙΔΟΣΗ", "ΦΙΛΟΙ", "ΖΩΗΡΟΣ"}}
	for _, s := range students {
		lively := ""
		if s.Locked {
			lively = "Ν"
		}
		rows = append(rows, []any{
			s.Name,
			genderCell(s.Gender),
			proficiencyCell(s.Proficiency),
			int(s.Performance),
			strings.Join(s.Friends, ", "),
			lively,
		})
	}

	return WriteWorkbook(t, "source.xlsx", Sheet{Name: "ΜΑΘΗΤΕΣ", Rows: rows})
}

// TemplateWorkbook writes a workbook with one name-column sheet per team
// listing the drafted members: the template shape the fill operation expects.
//
// Sheets are written in ascending team-name order.
//
// Parameters:
//   - t: Testing context
//   - teams: Team name to drafted member names
//
// Returns:
//   - string: Path of the written workbook
func TemplateWorkbook(t *testing.T, teams map[string][]string) string {
	t.Helper()

	names := make([]string, 0, len(teams))
	for name := range teams {
		names = append(names, name)
	}
	sort.Strings(names)

	sheets := make([]Sheet, 0, len(names))
	for _, team := range names {
		rows := [][]any{{"ΟΝΟΜΑ"}}
		for _, member := range teams[team] {
			rows = append(rows, []any{member})
		}
		sheets = append(sheets, Sheet{Name: team, Rows: rows})
	}

	return WriteWorkbook(t, "template.xlsx", sheets...)
}

func genderCell(g types.Gender) string {
	if g == types.GenderGirl {
		return "Κ"
	}

	return "Α"
}

func proficiencyCell(p types.Proficiency) string {
	if p == types.NotProficient {
		return "Ο"
	}

	return "Ν"
}
