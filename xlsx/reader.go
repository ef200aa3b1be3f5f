package xlsx

import (
	"fmt"
	"slices"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/yiannitsarou/classmix/types"
)

// ReadRoster loads a filled workbook into a roster.
//
// The pairs sheet is consumed first so friend links and lock flags exist
// before memberships resolve, then the singles sheet, then every remaining
// sheet with a name column becomes a team, in workbook order. Membership
// rows naming unknown students are skipped.
//
// Parameters:
//   - path: Path of the filled workbook (.xlsx)
//
// Returns:
//   - *types.Roster: The loaded roster
//   - error: ErrNoTeamSheets when no sheet qualifies as a team, or any file
//     or format error
//
// Example:
//
//	roster, err := xlsx.ReadRoster("filled.xlsx")
func ReadRoster(path string) (*types.Roster, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	roster := types.NewRoster()
	sheets := f.GetSheetList()

	if slices.Contains(sheets, SheetPairs) {
		if err := readPairsSheet(f, roster); err != nil {
			return nil, err
		}
	}
	if slices.Contains(sheets, SheetSingles) {
		if err := readSinglesSheet(f, roster); err != nil {
			return nil, err
		}
	}

	for _, sheet := range sheets {
		if sheet == SheetPairs || sheet == SheetSingles {
			continue
		}
		if err := readTeamSheet(f, sheet, roster); err != nil {
			return nil, err
		}
	}

	if len(roster.Teams) == 0 {
		return nil, fmt.Errorf("workbook %s: %w", path, types.ErrNoTeamSheets)
	}

	return roster, nil
}

// readPairsSheet registers both students of every pair row with symmetric
// friend links. Gender and proficiency are recovered from the category
// label; rows with an incomplete name or category are skipped. Students
// already registered keep their earlier record.
func readPairsSheet(f *excelize.File, roster *types.Roster) error {
	rows, err := f.GetRows(SheetPairs)
	if err != nil {
		return fmt.Errorf("failed to read sheet %s: %w", SheetPairs, err)
	}
	if len(rows) == 0 {
		return nil
	}

	headers := parseHeaderRow(rows[0])
	for _, key := range []headerKey{keyStudentA, keyStudentB, keyPairCategory, keyPerformance} {
		if !headers.has(key) {
			return nil
		}
	}

	for _, row := range rows[1:] {
		nameA := lookup(headers, row, keyStudentA)
		nameB := lookup(headers, row, keyStudentB)
		category := lookup(headers, row, keyPairCategory)
		if nameA == "" || nameB == "" || category == "" {
			continue
		}

		perfA, perfB := splitPairPerformance(lookup(headers, row, keyPerformance))
		gender, proficiency := categoryAttributes(category)
		locked := lookup(headers, row, keyLocked) == lockedMarker

		if _, ok := roster.Get(nameA); !ok {
			roster.AddStudent(&types.Student{
				Name:        nameA,
				Gender:      gender,
				Proficiency: proficiency,
				Performance: perfA,
				Friends:     []string{nameB},
				Locked:      locked,
			})
		}
		if _, ok := roster.Get(nameB); !ok {
			roster.AddStudent(&types.Student{
				Name:        nameB,
				Gender:      gender,
				Proficiency: proficiency,
				Performance: perfB,
				Friends:     []string{nameA},
				Locked:      locked,
			})
		}
	}

	return nil
}

// splitPairPerformance parses the "a, b" performance combination cell of a
// pair row. Either half missing or unparseable reads as the low grade.
func splitPairPerformance(raw string) (types.Performance, types.Performance) {
	a, b := types.PerformanceLow, types.PerformanceLow
	if i := strings.Index(raw, ","); i >= 0 {
		a = types.ParsePerformance(raw[:i])
		b = types.ParsePerformance(raw[i+1:])
	}

	return a, b
}

// categoryAttributes recovers gender and proficiency from a pair category
// label. Mixed-gender pairs read back as boys: the label does not retain
// the individual genders.
func categoryAttributes(category string) (types.Gender, types.Proficiency) {
	gender := types.GenderBoy
	if strings.Contains(category, "Κορίτ") {
		gender = types.GenderGirl
	}

	proficiency := types.Proficient
	if strings.Contains(strings.ToLower(category), "όχι") {
		proficiency = types.NotProficient
	}

	return gender, proficiency
}

// readSinglesSheet registers unpaired students. The sheet needs name,
// gender, proficiency and performance columns; without them it contributes
// nothing. Students already registered by the pairs sheet keep that record.
func readSinglesSheet(f *excelize.File, roster *types.Roster) error {
	rows, err := f.GetRows(SheetSingles)
	if err != nil {
		return fmt.Errorf("failed to read sheet %s: %w", SheetSingles, err)
	}
	if len(rows) == 0 {
		return nil
	}

	headers := parseHeaderRow(rows[0])
	for _, key := range []headerKey{keyName, keyGender, keyProficiency, keyPerformance} {
		if !headers.has(key) {
			return nil
		}
	}

	for _, row := range rows[1:] {
		name := lookup(headers, row, keyName)
		if name == "" {
			continue
		}
		if _, ok := roster.Get(name); ok {
			continue
		}

		roster.AddStudent(&types.Student{
			Name:        name,
			Gender:      types.ParseGender(lookup(headers, row, keyGender)),
			Proficiency: types.ParseProficiency(lookup(headers, row, keyProficiency)),
			Performance: types.ParsePerformance(lookup(headers, row, keyPerformance)),
			Locked:      lookup(headers, row, keyLocked) == lockedMarker,
		})
	}

	return nil
}

// readTeamSheet registers one team from a membership sheet. Sheets without a
// name column are ignored; names without a student record are dropped from
// the membership.
func readTeamSheet(f *excelize.File, sheet string, roster *types.Roster) error {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil
	}

	headers := parseHeaderRow(rows[0])
	nameCol, ok := headers.col(keyName)
	if !ok {
		return nil
	}

	members := make([]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		name := cellAt(row, nameCol)
		if name == "" {
			continue
		}
		if _, ok := roster.Get(name); !ok {
			continue
		}

		members = append(members, name)
	}

	roster.AddTeam(sheet, members...)

	return nil
}
