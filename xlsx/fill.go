package xlsx

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/yiannitsarou/classmix/types"
)

// attributeColumns are the descriptive columns Fill guarantees on every team
// sheet, in append order, with the display header used when a column is
// missing.
var attributeColumns = []struct {
	key    headerKey
	header string
}{
	{keyGender, "ΦΥΛΟ"},
	{keyProficiency, "ΚΑΛΗ_ΓΝΩΣΗ_ΕΛΛΗΝΙΚΩΝ"},
	{keyPerformance, "ΕΠΙΔΟΣΗ"},
	{keyFriends, "ΦΙΛΟΙ"},
}

var (
	pairsHeaders   = []string{"ΜΑΘΗΤΗΣ Α", "ΜΑΘΗΤΗΣ Β", "ΚΑΤΗΓΟΡΙΑ ΔΥΑΔΑΣ", "ΕΠΙΔΟΣΗ", "LOCKED", "ΤΜΗΜΑ"}
	singlesHeaders = []string{"ΟΝΟΜΑ", "ΦΥΛΟ", "ΚΑΛΗ_ΓΝΩΣΗ_ΕΛΛΗΝΙΚΩΝ", "ΕΠΙΔΟΣΗ", "ΚΑΤΗΓΟΡΙΑ SINGLE", "ΤΜΗΜΑ", "LOCKED"}
)

// placement pairs a source record with the team sheet that listed it.
type placement struct {
	student *SourceStudent
	team    string
}

// Fill merges a source attribute workbook into a team template workbook.
//
// The template carries one sheet per team with at least a name column. For
// every template row whose name is known, the descriptive attributes are
// written next to it, appending any missing attribute columns first. Two
// classification sheets are then rebuilt from the placed students: the pairs
// sheet (one row per friend-linked pair, greedily matched in ascending team
// order, with its category label, performance combination, lock flag and
// teams) and the singles sheet (everyone left unpaired, sorted by name). The
// result is written to outPath; source and template files are left
// untouched.
//
// Parameters:
//   - sourcePath: Attribute workbook
//   - templatePath: Team template workbook
//   - outPath: Destination for the filled workbook
//
// Returns:
//   - error: Any read, format or write error
//
// Example:
//
//	err := xlsx.Fill("students.xlsx", "template.xlsx", "filled.xlsx")
func Fill(sourcePath, templatePath, outPath string) error {
	students, err := ReadSourceRoster(sourcePath)
	if err != nil {
		return err
	}

	f, err := excelize.OpenFile(templatePath)
	if err != nil {
		return fmt.Errorf("failed to open template workbook: %w", err)
	}
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	var placed []placement
	for _, sheet := range f.GetSheetList() {
		teamPlaced, err := fillTeamSheet(f, sheet, students, headerStyle)
		if err != nil {
			return err
		}
		placed = append(placed, teamPlaced...)
	}

	if err := writeClassificationSheets(f, placed, headerStyle); err != nil {
		return err
	}

	if err := f.SaveAs(outPath); err != nil {
		return fmt.Errorf("failed to save filled workbook: %w", err)
	}

	return nil
}

// fillTeamSheet writes attributes next to the names of one template sheet.
// Sheets without a name column are skipped. Returns the placements made, in
// row order.
func fillTeamSheet(f *excelize.File, sheet string, students map[string]*SourceStudent, headerStyle int) ([]placement, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	headers := parseHeaderRow(rows[0])
	nameCol, ok := headers.col(keyName)
	if !ok {
		return nil, nil
	}

	cols := ensureAttributeColumns(f, sheet, headers, headerStyle)

	var placed []placement
	for i, row := range rows[1:] {
		name := cellAt(row, nameCol)
		if name == "" {
			continue
		}
		s, ok := students[name]
		if !ok {
			continue
		}

		rowNum := i + 2
		_ = f.SetCellValue(sheet, cellName(cols[keyGender], rowNum), genderLetter(s.Gender))
		_ = f.SetCellValue(sheet, cellName(cols[keyProficiency], rowNum), proficiencyLetter(s.Proficiency))
		_ = f.SetCellValue(sheet, cellName(cols[keyPerformance], rowNum), int(s.Performance))
		_ = f.SetCellValue(sheet, cellName(cols[keyFriends], rowNum), strings.Join(s.Friends, ", "))

		placed = append(placed, placement{student: s, team: sheet})
	}

	return placed, nil
}

// ensureAttributeColumns returns the column of every attribute, appending a
// styled header for each one the sheet is missing.
func ensureAttributeColumns(f *excelize.File, sheet string, headers headerIndex, headerStyle int) map[headerKey]int {
	next := 1
	for _, col := range headers {
		if col >= next {
			next = col + 1
		}
	}

	cols := make(map[headerKey]int, len(attributeColumns))
	for _, ac := range attributeColumns {
		if col, ok := headers.col(ac.key); ok {
			cols[ac.key] = col
			continue
		}

		cell := cellName(next, 1)
		_ = f.SetCellValue(sheet, cell, ac.header)
		_ = f.SetCellStyle(sheet, cell, cell, headerStyle)
		cols[ac.key] = next
		next++
	}

	return cols
}

// writeClassificationSheets rebuilds the pairs and singles sheets from the
// placements.
func writeClassificationSheets(f *excelize.File, placed []placement, headerStyle int) error {
	// Pair matching walks teams in ascending name order so repeated fills
	// of the same inputs produce identical sheets.
	sort.SliceStable(placed, func(i, j int) bool {
		return placed[i].team < placed[j].team
	})

	pairs, singles := matchPairs(placed)

	if err := resetSheet(f, SheetPairs); err != nil {
		return err
	}
	writeHeaderRow(f, SheetPairs, pairsHeaders, headerStyle)

	for i, p := range pairs {
		a, b := p[0], p[1]
		locked := a.student.Locked() || b.student.Locked()

		team := a.team + "," + b.team
		if locked {
			team = lockedMarker
		}

		setRow(f, SheetPairs, i+2,
			a.student.Name,
			b.student.Name,
			pairCategory(a.student, b.student),
			fmt.Sprintf("%d, %d", a.student.Performance, b.student.Performance),
			lockedCell(locked),
			team,
		)
	}
	setColumnWidths(f, SheetPairs, 30, 30, 35, 12, 12, 20)

	if err := resetSheet(f, SheetSingles); err != nil {
		return err
	}
	writeHeaderRow(f, SheetSingles, singlesHeaders, headerStyle)

	sort.SliceStable(singles, func(i, j int) bool {
		return singles[i].student.Name < singles[j].student.Name
	})
	for i, p := range singles {
		team := p.team
		if p.student.Locked() {
			team = lockedMarker
		}

		setRow(f, SheetSingles, i+2,
			p.student.Name,
			genderLetter(p.student.Gender),
			proficiencyLetter(p.student.Proficiency),
			int(p.student.Performance),
			singleCategory(p.student),
			team,
			lockedCell(p.student.Locked()),
		)
	}
	setColumnWidths(f, SheetSingles, 30, 12, 25, 12, 35, 20, 12)

	return nil
}

// matchPairs greedily pairs friend-linked placements. A link in either
// direction forms a pair; each student joins at most one. Leftovers become
// singles, in placement order.
func matchPairs(placed []placement) (pairs [][2]placement, singles []placement) {
	used := make(map[string]bool, len(placed))

	for i, a := range placed {
		if used[a.student.Name] {
			continue
		}
		for _, b := range placed[i+1:] {
			if used[b.student.Name] {
				continue
			}
			if !a.student.HasFriend(b.student.Name) && !b.student.HasFriend(a.student.Name) {
				continue
			}

			pairs = append(pairs, [2]placement{a, b})
			used[a.student.Name] = true
			used[b.student.Name] = true

			break
		}
	}

	for _, p := range placed {
		if !used[p.student.Name] {
			singles = append(singles, p)
		}
	}

	return pairs, singles
}

// resetSheet drops any existing sheet with the name and recreates it empty.
func resetSheet(f *excelize.File, name string) error {
	if slices.Contains(f.GetSheetList(), name) {
		if err := f.DeleteSheet(name); err != nil {
			return fmt.Errorf("failed to drop sheet %s: %w", name, err)
		}
	}
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", name, err)
	}

	return nil
}

// pairCategory labels a pair the way the pairs sheet spells it: mixed gender
// first, then shared or mixed proficiency within a single-gender pair.
func pairCategory(a, b *SourceStudent) string {
	if a.Gender != b.Gender {
		return "Ομάδες Μικτού Φύλου"
	}

	label := "Αγόρια"
	if a.Gender == types.GenderGirl {
		label = "Κορίτσια"
	}

	switch {
	case a.Proficiency != b.Proficiency:
		return fmt.Sprintf("Μικτής Γνώσης (%s)", label)
	case a.Proficiency == types.Proficient:
		return fmt.Sprintf("Καλή Γνώση (%s)", label)
	default:
		return fmt.Sprintf("όχι Καλή Γνώση (%s)", label)
	}
}

// singleCategory labels an unpaired student.
func singleCategory(s *SourceStudent) string {
	label := "Αγόρια"
	if s.Gender == types.GenderGirl {
		label = "Κορίτσια"
	}

	if s.Proficiency == types.Proficient {
		return fmt.Sprintf("%s - Ν (Καλή γνώση)", label)
	}

	return fmt.Sprintf("%s - Ο (όχι καλή γνώση)", label)
}
