package xlsx

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/yiannitsarou/classmix/types"
)

// columnName converts a 1-based column number to its letter form.
func columnName(col int) string {
	name := ""
	for col > 0 {
		col--
		name = string(rune('A'+col%26)) + name
		col /= 26
	}

	return name
}

// cellName builds an A1-style reference from 1-based coordinates.
func cellName(col, row int) string {
	return fmt.Sprintf("%s%d", columnName(col), row)
}

// setRow writes values into consecutive cells starting at column 1.
// References built by cellName are always valid, so SetCellValue cannot fail
// here.
func setRow(f *excelize.File, sheet string, row int, values ...any) {
	for i, v := range values {
		_ = f.SetCellValue(sheet, cellName(i+1, row), v)
	}
}

// writeHeaderRow writes a styled header row on row 1.
func writeHeaderRow(f *excelize.File, sheet string, headers []string, style int) {
	for i, h := range headers {
		_ = f.SetCellValue(sheet, cellName(i+1, 1), h)
	}
	_ = f.SetCellStyle(sheet, "A1", cellName(len(headers), 1), style)
}

// setColumnWidths sets the widths of columns A onward.
func setColumnWidths(f *excelize.File, sheet string, widths ...float64) {
	for i, w := range widths {
		col := columnName(i + 1)
		_ = f.SetColWidth(sheet, col, col, w)
	}
}

// cellAt returns the trimmed value of the 1-based column in a row slice.
// Rows returned by GetRows omit trailing empty cells, so out-of-range
// lookups read as empty.
func cellAt(row []string, col int) string {
	if col < 1 || col > len(row) {
		return ""
	}

	return strings.TrimSpace(row[col-1])
}

// lookup reads the cell under the canonical column, empty when the column is
// absent.
func lookup(headers headerIndex, row []string, key headerKey) string {
	col, ok := headers.col(key)
	if !ok {
		return ""
	}

	return cellAt(row, col)
}

// genderLetter renders a gender as its sheet letter.
func genderLetter(g types.Gender) string {
	if g == types.GenderGirl {
		return "Κ"
	}

	return "Α"
}

// proficiencyLetter renders a proficiency as its sheet letter.
func proficiencyLetter(p types.Proficiency) string {
	if p == types.NotProficient {
		return "Ο"
	}

	return "Ν"
}

// lockedCell renders a lock flag the way the classification sheets spell it.
func lockedCell(locked bool) string {
	if locked {
		return lockedMarker
	}

	return "ΟΧΙ"
}

// splitFriends parses a comma-separated friend list cell.
func splitFriends(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	friends := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			friends = append(friends, name)
		}
	}

	if len(friends) == 0 {
		return nil
	}

	return friends
}

// isYes reports whether a flag cell is the yes marker. Greek Ν and its Latin
// homoglyph are both accepted.
func isYes(raw string) bool {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "Ν", "N", "ΝΑΙ", "YES", "TRUE":
		return true
	}

	return false
}
