package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/yiannitsarou/classmix/types"
)

// SourceStudent is one row of the attribute workbook: the descriptive fields
// collected about a student before teams are considered.
type SourceStudent struct {
	// Name uniquely identifies the student.
	Name string

	// Gender, Proficiency and Performance are the normalized balance
	// attributes.
	Gender      types.Gender
	Proficiency types.Proficiency
	Performance types.Performance

	// Friends lists the declared friend names.
	Friends []string

	// TeacherChild, Lively and SpecialNeeds are the lock flags. Any one of
	// them set marks the student as immovable during optimization.
	TeacherChild bool
	Lively       bool
	SpecialNeeds bool
}

// Locked reports whether any lock flag is set.
func (s *SourceStudent) Locked() bool {
	return s.TeacherChild || s.Lively || s.SpecialNeeds
}

// HasFriend reports whether the record declared the given name as a friend.
func (s *SourceStudent) HasFriend(name string) bool {
	for _, f := range s.Friends {
		if f == name {
			return true
		}
	}

	return false
}

// ReadSourceRoster reads an attribute workbook.
//
// Every sheet with a recognizable name column contributes rows; sheets
// without one are skipped. Rows with an empty name cell are skipped.
// Missing attribute cells take the usual defaults: low performance,
// proficient, boy, no friends, no lock flags. A student appearing in several
// sheets keeps the last row read.
//
// Parameters:
//   - path: Path of the source workbook (.xlsx)
//
// Returns:
//   - map[string]*SourceStudent: Attribute records keyed by student name
//   - error: ErrMissingNameColumn when no sheet has a name column, or any
//     file or format error
func ReadSourceRoster(path string) (map[string]*SourceStudent, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open source workbook: %w", err)
	}
	defer f.Close()

	students := make(map[string]*SourceStudent)
	sawNameColumn := false

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
		}
		if len(rows) == 0 {
			continue
		}

		headers := parseHeaderRow(rows[0])
		nameCol, ok := headers.col(keyName)
		if !ok {
			continue
		}
		sawNameColumn = true

		for _, row := range rows[1:] {
			name := cellAt(row, nameCol)
			if name == "" {
				continue
			}

			students[name] = readSourceRow(headers, row, name)
		}
	}

	if !sawNameColumn {
		return nil, fmt.Errorf("source workbook %s: %w", path, types.ErrMissingNameColumn)
	}

	return students, nil
}

// readSourceRow normalizes one attribute row.
func readSourceRow(headers headerIndex, row []string, name string) *SourceStudent {
	return &SourceStudent{
		Name:         name,
		Gender:       types.ParseGender(lookup(headers, row, keyGender)),
		Proficiency:  types.ParseProficiency(lookup(headers, row, keyProficiency)),
		Performance:  types.ParsePerformance(lookup(headers, row, keyPerformance)),
		Friends:      splitFriends(lookup(headers, row, keyFriends)),
		TeacherChild: isYes(lookup(headers, row, keyTeacherChild)),
		Lively:       isYes(lookup(headers, row, keyLively)),
		SpecialNeeds: isYes(lookup(headers, row, keySpecialNeeds)),
	}
}
