package xlsx

import "strings"

// Sheet names with special meaning inside a filled workbook. Every other
// sheet is treated as a team sheet.
const (
	// SheetPairs holds the friend pairs with their category labels. It is
	// consumed before any team sheet so friend links and lock flags are in
	// place when memberships load.
	SheetPairs = "ΚΑΤΗΓΟΡΙΟΠΟΙΗΣΗ"

	// SheetSingles holds the students that did not pair up.
	SheetSingles = "SINGLE"

	// SheetStatistics is the per-team statistics sheet of a plan workbook.
	SheetStatistics = "ΒΕΛΤΙΩΜΕΝΗ_ΣΤΑΤΙΣΤΙΚΗ"

	// SheetSwaps is the applied-swaps log sheet of a plan workbook.
	SheetSwaps = "ΕΦΑΡΜΟΣΜΕΝΑ_SWAPS"
)

// lockedMarker is the cell value marking a locked row in the classification
// sheets and their team columns.
const lockedMarker = "LOCKED"

// headerKey identifies a canonical column across all recognized workbook
// layouts. Raw sheet headers map onto keys through normalizeHeader and the
// alias table, so the readers never compare display spellings directly.
type headerKey int

const (
	keyName headerKey = iota
	keyGender
	keyProficiency
	keyPerformance
	keyFriends
	keyLocked
	keyTeam
	keyTeacherChild
	keyLively
	keySpecialNeeds
	keyStudentA
	keyStudentB
	keyPairCategory
)

// headerAliases lists the accepted spellings per canonical column, already
// normalized. Order matters: the first alias present in a sheet wins.
var headerAliases = map[headerKey][]string{
	keyName:         {"ΟΝΟΜΑ", "NAME"},
	keyGender:       {"ΦΥΛΟ", "GENDER"},
	keyProficiency:  {"ΚΑΛΗΓΝΩΣΗΕΛΛΗΝΙΚΩΝ", "ΚΑΛΗΓΝΩΣΗ", "ΓΝΩΣΗΕΛΛΗΝΙΚΩΝ", "PROFICIENCY"},
	keyPerformance:  {"ΕΠΙΔΟΣΗ", "PERFORMANCE"},
	keyFriends:      {"ΦΙΛΟΙ", "FRIENDS"},
	keyLocked:       {"LOCKED", "ΚΛΕΙΔΩΜΕΝΟ"},
	keyTeam:         {"ΤΜΗΜΑ", "TEAM"},
	keyTeacherChild: {"ΠΑΙΔΙΕΚΠΑΙΔΕΥΤΙΚΟΥ", "TEACHERCHILD"},
	keyLively:       {"ΖΩΗΡΟΣ", "LIVELY"},
	keySpecialNeeds: {"ΙΔΙΑΙΤΕΡΟΤΗΤΑ", "SPECIALNEEDS"},
	keyStudentA:     {"ΜΑΘΗΤΗΣΑ", "STUDENTA"},
	keyStudentB:     {"ΜΑΘΗΤΗΣΒ", "STUDENTB"},
	keyPairCategory: {"ΚΑΤΗΓΟΡΙΑΔΥΑΔΑΣ", "PAIRCATEGORY"},
}

// normalizeHeader folds a raw header cell into its canonical lookup form:
// surrounding whitespace trimmed, upper-cased, spaces and underscores
// removed. "ΚΑΛΗ_ΓΝΩΣΗ_ΕΛΛΗΝΙΚΩΝ" and "ΚΑΛΗ ΓΝΩΣΗ ΕΛΛΗΝΙΚΩΝ" resolve to the
// same form.
func normalizeHeader(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, " ", "")

	return strings.ReplaceAll(s, "_", "")
}

// headerIndex maps normalized headers to their 1-based column numbers.
type headerIndex map[string]int

// parseHeaderRow indexes the first row of a sheet. Empty cells contribute
// nothing; duplicate headers keep the rightmost column.
func parseHeaderRow(row []string) headerIndex {
	h := make(headerIndex, len(row))
	for i, cell := range row {
		if norm := normalizeHeader(cell); norm != "" {
			h[norm] = i + 1
		}
	}

	return h
}

// col returns the 1-based column of the first alias present for the key.
func (h headerIndex) col(key headerKey) (int, bool) {
	for _, alias := range headerAliases[key] {
		if c, ok := h[alias]; ok {
			return c, true
		}
	}

	return 0, false
}

// has reports whether any alias of the key is present.
func (h headerIndex) has(key headerKey) bool {
	_, ok := h.col(key)
	return ok
}
