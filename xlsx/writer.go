package xlsx

import (
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/yiannitsarou/classmix/types"
)

// Fill colors of the plan workbook headers and status cells.
const (
	fillTeamHeader    = "DDEBF7"
	fillStatsHeader   = "C6E0B4"
	fillSummaryHeader = "FFF2CC"
	fillSwapsHeader   = "D9E1F2"
	fillTargetMet     = "C6EFCE"
	fillTargetMissed  = "FFC7CE"
)

// planStyles caches the style ids used across a plan workbook.
type planStyles struct {
	teamHeader    int
	statsHeader   int
	summaryHeader int
	swapsHeader   int
	sectionTitle  int
	targetMet     int
	targetMissed  int
}

func newPlanStyles(f *excelize.File) (*planStyles, error) {
	header := func(color string, wrap bool) (int, error) {
		return f.NewStyle(&excelize.Style{
			Font:      &excelize.Font{Bold: true},
			Fill:      excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: wrap},
		})
	}
	fill := func(color string) (int, error) {
		return f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		})
	}

	var (
		s   planStyles
		err error
	)
	if s.teamHeader, err = header(fillTeamHeader, false); err != nil {
		return nil, err
	}
	if s.statsHeader, err = header(fillStatsHeader, false); err != nil {
		return nil, err
	}
	if s.summaryHeader, err = header(fillSummaryHeader, false); err != nil {
		return nil, err
	}
	if s.swapsHeader, err = header(fillSwapsHeader, true); err != nil {
		return nil, err
	}
	if s.sectionTitle, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 12}}); err != nil {
		return nil, err
	}
	if s.targetMet, err = fill(fillTargetMet); err != nil {
		return nil, err
	}
	if s.targetMissed, err = fill(fillTargetMissed); err != nil {
		return nil, err
	}

	return &s, nil
}

// WritePlan writes the optimized placement workbook: one sheet per team with
// the member attributes, a statistics sheet comparing the final spreads with
// the targets, and the applied-swaps log.
//
// Team sheets and their rows are sorted by name so reruns over the same
// input produce comparable workbooks.
//
// Parameters:
//   - path: Destination path (.xlsx)
//   - roster: Final composition, as mutated by the run
//   - result: Run summary whose swap log and spreads are exported
//   - targets: Spread targets the statistics are judged against
//
// Returns:
//   - error: Any style or write error
//
// Example:
//
//	err := xlsx.WritePlan("plan.xlsx", roster, result, types.DefaultTargets())
func WritePlan(path string, roster *types.Roster, result *types.Result, targets types.Targets) error {
	f := excelize.NewFile()
	defer f.Close()

	styles, err := newPlanStyles(f)
	if err != nil {
		return fmt.Errorf("failed to create styles: %w", err)
	}

	teams := roster.TeamNames()
	for _, team := range teams {
		if err := writeTeamSheet(f, roster, team, styles); err != nil {
			return err
		}
	}

	if err := writeStatisticsSheet(f, roster, result, targets, styles); err != nil {
		return err
	}
	if err := writeSwapsSheet(f, result.Swaps, styles); err != nil {
		return err
	}

	// The default sheet is replaced by the generated ones, unless a team
	// happens to carry its name.
	if !slices.Contains(teams, "Sheet1") {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return fmt.Errorf("failed to drop default sheet: %w", err)
		}
	}

	first := SheetStatistics
	if len(teams) > 0 {
		first = teams[0]
	}
	if idx, err := f.GetSheetIndex(first); err == nil && idx >= 0 {
		f.SetActiveSheet(idx)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save plan workbook: %w", err)
	}

	return nil
}

// writeTeamSheet writes one team sheet, rows sorted by student name.
func writeTeamSheet(f *excelize.File, roster *types.Roster, team string, styles *planStyles) error {
	if _, err := f.NewSheet(team); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", team, err)
	}

	headers := []string{"ΟΝΟΜΑ", "ΦΥΛΟ", "ΚΑΛΗ_ΓΝΩΣΗ_ΕΛΛΗΝΙΚΩΝ", "ΕΠΙΔΟΣΗ", "ΦΙΛΟΙ"}
	writeHeaderRow(f, team, headers, styles.teamHeader)

	members := roster.Members(team)
	sort.Slice(members, func(i, j int) bool { return members[i].Name < members[j].Name })

	for i, s := range members {
		setRow(f, team, i+2,
			s.Name,
			genderLetter(s.Gender),
			proficiencyLetter(s.Proficiency),
			int(s.Performance),
			strings.Join(s.Friends, ", "),
		)
	}
	setColumnWidths(f, team, 30, 12, 25, 12, 40)

	return nil
}

// writeStatisticsSheet writes the per-team counts followed by the final
// spreads judged against the targets.
func writeStatisticsSheet(f *excelize.File, roster *types.Roster, result *types.Result, targets types.Targets, styles *planStyles) error {
	if _, err := f.NewSheet(SheetStatistics); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", SheetStatistics, err)
	}

	headers := []string{"Τμήμα", "Σύνολο", "Αγόρια", "Κορίτσια", "Γνώση (ΝΑΙ)", "Γνώση (ΟΧΙ)", "Επ1", "Επ2", "Επ3"}
	writeHeaderRow(f, SheetStatistics, headers, styles.statsHeader)

	stats := roster.Stats()
	row := 2
	for _, team := range roster.TeamNames() {
		ts := stats[team]
		setRow(f, SheetStatistics, row,
			team, ts.Size, ts.Boys, ts.Girls, ts.Proficient, ts.NotProficient,
			ts.PerfLow, ts.PerfMid, ts.PerfHigh)
		row++
	}

	row += 2
	title := cellName(1, row)
	_ = f.SetCellValue(SheetStatistics, title, "ΤΕΛΙΚΑ SPREADS")
	_ = f.SetCellStyle(SheetStatistics, title, title, styles.sectionTitle)
	row++

	summary := []string{"Μετρική", "Spread", "Στόχος", "Status"}
	for i, h := range summary {
		_ = f.SetCellValue(SheetStatistics, cellName(i+1, row), h)
	}
	_ = f.SetCellStyle(SheetStatistics, cellName(1, row), cellName(len(summary), row), styles.summaryHeader)
	row++

	lines := []struct {
		label  string
		value  int
		target int
	}{
		{"Spread Επίδοσης 3", result.Spreads.HighPerf, targets.HighPerf},
		{"Spread Αγοριών", result.Spreads.Boys, targets.Gender},
		{"Spread Κοριτσιών", result.Spreads.Girls, targets.Gender},
		{"Spread Γνώσης", result.Spreads.Proficient, targets.Proficiency},
	}
	for _, line := range lines {
		status := "✅"
		style := styles.targetMet
		if line.value > line.target {
			status = "❌"
			style = styles.targetMissed
		}

		setRow(f, SheetStatistics, row, line.label, line.value, fmt.Sprintf("≤ %d", line.target), status)
		valueCell := cellName(2, row)
		_ = f.SetCellStyle(SheetStatistics, valueCell, valueCell, style)
		row++
	}

	setColumnWidths(f, SheetStatistics, 20, 20, 20, 20)

	return nil
}

// writeSwapsSheet writes the ordered log of applied swaps with their spread
// deltas.
func writeSwapsSheet(f *excelize.File, swaps []types.Swap, styles *planStyles) error {
	if _, err := f.NewSheet(SheetSwaps); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", SheetSwaps, err)
	}

	headers := []string{"#", "Τύπος", "Από Τμήμα", "Μαθητές OUT", "Προς Τμήμα", "Μαθητές IN", "Δ_ep3", "Δ_φύλου", "Δ_γνώσης", "Priority"}
	writeHeaderRow(f, SheetSwaps, headers, styles.swapsHeader)

	for i, sw := range swaps {
		setRow(f, SheetSwaps, i+2,
			i+1,
			sw.Tier.String(),
			sw.From,
			strings.Join(sw.Out, ", "),
			sw.To,
			strings.Join(sw.In, ", "),
			signedDelta(sw.Improvement.HighPerf),
			signedDelta(sw.Improvement.Gender),
			signedDelta(sw.Improvement.Proficient),
			int(sw.Tier),
		)
	}

	setColumnWidths(f, SheetSwaps, 8, 25, 15, 35, 15, 35, 10, 10, 10, 10)

	return nil
}

// signedDelta renders a spread delta with an explicit plus sign on gains.
func signedDelta(n int) string {
	if n > 0 {
		return "+" + strconv.Itoa(n)
	}

	return strconv.Itoa(n)
}
