package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/yiannitsarou/classmix"
	classmixtest "github.com/yiannitsarou/classmix/testing"
	"github.com/yiannitsarou/classmix/types"
	"github.com/yiannitsarou/classmix/xlsx"
)

func TestFilledPath(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want string
	}{
		{"plain name", "plan.xlsx", "plan_filled.xlsx"},
		{"nested path", filepath.Join("out", "plan.xlsx"), filepath.Join("out", "plan_filled.xlsx")},
		{"multiple dots", "plan.v2.xlsx", "plan.v2_filled.xlsx"},
		{"no extension", "plan", "plan_filled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, filledPath(tt.out))
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults without file or flags", func(t *testing.T) {
		cmd := &cobra.Command{}
		addTuningFlags(cmd)

		cfg, err := loadConfig(cmd)
		require.NoError(t, err)
		require.Equal(t, classmix.DefaultConfig(), cfg)
	})

	t.Run("config file overrides defaults", func(t *testing.T) {
		cmd := &cobra.Command{}
		addTuningFlags(cmd)
		configPath = writeBalanceConfig(t)
		defer func() { configPath = "" }()

		cfg, err := loadConfig(cmd)
		require.NoError(t, err)
		require.Equal(t, 2, cfg.Targets.HighPerf)
		require.Equal(t, 3, cfg.Targets.Gender)
		require.Equal(t, 50, cfg.MaxIterations)
		// Keys absent from the file keep their defaults.
		require.Equal(t, 4, cfg.Targets.Proficiency)
	})

	t.Run("explicit flags beat the config file", func(t *testing.T) {
		cmd := &cobra.Command{}
		addTuningFlags(cmd)
		configPath = writeBalanceConfig(t)
		defer func() { configPath = "" }()

		require.NoError(t, cmd.Flags().Set("max-iterations", "7"))

		cfg, err := loadConfig(cmd)
		require.NoError(t, err)
		require.Equal(t, 7, cfg.MaxIterations)
		// A flag left at its default does not clobber the file value.
		require.Equal(t, 2, cfg.Targets.HighPerf)
	})

	t.Run("missing config file errors", func(t *testing.T) {
		cmd := &cobra.Command{}
		addTuningFlags(cmd)
		configPath = filepath.Join(t.TempDir(), "absent.yaml")
		defer func() { configPath = "" }()

		_, err := loadConfig(cmd)
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to read config file")
	})
}

// writeBalanceConfig writes a YAML config overriding the high-performer and
// gender targets and the iteration cap.
func writeBalanceConfig(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "balance.yaml")
	data := []byte("targets:\n  highPerf: 2\n  gender: 3\nmaxIterations: 50\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	return path
}

func TestRunCmd(t *testing.T) {
	logger = zap.NewNop()

	// Every high performer drafted onto Β1: one strict swap levels the
	// spread and the run converges.
	students := []*types.Student{
		classmixtest.NewStudent("Ορέστης", types.GenderBoy, types.Proficient, types.PerformanceHigh),
		classmixtest.NewStudent("Στέλιος", types.GenderBoy, types.Proficient, types.PerformanceHigh),
		classmixtest.NewStudent("Θάνος", types.GenderBoy, types.Proficient, types.PerformanceHigh),
		classmixtest.NewStudent("Μάριος", types.GenderBoy, types.Proficient, types.PerformanceHigh),
		classmixtest.NewStudent("Λευτέρης", types.GenderBoy, types.Proficient, types.PerformanceLow),
		classmixtest.NewStudent("Αντώνης", types.GenderBoy, types.Proficient, types.PerformanceLow),
		classmixtest.NewStudent("Βασίλης", types.GenderBoy, types.Proficient, types.PerformanceLow),
		classmixtest.NewStudent("Δημήτρης", types.GenderBoy, types.Proficient, types.PerformanceLow),
		classmixtest.NewStudent("Ηλίας", types.GenderBoy, types.Proficient, types.PerformanceLow),
		classmixtest.NewStudent("Φώτης", types.GenderBoy, types.Proficient, types.PerformanceLow),
	}

	sourcePath = classmixtest.SourceWorkbook(t, students...)
	templatePath = classmixtest.TemplateWorkbook(t, map[string][]string{
		"Β1": {"Ορέστης", "Στέλιος", "Θάνος", "Μάριος", "Λευτέρης"},
		"Β2": {"Αντώνης", "Βασίλης", "Δημήτρης", "Ηλίας", "Φώτης"},
	})
	outPath = filepath.Join(t.TempDir(), "plan.xlsx")
	defer func() { sourcePath, templatePath, outPath = "", "", "" }()

	cmd := &cobra.Command{}
	addTuningFlags(cmd)

	require.NoError(t, runAll(cmd, nil))

	// The intermediate filled workbook stays alongside the plan.
	require.FileExists(t, filledPath(outPath))

	f, err := excelize.OpenFile(outPath)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	require.Contains(t, sheets, "Β1")
	require.Contains(t, sheets, "Β2")
	require.Contains(t, sheets, xlsx.SheetStatistics)
	require.Contains(t, sheets, xlsx.SheetSwaps)

	// One-for-one swaps keep both classes at five students.
	for _, team := range []string{"Β1", "Β2"} {
		rows, err := f.GetRows(team)
		require.NoError(t, err)
		require.Len(t, rows, 6, "sheet %s should hold a header and five members", team)
	}
}
