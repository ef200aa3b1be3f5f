package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "classmix",
	Short: "classmix - student-to-team rebalancing for school classes",
	Long: `classmix evens out school classes that were drafted by hand.

It reads Excel workbooks: a source roster with student attributes (gender,
language proficiency, performance, friendships) and a draft assignment of
students to classes. A greedy local-search loop then swaps students between
classes until the high-performer, gender, and proficiency counts are spread
evenly, without ever separating co-located friend pairs or moving locked
students.

Typical flow:

  classmix run --source students.xlsx --template classes.xlsx --out plan.xlsx

or step by step:

  classmix fill     --source students.xlsx --template classes.xlsx --out filled.xlsx
  classmix optimize --in filled.xlsx --out plan.xlsx`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	// Add commands to root
	rootCmd.AddCommand(fillCmd)
	rootCmd.AddCommand(optimizeCmd)
	rootCmd.AddCommand(runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
