package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/yiannitsarou/classmix"
	"github.com/yiannitsarou/classmix/xlsx"
)

var (
	// Workbook paths
	sourcePath   string
	templatePath string
	inPath       string
	outPath      string

	// Balancing configuration
	configPath        string
	maxIterations     int
	targetHigh        int
	targetGender      int
	targetProficiency int
)

// fillCmd annotates a drafted class workbook with student attributes
var fillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Annotate a drafted class workbook with student attributes",
	Long: `Reads the source roster workbook and copies each student's attributes
(gender, language proficiency, performance, friends) into the class sheets of
the template workbook. Students flagged as lively, teacher's children, or with
special needs are treated as locked in place.

Two classification sheets are appended: one listing co-located friend pairs
grouped by category, and one listing every unpaired student. The output
workbook is the input format the optimize command expects.

Example:
  classmix fill --source students.xlsx --template classes.xlsx --out filled.xlsx`,
	RunE: runFill,
}

// optimizeCmd balances a filled workbook and writes the final plan
var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Balance a filled workbook and write the final plan",
	Long: `Loads a filled workbook, runs the swap loop until the high-performer,
gender, and proficiency spreads are within target (or no improving swap
remains), and writes the plan workbook: one sheet per class plus a statistics
report and the ordered swap log.

Balancing targets come from built-in defaults, optionally overridden by a
YAML config file, optionally overridden again by flags.

Example:
  classmix optimize --in filled.xlsx --out plan.xlsx --config balance.yaml`,
	RunE: runOptimize,
}

// runCmd performs fill and optimize in a single pass
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fill and optimize in a single pass",
	Long: `The one-click flow: fills the template workbook from the source roster,
then immediately balances the result and writes the plan workbook. The
intermediate filled workbook is kept alongside the plan (with a _filled
suffix) so the pre-optimization composition stays auditable.

Example:
  classmix run --source students.xlsx --template classes.xlsx --out plan.xlsx`,
	RunE: runAll,
}

func init() {
	fillCmd.Flags().StringVar(&sourcePath, "source", "", "Source roster workbook with student attributes (required)")
	fillCmd.Flags().StringVar(&templatePath, "template", "", "Drafted workbook with one sheet per class (required)")
	fillCmd.Flags().StringVar(&outPath, "out", "", "Path for the filled workbook (required)")
	fillCmd.MarkFlagRequired("source")
	fillCmd.MarkFlagRequired("template")
	fillCmd.MarkFlagRequired("out")

	optimizeCmd.Flags().StringVar(&inPath, "in", "", "Filled workbook to balance (required)")
	optimizeCmd.Flags().StringVar(&outPath, "out", "", "Path for the plan workbook (required)")
	optimizeCmd.MarkFlagRequired("in")
	optimizeCmd.MarkFlagRequired("out")
	addTuningFlags(optimizeCmd)

	runCmd.Flags().StringVar(&sourcePath, "source", "", "Source roster workbook with student attributes (required)")
	runCmd.Flags().StringVar(&templatePath, "template", "", "Drafted workbook with one sheet per class (required)")
	runCmd.Flags().StringVar(&outPath, "out", "", "Path for the plan workbook (required)")
	runCmd.MarkFlagRequired("source")
	runCmd.MarkFlagRequired("template")
	runCmd.MarkFlagRequired("out")
	addTuningFlags(runCmd)
}

// addTuningFlags registers the balancing flags shared by optimize and run.
func addTuningFlags(cmd *cobra.Command) {
	defaults := classmix.DefaultConfig()

	cmd.Flags().StringVar(&configPath, "config", "", "YAML config file with balancing targets")
	cmd.Flags().IntVar(&maxIterations, "max-iterations", defaults.MaxIterations, "Cap on optimization passes")
	cmd.Flags().IntVar(&targetHigh, "target-high", defaults.Targets.HighPerf, "Acceptable high-performer spread")
	cmd.Flags().IntVar(&targetGender, "target-gender", defaults.Targets.Gender, "Acceptable spread per gender")
	cmd.Flags().IntVar(&targetProficiency, "target-proficiency", defaults.Targets.Proficiency, "Acceptable proficiency spread")
}

func runFill(cmd *cobra.Command, args []string) error {
	logger.Info("filling template",
		zap.String("source", sourcePath),
		zap.String("template", templatePath),
		zap.String("out", outPath),
	)

	if err := xlsx.Fill(sourcePath, templatePath, outPath); err != nil {
		return fmt.Errorf("failed to fill template: %w", err)
	}

	logger.Info("filled workbook written", zap.String("path", outPath))
	return nil
}

func runOptimize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	roster, err := xlsx.ReadRoster(inPath)
	if err != nil {
		return fmt.Errorf("failed to load roster: %w", err)
	}
	logger.Info("roster loaded",
		zap.String("path", inPath),
		zap.Int("teams", len(roster.TeamNames())),
		zap.Int("students", roster.TotalStudents()),
	)

	return balanceAndWrite(cfg, roster)
}

func runAll(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	filled := filledPath(outPath)
	logger.Info("filling template",
		zap.String("source", sourcePath),
		zap.String("template", templatePath),
		zap.String("filled", filled),
	)

	if err := xlsx.Fill(sourcePath, templatePath, filled); err != nil {
		return fmt.Errorf("failed to fill template: %w", err)
	}

	roster, err := xlsx.ReadRoster(filled)
	if err != nil {
		return fmt.Errorf("failed to load roster: %w", err)
	}
	logger.Info("roster loaded",
		zap.String("path", filled),
		zap.Int("teams", len(roster.TeamNames())),
		zap.Int("students", roster.TotalStudents()),
	)

	return balanceAndWrite(cfg, roster)
}

// balanceAndWrite runs the swap loop on the roster and writes the plan
// workbook to the --out path. SIGINT/SIGTERM cancel the run; the partially
// improved roster is discarded in that case.
func balanceAndWrite(cfg classmix.Config, roster *classmix.Roster) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal")
		cancel()
	}()

	result, err := optimizeRoster(ctx, cfg, roster)
	if err != nil {
		return err
	}

	logger.Info("optimization finished",
		zap.String("state", result.State.String()),
		zap.Int("iterations", result.Iterations),
		zap.Int("swaps", len(result.Swaps)),
		zap.Int("spreadHighPerf", result.Spreads.HighPerf),
		zap.Int("spreadBoys", result.Spreads.Boys),
		zap.Int("spreadGirls", result.Spreads.Girls),
		zap.Int("spreadProficient", result.Spreads.Proficient),
		zap.Duration("elapsed", result.Elapsed),
	)

	if err := xlsx.WritePlan(outPath, roster, result, cfg.Targets); err != nil {
		return fmt.Errorf("failed to write plan: %w", err)
	}

	logger.Info("plan written", zap.String("path", outPath))
	return nil
}

// optimizeRoster runs the balancing loop with progress wired to the CLI
// logger: state transitions at info, per-iteration spreads at debug, and
// every applied swap at info.
func optimizeRoster(ctx context.Context, cfg classmix.Config, roster *classmix.Roster) (*classmix.Result, error) {
	sugar := logger.Sugar()

	hooks := &classmix.Hooks{
		OnSwapApplied: func(_ context.Context, sw classmix.Swap) error {
			sugar.Infow("swap applied",
				"tier", sw.Tier.String(),
				"from", sw.From,
				"to", sw.To,
				"out", strings.Join(sw.Out, ", "),
				"in", strings.Join(sw.In, ", "),
				"deltaHighPerf", sw.Improvement.HighPerf,
				"deltaGender", sw.Improvement.Gender,
				"deltaProficient", sw.Improvement.Proficient,
			)
			return nil
		},
		OnIteration: func(_ context.Context, iteration int, spreads classmix.Spreads) error {
			sugar.Debugw("iteration",
				"iteration", iteration,
				"highPerf", spreads.HighPerf,
				"boys", spreads.Boys,
				"girls", spreads.Girls,
				"proficient", spreads.Proficient,
			)
			return nil
		},
	}

	opt, err := classmix.New(&cfg, classmix.WithLogger(zapLogger{sugar}), classmix.WithHooks(hooks))
	if err != nil {
		return nil, fmt.Errorf("failed to create optimizer: %w", err)
	}

	states, unsubscribe := opt.Subscribe()
	go func() {
		for state := range states {
			sugar.Infow("state changed", "state", state.String())
		}
	}()

	result, err := opt.Optimize(ctx, roster)
	unsubscribe()
	if err != nil {
		return nil, fmt.Errorf("optimization failed: %w", err)
	}

	return result, nil
}

// loadConfig resolves the effective balancing configuration: built-in
// defaults, then the YAML file when one is given, then explicit flags.
func loadConfig(cmd *cobra.Command) (classmix.Config, error) {
	cfg := classmix.DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
		}
		classmix.SetDefaults(&cfg)
	}

	// Flags beat the config file, but only when set explicitly.
	if cmd.Flags().Changed("max-iterations") {
		cfg.MaxIterations = maxIterations
	}
	if cmd.Flags().Changed("target-high") {
		cfg.Targets.HighPerf = targetHigh
	}
	if cmd.Flags().Changed("target-gender") {
		cfg.Targets.Gender = targetGender
	}
	if cmd.Flags().Changed("target-proficiency") {
		cfg.Targets.Proficiency = targetProficiency
	}

	return cfg, nil
}

// filledPath derives the intermediate workbook path for the run command:
// the plan path with a _filled suffix before the extension.
func filledPath(out string) string {
	ext := filepath.Ext(out)
	return strings.TrimSuffix(out, ext) + "_filled" + ext
}

// zapLogger adapts a zap.SugaredLogger to the classmix.Logger interface.
// The interface takes the message first with variadic key-value pairs,
// matching zap's *w methods rather than its print-style ones.
type zapLogger struct {
	s *zap.SugaredLogger
}

func (l zapLogger) Debug(msg string, keysAndValues ...any) { l.s.Debugw(msg, keysAndValues...) }
func (l zapLogger) Info(msg string, keysAndValues ...any)  { l.s.Infow(msg, keysAndValues...) }
func (l zapLogger) Warn(msg string, keysAndValues ...any)  { l.s.Warnw(msg, keysAndValues...) }
func (l zapLogger) Error(msg string, keysAndValues ...any) { l.s.Errorw(msg, keysAndValues...) }
func (l zapLogger) Fatal(msg string, keysAndValues ...any) { l.s.Fatalw(msg, keysAndValues...) }
