package classmix

import (
	"fmt"

	"github.com/yiannitsarou/classmix/types"
)

// Config is the configuration for the Optimizer.
//
// The zero value of any field means "use the default"; call SetDefaults (or
// let New do it) before reading values directly.
type Config struct {
	// Targets are the acceptable upper bounds for the four cross-team
	// spreads (high performers, boys, girls, language proficiency).
	// A run converges as soon as every spread is at or below its target.
	//
	// The high-performer target doubles as the continuation gate: once the
	// gap between the fullest and emptiest team closes to this value, the
	// run stops even if a gender or proficiency spread is still above
	// target. Lowering it makes runs chase more even teams at the cost of
	// more iterations.
	Targets types.Targets `yaml:"targets"`

	// MaxIterations caps the number of optimization passes. Each pass
	// applies at most one swap, so this also caps the number of swaps.
	// Runs that hit the cap end in StateExhausted with the roster left in
	// the best composition reached so far.
	// Recommended: 100.
	MaxIterations int `yaml:"maxIterations"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		Targets:       types.DefaultTargets(),
		MaxIterations: 100,
	}
}

// SetDefaults fills in missing configuration values with production defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.Targets.HighPerf == 0 {
		cfg.Targets.HighPerf = defaults.Targets.HighPerf
	}
	if cfg.Targets.Gender == 0 {
		cfg.Targets.Gender = defaults.Targets.Gender
	}
	if cfg.Targets.Proficiency == 0 {
		cfg.Targets.Proficiency = defaults.Targets.Proficiency
	}
	if cfg.MaxIterations == 0 {
		cfg.MaxIterations = defaults.MaxIterations
	}
}

// Validate checks configuration constraints and returns error for invalid values.
//
// Hard Validation Rules:
//   - MaxIterations >= 1 (the loop must be allowed at least one pass)
//   - All spread targets >= 0 (a negative gap is unsatisfiable)
//
// Returns:
//   - error: Validation error with clear explanation, nil if valid
func (cfg *Config) Validate() error {
	if cfg.MaxIterations < 1 {
		return fmt.Errorf("MaxIterations must be >= 1, got %d", cfg.MaxIterations)
	}

	if cfg.Targets.HighPerf < 0 {
		return fmt.Errorf("Targets.HighPerf must be >= 0, got %d", cfg.Targets.HighPerf)
	}

	if cfg.Targets.Gender < 0 {
		return fmt.Errorf("Targets.Gender must be >= 0, got %d", cfg.Targets.Gender)
	}

	if cfg.Targets.Proficiency < 0 {
		return fmt.Errorf("Targets.Proficiency must be >= 0, got %d", cfg.Targets.Proficiency)
	}

	return nil
}

// ValidateWithWarnings checks configuration and logs warnings for non-recommended values.
//
// This is called after Validate() in New() to provide operator guidance.
//
// Parameters:
//   - logger: Logger instance for warning output
func (cfg *Config) ValidateWithWarnings(logger Logger) {
	// Warn if the iteration budget is unlikely to reach convergence
	if cfg.MaxIterations < 10 {
		logger.Warn(
			"MaxIterations is very low, runs may exhaust before converging",
			"maxIterations", cfg.MaxIterations,
			"recommended", "100 or higher",
		)
	}

	// Warn if the continuation gate demands near-perfectly level teams
	if cfg.Targets.HighPerf < 2 {
		logger.Warn(
			"high-performer target is very tight, many rosters cannot close the gap that far",
			"highPerfTarget", cfg.Targets.HighPerf,
			"recommended", 3,
		)
	}
}

// TestConfig returns a configuration optimized for fast test execution.
//
// The iteration cap is reduced so pathological fixtures fail fast instead of
// grinding through the full production budget. Use DefaultConfig() for
// production runs.
//
// Returns:
//   - Config: Configuration with a small iteration budget for tests
//
// Example:
//
//	cfg := classmix.TestConfig()
//	opt, err := classmix.New(&cfg)
func TestConfig() Config {
	cfg := DefaultConfig()

	cfg.MaxIterations = 25 // 4x smaller

	return cfg
}
