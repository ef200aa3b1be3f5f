package config

import "time"

// applyDefaults applies default values to configuration fields that are not set.
func applyDefaults(cfg *Config) {
	// Simulation defaults
	if cfg.Simulation.Mode == "" {
		cfg.Simulation.Mode = ModeSweep
	}
	if cfg.Simulation.Runs == 0 {
		cfg.Simulation.Runs = 100
	}
	if cfg.Simulation.Duration == 0 {
		cfg.Simulation.Duration = 1 * time.Hour
	}
	if cfg.Simulation.Seed == 0 {
		cfg.Simulation.Seed = 1
	}

	// Roster defaults: a mid-size school year
	if cfg.Rosters.Teams == 0 {
		cfg.Rosters.Teams = 6
	}
	if cfg.Rosters.PerTeam == 0 {
		cfg.Rosters.PerTeam = 28
	}
	if cfg.Rosters.LockedPercent == 0 {
		cfg.Rosters.LockedPercent = 0.05
	}
	if cfg.Rosters.PairPercent == 0 {
		cfg.Rosters.PairPercent = 0.1
	}

	// Optimizer defaults mirror the library's own
	if cfg.Optimizer.Targets.HighPerf == 0 {
		cfg.Optimizer.Targets.HighPerf = 3
	}
	if cfg.Optimizer.Targets.Gender == 0 {
		cfg.Optimizer.Targets.Gender = 4
	}
	if cfg.Optimizer.Targets.Proficiency == 0 {
		cfg.Optimizer.Targets.Proficiency = 4
	}
	if cfg.Optimizer.MaxIterations == 0 {
		cfg.Optimizer.MaxIterations = 200
	}

	// Metrics defaults
	if cfg.Metrics.Addr == "" {
		cfg.Metrics.Addr = ":9090"
	}
}
