package config

import (
	"errors"
	"fmt"
)

// Validate checks the configuration for invalid or inconsistent values.
func (c *Config) Validate() error {
	switch c.Simulation.Mode {
	case ModeSweep, ModeSoak:
	default:
		return fmt.Errorf("simulation.mode must be %q or %q, got %q", ModeSweep, ModeSoak, c.Simulation.Mode)
	}

	if c.Simulation.Mode == ModeSweep && c.Simulation.Runs < 1 {
		return fmt.Errorf("simulation.runs must be positive, got %d", c.Simulation.Runs)
	}
	if c.Simulation.Mode == ModeSoak && c.Simulation.Duration <= 0 {
		return fmt.Errorf("simulation.duration must be positive, got %v", c.Simulation.Duration)
	}

	if c.Rosters.Teams < 2 {
		return fmt.Errorf("rosters.teams must be at least 2, got %d", c.Rosters.Teams)
	}
	if c.Rosters.PerTeam < 2 {
		return fmt.Errorf("rosters.students_per_team must be at least 2, got %d", c.Rosters.PerTeam)
	}
	if c.Rosters.LockedPercent < 0 || c.Rosters.LockedPercent >= 1 {
		return fmt.Errorf("rosters.locked_percent must be in [0, 1), got %v", c.Rosters.LockedPercent)
	}
	if c.Rosters.PairPercent < 0 || c.Rosters.PairPercent >= 1 {
		return fmt.Errorf("rosters.pair_percent must be in [0, 1), got %v", c.Rosters.PairPercent)
	}

	if c.Optimizer.Targets.HighPerf < 0 || c.Optimizer.Targets.Gender < 0 || c.Optimizer.Targets.Proficiency < 0 {
		return fmt.Errorf("optimizer.targets must be non-negative, got %+v", c.Optimizer.Targets)
	}
	if c.Optimizer.MaxIterations < 1 {
		return fmt.Errorf("optimizer.max_iterations must be positive, got %d", c.Optimizer.MaxIterations)
	}

	if c.Metrics.Enabled && c.Metrics.Addr == "" {
		return errors.New("metrics.addr must be set when metrics are enabled")
	}

	return nil
}
