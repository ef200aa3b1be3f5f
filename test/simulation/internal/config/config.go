package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yiannitsarou/classmix/types"
)

// Simulation modes.
const (
	ModeSweep = "sweep" // fixed number of seeded runs
	ModeSoak  = "soak"  // run until the configured duration elapses
)

// Config is the root configuration structure.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Rosters    RostersConfig    `yaml:"rosters"`
	Optimizer  OptimizerConfig  `yaml:"optimizer"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

// SimulationConfig configures the simulation runtime.
type SimulationConfig struct {
	Mode     string        `yaml:"mode"`     // "sweep", "soak"
	Runs     int           `yaml:"runs"`     // sweep: total seeded runs
	Duration time.Duration `yaml:"duration"` // soak: wall-clock budget, e.g. "2h"
	Seed     int64         `yaml:"seed"`     // base seed; run i uses seed+i
	Verbose  bool          `yaml:"verbose"`  // per-swap and per-state logging
}

// UnmarshalYAML decodes the duration field from a Go duration string
// ("30m", "8h"), which the yaml library cannot do for time.Duration itself.
func (c *SimulationConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Mode     string `yaml:"mode"`
		Runs     int    `yaml:"runs"`
		Duration string `yaml:"duration"`
		Seed     int64  `yaml:"seed"`
		Verbose  bool   `yaml:"verbose"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	c.Mode = raw.Mode
	c.Runs = raw.Runs
	c.Seed = raw.Seed
	c.Verbose = raw.Verbose
	c.Duration = 0

	if raw.Duration != "" {
		d, err := time.ParseDuration(raw.Duration)
		if err != nil {
			return fmt.Errorf("invalid simulation.duration: %w", err)
		}
		c.Duration = d
	}

	return nil
}

// RostersConfig configures the generated rosters.
type RostersConfig struct {
	Teams         int     `yaml:"teams"`
	PerTeam       int     `yaml:"students_per_team"`
	LockedPercent float64 `yaml:"locked_percent"` // 0.05 = 5% of students locked
	PairPercent   float64 `yaml:"pair_percent"`   // chance per adjacent couple to befriend
}

// OptimizerConfig configures the optimizer under test.
type OptimizerConfig struct {
	Targets       types.Targets `yaml:"targets"`
	MaxIterations int           `yaml:"max_iterations"`
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"` // e.g. ":9090"
}

// LoadConfig loads and validates configuration from a YAML file.
//
// Missing fields receive defaults before validation, so a minimal file (or
// even an empty one) yields a runnable sweep.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
