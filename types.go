package classmix

import "github.com/yiannitsarou/classmix/types"

// Re-export types from the internal types package.
//
// This file provides a stable, backward-compatible public API for the library's
// core types and interfaces. It uses type aliases to re-export definitions
// from the `types` subpackage, which contains the actual implementations.
//
// This pattern solves the "import cycle" problem by allowing internal packages
// to depend on `types` without depending on the root `classmix` package, while
// still providing a convenient `classmix.Roster`, `classmix.Swap`, etc. for users.
type (
	Student     = types.Student
	Roster      = types.Roster
	TeamStats   = types.TeamStats
	Spreads     = types.Spreads
	Targets     = types.Targets
	Swap        = types.Swap
	Improvement = types.Improvement
	Result      = types.Result
	Gender      = types.Gender
	Proficiency = types.Proficiency
	Performance = types.Performance
	Tier        = types.Tier
	State       = types.State
)

// Re-export interfaces from the internal types package for convenience.
type (
	MetricsCollector = types.MetricsCollector
	Logger           = types.Logger
	Hooks            = types.Hooks
)

// Re-export State constants from the internal types package.
const (
	StateIdle      = types.StateIdle
	StateRunning   = types.StateRunning
	StateConverged = types.StateConverged
	StateStuck     = types.StateStuck
	StateExhausted = types.StateExhausted
)

// Re-export Tier constants from the internal types package.
const (
	TierSoloStrict  = types.TierSoloStrict
	TierPairStrict  = types.TierPairStrict
	TierSoloRelaxed = types.TierSoloRelaxed
)

// Re-export attribute constants from the internal types package.
const (
	GenderBoy  = types.GenderBoy
	GenderGirl = types.GenderGirl

	Proficient    = types.Proficient
	NotProficient = types.NotProficient

	PerformanceLow  = types.PerformanceLow
	PerformanceMid  = types.PerformanceMid
	PerformanceHigh = types.PerformanceHigh
)

// NewRoster creates an empty roster.
func NewRoster() *Roster {
	return types.NewRoster()
}
