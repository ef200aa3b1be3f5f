// Package types provides core type definitions and interfaces for the classmix library.
//
// This package contains shared types that are used across multiple packages in the
// classmix library. By keeping these types in a separate package, we avoid import
// cycles between the main classmix package and its internal implementations.
//
// Key types:
//   - Student: Immutable student record with balancing attributes
//   - Roster: Teams with their member lists plus the student registry
//   - TeamStats: Per-team attribute counts
//   - Spreads: The four cross-team max-min gaps the optimizer reduces
//   - Swap: An applied membership exchange between two teams
//   - State: Optimization run state
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
