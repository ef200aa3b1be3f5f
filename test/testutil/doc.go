// Package testutil provides shared test utilities and fixtures for integration tests.
//
// This package contains common setup code, test data, and helper functions
// that are used across multiple integration and stress tests.
//
// Examples of utilities that belong here:
//   - Assertion helpers (verify roster invariants after an optimization run)
//   - Test data generators (deterministic rosters at arbitrary scale)
//
// Note: For workbook fixtures and small hand-built rosters, use the
// github.com/yiannitsarou/classmix/testing package. This package is
// specifically for integration test scenarios and helper utilities.
package testutil
