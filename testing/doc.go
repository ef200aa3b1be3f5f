// Package testing provides test utilities for the classmix library.
//
// This package offers helpers for building optimizer fixtures: student and
// roster constructors, ready-made rosters with known balance properties, and
// workbook writers for exercising the xlsx ingestion path. It follows Go's
// convention of providing testing utilities in a dedicated package (similar
// to net/http/httptest).
//
// Key utilities:
//   - NewStudent / LockedStudent / Befriend: one-line student fixtures
//   - NewRoster: roster from a team-to-members mapping
//   - BalancedRoster / SkewedRoster: rosters with known convergence behavior
//   - WriteWorkbook / SourceWorkbook / TemplateWorkbook: xlsx fixtures on disk
//
// Example usage:
//
//	import (
//	    "testing"
//	    classmixtest "github.com/yiannitsarou/classmix/testing"
//	)
//
//	func TestMyComponent(t *testing.T) {
//	    roster := classmixtest.SkewedRoster(t)
//	    // Run the optimizer against a roster that needs exactly one swap
//	}
package testing
