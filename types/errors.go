package types

import "errors"

// Sentinel errors for the classmix library.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// All components should use these sentinel errors for known error conditions
// and wrap external errors with context using fmt.Errorf("%s: %w", msg, err).
//
// Error Naming Convention:
//   - Use descriptive names with Err prefix
//   - Group by component (Optimizer, Workbook)
//   - Use consistent messages across similar error types

// Optimizer errors - Public API errors returned by the Optimizer component.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrAlreadyRunning is returned when Optimize is called while another
	// run on the same optimizer has not finished.
	ErrAlreadyRunning = errors.New("optimization already running")
)

// Workbook errors - Spreadsheet ingestion and export errors.
var (
	// ErrMissingNameColumn is returned when no sheet carries a
	// recognizable name column.
	ErrMissingNameColumn = errors.New("no name column found")

	// ErrNoTeamSheets is returned when a workbook contains no team sheets.
	ErrNoTeamSheets = errors.New("no team sheets found")
)
