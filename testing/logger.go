package testing

import (
	"testing"

	"github.com/yiannitsarou/classmix/internal/logging"
	"github.com/yiannitsarou/classmix/types"
)

// NewTestLogger creates a new logger instance that writes to the testing.T logger.
// This is useful for seeing optimizer log output during test runs.
func NewTestLogger(t *testing.T) types.Logger {
	return logging.NewTest(t)
}
