package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	t.Run("errors.Is works correctly", func(t *testing.T) {
		// Test that errors.Is can match our sentinel errors
		require.True(t, errors.Is(ErrInvalidConfig, ErrInvalidConfig))
		require.False(t, errors.Is(ErrInvalidConfig, ErrAlreadyRunning))

		// Test that wrapped errors maintain identity
		wrapped := errors.Join(ErrMissingNameColumn, errors.New("additional context"))
		require.True(t, errors.Is(wrapped, ErrMissingNameColumn))
	})

	t.Run("all errors are distinct", func(t *testing.T) {
		// Collect all sentinel errors
		allErrors := []error{
			// Optimizer errors
			ErrInvalidConfig,
			ErrAlreadyRunning,
			// Workbook errors
			ErrMissingNameColumn,
			ErrNoTeamSheets,
		}

		// Verify all errors are unique
		for i, err1 := range allErrors {
			for j, err2 := range allErrors {
				if i == j {
					require.True(t, errors.Is(err1, err2), "error should equal itself: %v", err1)
				} else {
					require.False(t, errors.Is(err1, err2), "errors should be distinct: %v vs %v", err1, err2)
				}
			}
		}
	})
}
