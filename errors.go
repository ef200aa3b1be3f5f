package classmix

import "github.com/yiannitsarou/classmix/types"

// Sentinel errors returned by the Optimizer.
//
// These alias the definitions in the types subpackage so that errors.Is works
// regardless of which package the caller imported the sentinel from.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrAlreadyRunning is returned when Optimize is called while another
	// run is in progress on the same Optimizer.
	ErrAlreadyRunning = types.ErrAlreadyRunning
)
