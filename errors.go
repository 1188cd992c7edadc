package stopwatch

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownTimer is returned for any operation other than Start on a name
	// that was never started.
	ErrUnknownTimer = errors.New("stopwatch: performance not initialized")
	// ErrModeNotSet is returned by timing calls made before a mode is chosen.
	ErrModeNotSet = errors.New("stopwatch: clock not initialized to a time taking mode")
	// ErrNoStops is returned by Average for a timer that was never stopped.
	ErrNoStops = errors.New("stopwatch: no completed stops")
)

func unknown(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownTimer, name)
}
