//go:build !linux && !darwin && !freebsd && !windows

package timer

import "time"

func processCPUTime() (time.Duration, error) {
	return 0, ErrCPUUnsupported
}
