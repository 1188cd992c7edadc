// Package timer holds the time sources a stopwatch samples from.
//
// A Source returns raw samples in its own unit. Lapses are computed by
// subtracting two samples and passing the difference through Seconds, so a
// source that counts clock ticks only pays for the conversion once per lapse.
package timer

import (
	"errors"
	"time"
)

// TicksPerSecond is the resolution of the CPU source, matching the POSIX
// CLOCKS_PER_SEC constant.
const TicksPerSecond = 1e6

// ErrCPUUnsupported is returned by CPU.Sample on platforms with no process
// CPU clock.
var ErrCPUUnsupported = errors.New("timer: process cpu time is not available on this platform")

// Source is a strategy for taking time samples.
type Source interface {
	// Sample returns the current time in the source's native unit.
	Sample() (float64, error)
	// Seconds converts the difference of two samples to seconds.
	Seconds(raw float64) float64
}

// Wall samples wall-clock seconds since the Unix epoch.
type Wall struct{}

func (Wall) Sample() (float64, error) {
	return float64(time.Now().UnixNano()) / float64(time.Second), nil
}

func (Wall) Seconds(raw float64) float64 {
	return raw
}

// CPU samples the CPU time consumed by the current process, in ticks of
// 1/TicksPerSecond seconds.
type CPU struct{}

func (CPU) Sample() (float64, error) {
	d, err := processCPUTime()
	if err != nil {
		return 0, err
	}
	return float64(d) / float64(time.Second) * TicksPerSecond, nil
}

func (CPU) Seconds(raw float64) float64 {
	return raw / TicksPerSecond
}

// Manual is a Source that only moves when told to. It's meant for tests that
// need exact lapses.
type Manual struct {
	now float64
	// Ticks, when non-zero, makes Seconds divide by it, the way CPU does.
	Ticks float64
	// Err, when set, is returned by Sample.
	Err error
}

// NewManual returns a Manual source reading start.
func NewManual(start float64) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Sample() (float64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return m.now, nil
}

func (m *Manual) Seconds(raw float64) float64 {
	if m.Ticks != 0 {
		return raw / m.Ticks
	}
	return raw
}

// Set moves the source to an absolute reading.
func (m *Manual) Set(now float64) {
	m.now = now
}

// Advance moves the source forward by delta native units.
func (m *Manual) Advance(delta float64) {
	m.now += delta
}
