package timer

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Example_manual shows a Manual source standing in for a real clock.
func Example_manual() {
	src := NewManual(10)
	start, _ := src.Sample()
	src.Advance(2.5)
	end, _ := src.Sample()
	fmt.Printf("%g\n", src.Seconds(end-start))
	// Output: 2.5
}

// Example_cpu converts a difference of cpu samples to seconds.
func Example_cpu() {
	var c CPU
	fmt.Printf("%g\n", c.Seconds(250000))
	// Output: 0.25
}

func TestWallSamplesMove(t *testing.T) {
	var w Wall
	a, err := w.Sample()
	require.NoError(t, err)
	b, err := w.Sample()
	require.NoError(t, err)
	assert.True(t, b >= a, "wall clock should not go backwards between two samples")
	assert.Greater(t, a, float64(1e9), "wall samples are seconds since the unix epoch")
	assert.Equal(t, 3.5, w.Seconds(3.5), "wall samples are already seconds")
}

func TestCPUSecondsDividesByTicks(t *testing.T) {
	var c CPU
	assert.Equal(t, 2.0, c.Seconds(2*TicksPerSecond))
	assert.Equal(t, 0.5, c.Seconds(TicksPerSecond/2))
}

func TestCPUSample(t *testing.T) {
	var c CPU
	a, err := c.Sample()
	if errors.Is(err, ErrCPUUnsupported) {
		t.Skip("no process cpu clock on this platform")
	}
	require.NoError(t, err)
	// spin for 20ms so the clock has something to count
	deadline := time.Now().Add(20 * time.Millisecond)
	x := 0
	for time.Now().Before(deadline) {
		x++
	}
	_ = x
	b, err := c.Sample()
	require.NoError(t, err)
	assert.True(t, b >= a, "process cpu time should not go backwards")
	ticks := b - a
	assert.Greater(t, ticks, TicksPerSecond/1000, "20ms of spinning should be more than 1ms of ticks")
	assert.Less(t, ticks, float64(TicksPerSecond), "20ms of spinning should be less than 1s of ticks")
}

func TestManual(t *testing.T) {
	m := NewManual(5)
	s, err := m.Sample()
	require.NoError(t, err)
	assert.Equal(t, 5.0, s)

	m.Advance(1.5)
	s, _ = m.Sample()
	assert.Equal(t, 6.5, s)

	m.Set(1)
	s, _ = m.Sample()
	assert.Equal(t, 1.0, s)

	assert.Equal(t, 4.0, m.Seconds(4), "manual without ticks reports seconds")
	m.Ticks = 100
	assert.Equal(t, 0.04, m.Seconds(4), "manual with ticks divides like the cpu source")

	boom := errors.New("boom")
	m.Err = boom
	_, err = m.Sample()
	assert.Equal(t, boom, err)
}
