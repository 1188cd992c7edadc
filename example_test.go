package stopwatch_test

import (
	"fmt"
	"os"

	"github.com/honeycombio/stopwatch-go"
	"github.com/honeycombio/stopwatch-go/timer"
)

func Example() {
	clock := timer.NewManual(0)
	sw := stopwatch.New(stopwatch.Config{Source: clock})

	sw.Start("load")
	clock.Advance(1.5)
	sw.Stop("load")

	sw.ReportAll(os.Stdout)
	// Output:
	//
	// ==========================
	// Tracking performance: load
	// ==========================
	//   *  Avg. time 1.5 sec
	//   *  Min. time 1.5 sec
	//   *  Max. time 1.5 sec
	//   *  Tot. time 1.5 sec
	//   *  Stops 1
}

// Example_pause shows pausing a timer around work that shouldn't count.
func Example_pause() {
	clock := timer.NewManual(0)
	sw := stopwatch.New(stopwatch.Config{Source: clock})

	sw.Start("request")
	clock.Advance(1)
	sw.Pause("request")
	clock.Advance(30) // waiting on a user, not counted
	sw.Start("request")
	clock.Advance(2)
	sw.Pause("request")

	last, _ := sw.Last("request")
	fmt.Printf("last lapse: %gs\n", last)
	// Output: last lapse: 3s
}
