// Package stopwatch keeps named timers for instrumenting Go code.
//
// Summary
//
// A Stopwatch maps timer names to running statistics: total, minimum, maximum
// and last lapse, and the number of stops. Timers are created by the first
// Start and are then stopped, paused, resumed and reset by name. Statistics
// can be queried one at a time, printed as a text report, or sent to
// Honeycomb with the honeycomb subpackage.
//
// A stopwatch must be told which clock to use before it can time anything.
// ModeRealTime measures wall-clock seconds and ModeCPUTime measures the CPU
// time of the current process; the timer subpackage holds both sources and a
// Manual one for tests.
//
//   func main() {
//     sw := stopwatch.New(stopwatch.Config{Mode: stopwatch.ModeRealTime})
//     sw.Start("load")
//     load()
//     sw.Stop("load")
//     sw.ReportAll(os.Stdout)
//     ...
//
// A Stopwatch does no locking. Give each goroutine its own, or guard every
// call with a lock you own.
//
// Examples
//
// There are runnable examples in the examples directory.
package stopwatch
