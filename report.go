package stopwatch

import (
	"fmt"
	"io"
	"strings"
)

const reportHeader = "======================"

// Report writes the statistics block for name to w.
func (s *Stopwatch) Report(name string, w io.Writer) error {
	if !s.active {
		return nil
	}
	st, err := s.Snapshot(name)
	if err != nil {
		return err
	}
	return writeReport(w, st)
}

// ReportAll writes one block per timer, in the order the timers were first
// started.
func (s *Stopwatch) ReportAll(w io.Writer) error {
	if !s.active {
		return nil
	}
	for _, name := range s.names {
		if err := s.Report(name, w); err != nil {
			return err
		}
	}
	return nil
}

func writeReport(w io.Writer, st Stats) error {
	bar := reportHeader + strings.Repeat("=", len(st.Name))
	var b strings.Builder
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, bar)
	fmt.Fprintf(&b, "Tracking performance: %s\n", st.Name)
	fmt.Fprintln(&b, bar)
	fmt.Fprintf(&b, "  *  Avg. time %v sec\n", st.Average())
	fmt.Fprintf(&b, "  *  Min. time %v sec\n", st.Min)
	fmt.Fprintf(&b, "  *  Max. time %v sec\n", st.Max)
	fmt.Fprintf(&b, "  *  Tot. time %v sec\n", st.Total)
	fmt.Fprintf(&b, "  *  Stops %d\n", st.Stops)
	fmt.Fprintln(&b)
	_, err := io.WriteString(w, b.String())
	return err
}
