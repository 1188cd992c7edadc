package stopwatch

import "math"

// Stats is a point-in-time copy of one timer's statistics, in seconds.
type Stats struct {
	Name   string
	Total  float64
	Min    float64
	Max    float64
	Last   float64
	Stops  int
	Paused bool
}

// Average returns Total/Stops, which is NaN for a timer that was never
// stopped.
func (st Stats) Average() float64 {
	if st.Stops == 0 {
		return math.NaN()
	}
	return st.Total / float64(st.Stops)
}

// Snapshot copies the statistics of name.
func (s *Stopwatch) Snapshot(name string) (Stats, error) {
	rec, err := s.lookup(name)
	if err != nil {
		return Stats{}, err
	}
	return Stats{
		Name:   name,
		Total:  rec.total,
		Min:    rec.min,
		Max:    rec.max,
		Last:   rec.last,
		Stops:  rec.stops,
		Paused: rec.paused,
	}, nil
}

// ElapsedSinceStart returns the seconds since name was last started without
// touching its statistics, so it can be read while the timer is running.
func (s *Stopwatch) ElapsedSinceStart(name string) (float64, error) {
	rec, err := s.lookup(name)
	if err != nil {
		return 0, err
	}
	now, err := s.takeTime()
	if err != nil {
		return 0, err
	}
	return s.source.Seconds(now - rec.segmentStart), nil
}

// Total returns the sum of all lapses of name.
func (s *Stopwatch) Total(name string) (float64, error) {
	rec, err := s.lookup(name)
	if err != nil {
		return 0, err
	}
	return rec.total, nil
}

// Average returns the total time of name divided by its number of stops.
// A timer with no stops yields ErrNoStops.
func (s *Stopwatch) Average(name string) (float64, error) {
	rec, err := s.lookup(name)
	if err != nil {
		return 0, err
	}
	if rec.stops == 0 {
		return 0, ErrNoStops
	}
	return rec.total / float64(rec.stops), nil
}

// Min returns the shortest stopped lapse of name, or 0 before the first stop.
func (s *Stopwatch) Min(name string) (float64, error) {
	rec, err := s.lookup(name)
	if err != nil {
		return 0, err
	}
	return rec.min, nil
}

// Max returns the longest stopped lapse of name, or 0 before the first stop.
func (s *Stopwatch) Max(name string) (float64, error) {
	rec, err := s.lookup(name)
	if err != nil {
		return 0, err
	}
	return rec.max, nil
}

// Last returns the most recent lapse of name.
func (s *Stopwatch) Last(name string) (float64, error) {
	rec, err := s.lookup(name)
	if err != nil {
		return 0, err
	}
	return rec.last, nil
}

// Stops returns how many times name has been stopped.
func (s *Stopwatch) Stops(name string) (int, error) {
	rec, err := s.lookup(name)
	if err != nil {
		return 0, err
	}
	return rec.stops, nil
}
