package stopwatch

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/honeycombio/stopwatch-go/timer"
)

// Mode selects which time source a Stopwatch samples from.
type Mode int

const (
	// ModeNone leaves the stopwatch without a clock; every timing call fails.
	ModeNone Mode = iota
	// ModeCPUTime measures process CPU time.
	ModeCPUTime
	// ModeRealTime measures wall-clock time.
	ModeRealTime
	// ModeCustom is reported for any source installed with SetSource that
	// isn't one of the built in clocks.
	ModeCustom
)

func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeCPUTime:
		return "cpu_time"
	case ModeRealTime:
		return "real_time"
	case ModeCustom:
		return "custom"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Config is the place where you configure a Stopwatch. The zero value gives an
// enabled stopwatch with no mode set that prints notices to STDOUT.
type Config struct {
	// Mode is the initial time source. default: ModeNone
	Mode Mode
	// Source, when set, takes precedence over Mode. Useful for tests that need
	// a timer.Manual clock.
	Source timer.Source
	// Disabled starts the stopwatch turned off. default: false
	Disabled bool
	// Notices receives the one-line messages printed by Enable and Disable.
	// default: os.Stdout
	Notices io.Writer
}

// record is the per-name accumulator.
type record struct {
	segmentStart float64
	total        float64
	min          float64
	max          float64
	last         float64
	stops        int
	paused       bool
}

// Stopwatch is a registry of named timers. It does no locking of its own; if
// you share one between goroutines, serialize every call yourself.
type Stopwatch struct {
	id      string
	active  bool
	mode    Mode
	source  timer.Source
	notices io.Writer
	records map[string]*record
	names   []string
}

// New creates a Stopwatch from config.
func New(config Config) *Stopwatch {
	if config.Notices == nil {
		config.Notices = os.Stdout
	}
	s := &Stopwatch{
		id:      uuid.Must(uuid.NewRandom()).String(),
		active:  !config.Disabled,
		notices: config.Notices,
		records: make(map[string]*record),
		names:   make([]string, 0),
	}
	s.SetMode(config.Mode)
	if config.Source != nil {
		s.SetSource(config.Source)
	}
	return s
}

// ID identifies this stopwatch in published events.
func (s *Stopwatch) ID() string {
	return s.id
}

// SetMode picks the time source used by every later timing call. Values
// already accumulated are left as they are. ModeCustom is ignored; custom
// sources go through SetSource.
func (s *Stopwatch) SetMode(mode Mode) {
	switch mode {
	case ModeCPUTime:
		s.source = timer.CPU{}
	case ModeRealTime:
		s.source = timer.Wall{}
	case ModeCustom:
		return
	default:
		s.source = nil
	}
	s.mode = mode
}

// SetSource installs an arbitrary time source. The built in CPU and Wall
// sources report their own modes; anything else reports ModeCustom.
func (s *Stopwatch) SetSource(src timer.Source) {
	s.source = src
	switch src.(type) {
	case nil:
		s.mode = ModeNone
	case timer.CPU, *timer.CPU:
		s.mode = ModeCPUTime
	case timer.Wall, *timer.Wall:
		s.mode = ModeRealTime
	default:
		s.mode = ModeCustom
	}
}

// Mode returns the active mode.
func (s *Stopwatch) Mode() Mode {
	return s.mode
}

// Enable turns the stopwatch on.
func (s *Stopwatch) Enable() {
	fmt.Fprintln(s.notices, "Stopwatch active.")
	s.active = true
}

// Disable turns the stopwatch off. Start, Stop, Pause, Reset and Report
// become no-ops; queries keep working.
func (s *Stopwatch) Disable() {
	fmt.Fprintln(s.notices, "Stopwatch inactive.")
	s.active = false
}

// Active reports whether the stopwatch is on.
func (s *Stopwatch) Active() bool {
	return s.active
}

// Exists reports whether name has been started at least once.
func (s *Stopwatch) Exists(name string) bool {
	_, ok := s.records[name]
	return ok
}

// Names returns the known timer names in the order they were first started.
func (s *Stopwatch) Names() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

func (s *Stopwatch) takeTime() (float64, error) {
	if s.source == nil {
		return 0, ErrModeNotSet
	}
	return s.source.Sample()
}

func (s *Stopwatch) lookup(name string) (*record, error) {
	rec, ok := s.records[name]
	if !ok {
		return nil, unknown(name)
	}
	return rec, nil
}

// Start starts (or resumes, after Pause) the timer called name, creating it
// if needed.
func (s *Stopwatch) Start(name string) error {
	if !s.active {
		return nil
	}
	now, err := s.takeTime()
	if err != nil {
		return err
	}
	rec, ok := s.records[name]
	if !ok {
		rec = &record{}
		s.records[name] = rec
		s.names = append(s.names, name)
	}
	rec.segmentStart = now
	// a fresh start opens a new measurement window; a resume keeps adding
	// to the paused one
	if !rec.paused {
		rec.last = 0
	}
	rec.paused = false
	return nil
}

// Stop closes the current lapse of name and folds it into the statistics. On
// a paused timer the lapse is the paused window, and the time spent paused is
// not counted.
func (s *Stopwatch) Stop(name string) error {
	if !s.active {
		return nil
	}
	now, err := s.takeTime()
	if err != nil {
		return err
	}
	rec, err := s.lookup(name)
	if err != nil {
		return err
	}
	var lapse float64
	if rec.paused {
		// the window was already folded into last and total by Pause
		lapse = rec.last
	} else {
		lapse = s.source.Seconds(now - rec.segmentStart)
		rec.total += lapse
	}

	if rec.stops == 0 || lapse >= rec.max {
		rec.max = lapse
	}
	if rec.stops == 0 || lapse <= rec.min {
		rec.min = lapse
	}
	rec.stops++
	rec.last = lapse
	rec.paused = false
	return nil
}

// Pause adds the time since the last Start to name's totals without counting
// a stop. A later Start resumes the same window; pausing twice in a row adds
// nothing the second time.
func (s *Stopwatch) Pause(name string) error {
	if !s.active {
		return nil
	}
	now, err := s.takeTime()
	if err != nil {
		return err
	}
	rec, err := s.lookup(name)
	if err != nil {
		return err
	}
	if rec.paused {
		return nil
	}
	lapse := s.source.Seconds(now - rec.segmentStart)
	rec.segmentStart = now
	rec.last += lapse
	rec.total += lapse
	rec.paused = true
	return nil
}

// Reset zeroes every statistic of name. The timer stays known.
func (s *Stopwatch) Reset(name string) error {
	if !s.active {
		return nil
	}
	rec, err := s.lookup(name)
	if err != nil {
		return err
	}
	*rec = record{}
	return nil
}

// ResetAll resets every known timer.
func (s *Stopwatch) ResetAll() {
	if !s.active {
		return
	}
	for _, name := range s.names {
		*s.records[name] = record{}
	}
}

// Time starts name, runs fn and stops name.
func (s *Stopwatch) Time(name string, fn func()) error {
	if err := s.Start(name); err != nil {
		return err
	}
	fn()
	return s.Stop(name)
}
