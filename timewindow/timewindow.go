// Package timewindow owns the dashboard's notion of "when": a year range for
// the trend view and a single year for snapshot views.
package timewindow

import (
	"fmt"

	"github.com/andareed/popviz/view"
)

// DefaultRangeStart is the earliest default start of the range window.
const DefaultRangeStart = 2000

// Range is a closed year interval.
type Range struct {
	Start, End int
}

// Contains reports whether year falls inside r.
func (r Range) Contains(year int) bool {
	return year >= r.Start && year <= r.End
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// Single is one year.
type Single struct {
	Year int
}

// Kind tags which arm of a Window is populated.
type Kind int

const (
	RangeKind Kind = iota
	SingleKind
)

// Window is Range(start, end) | Single(year).
type Window struct {
	kind   Kind
	rng    Range
	single Single
}

func NewRange(start, end int) Window {
	return Window{kind: RangeKind, rng: Range{Start: start, End: end}}
}

func NewSingle(year int) Window {
	return Window{kind: SingleKind, single: Single{Year: year}}
}

func (w Window) Kind() Kind { return w.kind }

func (w Window) Range() (Range, bool) {
	return w.rng, w.kind == RangeKind
}

func (w Window) Single() (Single, bool) {
	return w.single, w.kind == SingleKind
}

func (w Window) String() string {
	switch w.kind {
	case RangeKind:
		return w.rng.String()
	case SingleKind:
		return fmt.Sprintf("%d", w.single.Year)
	}
	return "?"
}

// Clamp constrains each end of the window into [lo, hi] independently.
func (w Window) Clamp(lo, hi int) Window {
	switch w.kind {
	case RangeKind:
		return NewRange(Clamp(w.rng.Start, lo, hi), Clamp(w.rng.End, lo, hi))
	case SingleKind:
		return NewSingle(Clamp(w.single.Year, lo, hi))
	}
	return w
}

// Clamp constrains v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// State is the lifecycle of a Machine.
type State int

const (
	Uninitialized State = iota
	Initialized
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Initialized:
		return "initialized"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Step is the outcome of one animation advance.
type Step int

const (
	Advanced Step = iota
	Exhausted
)

func (s Step) String() string {
	if s == Advanced {
		return "advanced"
	}
	return "exhausted"
}

// Machine holds both representations and the available year bounds.
type Machine struct {
	state    State
	min, max int
	rng      Range
	year     int
}

// New returns an uninitialized machine.
func New() *Machine {
	return &Machine{}
}

// Load records the available bounds. The first call sets the defaults; later
// calls clamp the existing window instead of resetting it.
func (m *Machine) Load(min, max int) {
	m.min, m.max = min, max
	if m.state == Uninitialized {
		start := DefaultRangeStart
		if min > start {
			start = min
		}
		// If the data ends before 2000 the default start would pass the end.
		m.rng = Range{Start: Clamp(start, min, max), End: max}
		m.year = max
		m.state = Initialized
		return
	}
	m.rng = Range{Start: Clamp(m.rng.Start, min, max), End: Clamp(m.rng.End, min, max)}
	m.year = Clamp(m.year, min, max)
}

// SetRange stores the range as given. Callers keep start <= end.
func (m *Machine) SetRange(start, end int) {
	m.rng = Range{Start: start, End: end}
}

// SetYear stores the year as given; clamping happens only on Load.
func (m *Machine) SetYear(year int) {
	m.year = year
}

func (m *Machine) State() State { return m.state }
func (m *Machine) Range() Range { return m.rng }
func (m *Machine) Year() int    { return m.year }

// Bounds returns the year bounds of the loaded data.
func (m *Machine) Bounds() (int, int) { return m.min, m.max }

// Window returns the representation that drives views of category c.
func (m *Machine) Window(c view.Category) Window {
	switch c {
	case view.TrendCategory:
		return NewRange(m.rng.Start, m.rng.End)
	case view.SnapshotCategory:
		return NewSingle(m.year)
	}
	panic(fmt.Sprintf("timewindow: unhandled category %d", int(c)))
}

// Advance moves the animation cursor one year forward for category c. Past
// the upper bound the window is left untouched and Exhausted is returned.
func (m *Machine) Advance(c view.Category) Step {
	if m.state == Uninitialized {
		return Exhausted
	}
	switch c {
	case view.TrendCategory:
		if m.rng.End+1 > m.max {
			return Exhausted
		}
		m.rng.End++
		return Advanced
	case view.SnapshotCategory:
		if m.year+1 > m.max {
			return Exhausted
		}
		m.year++
		return Advanced
	}
	panic(fmt.Sprintf("timewindow: unhandled category %d", int(c)))
}
