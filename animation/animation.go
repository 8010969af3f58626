// Package animation drives playback: while playing, one advance step runs per
// tick until the step reports the window is exhausted.
package animation

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/popviz/timewindow"
)

// DefaultInterval is the tick period.
const DefaultInterval = 100 * time.Millisecond

// TickMsg is delivered once per interval. ID ties it to the Start that
// scheduled it.
type TickMsg struct {
	ID int
}

// Driver is a fixed-interval tick source. It must only be used from the
// bubbletea update loop.
type Driver struct {
	interval time.Duration
	playing  bool
	seq      int
}

// New returns a stopped driver. A non-positive interval uses DefaultInterval.
func New(interval time.Duration) *Driver {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Driver{interval: interval}
}

func (d *Driver) Playing() bool           { return d.playing }
func (d *Driver) Interval() time.Duration { return d.interval }

// Start begins playback and schedules the first tick.
func (d *Driver) Start() tea.Cmd {
	d.playing = true
	// bump sequence to invalidate older ticks
	d.seq++
	return d.schedule()
}

// Stop halts playback. Bubbletea ticks cannot be cancelled, so a tick already
// in flight carries an old id and is dropped by Handle.
func (d *Driver) Stop() {
	d.playing = false
	d.seq++
}

// Toggle starts a stopped driver or stops a playing one.
func (d *Driver) Toggle() tea.Cmd {
	if d.playing {
		d.Stop()
		return nil
	}
	return d.Start()
}

// Handle runs step for a current tick and schedules the next one. Stale ticks
// and ticks after Stop do nothing.
func (d *Driver) Handle(msg TickMsg, step func() timewindow.Step) tea.Cmd {
	if !d.playing || msg.ID != d.seq {
		return nil
	}
	switch step() {
	case timewindow.Exhausted:
		d.Stop()
		return nil
	case timewindow.Advanced:
		return d.schedule()
	}
	return nil
}

func (d *Driver) schedule() tea.Cmd {
	id := d.seq
	return tea.Tick(d.interval, func(time.Time) tea.Msg { return TickMsg{ID: id} })
}
