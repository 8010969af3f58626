// Package dashboard composes the registry, palette, time window, selections
// and animation driver into the state behind every view. It has a single
// owner, the bubbletea model, and is never touched concurrently.
package dashboard

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/popviz/animation"
	"github.com/andareed/popviz/logging"
	"github.com/andareed/popviz/palette"
	"github.com/andareed/popviz/projection"
	"github.com/andareed/popviz/registry"
	"github.com/andareed/popviz/selection"
	"github.com/andareed/popviz/timewindow"
	"github.com/andareed/popviz/view"
)

// Options configures a Composer. Zero values pick the defaults.
type Options struct {
	Interval  time.Duration
	TopN      int
	BarCount  int
	CacheSize int
}

// Target names which selection set a toggle went to.
type Target int

const (
	NoTarget Target = iota
	ChartTarget
	LabelTarget
)

func (t Target) String() string {
	switch t {
	case ChartTarget:
		return "chart"
	case LabelTarget:
		return "labels"
	}
	return "none"
}

// ToggleResult reports the effect of Toggle.
type ToggleResult struct {
	Target Target
	Member bool
}

type Composer struct {
	ds  *registry.Dataset
	gen int

	colors *palette.Assigner
	window *timewindow.Machine
	chart  *selection.Set
	labels *selection.Set
	active view.Kind
	driver *animation.Driver
	bars   *projection.BarOrder
	cache  *projection.Cache

	topN         int
	autoSelected bool
}

// New returns a composer with no data. Every projection is empty until Load.
func New(opts Options) *Composer {
	if opts.TopN <= 0 {
		opts.TopN = selection.DefaultTopN
	}
	cache, err := projection.NewCache(opts.CacheSize)
	if err != nil {
		// Only a non-positive size fails, and NewCache substitutes a default.
		logging.Warnf("projection cache disabled: %v", err)
	}
	return &Composer{
		colors: palette.New(),
		window: timewindow.New(),
		chart:  &selection.Set{},
		labels: &selection.Set{},
		active: view.Trend,
		driver: animation.New(opts.Interval),
		bars:   projection.NewBarOrder(opts.BarCount),
		cache:  cache,
		topN:   opts.TopN,
	}
}

// Load installs a freshly fetched dataset. The palette is reset only when it
// replaces an earlier dataset, and auto-selection happens once.
func (c *Composer) Load(ds *registry.Dataset) {
	if c.ds != nil {
		c.colors.Reset()
	}
	c.ds = ds
	c.gen++
	c.cache.Purge()
	c.bars.Reset()

	min, max, ok := ds.Bounds()
	if !ok {
		logging.Warnf("dataset has no population points; staying uninitialized")
		return
	}
	c.window.Load(min, max)
	if !c.autoSelected {
		c.chart = selection.AutoSelect(ds.Countries, c.topN)
		c.autoSelected = true
	}
	logging.Infof("loaded %d countries, years %d-%d, %d auto-selected",
		len(ds.Countries), min, max, c.chart.Len())
}

// Loaded reports whether the time window has been initialized.
func (c *Composer) Loaded() bool {
	return c.window.State() == timewindow.Initialized
}

func (c *Composer) Dataset() *registry.Dataset { return c.ds }
func (c *Composer) Countries() []registry.Country {
	if c.ds == nil {
		return nil
	}
	return c.ds.Countries
}

func (c *Composer) View() view.Kind { return c.active }

// SetView switches the active view. Playback never continues across views.
func (c *Composer) SetView(k view.Kind) {
	c.driver.Stop()
	c.active = k
}

// Mode is the sidebar mode of the active view.
func (c *Composer) Mode() view.SidebarMode {
	return c.active.SidebarMode()
}

// Toggle flips code in the set the active view edits. The view is read at
// call time, so the last view switch wins.
func (c *Composer) Toggle(code string) ToggleResult {
	switch c.Mode() {
	case view.Select:
		return ToggleResult{Target: ChartTarget, Member: c.chart.Toggle(code)}
	case view.Labels:
		return ToggleResult{Target: LabelTarget, Member: c.labels.Toggle(code)}
	case view.Disabled:
		return ToggleResult{Target: NoTarget}
	}
	return ToggleResult{Target: NoTarget}
}

// Checked is the sidebar checkmark for code in the active view.
func (c *Composer) Checked(code string) bool {
	switch c.Mode() {
	case view.Select:
		return c.chart.Has(code)
	case view.Labels:
		return c.labels.Has(code)
	case view.Disabled:
		return true
	}
	return false
}

// Selected reports chart inclusion whatever the active view.
func (c *Composer) Selected(code string) bool { return c.chart.Has(code) }

// SelectedCount is the number of countries included in charts.
func (c *Composer) SelectedCount() int { return c.chart.Len() }

// LabelCount is the number of countries with pie labels on.
func (c *Composer) LabelCount() int { return c.labels.Len() }

func (c *Composer) SetRange(start, end int) { c.window.SetRange(start, end) }
func (c *Composer) SetYear(year int)        { c.window.SetYear(year) }
func (c *Composer) Range() timewindow.Range { return c.window.Range() }
func (c *Composer) Year() int               { return c.window.Year() }

// Bounds is the available year span of the loaded data.
func (c *Composer) Bounds() (int, int) { return c.window.Bounds() }

// Window is the time window driving the active view.
func (c *Composer) Window() timewindow.Window {
	return c.window.Window(c.active.Category())
}

func (c *Composer) Playing() bool { return c.driver.Playing() }

// TogglePlay starts or stops playback. Nothing plays before data is loaded.
func (c *Composer) TogglePlay() tea.Cmd {
	if !c.Loaded() {
		return nil
	}
	return c.driver.Toggle()
}

// StopPlay halts playback if running.
func (c *Composer) StopPlay() {
	if c.driver.Playing() {
		c.driver.Stop()
	}
}

// HandleTick advances the active view's window by one year.
func (c *Composer) HandleTick(msg animation.TickMsg) tea.Cmd {
	return c.driver.Handle(msg, func() timewindow.Step {
		return c.window.Advance(c.active.Category())
	})
}

// ColorFor is the session color of code.
func (c *Composer) ColorFor(code string) palette.Token {
	return c.colors.ColorFor(code)
}
