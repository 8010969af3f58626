package dashboard

import (
	"fmt"

	"github.com/andareed/popviz/palette"
	"github.com/andareed/popviz/projection"
	"github.com/andareed/popviz/timewindow"
	"github.com/andareed/popviz/view"
)

// Frame is everything a renderer needs to draw the active view once. Only the
// field matching Kind is populated.
type Frame struct {
	Kind   view.Kind
	Window timewindow.Window

	Trend []projection.SeriesEntry
	Pie   []projection.PieSlice
	Bars  []projection.Value
	Map   []projection.Value

	// MaxPopulation scales the map gradient.
	MaxPopulation int64
}

// Empty reports whether the frame has nothing to draw.
func (f Frame) Empty() bool {
	switch f.Kind {
	case view.Trend:
		return len(f.Trend) == 0
	case view.Pie:
		return len(f.Pie) == 0
	case view.Bar:
		return len(f.Bars) == 0
	case view.Map:
		return len(f.Map) == 0
	}
	return true
}

// Title is a heading for the frame, such as "Population Share 2023".
func (f Frame) Title() string {
	var heading string
	switch f.Kind {
	case view.Trend:
		heading = "Population Over Time"
	case view.Pie:
		heading = "Population Share"
	case view.Bar:
		heading = "Population Comparison"
	case view.Map:
		heading = "Population Map"
	}
	return fmt.Sprintf("%s %s", heading, f.Window)
}

func (c *Composer) key(k view.Kind, w fmt.Stringer, codes ...[]string) projection.Key {
	return projection.NewKey(c.gen, k, w, codes...)
}

// TrendData is the trend projection over the range window, colored.
func (c *Composer) TrendData() []projection.SeriesEntry {
	if !c.Loaded() {
		return nil
	}
	r := c.window.Range()
	v := c.cache.Get(c.key(view.Trend, r, c.chart.Codes()), func() any {
		entries := projection.Trend(c.ds, c.chart, r)
		for i := range entries {
			entries[i].Color = c.colors.ColorFor(entries[i].Code)
		}
		return entries
	})
	return v.([]projection.SeriesEntry)
}

func (c *Composer) snapshot(k view.Kind) []projection.Value {
	year := c.window.Year()
	v := c.cache.Get(c.key(k, timewindow.NewSingle(year), c.chart.Codes()), func() any {
		values := projection.Snapshot(c.ds, c.chart, year)
		for i := range values {
			values[i].Color = c.colors.ColorFor(values[i].Code)
		}
		return values
	})
	return v.([]projection.Value)
}

// PieData is the pie projection at the single year. Labels come from the
// label set, never the chart set.
func (c *Composer) PieData() []projection.PieSlice {
	if !c.Loaded() {
		return nil
	}
	year := c.window.Year()
	v := c.cache.Get(c.key(view.Pie, timewindow.NewSingle(year), c.chart.Codes(), c.labels.Codes()), func() any {
		return projection.PieSlices(c.snapshot(view.Pie), c.labels, projection.MaxPieSlices)
	})
	return v.([]projection.PieSlice)
}

// BarData is the bar projection at the single year in stable bar order.
func (c *Composer) BarData() []projection.Value {
	if !c.Loaded() {
		return nil
	}
	return c.bars.Apply(c.snapshot(view.Bar))
}

// MapData covers every country at the single year, colored by the
// choropleth gradient.
func (c *Composer) MapData() ([]projection.Value, int64) {
	if !c.Loaded() {
		return nil, 0
	}
	year := c.window.Year()
	v := c.cache.Get(c.key(view.Map, timewindow.NewSingle(year)), func() any {
		values := projection.Map(c.ds, year)
		maxPop := projection.MaxPopulation(values)
		for i := range values {
			values[i].Color = palette.Choropleth(values[i].Population, maxPop)
		}
		return values
	})
	values := v.([]projection.Value)
	return values, projection.MaxPopulation(values)
}

// TableData is every country's full series, regardless of selection.
func (c *Composer) TableData() []projection.TableRow {
	if !c.Loaded() {
		return nil
	}
	v := c.cache.Get(c.key(view.Trend, tableWindow{}), func() any {
		return projection.Table(c.ds)
	})
	return v.([]projection.TableRow)
}

// Years lists every year with data.
func (c *Composer) Years() []int {
	if !c.Loaded() {
		return nil
	}
	return projection.Years(c.ds)
}

type tableWindow struct{}

func (tableWindow) String() string { return "table" }

// Frame projects the active view.
func (c *Composer) Frame() Frame {
	f := Frame{Kind: c.active, Window: c.Window()}
	switch c.active {
	case view.Trend:
		f.Trend = c.TrendData()
	case view.Pie:
		f.Pie = c.PieData()
	case view.Bar:
		f.Bars = c.BarData()
	case view.Map:
		f.Map, f.MaxPopulation = c.MapData()
	}
	return f
}
