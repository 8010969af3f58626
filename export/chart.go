package export

import (
	"io"
	"strconv"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/andareed/popviz/dashboard"
	"github.com/andareed/popviz/palette"
	"github.com/andareed/popviz/projection"
	"github.com/andareed/popviz/view"
)

const (
	chartWidth  = 1024
	chartHeight = 576
)

func colorOf(tok palette.Token) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(string(tok), "#"))
}

func yearFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return strconv.Itoa(int(f))
	}
	return ""
}

func populationFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return projection.FormatCount(int64(f))
	}
	return ""
}

// ChartPNG renders the frame's chart. The map has no chart form; use
// MapGeoJSON for it.
func ChartPNG(w io.Writer, f dashboard.Frame) error {
	if f.Empty() {
		return ErrNothingToRender
	}
	switch f.Kind {
	case view.Trend:
		return lineChart(w, f)
	case view.Pie:
		return pieChart(w, f)
	case view.Bar:
		return barChart(w, f)
	case view.Map:
		return ErrUnsupportedView
	}
	return ErrUnsupportedView
}

func lineChart(w io.Writer, f dashboard.Frame) error {
	var series []chart.Series
	for _, e := range f.Trend {
		if len(e.Points) == 0 {
			continue
		}
		xs := make([]float64, 0, len(e.Points)+1)
		ys := make([]float64, 0, len(e.Points)+1)
		for _, p := range e.Points {
			xs = append(xs, float64(p.Year))
			ys = append(ys, float64(p.Population))
		}
		// go-chart needs two X values per series.
		if len(xs) == 1 {
			xs = append(xs, xs[0]+1)
			ys = append(ys, ys[0])
		}
		col := colorOf(e.Color)
		series = append(series, chart.ContinuousSeries{
			Name:    e.Name,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: col,
				StrokeWidth: 2,
				DotColor:    col,
				DotWidth:    2,
			},
		})
	}
	if len(series) == 0 {
		return ErrNothingToRender
	}
	ch := chart.Chart{
		Title:      f.Title(),
		Width:      chartWidth,
		Height:     chartHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 16}},
		XAxis:      chart.XAxis{ValueFormatter: yearFormatter},
		YAxis:      chart.YAxis{ValueFormatter: populationFormatter},
		Series:     series,
	}
	ch.Elements = []chart.Renderable{chart.LegendLeft(&ch)}
	return ch.Render(chart.PNG, w)
}

func pieChart(w io.Writer, f dashboard.Frame) error {
	values := make([]chart.Value, 0, len(f.Pie))
	for _, s := range f.Pie {
		if s.Population <= 0 {
			continue
		}
		label := s.Name
		if s.ShowLabel {
			label = label + " " + strconv.FormatFloat(s.Share, 'f', 1, 64) + "%"
		}
		values = append(values, chart.Value{
			Label: label,
			Value: float64(s.Population),
			Style: chart.Style{FillColor: colorOf(s.Color), StrokeColor: drawing.ColorWhite, StrokeWidth: 2},
		})
	}
	if len(values) == 0 {
		return ErrNothingToRender
	}
	pc := chart.PieChart{
		Title:  f.Title(),
		Width:  chartHeight,
		Height: chartHeight,
		Values: values,
	}
	return pc.Render(chart.PNG, w)
}

func barChart(w io.Writer, f dashboard.Frame) error {
	bars := make([]chart.Value, 0, len(f.Bars))
	var top float64
	for _, v := range f.Bars {
		pop := float64(v.Population)
		if pop > top {
			top = pop
		}
		bars = append(bars, chart.Value{
			Label: v.Name,
			Value: pop,
			Style: chart.Style{FillColor: colorOf(v.Color), StrokeColor: colorOf(v.Color)},
		})
	}
	if top <= 0 {
		return ErrNothingToRender
	}
	bc := chart.BarChart{
		Title:      f.Title(),
		Width:      chartWidth,
		Height:     chartHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40, Bottom: 40}},
		BarWidth:   max(8, chartWidth/(2*len(bars)+1)),
		YAxis: chart.YAxis{
			Range:          &chart.ContinuousRange{Min: 0, Max: top * 1.1},
			ValueFormatter: populationFormatter,
		},
		Bars: bars,
	}
	return bc.Render(chart.PNG, w)
}
