package main

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/andareed/popviz/dashboard"
	"github.com/andareed/popviz/palette"
	"github.com/andareed/popviz/projection"
	"github.com/andareed/popviz/timewindow"
	"github.com/andareed/popviz/view"
)

const (
	panelNameWidth  = 18
	panelValueWidth = 8
	barRune         = "█"
)

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// swatch is a colored block for tok, written as raw sequences so it can sit
// inside a row that carries its own background.
func swatch(tok palette.Token) string {
	return fgSeq(lipgloss.Color(tok)) + swatchMarker + fgSeq(lipgloss.Color(""))
}

func colored(tok palette.Token, s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(tok)).Render(s)
}

// fitName truncates name with an ellipsis and pads it to w cells.
func fitName(name string, w int) string {
	return padRightPlain(truncate.StringWithTail(name, uint(w), "…"), w)
}

func renderChartPanel(f dashboard.Frame, width int) string {
	if f.Empty() {
		return dimStyle.Render(emptyPanelText(f))
	}
	switch f.Kind {
	case view.Trend:
		r, _ := f.Window.Range()
		return renderTrend(f.Trend, r, width)
	case view.Pie:
		return renderPie(f.Pie, width)
	case view.Bar:
		return renderBars(f.Bars, width)
	case view.Map:
		return renderMap(f.Map, f.MaxPopulation, width)
	}
	return ""
}

func emptyPanelText(f dashboard.Frame) string {
	switch f.Kind {
	case view.Trend:
		return "No countries selected. Press space on a country to add it."
	case view.Pie, view.Bar:
		return fmt.Sprintf("No data for the selected countries in %s.", f.Window)
	case view.Map:
		return fmt.Sprintf("No data for %s.", f.Window)
	}
	return ""
}

// sampleYears picks at most cols years spread evenly over r, always keeping
// both ends.
func sampleYears(r timewindow.Range, cols int) []int {
	n := r.End - r.Start + 1
	if n <= 0 || cols <= 0 {
		return nil
	}
	years := make([]int, 0, min(n, cols))
	if n <= cols {
		for y := r.Start; y <= r.End; y++ {
			years = append(years, y)
		}
		return years
	}
	if cols == 1 {
		return []int{r.End}
	}
	for i := 0; i < cols; i++ {
		years = append(years, r.Start+i*(n-1)/(cols-1))
	}
	return years
}

// sparkline scales each series to its own min and max. Years without a value
// are blank.
func sparkline(byYear map[int]int64, years []int) string {
	lo, hi := int64(math.MaxInt64), int64(math.MinInt64)
	for _, y := range years {
		if v, ok := byYear[y]; ok {
			lo = min(lo, v)
			hi = max(hi, v)
		}
	}
	var b strings.Builder
	for _, y := range years {
		v, ok := byYear[y]
		if !ok {
			b.WriteByte(' ')
			continue
		}
		level := 0
		if hi > lo {
			level = int(math.Round(float64(v-lo) / float64(hi-lo) * float64(len(sparkRunes)-1)))
		}
		b.WriteRune(sparkRunes[level])
	}
	return b.String()
}

func renderTrend(entries []projection.SeriesEntry, r timewindow.Range, width int) string {
	sparkW := max(4, width-panelNameWidth-panelValueWidth-4)
	years := sampleYears(r, sparkW)

	var lines []string
	axis := fmt.Sprintf("%d", r.Start)
	if len(years) > 1 {
		end := fmt.Sprintf("%d", r.End)
		axis = padRightPlain(axis, max(len(axis)+1, len(years)-len(end))) + end
	}
	lines = append(lines, strings.Repeat(" ", panelNameWidth+2)+dimStyle.Render(axis))

	for _, e := range entries {
		name := fitName(e.Name, panelNameWidth)
		if len(e.Points) == 0 {
			lines = append(lines, swatch(e.Color)+" "+name+dimStyle.Render("no data in range"))
			continue
		}
		byYear := make(map[int]int64, len(e.Points))
		for _, p := range e.Points {
			byYear[p.Year] = p.Population
		}
		last := e.Points[len(e.Points)-1]
		spark := colored(e.Color, sparkline(byYear, years))
		lines = append(lines, fmt.Sprintf("%s %s%s %*s",
			swatch(e.Color), name, spark, panelValueWidth, projection.FormatCount(last.Population)))
	}
	return strings.Join(lines, "\n")
}

func renderPie(slices []projection.PieSlice, width int) string {
	const pctW = 7
	barW := max(4, width-panelNameWidth-pctW-panelValueWidth-5)

	var lines []string
	for _, s := range slices {
		n := int(math.Round(s.Share / 100 * float64(barW)))
		n = clamp(n, 0, barW)
		bar := colored(s.Color, strings.Repeat(barRune, n)) + strings.Repeat(" ", barW-n)
		pct := strings.Repeat(" ", pctW)
		if s.ShowLabel {
			pct = fmt.Sprintf("%*s", pctW, fmt.Sprintf("%.1f%%", s.Share))
		}
		lines = append(lines, fmt.Sprintf("%s %s%s %s %*s",
			swatch(s.Color), fitName(s.Name, panelNameWidth), bar, pct, panelValueWidth, projection.FormatCount(s.Population)))
	}
	return strings.Join(lines, "\n")
}

func renderBars(values []projection.Value, width int) string {
	barW := max(4, width-panelNameWidth-panelValueWidth-4)
	top := projection.MaxPopulation(values)

	var lines []string
	for _, v := range values {
		n := 0
		if top > 0 {
			n = int(math.Round(float64(v.Population) / float64(top) * float64(barW)))
		}
		n = clamp(n, 0, barW)
		bar := colored(v.Color, strings.Repeat(barRune, n)) + strings.Repeat(" ", barW-n)
		lines = append(lines, fmt.Sprintf("%s %s%s %*s",
			swatch(v.Color), fitName(v.Name, panelNameWidth), bar, panelValueWidth, projection.FormatCount(v.Population)))
	}
	return strings.Join(lines, "\n")
}

// mapLegendSteps is the number of cells in the choropleth legend.
const mapLegendSteps = 10

func renderMap(values []projection.Value, maxPop int64, width int) string {
	sorted := make([]projection.Value, len(values))
	copy(sorted, values)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Population > sorted[j].Population
	})

	var legend strings.Builder
	legend.WriteString(dimStyle.Render("low "))
	for i := 0; i < mapLegendSteps; i++ {
		pop := maxPop * int64(i+1) / mapLegendSteps
		legend.WriteString(colored(palette.Choropleth(pop, maxPop), barRune))
	}
	legend.WriteString(dimStyle.Render(" high   no data ") + swatch(palette.NoData))

	lines := []string{legend.String(), ""}
	nameW := max(panelNameWidth, min(32, width-panelValueWidth-8))
	for i, v := range sorted {
		lines = append(lines, fmt.Sprintf("%4d %s %s %*s",
			i+1, swatch(v.Color), fitName(v.Name, nameW), panelValueWidth, projection.FormatCount(v.Population)))
	}
	return strings.Join(lines, "\n")
}
