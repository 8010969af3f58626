package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/andareed/popviz/projection"
	"github.com/andareed/popviz/timewindow"
)

const missingCell = "—"

type tableRow struct {
	cols []string
}

func summaryRow(s projection.TableSummary, sparkWidth int) tableRow {
	return tableRow{cols: []string{
		s.Name,
		projection.FormatPopulation(s.First),
		projection.FormatPopulation(s.Last),
		projection.FormatChange(s.Change),
		projection.FormatPercentChange(s.PercentChange),
		sparkOf(s.Spark, sparkWidth),
	}}
}

func completeRow(s projection.TableSummary, years []int) tableRow {
	cols := []string{s.Name}
	for _, y := range years {
		if v, ok := s.ByYear[y]; ok {
			cols = append(cols, projection.FormatCount(v))
		} else {
			cols = append(cols, missingCell)
		}
	}
	return tableRow{cols: cols}
}

// sparkOf draws values in order, sampled down to width cells.
func sparkOf(values []int64, width int) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}
	byIndex := make(map[int]int64, len(values))
	for i, v := range values {
		byIndex[i] = v
	}
	return sparkline(byIndex, sampleYears(timewindow.Range{Start: 0, End: len(values) - 1}, width))
}

func (r *tableRow) Join(sep string) string {
	return strings.Join(r.cols, sep)
}

// String implements fmt.Stringer with tab-separated cells.
func (r *tableRow) String() string {
	return r.Join("\t")
}

func (r *tableRow) Render(style lipgloss.Style, colsMeta []ColumnMeta) string {
	var rendered []string

	for i, text := range r.cols {
		if i >= len(colsMeta) {
			break
		}
		meta := colsMeta[i]
		if meta.Width <= 0 {
			continue
		}

		inner := max(0, meta.Width-style.GetHorizontalPadding())
		text = truncate.StringWithTail(text, uint(inner), "…")
		st := style.Width(meta.Width)
		if meta.Right {
			st = st.Align(lipgloss.Right)
		}
		rendered = append(rendered, st.Render(text))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
