package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/popviz/logging"
	"github.com/andareed/popviz/projection"
	"github.com/andareed/popviz/timewindow"
)

type tableMode int

const (
	tableSimple tableMode = iota
	tableComplete
)

func (t tableMode) String() string {
	if t == tableComplete {
		return "complete"
	}
	return "simple"
}

var rowsPerPageOptions = []int{10, 25, 50, 100}

// tableState is the data table's own view state. Its year range starts at
// the chart's range and is then independent of it.
type tableState struct {
	mode       tableMode
	sortCol    int
	dir        projection.Direction
	pager      paginator.Model
	perPageIdx int
	rng        timewindow.Range
	seeded     bool
}

func newTableState() tableState {
	p := paginator.New()
	p.Type = paginator.Arabic
	p.PerPage = rowsPerPageOptions[0]
	t := tableState{pager: p}
	t.resetSort()
	return t
}

// resetSort goes back to country name, A to Z, in either mode.
func (t *tableState) resetSort() {
	t.sortCol = 0
	t.dir = projection.Asc
}

func (t *tableState) seed(r timewindow.Range) {
	if t.seeded {
		return
	}
	t.rng = r
	t.seeded = true
}

// clampTo keeps the table range inside the data bounds after a reload.
func (t *tableState) clampTo(lo, hi int) {
	start := timewindow.Clamp(t.rng.Start, lo, hi)
	end := timewindow.Clamp(t.rng.End, lo, hi)
	t.rng = timewindow.Range{Start: start, End: end}
}

// tableYears are the years with data inside the table range.
func (m *model) tableYears() []int {
	var years []int
	for _, y := range m.dash.Years() {
		if m.table.rng.Contains(y) {
			years = append(years, y)
		}
	}
	return years
}

// visibleYears are the complete-mode year columns that fit in width, the
// latest years first to go in.
func (m *model) visibleYears(width int) []int {
	years := m.tableYears()
	n := completeYearsFitting(width)
	if len(years) > n {
		years = years[len(years)-n:]
	}
	return years
}

func (m *model) tableColumns(width int) []ColumnMeta {
	if m.table.mode == tableComplete {
		return completeColumns(m.visibleYears(width))
	}
	return simpleColumns(m.table.rng.Start, m.table.rng.End)
}

// sortKey resolves the sort column. A column index of -1 or one past the
// end falls back to the last sortable column.
func (m *model) sortKey(cols []ColumnMeta) (projection.SortKey, int) {
	var sortable []int
	for i, c := range cols {
		if c.Sortable {
			sortable = append(sortable, i)
		}
	}
	if len(sortable) == 0 {
		return projection.SortKey{Field: projection.ByName}, -1
	}
	idx := m.table.sortCol
	if idx < 0 || idx >= len(sortable) {
		idx = len(sortable) - 1
	}
	return cols[sortable[idx]].Key, sortable[idx]
}

func (m *model) tableSummaries() []projection.TableSummary {
	rows := projection.Summarize(m.dash.TableData(), m.table.rng)
	by, _ := m.sortKey(m.tableColumns(m.panelWidth()))
	projection.SortSummaries(rows, by, m.table.dir)
	return rows
}

func (m *model) handleTableKey(msg tea.KeyMsg) tea.Cmd {
	t := &m.table
	switch {
	case key.Matches(msg, Keys.SortNext):
		cols := m.tableColumns(m.panelWidth())
		_, cur := m.sortKey(cols)
		n := 0
		for _, c := range cols {
			if c.Sortable {
				n++
			}
		}
		pos := 0
		for i := range cols[:max(0, cur)] {
			if cols[i].Sortable {
				pos++
			}
		}
		t.sortCol = (pos + 1) % max(1, n)
		t.pager.Page = 0
	case key.Matches(msg, Keys.SortReverse):
		if t.dir == projection.Asc {
			t.dir = projection.Desc
		} else {
			t.dir = projection.Asc
		}
	case key.Matches(msg, Keys.TableMode):
		if t.mode == tableSimple {
			t.mode = tableComplete
		} else {
			t.mode = tableSimple
		}
		t.resetSort()
	case key.Matches(msg, Keys.NextPage):
		t.pager.NextPage()
	case key.Matches(msg, Keys.PrevPage):
		t.pager.PrevPage()
	case key.Matches(msg, Keys.PerPage):
		t.perPageIdx = (t.perPageIdx + 1) % len(rowsPerPageOptions)
		t.pager.PerPage = rowsPerPageOptions[t.perPageIdx]
		t.pager.Page = 0
	case key.Matches(msg, Keys.YearsBack):
		m.shiftTableYears(-1)
	case key.Matches(msg, Keys.YearsFwd):
		m.shiftTableYears(1)
	case key.Matches(msg, Keys.YearsReset):
		if m.dash.Loaded() {
			t.rng = m.dash.Range()
		}
	default:
		return nil
	}
	logging.Debugf("table: mode=%s sort=%d dir=%d page=%d per=%d years=%s",
		t.mode, t.sortCol, t.dir, t.pager.Page, t.pager.PerPage, t.rng)
	m.refreshView("table")
	return nil
}

func (m *model) shiftTableYears(delta int) {
	if !m.dash.Loaded() {
		return
	}
	lo, hi := m.dash.Bounds()
	start, end := shiftRange(m.table.rng.Start, m.table.rng.End, delta, lo, hi)
	m.table.rng = timewindow.Range{Start: start, End: end}
}

func (m *model) tableContent(width int) string {
	if !m.dash.Loaded() {
		return dimStyle.Render("No data.")
	}
	rows := m.tableSummaries()
	cols := layoutColumns(m.tableColumns(width), width)
	by, sortIdx := m.sortKey(cols)

	m.table.pager.SetTotalPages(len(rows))
	if m.table.pager.Page >= m.table.pager.TotalPages {
		m.table.pager.Page = max(0, m.table.pager.TotalPages-1)
	}
	start, end := m.table.pager.GetSliceBounds(len(rows))

	title := fmt.Sprintf("Data table · %s · %s · sort %s %s · page %s · %d/page",
		m.table.mode, m.table.rng, by, m.table.dir.Arrow(), m.table.pager.View(), m.table.pager.PerPage)

	header := tableRow{}
	for i, c := range cols {
		label := c.Title
		if i == sortIdx {
			label += " " + m.table.dir.Arrow()
		}
		header.cols = append(header.cols, label)
	}

	lines := []string{
		headerStyle.Render(truncatePlain(title, width)),
		headerStyle.Render(header.Render(cellStyle, cols)),
	}
	years := m.visibleYears(width)
	sparkW := 0
	if len(cols) > 0 {
		sparkW = max(1, cols[len(cols)-1].Width-cellStyle.GetHorizontalPadding())
	}
	for i := start; i < end; i++ {
		var r tableRow
		if m.table.mode == tableComplete {
			r = completeRow(rows[i], years)
		} else {
			r = summaryRow(rows[i], sparkW)
		}
		style := rowStyle
		if i%2 == 1 {
			style = dimStyle
		}
		lines = append(lines, style.Render(r.Render(cellStyle, cols)))
	}
	if len(rows) == 0 {
		lines = append(lines, dimStyle.Render("No rows."))
	}
	return strings.Join(lines, "\n")
}
