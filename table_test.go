package main

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/andareed/popviz/projection"
	"github.com/andareed/popviz/timewindow"
)

func codes(rows []projection.TableSummary) []string {
	var out []string
	for _, r := range rows {
		out = append(out, r.Code)
	}
	return out
}

func TestTableSort(t *testing.T) {
	m := loadedModel(t)
	press(m, "T")
	if m.ui.focus != focusTable {
		t.Fatalf("T did not focus the table")
	}

	for _, test := range []struct {
		description string
		keys        []string
		want        []string
	}{
		{"default is name ascending", nil, []string{"CHN", "IND", "TUV"}},
		{"latest year, largest first", []string{"s", "s", "S"}, []string{"IND", "CHN", "TUV"}},
		{"next column is change", []string{"s"}, []string{"IND", "CHN", "TUV"}},
		{"reversed keeps missing values last", []string{"S"}, []string{"CHN", "IND", "TUV"}},
		{"wraps past name to the first year", []string{"s", "s", "s"}, []string{"TUV", "CHN", "IND"}},
	} {
		t.Run(test.description, func(t *testing.T) {
			press(m, test.keys...)
			if diff := cmp.Diff(test.want, codes(m.tableSummaries())); diff != "" {
				t.Errorf("order (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTableSortSkipsTrend(t *testing.T) {
	m := loadedModel(t)
	cols := simpleColumns(2000, 2005)
	m.table.sortCol = 4
	key, idx := m.sortKey(cols)
	if key.Field != projection.ByPercentChange || idx != 4 {
		t.Errorf("sortKey = %v at %d", key, idx)
	}
	if cols[5].Sortable {
		t.Errorf("trend column is sortable")
	}
}

func TestTableModeAndYears(t *testing.T) {
	m := loadedModel(t)
	press(m, "T", "S", "m")
	if m.table.mode != tableComplete {
		t.Fatalf("m did not switch to the complete table")
	}
	if m.table.sortCol != 0 || m.table.dir != projection.Asc {
		t.Errorf("mode switch kept sort %d/%d, want name ascending", m.table.sortCol, m.table.dir)
	}
	if !strings.Contains(m.tableContent(m.panelWidth()), "complete") {
		t.Errorf("title does not name the mode")
	}

	press(m, "<")
	if diff := cmp.Diff(timewindow.Range{Start: 1999, End: 2004}, m.table.rng); diff != "" {
		t.Errorf("shifted range (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(timewindow.Range{Start: 2000, End: 2005}, m.dash.Range()); diff != "" {
		t.Errorf("table years moved the chart window (-want +got):\n%s", diff)
	}
	press(m, "R")
	if diff := cmp.Diff(m.dash.Range(), m.table.rng); diff != "" {
		t.Errorf("reset (-want +got):\n%s", diff)
	}
}

func TestTablePerPage(t *testing.T) {
	m := loadedModel(t)
	press(m, "T")
	for _, want := range []int{25, 50, 100, 10} {
		press(m, "r")
		if m.table.pager.PerPage != want {
			t.Errorf("per page = %d, want %d", m.table.pager.PerPage, want)
		}
	}
	press(m, "]")
	if m.table.pager.Page != 0 {
		t.Errorf("paged past the only page")
	}
}

func TestVisibleYears(t *testing.T) {
	m := loadedModel(t)
	m.table.rng = timewindow.Range{Start: 1990, End: 2005}
	width := defaultMinWidthForRole(RolePrimary) + 3*defaultMinWidthForRole(RoleNormal)
	if diff := cmp.Diff([]int{2003, 2004, 2005}, m.visibleYears(width)); diff != "" {
		t.Errorf("years (-want +got):\n%s", diff)
	}
}

func TestLayoutColumns(t *testing.T) {
	cols := layoutColumns(simpleColumns(2000, 2005), 200)
	total := 0
	for _, c := range cols {
		if c.Width < c.MinWidth {
			t.Errorf("%s narrower than its minimum: %d", c.Title, c.Width)
		}
		total += c.Width
	}
	if total > 200 {
		t.Errorf("columns use %d cells of 200", total)
	}
}

func TestCompleteRowMissing(t *testing.T) {
	s := projection.TableSummary{TableRow: projection.TableRow{Name: "Tuvalu", ByYear: map[int]int64{2000: 9}}}
	r := completeRow(s, []int{2000, 2001})
	if diff := cmp.Diff([]string{"Tuvalu", "9", missingCell}, r.cols); diff != "" {
		t.Errorf("cols (-want +got):\n%s", diff)
	}
}
