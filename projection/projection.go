// Package projection shapes the loaded population table into what each view
// draws. Every function here is pure: the same inputs give equal outputs, and
// countries without data contribute nothing instead of failing.
package projection

import (
	"sort"

	"github.com/andareed/popviz/palette"
	"github.com/andareed/popviz/registry"
	"github.com/andareed/popviz/selection"
	"github.com/andareed/popviz/timewindow"
)

// SeriesEntry is one line of the trend chart. Color is filled in by the
// caller, which owns the palette.
type SeriesEntry struct {
	Code   string
	Name   string
	Color  palette.Token
	Points []registry.Point
}

// Value is one country's population in a single year.
type Value struct {
	Code       string
	Name       string
	Population int64
	Color      palette.Token
}

// TableRow is a country's full series keyed by year.
type TableRow struct {
	Code   string
	Name   string
	ByYear map[int]int64
}

// Trend returns one entry per selected country in registry order, with points
// limited to r. A country with no points in r still gets an entry.
func Trend(ds *registry.Dataset, sel *selection.Set, r timewindow.Range) []SeriesEntry {
	if ds == nil {
		return nil
	}
	var out []SeriesEntry
	for _, c := range ds.Countries {
		if !sel.Has(c.Code) {
			continue
		}
		pts := []registry.Point{}
		for _, p := range ds.Series[c.Code] {
			if r.Contains(p.Year) {
				pts = append(pts, p)
			}
		}
		out = append(out, SeriesEntry{Code: c.Code, Name: c.Name, Points: pts})
	}
	return out
}

// Snapshot returns the value at exactly year for each selected country in
// registry order. Countries without that exact year are omitted.
func Snapshot(ds *registry.Dataset, sel *selection.Set, year int) []Value {
	if ds == nil {
		return nil
	}
	var out []Value
	for _, c := range ds.Countries {
		if !sel.Has(c.Code) {
			continue
		}
		if pop, ok := ds.Value(c.Code, year); ok {
			out = append(out, Value{Code: c.Code, Name: c.Name, Population: pop})
		}
	}
	return out
}

// Map is Snapshot over every country; selection does not filter the map.
func Map(ds *registry.Dataset, year int) []Value {
	if ds == nil {
		return nil
	}
	var out []Value
	for _, c := range ds.Countries {
		if pop, ok := ds.Value(c.Code, year); ok {
			out = append(out, Value{Code: c.Code, Name: c.Name, Population: pop})
		}
	}
	return out
}

// Table reshapes every country's full series, independent of selection and
// window.
func Table(ds *registry.Dataset) []TableRow {
	if ds == nil {
		return nil
	}
	out := make([]TableRow, 0, len(ds.Countries))
	for _, c := range ds.Countries {
		pts := ds.Series[c.Code]
		row := TableRow{Code: c.Code, Name: c.Name, ByYear: make(map[int]int64, len(pts))}
		for _, p := range pts {
			row.ByYear[p.Year] = p.Population
		}
		out = append(out, row)
	}
	return out
}

// Years lists every year present in the dataset, ascending.
func Years(ds *registry.Dataset) []int {
	if ds == nil {
		return nil
	}
	seen := make(map[int]bool)
	for _, pts := range ds.Series {
		for _, p := range pts {
			seen[p.Year] = true
		}
	}
	out := make([]int, 0, len(seen))
	for y := range seen {
		out = append(out, y)
	}
	sort.Ints(out)
	return out
}

// MaxPopulation is the largest population in values, or 0.
func MaxPopulation(values []Value) int64 {
	var m int64
	for _, v := range values {
		if v.Population > m {
			m = v.Population
		}
	}
	return m
}
