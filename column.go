package main

import (
	"strconv"

	"github.com/andareed/popviz/projection"
)

type ColumnRole int

const (
	RoleNormal  ColumnRole = iota
	RolePrimary            // country name
	RoleTrend
)

type ColumnMeta struct {
	Title    string
	Role     ColumnRole
	Sortable bool
	Key      projection.SortKey
	Right    bool
	MinWidth int
	Weight   float64
	Width    int
}

func defaultMinWidthForRole(r ColumnRole) int {
	switch r {
	case RolePrimary:
		return 18
	case RoleTrend:
		return 12
	default:
		return 9
	}
}

func defaultWeightForRole(r ColumnRole) float64 {
	switch r {
	case RolePrimary:
		return 3.0
	case RoleTrend:
		return 2.0
	default:
		return 1.0
	}
}

func newColumn(title string, role ColumnRole) ColumnMeta {
	return ColumnMeta{
		Title:    title,
		Role:     role,
		Right:    role == RoleNormal,
		MinWidth: defaultMinWidthForRole(role),
		Weight:   defaultWeightForRole(role),
	}
}

func sortColumn(title string, key projection.SortKey) ColumnMeta {
	role := RoleNormal
	if key.Field == projection.ByName {
		role = RolePrimary
	}
	c := newColumn(title, role)
	c.Sortable = true
	c.Key = key
	return c
}

// simpleColumns compare each country at both ends of the table's years.
func simpleColumns(first, last int) []ColumnMeta {
	return []ColumnMeta{
		sortColumn("Country", projection.SortKey{Field: projection.ByName}),
		sortColumn(strconv.Itoa(first), projection.SortKey{Field: projection.ByFirst}),
		sortColumn(strconv.Itoa(last), projection.SortKey{Field: projection.ByLast}),
		sortColumn("Change", projection.SortKey{Field: projection.ByChange}),
		sortColumn("% Change", projection.SortKey{Field: projection.ByPercentChange}),
		newColumn("Trend", RoleTrend),
	}
}

// completeColumns have one column per year.
func completeColumns(years []int) []ColumnMeta {
	cols := []ColumnMeta{sortColumn("Country", projection.SortKey{Field: projection.ByName})}
	for _, y := range years {
		cols = append(cols, sortColumn(strconv.Itoa(y), projection.SortKey{Field: projection.ByYear, Year: y}))
	}
	return cols
}

// completeYearsFitting is how many year columns fit next to the name column.
func completeYearsFitting(totalWidth int) int {
	avail := totalWidth - defaultMinWidthForRole(RolePrimary)
	return max(1, avail/defaultMinWidthForRole(RoleNormal))
}

func layoutColumns(cols []ColumnMeta, totalWidth int) []ColumnMeta {
	if totalWidth <= 0 {
		return cols
	}

	// 1. Sum min widths & weights
	minSum := 0
	weightSum := 0.0
	for i := range cols {
		minSum += cols[i].MinWidth
		weightSum += cols[i].Weight
	}

	if minSum >= totalWidth {
		// Too tight: just give each column its MinWidth clamped
		for i := range cols {
			cols[i].Width = min(cols[i].MinWidth, totalWidth)
		}
		return cols
	}

	remaining := totalWidth - minSum

	// 2. Distribute remaining space by weight
	for i := range cols {
		extra := 0
		if weightSum > 0 {
			extra = int(float64(remaining) * (cols[i].Weight / weightSum))
		}
		cols[i].Width = cols[i].MinWidth + extra
	}

	return cols
}
