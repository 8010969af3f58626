// Package view enumerates the dashboard chart views and the behaviour each
// one implies for the time window and the country sidebar.
package view

import (
	"fmt"
	"strings"
)

// Kind is one of the chart views.
type Kind int

const (
	Trend Kind = iota
	Pie
	Bar
	Map
)

// All returns the views in tab order.
func All() []Kind {
	return []Kind{Trend, Pie, Bar, Map}
}

func (k Kind) String() string {
	switch k {
	case Trend:
		return "line"
	case Pie:
		return "pie"
	case Bar:
		return "bar"
	case Map:
		return "map"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Title is the tab label.
func (k Kind) Title() string {
	switch k {
	case Trend:
		return "Line"
	case Pie:
		return "Pie"
	case Bar:
		return "Bar"
	case Map:
		return "Map"
	}
	return k.String()
}

// Parse accepts the lower-case names produced by String.
func Parse(s string) (Kind, error) {
	for _, k := range All() {
		if strings.EqualFold(strings.TrimSpace(s), k.String()) {
			return k, nil
		}
	}
	return Trend, fmt.Errorf("unknown view %q", s)
}

// Next cycles to the following tab.
func (k Kind) Next() Kind {
	all := All()
	return all[(int(k)+1)%len(all)]
}

// Category splits views by which time representation drives them.
type Category int

const (
	// TrendCategory views use a [start, end] year range.
	TrendCategory Category = iota
	// SnapshotCategory views use a single year.
	SnapshotCategory
)

func (c Category) String() string {
	switch c {
	case TrendCategory:
		return "trend"
	case SnapshotCategory:
		return "snapshot"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

func (k Kind) Category() Category {
	switch k {
	case Trend:
		return TrendCategory
	case Pie, Bar, Map:
		return SnapshotCategory
	}
	panic(fmt.Sprintf("view: unhandled kind %d", int(k)))
}

// SidebarMode decides what a click in the country list means.
type SidebarMode int

const (
	// Select toggles inclusion in the chart.
	Select SidebarMode = iota
	// Labels toggles value labels (pie only).
	Labels
	// Disabled ignores clicks; every country is shown.
	Disabled
)

func (m SidebarMode) String() string {
	switch m {
	case Select:
		return "select"
	case Labels:
		return "labels"
	case Disabled:
		return "disabled"
	}
	return fmt.Sprintf("SidebarMode(%d)", int(m))
}

// Description is the sidebar header hint.
func (m SidebarMode) Description() string {
	switch m {
	case Select:
		return "Select countries to display"
	case Labels:
		return "Toggle percentage labels"
	case Disabled:
		return "Showing all countries"
	}
	return ""
}

func (k Kind) SidebarMode() SidebarMode {
	switch k {
	case Trend, Bar:
		return Select
	case Pie:
		return Labels
	case Map:
		return Disabled
	}
	panic(fmt.Sprintf("view: unhandled kind %d", int(k)))
}
