package main

import (
	"strings"

	"github.com/andareed/popviz/logging"
	"github.com/andareed/popviz/registry"
)

func (m *model) setSearchQuery(query string) {
	logging.Debugf("Setting search query to: %q", query)
	m.ui.searchQuery = query
	m.applyFilter()
}

// region Filtering

// includeCountry matches the search query against name or code, ignoring
// case. The search only narrows the sidebar; selections are untouched.
func (m *model) includeCountry(c registry.Country) bool {
	q := strings.ToLower(strings.TrimSpace(m.ui.searchQuery))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Name), q) ||
		strings.Contains(strings.ToLower(c.Code), q)
}

func (m *model) applyFilter() {
	m.data.visible = m.data.visible[:0]
	for i, c := range m.data.countries {
		if m.includeCountry(c) {
			m.data.visible = append(m.data.visible, i)
		}
	}
	if m.ui.cursor >= len(m.data.visible) {
		m.ui.cursor = max(0, len(m.data.visible)-1)
	}
	m.ui.sidebarOffset = 0
	logging.Debugf("applyFilter: %d/%d countries visible", len(m.data.visible), len(m.data.countries))
}

// endregion
