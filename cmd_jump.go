package main

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/popviz/logging"
)

func (m *model) jumpToStart() {
	if len(m.data.visible) == 0 {
		return
	}
	m.ui.cursor = 0
}

func (m *model) jumpToEnd() {
	if len(m.data.visible) == 0 {
		return
	}
	m.ui.cursor = len(m.data.visible) - 1
}

// jumpTo moves the sidebar cursor to a rank number or an ISO code. A country
// hidden by the search clears the search first.
func (m *model) jumpTo(target string) tea.Cmd {
	target = strings.TrimSpace(target)
	logging.Debugf("jumpTo %q", target)
	if target == "" {
		return nil
	}
	rank, rankErr := strconv.Atoi(target)
	idx := -1
	for i, c := range m.data.countries {
		if rankErr == nil && c.Rank != nil && *c.Rank == rank {
			idx = i
			break
		}
		if rankErr != nil && strings.EqualFold(c.Code, target) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return m.startNotice(fmt.Sprintf("No country %q", target), noticeWarn, noticeDuration)
	}
	for pass := 0; pass < 2; pass++ {
		for i, v := range m.data.visible {
			if v == idx {
				m.ui.cursor = i
				return nil
			}
		}
		m.setSearchQuery("")
	}
	return nil
}
