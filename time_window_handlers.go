package main

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/popviz/timewindow"
	"github.com/andareed/popviz/view"
)

func (m *model) openTimeWindowDrawer() {
	tw := &m.ui.timeWindow
	tw.open = true
	tw.errorMsg = ""
	tw.category = m.dash.View().Category()
	m.dash.StopPlay()

	if !m.dash.Loaded() {
		tw.errorMsg = "No data loaded"
		tw.startInput.SetValue("")
		tw.endInput.SetValue("")
		tw.draftStart, tw.draftEnd = 0, 0
		m.setTimeWindowFocus(timeWindowFocusStart)
		m.ui.mode = modeTimeWindow
		m.refreshView("time-window-open")
		return
	}

	switch tw.category {
	case view.TrendCategory:
		r := m.dash.Range()
		tw.draftStart, tw.draftEnd = r.Start, r.End
	case view.SnapshotCategory:
		tw.draftStart = m.dash.Year()
		tw.draftEnd = tw.draftStart
	}

	m.updateTimeWindowInputsFromDraft()
	m.setTimeWindowFocus(timeWindowFocusStart)
	m.ui.mode = modeTimeWindow
	m.refreshView("time-window-open")
}

func (m *model) closeTimeWindowDrawer() {
	m.ui.timeWindow.open = false
	m.ui.timeWindow.errorMsg = ""
	m.ui.mode = modeView
	m.refreshView("time-window-close")
}

func (m *model) handleTimeWindowKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tw := &m.ui.timeWindow
	onScrubber := tw.focus == timeWindowFocusScrubber

	switch {
	case msg.Type == tea.KeyEsc:
		m.closeTimeWindowDrawer()
		return m, nil
	case msg.Type == tea.KeyEnter:
		m.applyTimeWindowFromInputs()
		return m, nil
	case msg.String() == "r":
		m.resetTimeWindowDraft()
		return m, nil
	case msg.Type == tea.KeyTab:
		m.cycleTimeWindowFocus(1)
		return m, nil
	case msg.Type == tea.KeyShiftTab:
		m.cycleTimeWindowFocus(-1)
		return m, nil
	case onScrubber && msg.Type == tea.KeyLeft:
		m.shiftTimeWindow(-m.timeWindowStep())
		return m, nil
	case onScrubber && msg.Type == tea.KeyRight:
		m.shiftTimeWindow(m.timeWindowStep())
		return m, nil
	case onScrubber && msg.Type == tea.KeyShiftLeft:
		m.expandTimeWindow(-m.timeWindowStep())
		return m, nil
	case onScrubber && msg.Type == tea.KeyShiftRight:
		m.expandTimeWindow(m.timeWindowStep())
		return m, nil
	case onScrubber && msg.String() == "-":
		m.adjustTimeWindowStep(false)
		return m, nil
	case onScrubber && (msg.String() == "+" || msg.String() == "="):
		m.adjustTimeWindowStep(true)
		return m, nil
	}

	var cmd tea.Cmd
	if tw.focus == timeWindowFocusStart {
		tw.startInput, cmd = tw.startInput.Update(msg)
		return m, cmd
	}
	if tw.focus == timeWindowFocusEnd {
		tw.endInput, cmd = tw.endInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// timeWindowFocusOrder lists the focusable rows. Snapshot views have no end
// input.
func (m *model) timeWindowFocusOrder() []int {
	if m.ui.timeWindow.category == view.SnapshotCategory {
		return []int{timeWindowFocusStart, timeWindowFocusScrubber}
	}
	return []int{timeWindowFocusStart, timeWindowFocusEnd, timeWindowFocusScrubber}
}

func (m *model) cycleTimeWindowFocus(dir int) {
	order := m.timeWindowFocusOrder()
	pos := 0
	for i, f := range order {
		if f == m.ui.timeWindow.focus {
			pos = i
		}
	}
	pos = (pos + dir + len(order)) % len(order)
	m.setTimeWindowFocus(order[pos])
}

func (m *model) setTimeWindowFocus(focus int) {
	tw := &m.ui.timeWindow
	tw.focus = focus
	switch focus {
	case timeWindowFocusStart:
		tw.startInput.Focus()
		tw.endInput.Blur()
	case timeWindowFocusEnd:
		tw.startInput.Blur()
		tw.endInput.Focus()
	default:
		tw.startInput.Blur()
		tw.endInput.Blur()
	}
}

func (m *model) updateTimeWindowInputsFromDraft() {
	tw := &m.ui.timeWindow
	tw.startInput.SetValue(strconv.Itoa(tw.draftStart))
	tw.endInput.SetValue(strconv.Itoa(tw.draftEnd))
}

func (m *model) syncDraftFromInputs() {
	tw := &m.ui.timeWindow
	if y, ok := parseYear(tw.startInput.Value()); ok {
		tw.draftStart = y
	}
	if y, ok := parseYear(tw.endInput.Value()); ok {
		tw.draftEnd = y
	}
	if tw.category == view.SnapshotCategory {
		tw.draftEnd = tw.draftStart
	}
}

func (m *model) resetTimeWindowDraft() {
	tw := &m.ui.timeWindow
	tw.errorMsg = ""

	if !m.dash.Loaded() {
		tw.errorMsg = "No data loaded"
		return
	}

	min, max := m.dash.Bounds()
	switch tw.category {
	case view.TrendCategory:
		tw.draftStart, tw.draftEnd = defaultWindowBounds(min, max)
	case view.SnapshotCategory:
		tw.draftStart, tw.draftEnd = max, max
	}
	m.updateTimeWindowInputsFromDraft()
}

func (m *model) applyTimeWindowFromInputs() {
	tw := &m.ui.timeWindow
	tw.errorMsg = ""

	if !m.dash.Loaded() {
		tw.errorMsg = "No data loaded"
		return
	}
	min, max := m.dash.Bounds()

	start, ok := parseYear(tw.startInput.Value())
	if !ok {
		if tw.category == view.SnapshotCategory {
			tw.errorMsg = "Invalid year"
		} else {
			tw.errorMsg = "Invalid start year"
		}
		return
	}

	if tw.category == view.SnapshotCategory {
		year := timewindow.Clamp(start, min, max)
		m.dash.SetYear(year)
		tw.draftStart, tw.draftEnd = year, year
		m.closeTimeWindowDrawer()
		return
	}

	end, ok := parseYear(tw.endInput.Value())
	if !ok {
		tw.errorMsg = "Invalid end year"
		return
	}
	if start > end {
		tw.errorMsg = "Start is after end"
		return
	}
	start = timewindow.Clamp(start, min, max)
	end = timewindow.Clamp(end, min, max)
	m.dash.SetRange(start, end)
	tw.draftStart, tw.draftEnd = start, end
	m.closeTimeWindowDrawer()
}

func (m *model) shiftTimeWindow(delta int) {
	tw := &m.ui.timeWindow
	tw.errorMsg = ""

	if !m.dash.Loaded() {
		tw.errorMsg = "No data loaded"
		return
	}

	m.syncDraftFromInputs()
	min, max := m.dash.Bounds()
	if tw.category == view.SnapshotCategory {
		y := timewindow.Clamp(tw.draftStart+delta, min, max)
		tw.draftStart, tw.draftEnd = y, y
	} else {
		tw.draftStart, tw.draftEnd = shiftRange(tw.draftStart, tw.draftEnd, delta, min, max)
	}
	m.updateTimeWindowInputsFromDraft()
}

func (m *model) expandTimeWindow(delta int) {
	tw := &m.ui.timeWindow
	tw.errorMsg = ""

	if !m.dash.Loaded() {
		tw.errorMsg = "No data loaded"
		return
	}
	if tw.category == view.SnapshotCategory {
		m.shiftTimeWindow(delta)
		return
	}

	m.syncDraftFromInputs()
	min, max := m.dash.Bounds()
	tw.draftStart, tw.draftEnd = expandRange(tw.draftStart, tw.draftEnd, delta, min, max)
	m.updateTimeWindowInputsFromDraft()
}

func (m *model) timeWindowStep() int {
	idx := clamp(m.ui.timeWindow.stepIdx, 0, len(timeWindowSteps)-1)
	return timeWindowSteps[idx]
}

func (m *model) adjustTimeWindowStep(increase bool) {
	idx := m.ui.timeWindow.stepIdx
	if increase {
		idx++
	} else {
		idx--
	}
	m.ui.timeWindow.stepIdx = clamp(idx, 0, len(timeWindowSteps)-1)
}

func formatStep(step int) string {
	if step == 1 {
		return "1 year"
	}
	return fmt.Sprintf("%d years", step)
}

func (m *model) timeWindowDrawerView(width int) string {
	tw := &m.ui.timeWindow
	innerWidth := max(0, width-2)
	lineStyle := lipgloss.NewStyle().Width(innerWidth)

	var startLine, endLine string
	if tw.category == view.SnapshotCategory {
		startLine = fmt.Sprintf("Year:  %s", tw.startInput.View())
	} else {
		startLine = fmt.Sprintf("Start: %s", tw.startInput.View())
		endLine = fmt.Sprintf("End:   %s", tw.endInput.View())
	}
	scrubberLine := m.timeWindowScrubberLine(innerWidth)
	if tw.focus == timeWindowFocusScrubber {
		scrubberLine = rowSelectedStyle.Render(scrubberLine)
	}
	helpLine := fmt.Sprintf("tab: next  enter: apply  r: reset  esc: cancel  ←/→: move %s  -/+: step",
		formatStep(m.timeWindowStep()),
	)
	if tw.category == view.TrendCategory {
		helpLine += "  shift+←/→: widen"
	}
	errorLine := ""
	if tw.errorMsg != "" {
		errorLine = "Error: " + tw.errorMsg
	}

	lines := []string{
		lineStyle.Render(startLine),
		lineStyle.Render(endLine),
		lineStyle.Render(scrubberLine),
		lineStyle.Render(helpLine),
		lineStyle.Render(errorLine),
	}

	content := strings.Join(lines, "\n")
	return timeWindowArea.Width(width).Render(content)
}

func (m *model) timeWindowScrubberLine(width int) string {
	if !m.dash.Loaded() {
		return "Scrubber: n/a"
	}
	tw := &m.ui.timeWindow
	min, max := m.dash.Bounds()
	start, end := tw.draftStart, tw.draftEnd

	minLabel := strconv.Itoa(min)
	maxLabel := strconv.Itoa(max)
	padding := 2
	barWidth := width - len(minLabel) - len(maxLabel) - padding*2
	if barWidth < 10 {
		return "Window: " + m.draftLabel()
	}
	return fmt.Sprintf("%s  %s  %s", minLabel, scrubberBar(barWidth, min, max, start, end), maxLabel)
}

// scrubberBar draws [start, end] on a bar spanning [min, max]. A single year
// is drawn as one marker.
func scrubberBar(width, min, max, start, end int) string {
	bar := []rune(strings.Repeat("-", width))
	pos := func(year int) int {
		if max <= min {
			return 0
		}
		year = timewindow.Clamp(year, min, max)
		return (year - min) * (width - 1) / (max - min)
	}
	startPos, endPos := pos(start), pos(end)
	if endPos < startPos {
		startPos, endPos = endPos, startPos
	}
	if start == end {
		bar[startPos] = '|'
		return string(bar)
	}
	for i := startPos; i <= endPos; i++ {
		bar[i] = '='
	}
	bar[startPos] = '['
	bar[endPos] = ']'
	return string(bar)
}

func (m *model) draftLabel() string {
	tw := &m.ui.timeWindow
	if tw.category == view.SnapshotCategory {
		return strconv.Itoa(tw.draftStart)
	}
	return fmt.Sprintf("%d-%d", tw.draftStart, tw.draftEnd)
}

func (m *model) timeWindowStatusLabel() string {
	if !m.dash.Loaded() {
		return "Window: n/a"
	}
	return "Window: " + m.dash.Window().String()
}
