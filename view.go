package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"

	"github.com/andareed/popviz/logging"
	"github.com/andareed/popviz/projection"
	"github.com/andareed/popviz/registry"
	"github.com/andareed/popviz/view"
)

const (
	tabsHeight   = 1
	footerHeight = 2
	// appstyle margins plus the panel borders
	chromeWidth  = 4 + 2
	chromeHeight = 2 + 2
)

// resize lays the panels out for the current terminal size.
func (m *model) resize() {
	if m.terminalWidth <= 0 || m.terminalHeight <= 0 {
		return
	}
	if !m.ready {
		m.chartPort = viewport.New(m.panelWidth(), m.bodyHeight())
		m.ready = true
	}
	m.refreshView("resize")
}

func (m *model) contentWidth() int {
	return max(0, m.terminalWidth-4)
}

func (m *model) bodyHeight() int {
	h := m.terminalHeight - chromeHeight - tabsHeight - footerHeight
	if m.ui.timeWindow.open {
		h -= timeWindowDrawerHeight
	}
	return max(3, h)
}

func (m *model) panelWidth() int {
	return max(10, m.terminalWidth-chromeWidth-sidebarWidth-2)
}

// sidebarRows is the number of countries the sidebar shows at once, after
// its two header lines.
func (m *model) sidebarRows() int {
	return max(1, m.bodyHeight()-2)
}

func (m *model) refreshView(reason string) {
	logging.Debugf("refreshView: %s", reason)
	if !m.ready {
		return
	}
	w, h := m.panelWidth(), m.bodyHeight()
	if m.chartPort.Width != w || m.chartPort.Height != h {
		m.chartPort.Width = w
		m.chartPort.Height = h
	}
	if m.ui.focus == focusTable {
		m.chartPort.SetContent(m.tableContent(w))
		return
	}
	m.chartPort.SetContent(m.chartContent(w))
}

func (m *model) chartContent(width int) string {
	switch {
	case m.dash.Loaded():
		return renderChartPanel(m.dash.Frame(), width)
	case m.data.loading:
		return dimStyle.Render(fmt.Sprintf("Loading data from %s…", m.data.source))
	case m.data.loadErr != nil:
		return "Could not load data:\n\n" + m.data.loadErr.Error() +
			"\n\n" + dimStyle.Render("Start a server with: popviz serve --data <file>")
	}
	return dimStyle.Render("No data.")
}

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		w, h := m.terminalWidth, m.terminalHeight
		return lipgloss.Place(
			w, h,
			lipgloss.Center, lipgloss.Center,
			m.activeDialog.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceBackground(lipgloss.Color("236")),
		)
	}

	contentW := m.contentWidth()
	sidebar := m.sidebarView()
	panel := panelStyle.Render(m.chartPort.View())
	if m.ui.focus == focusTable {
		panel = panelFocusedStyle.Render(m.chartPort.View())
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, panel)

	parts := []string{m.tabsView(contentW), body}
	if m.ui.timeWindow.open {
		parts = append(parts, m.timeWindowDrawerView(contentW))
	}
	parts = append(parts, m.footerView(contentW)) // always
	return appstyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m *model) tabsView(width int) string {
	var tabs []string
	for i, k := range view.All() {
		label := fmt.Sprintf("%d %s", i+1, k.Title())
		if k == m.dash.View() {
			tabs = append(tabs, tabActiveStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	left := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	title := ""
	if m.dash.Loaded() {
		title = m.dash.Frame().Title()
	}
	right := titleStyle.Render(title)
	gap := max(0, width-lipgloss.Width(left)-lipgloss.Width(right))
	return left + strings.Repeat(" ", gap) + right
}

func (m *model) sidebarView() string {
	innerW := sidebarWidth
	rows := m.sidebarRows()
	mode := m.dash.View().SidebarMode()

	header := mode.Description()
	switch mode {
	case view.Select:
		header += fmt.Sprintf(" (%d)", m.dash.SelectedCount())
	case view.Labels:
		header += fmt.Sprintf(" (%d)", m.dash.LabelCount())
	}
	search := ""
	if m.ui.searchQuery != "" {
		search = fmt.Sprintf("/%s  %d match", m.ui.searchQuery, len(m.data.visible))
	}
	lines := []string{
		headerStyle.Render(truncatePlain(header, innerW)),
		dimStyle.Render(truncatePlain(search, innerW)),
	}

	m.ensureCursorVisible(rows)
	end := min(len(m.data.visible), m.ui.sidebarOffset+rows)
	for i := m.ui.sidebarOffset; i < end; i++ {
		c := m.data.countries[m.data.visible[i]]
		lines = append(lines, m.sidebarRow(c, i == m.ui.cursor, innerW))
	}

	style := panelStyle
	if m.ui.focus == focusSidebar {
		style = panelFocusedStyle
	}
	return style.Width(innerW).Height(rows + 2).Render(strings.Join(lines, "\n"))
}

func (m *model) ensureCursorVisible(rows int) {
	if m.ui.cursor < m.ui.sidebarOffset {
		m.ui.sidebarOffset = m.ui.cursor
	}
	if m.ui.cursor >= m.ui.sidebarOffset+rows {
		m.ui.sidebarOffset = m.ui.cursor - rows + 1
	}
	m.ui.sidebarOffset = clamp(m.ui.sidebarOffset, 0, max(0, len(m.data.visible)-rows))
}

// sidebarRow renders "[x] ■ #12 Name        1.4B".
func (m *model) sidebarRow(c registry.Country, selected bool, width int) string {
	check := "[ ]"
	if m.dash.Checked(c.Code) {
		check = "[x]"
	}
	rank := "    "
	if c.Rank != nil {
		rank = fmt.Sprintf("#%-3d", *c.Rank)
	}
	pop := fmt.Sprintf("%6s", projection.FormatPopulation(c.LatestPopulation))

	nameW := max(4, width-3-1-1-1-len(rank)-1-len(pop)-1)
	name := highlightMatches(c.Name, m.ui.searchQuery)
	name = truncate.StringWithTail(name, uint(nameW), "…")
	name += strings.Repeat(" ", max(0, nameW-lipgloss.Width(name)))

	rowPrefix := bgSeq(lipgloss.Color("")) + fgSeq(lipgloss.Color(rowTextFGColor))
	if selected && m.ui.focus == focusSidebar {
		rowPrefix = bgSeq(lipgloss.Color(rowSelectedBGColor)) + fgSeq(lipgloss.Color(rowSelectedTextFGColor))
	}
	rowSuffix := termenv.CSI + "0m"

	// the swatch and any highlight reset the row colors; restore them after
	line := fmt.Sprintf("%s %s %s %s %s", check, swatch(m.dash.ColorFor(c.Code)), rank, name, pop)
	line = restoreRowStyleAfterReset(line, rowPrefix)
	line = restoreRowStyleAfterFG(line, rowPrefix)
	line += strings.Repeat(" ", max(0, width-lipgloss.Width(line)))
	return rowPrefix + line + rowSuffix
}

func (m *model) footerView(width int) string {
	styles := DefaultFooterStyles()

	modeInput := ""
	if m.ui.mode == modeCommand {
		modeInput = m.activeCommandLine()
	}

	total := len(m.data.countries)
	st := FooterState{
		Mode:      m.modeLabel(),
		ModeInput: modeInput,
		View:      m.dash.View().Title(),
		Window:    "n/a",
		Playing:   m.dash.Playing(),
		Selected:  m.dash.SelectedCount(),
		Total:     total,
		Legend:    "(? help · 1-4 views · / search · t time · p play · T table · x export · ^r reload)",
	}
	if m.data.source != nil {
		st.Source = m.data.source.String()
	}
	if m.dash.Loaded() {
		st.Window = m.dash.Window().String()
	}
	if m.ui.mode == modeCommand {
		st.Legend = m.commandHintsLine(m.ui.command.cmd)
	}
	if m.ui.noticeMsg != "" {
		st.StatusMessage = noticeText(m.ui.noticeMsg, m.ui.noticeType)
	}
	if st.StatusMessage == "" {
		st.StatusMessage = m.timeWindowStatusLabel()
	}

	if logging.IsDebugMode() {
		debug := fmt.Sprintf(" dbg term=%dx%d vp=%dx%d cur=%d off=%d vis=%d",
			m.terminalWidth, m.terminalHeight, m.chartPort.Width, m.chartPort.Height,
			m.ui.cursor, m.ui.sidebarOffset, len(m.data.visible),
		)
		st.Legend = st.Legend + " |" + debug
	}

	return RenderFooter(width, st, styles)
}

func restoreRowStyleAfterReset(s string, rowPrefix string) string {
	if rowPrefix == "" {
		return s
	}
	reset := termenv.CSI + "0m"
	if !strings.Contains(s, reset) {
		return s
	}
	return strings.ReplaceAll(s, reset, reset+rowPrefix)
}

// restoreRowStyleAfterFG puts the row colors back after a swatch resets the
// foreground to the terminal default.
func restoreRowStyleAfterFG(s string, rowPrefix string) string {
	if rowPrefix == "" {
		return s
	}
	def := fgSeq(lipgloss.Color(""))
	return strings.ReplaceAll(s, def, def+rowPrefix)
}

func fgSeq(c lipgloss.Color) string {
	return colorSeq(c, false)
}

func bgSeq(c lipgloss.Color) string {
	return colorSeq(c, true)
}

func colorSeq(c lipgloss.Color, bg bool) string {
	value := string(c)
	if value == "" {
		if bg {
			return termenv.CSI + "49m"
		}
		return termenv.CSI + "39m"
	}
	profile := lipgloss.ColorProfile()
	tc := profile.Color(value)
	if tc == nil {
		return ""
	}
	return termenv.CSI + tc.Sequence(bg) + "m"
}
