package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/popviz/animation"
	"github.com/andareed/popviz/clipboard"
	"github.com/andareed/popviz/dashboard"
	"github.com/andareed/popviz/dialogs"
	"github.com/andareed/popviz/export"
	"github.com/andareed/popviz/fetch"
	"github.com/andareed/popviz/logging"
	"github.com/andareed/popviz/projection"
	"github.com/andareed/popviz/view"
)

type model struct {
	dash  *dashboard.Composer
	data  dataState
	ui    uiState
	table tableState

	chartPort    viewport.Model
	activeDialog dialogs.Dialog
	boundaries   []byte
	lastDir      string

	terminalWidth  int
	terminalHeight int
	ready          bool
}

func newModel(src fetch.Source, opts dashboard.Options) *model {
	return &model{
		dash:  dashboard.New(opts),
		data:  dataState{source: src, loading: src != nil},
		table: newTableState(),
		ui: uiState{
			timeWindow: newTimeWindowUI(),
		},
	}
}

func (m *model) Init() tea.Cmd {
	log.Println("popviz: Initialised")
	if m.data.source == nil {
		return nil
	}
	return fetchCmd(m.data.source)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.WindowSizeMsg:
		m.terminalWidth = msg.Width
		m.terminalHeight = msg.Height
		m.resize()
		return m, nil
	case loadedMsg:
		return m, m.handleLoaded(msg)
	case loadErrMsg:
		m.data.loading = false
		m.data.loadErr = msg.err
		return m, m.startNotice(fmt.Sprintf("Load failed: %v", msg.err), noticeError, errorNoticeDuration)
	case animation.TickMsg:
		cmd := m.dash.HandleTick(msg)
		m.refreshView("tick")
		return m, cmd
	case clearNoticeMsg:
		m.clearNotice(msg.id)
		return m, nil
	case dialogs.ExportConfirmedMsg:
		m.activeDialog = nil
		m.lastDir = filepath.Dir(msg.Path)
		return m, m.exportCmd(msg.Path)
	case dialogs.ExportCanceledMsg:
		m.activeDialog = nil
		return m, nil
	case dialogs.ExportOKMsg:
		return m, m.startNotice("Exported to "+msg.Path, noticeSuccess, noticeDuration)
	case dialogs.ExportErrorMsg:
		return m, m.startNotice(msg.Err.Error(), noticeError, errorNoticeDuration)
	}

	if m.activeDialog != nil {
		d, cmd := m.activeDialog.Update(msg)
		m.activeDialog = d
		return m, cmd
	}
	return m, nil
}

func (m *model) handleLoaded(msg loadedMsg) tea.Cmd {
	m.data.loading = false
	m.data.loadErr = nil
	m.dash.Load(msg.ds)
	m.data.countries = m.dash.Countries()
	m.applyFilter()
	if m.dash.Loaded() {
		m.table.seed(m.dash.Range())
		m.table.clampTo(m.dash.Bounds())
	}
	m.refreshView("loaded")
	if !m.dash.Loaded() {
		return m.startNotice("Dataset has no population data", noticeWarn, errorNoticeDuration)
	}
	return m.startNotice(fmt.Sprintf("Loaded %d countries", len(m.data.countries)), noticeSuccess, noticeDuration)
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		d, cmd := m.activeDialog.Update(msg)
		m.activeDialog = d
		if !d.IsVisible() {
			m.activeDialog = nil
		}
		return m, cmd
	}

	switch m.ui.mode {
	case modeCommand:
		return m.handleCommandKey(msg)
	case modeTimeWindow:
		return m.handleTimeWindowKey(msg)
	}
	return m.handleViewModeKey(msg)
}

func (m *model) handleViewModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, Keys.NextView):
		m.setView(m.dash.View().Next())
		return m, nil
	case key.Matches(msg, Keys.LineView):
		m.setView(view.Trend)
		return m, nil
	case key.Matches(msg, Keys.PieView):
		m.setView(view.Pie)
		return m, nil
	case key.Matches(msg, Keys.BarView):
		m.setView(view.Bar)
		return m, nil
	case key.Matches(msg, Keys.MapView):
		m.setView(view.Map)
		return m, nil
	case key.Matches(msg, Keys.Play):
		return m, m.togglePlay()
	case key.Matches(msg, Keys.TimeWindow):
		m.openTimeWindowDrawer()
		return m, nil
	case key.Matches(msg, Keys.Table):
		m.toggleTableFocus()
		return m, nil
	case key.Matches(msg, Keys.Search, Keys.Jump):
		if len(msg.Runes) == 1 {
			m.enterCommandMode(CommandFromPrefix(msg.Runes[0]))
		}
		return m, nil
	case key.Matches(msg, Keys.ExportFile):
		return m, m.openExportDialog()
	case key.Matches(msg, Keys.CopyFrame):
		return m, m.copyFrame()
	case key.Matches(msg, Keys.Reload):
		return m, m.reload()
	case key.Matches(msg, Keys.OpenHelp):
		m.activeDialog = dialogs.NewHelpDialog(Keys.Legend())
		return m, nil
	case key.Matches(msg, Keys.ScrollDown):
		m.chartPort.SetYOffset(m.chartPort.YOffset + max(1, m.chartPort.Height/2))
		return m, nil
	case key.Matches(msg, Keys.ScrollUp):
		m.chartPort.SetYOffset(m.chartPort.YOffset - max(1, m.chartPort.Height/2))
		return m, nil
	}

	if m.ui.focus == focusTable {
		return m, m.handleTableKey(msg)
	}
	return m, m.handleSidebarKey(msg)
}

func (m *model) handleSidebarKey(msg tea.KeyMsg) tea.Cmd {
	n := len(m.data.visible)
	switch {
	case key.Matches(msg, Keys.RowDown):
		if m.ui.cursor < n-1 {
			m.ui.cursor++
		}
	case key.Matches(msg, Keys.RowUp):
		if m.ui.cursor > 0 {
			m.ui.cursor--
		}
	case key.Matches(msg, Keys.PageDown):
		m.ui.cursor = clamp(m.ui.cursor+m.sidebarRows(), 0, max(0, n-1))
	case key.Matches(msg, Keys.PageUp):
		m.ui.cursor = clamp(m.ui.cursor-m.sidebarRows(), 0, max(0, n-1))
	case key.Matches(msg, Keys.Top):
		m.jumpToStart()
	case key.Matches(msg, Keys.Bottom):
		m.jumpToEnd()
	case key.Matches(msg, Keys.Toggle):
		return m.toggleCurrent()
	}
	return nil
}

// reload refetches the dataset. The current data stays on screen until the
// new payload arrives, and a failed reload keeps it.
func (m *model) reload() tea.Cmd {
	if m.data.source == nil {
		return m.startNotice("No data source to reload", noticeWarn, noticeDuration)
	}
	if m.data.loading {
		return nil
	}
	m.data.loading = true
	m.refreshView("reload")
	return tea.Batch(
		fetchCmd(m.data.source),
		m.startNotice("Reloading from "+m.data.source.String(), noticeInfo, noticeDuration),
	)
}

func (m *model) setView(k view.Kind) {
	if k == m.dash.View() {
		return
	}
	m.dash.SetView(k)
	logging.Debugf("view -> %s (%s)", k, k.SidebarMode())
	m.chartPort.GotoTop()
	m.refreshView("view")
}

func (m *model) togglePlay() tea.Cmd {
	if !m.dash.Loaded() {
		return m.startNotice("No data loaded", noticeWarn, noticeDuration)
	}
	cmd := m.dash.TogglePlay()
	m.refreshView("play")
	return cmd
}

// currentCountry is the country under the sidebar cursor.
func (m *model) currentCountry() (string, string, bool) {
	if m.ui.cursor < 0 || m.ui.cursor >= len(m.data.visible) {
		return "", "", false
	}
	c := m.data.countries[m.data.visible[m.ui.cursor]]
	return c.Code, c.Name, true
}

func (m *model) toggleCurrent() tea.Cmd {
	code, name, ok := m.currentCountry()
	if !ok {
		return nil
	}
	res := m.dash.Toggle(code)
	if res.Target == dashboard.NoTarget {
		return m.startNotice("All countries are shown on the map", noticeInfo, noticeDuration)
	}
	logging.Debugf("toggle %s -> %s member=%v", code, res.Target, res.Member)
	m.refreshView("toggle")
	if res.Target == dashboard.LabelTarget {
		state := "hidden"
		if res.Member {
			state = "shown"
		}
		return m.startNotice(fmt.Sprintf("Label for %s %s", name, state), noticeInfo, noticeDuration)
	}
	return nil
}

func (m *model) toggleTableFocus() {
	if m.ui.focus == focusTable {
		m.ui.focus = focusSidebar
	} else {
		m.ui.focus = focusTable
	}
	m.chartPort.GotoTop()
	m.refreshView("table-focus")
}

func (m *model) openExportDialog() tea.Cmd {
	if !m.dash.Loaded() {
		return m.startNotice("No data loaded", noticeWarn, noticeDuration)
	}
	d := dialogs.NewExportDialog(m.defaultExportName(), m.lastDir)
	m.activeDialog = d
	return d.Focus()
}

func (m *model) defaultExportName() string {
	if m.ui.focus == focusTable {
		return "popviz-table.csv"
	}
	if m.dash.View() == view.Map {
		return "popviz-map.geojson"
	}
	return fmt.Sprintf("popviz-%s.png", m.dash.View())
}

func (m *model) exportRequest() export.Request {
	summaries := m.tableSummaries()
	rows := make([]projection.TableRow, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, s.TableRow)
	}
	values, _ := m.dash.MapData()
	return export.Request{
		Frame:      m.dash.Frame(),
		Rows:       rows,
		Years:      m.tableYears(),
		Boundaries: m.boundaries,
		MapValues:  values,
	}
}

// exportCmd renders off the update loop. The request is built up front so
// the command never touches the model.
func (m *model) exportCmd(path string) tea.Cmd {
	req := m.exportRequest()
	return func() tea.Msg {
		f, err := export.ToFile(path, req)
		if err != nil {
			logging.Errorf("export %s: %v", path, err)
			return dialogs.ExportErrorMsg{Err: err}
		}
		logging.Infof("exported %s as %s", path, f)
		return dialogs.ExportOKMsg{Path: path}
	}
}

func (m *model) copyFrame() tea.Cmd {
	frame := m.dash.Frame()
	if frame.Empty() {
		return m.startNotice("Nothing to copy", noticeWarn, noticeDuration)
	}
	text, err := export.FrameTSV(frame)
	if err != nil {
		return m.startNotice(err.Error(), noticeError, errorNoticeDuration)
	}
	if err := clipboard.Copy(text); err != nil {
		return m.startNotice("Copy failed: "+err.Error(), noticeError, errorNoticeDuration)
	}
	return m.startNotice("Copied "+frame.Title(), noticeSuccess, noticeDuration)
}
