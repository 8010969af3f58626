package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/andareed/popviz/dashboard"
	"github.com/andareed/popviz/dialogs"
	"github.com/andareed/popviz/registry"
	"github.com/andareed/popviz/timewindow"
	"github.com/andareed/popviz/view"
)

func rank(n int) *int { return &n }

// testDataset has two ranked countries with data for 1990-2005 and an
// unranked one whose data stops in 2000.
func testDataset() *registry.Dataset {
	countries := []registry.Country{
		{Code: "CHN", Name: "China", Rank: rank(1)},
		{Code: "IND", Name: "India", Rank: rank(2)},
		{Code: "TUV", Name: "Tuvalu"},
	}
	series := registry.Series{}
	for y := 1990; y <= 2005; y++ {
		series["CHN"] = append(series["CHN"], registry.Point{Year: y, Population: int64(1000 + (y-1990)*10)})
		series["IND"] = append(series["IND"], registry.Point{Year: y, Population: int64(900 + (y-1990)*20)})
		if y <= 2000 {
			series["TUV"] = append(series["TUV"], registry.Point{Year: y, Population: 9})
		}
	}
	return registry.NewDataset(countries, series)
}

// staticSource serves a fixed dataset.
type staticSource struct{ ds *registry.Dataset }

func (s staticSource) Fetch(context.Context) (*registry.Dataset, error) { return s.ds, nil }
func (s staticSource) String() string                                   { return "static" }

// narrowDataset covers 1990-1994 only, so a reload clamps a 2000-2005 window.
func narrowDataset() *registry.Dataset {
	countries := []registry.Country{
		{Code: "CHN", Name: "China", Rank: rank(1)},
		{Code: "IND", Name: "India", Rank: rank(2)},
	}
	series := registry.Series{}
	for y := 1990; y <= 1994; y++ {
		series["CHN"] = append(series["CHN"], registry.Point{Year: y, Population: int64(1000 + y)})
		series["IND"] = append(series["IND"], registry.Point{Year: y, Population: int64(900 + y)})
	}
	return registry.NewDataset(countries, series)
}

func loadedModel(t *testing.T) *model {
	t.Helper()
	m := newModel(nil, dashboard.Options{Interval: time.Millisecond})
	m.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	m.Update(loadedMsg{ds: testDataset()})
	if !m.dash.Loaded() {
		t.Fatalf("dataset did not load")
	}
	return m
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "f5":
		return tea.KeyMsg{Type: tea.KeyF5}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(m *model, keys ...string) {
	for _, k := range keys {
		m.Update(keyMsg(k))
	}
}

func typeText(m *model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestLoad(t *testing.T) {
	m := loadedModel(t)
	if got := m.dash.SelectedCount(); got != 2 {
		t.Errorf("auto-selected %d countries, want the 2 ranked ones", got)
	}
	if diff := cmp.Diff(timewindow.Range{Start: 2000, End: 2005}, m.table.rng); diff != "" {
		t.Errorf("table range (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 1, 2}, m.data.visible); diff != "" {
		t.Errorf("visible (-want +got):\n%s", diff)
	}
	if !strings.Contains(m.View(), "China") {
		t.Errorf("sidebar does not list China")
	}
}

func TestViewKeys(t *testing.T) {
	m := loadedModel(t)
	for _, test := range []struct {
		key  string
		want view.Kind
	}{
		{"3", view.Bar},
		{"tab", view.Map},
		{"tab", view.Trend},
		{"2", view.Pie},
		{"1", view.Trend},
	} {
		press(m, test.key)
		if got := m.dash.View(); got != test.want {
			t.Errorf("after %q view = %s, want %s", test.key, got, test.want)
		}
	}
}

func TestToggle(t *testing.T) {
	m := loadedModel(t)
	press(m, "space")
	if m.dash.Selected("CHN") {
		t.Errorf("space did not remove China from the chart")
	}
	press(m, "j", "j", "space")
	if !m.dash.Selected("TUV") {
		t.Errorf("space did not add Tuvalu")
	}

	press(m, "4", "space")
	if got := m.dash.SelectedCount(); got != 2 {
		t.Errorf("toggle on the map changed the selection to %d", got)
	}
	if !strings.Contains(m.ui.noticeMsg, "All countries") {
		t.Errorf("toggle on the map notice = %q", m.ui.noticeMsg)
	}
}

func TestSearch(t *testing.T) {
	m := loadedModel(t)
	press(m, "/")
	typeText(m, "ind")
	if diff := cmp.Diff([]int{1}, m.data.visible); diff != "" {
		t.Errorf("live search visible (-want +got):\n%s", diff)
	}
	press(m, "enter")
	if m.ui.mode != modeView || m.ui.searchQuery != "ind" {
		t.Errorf("enter: mode=%v query=%q", m.ui.mode, m.ui.searchQuery)
	}

	press(m, "/", "esc")
	if m.ui.searchQuery != "" || len(m.data.visible) != 3 {
		t.Errorf("esc did not clear the search: %q %v", m.ui.searchQuery, m.data.visible)
	}
}

func TestJump(t *testing.T) {
	m := loadedModel(t)
	m.setSearchQuery("chi")

	press(m, ":")
	typeText(m, "tuv")
	press(m, "enter")
	if m.ui.searchQuery != "" {
		t.Errorf("jump to a hidden country kept the search %q", m.ui.searchQuery)
	}
	if code, _, _ := m.currentCountry(); code != "TUV" {
		t.Errorf("cursor on %s, want TUV", code)
	}

	press(m, ":")
	typeText(m, "2")
	press(m, "enter")
	if code, _, _ := m.currentCountry(); code != "IND" {
		t.Errorf("jump by rank landed on %s, want IND", code)
	}

	press(m, ":")
	typeText(m, "XXX")
	press(m, "enter")
	if !strings.Contains(m.ui.noticeMsg, "No country") {
		t.Errorf("unknown jump notice = %q", m.ui.noticeMsg)
	}
}

func TestTimeWindowDrawer(t *testing.T) {
	m := loadedModel(t)
	press(m, "t")
	if m.ui.mode != modeTimeWindow || !m.ui.timeWindow.open {
		t.Fatalf("t did not open the drawer")
	}
	tw := &m.ui.timeWindow
	if tw.startInput.Value() != "2000" || tw.endInput.Value() != "2005" {
		t.Errorf("drafts = %q-%q, want 2000-2005", tw.startInput.Value(), tw.endInput.Value())
	}

	tw.startInput.SetValue("2003")
	tw.endInput.SetValue("1995")
	press(m, "enter")
	if tw.errorMsg != "Start is after end" || !tw.open {
		t.Errorf("inverted range: err=%q open=%v", tw.errorMsg, tw.open)
	}

	tw.startInput.SetValue("1980")
	tw.endInput.SetValue("1998")
	press(m, "enter")
	if tw.open || m.ui.mode != modeView {
		t.Fatalf("drawer still open: %q", tw.errorMsg)
	}
	if diff := cmp.Diff(timewindow.Range{Start: 1990, End: 1998}, m.dash.Range()); diff != "" {
		t.Errorf("range (-want +got):\n%s", diff)
	}
}

func TestTimeWindowSnapshot(t *testing.T) {
	m := loadedModel(t)
	press(m, "3", "t")
	tw := &m.ui.timeWindow
	if tw.startInput.Value() != "2005" {
		t.Errorf("snapshot draft = %q, want 2005", tw.startInput.Value())
	}
	press(m, "tab")
	if tw.focus != timeWindowFocusScrubber {
		t.Errorf("tab in a snapshot view should skip the end input, focus=%d", tw.focus)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	press(m, "enter")
	if got := m.dash.Year(); got != 2004 {
		t.Errorf("year = %d, want 2004", got)
	}
}

func TestPlayStopsOnDrawer(t *testing.T) {
	m := loadedModel(t)
	press(m, "p")
	if !m.dash.Playing() {
		t.Fatalf("p did not start playback")
	}
	press(m, "t")
	if m.dash.Playing() {
		t.Errorf("opening the drawer did not stop playback")
	}
}

func TestHelpDialog(t *testing.T) {
	m := loadedModel(t)
	press(m, "?")
	if m.activeDialog == nil || !m.activeDialog.IsVisible() {
		t.Fatalf("? did not open help")
	}
	press(m, "3")
	if m.dash.View() != view.Trend {
		t.Errorf("keys leaked through the help dialog")
	}
	press(m, "esc")
	if m.activeDialog != nil {
		t.Errorf("esc did not close help")
	}
}

func TestExport(t *testing.T) {
	m := loadedModel(t)
	path := filepath.Join(t.TempDir(), "table.csv")

	cmd := m.exportCmd(path)
	msg := cmd()
	if _, ok := msg.(dialogs.ExportOKMsg); !ok {
		t.Fatalf("export returned %#v", msg)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if want := "code,name,2000,2001,2002,2003,2004,2005"; lines[0] != want {
		t.Errorf("header = %q, want %q", lines[0], want)
	}
	if !strings.HasPrefix(lines[1], "CHN,China,") {
		t.Errorf("first row %q, want the table's sort order", lines[1])
	}

	m.Update(dialogs.ExportConfirmedMsg{Path: filepath.Join(t.TempDir(), "out.txt")})
	if m.lastDir == "" {
		t.Errorf("confirm did not remember the directory")
	}
}

func TestDefaultExportName(t *testing.T) {
	m := loadedModel(t)
	for _, test := range []struct {
		keys []string
		want string
	}{
		{nil, "popviz-line.png"},
		{[]string{"4"}, "popviz-map.geojson"},
		{[]string{"T"}, "popviz-table.csv"},
	} {
		press(m, test.keys...)
		if got := m.defaultExportName(); got != test.want {
			t.Errorf("after %v name = %q, want %q", test.keys, got, test.want)
		}
	}
}

func TestReload(t *testing.T) {
	m := newModel(staticSource{ds: narrowDataset()}, dashboard.Options{Interval: time.Millisecond})
	m.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	m.Update(loadedMsg{ds: testDataset()})
	color := m.dash.ColorFor("CHN")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	if cmd == nil || !m.data.loading {
		t.Fatalf("ctrl+r did not start a fetch")
	}
	if _, again := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR}); again != nil {
		t.Errorf("second ctrl+r while loading started another fetch")
	}
	if got := m.chartContent(80); strings.Contains(got, "Loading data") {
		t.Errorf("data left the screen while reloading:\n%s", got)
	}

	m.Update(fetchCmd(m.data.source)())
	if m.data.loading {
		t.Errorf("still loading after the reload arrived")
	}
	if diff := cmp.Diff(timewindow.Range{Start: 1994, End: 1994}, m.dash.Range()); diff != "" {
		t.Errorf("range after reload (-want +got):\n%s", diff)
	}
	if got := m.dash.Year(); got != 1994 {
		t.Errorf("year after reload = %d, want 1994", got)
	}
	if diff := cmp.Diff(timewindow.Range{Start: 1994, End: 1994}, m.table.rng); diff != "" {
		t.Errorf("table range after reload (-want +got):\n%s", diff)
	}
	if got := m.dash.SelectedCount(); got != 2 {
		t.Errorf("selection after reload = %d, want 2", got)
	}
	if got := m.dash.ColorFor("CHN"); got != color {
		t.Errorf("China changed color on reload: %s -> %s", color, got)
	}
}

func TestReloadWithoutSource(t *testing.T) {
	m := loadedModel(t)
	press(m, "f5")
	if m.data.loading || !strings.Contains(m.ui.noticeMsg, "No data source") {
		t.Errorf("reload without a source: loading=%v notice=%q", m.data.loading, m.ui.noticeMsg)
	}
}

func TestFailedReloadKeepsData(t *testing.T) {
	m := loadedModel(t)
	m.Update(loadErrMsg{err: errors.New("connection refused")})
	if !m.dash.Loaded() {
		t.Fatalf("failed reload dropped the dataset")
	}
	if got := m.chartContent(80); strings.Contains(got, "Could not load") {
		t.Errorf("chart replaced by the error:\n%s", got)
	}
	if !strings.Contains(m.ui.noticeMsg, "connection refused") {
		t.Errorf("notice = %q", m.ui.noticeMsg)
	}
}
