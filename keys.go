package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit        key.Binding
	NextView    key.Binding
	LineView    key.Binding
	PieView     key.Binding
	BarView     key.Binding
	MapView     key.Binding
	RowDown     key.Binding
	RowUp       key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Top         key.Binding
	Bottom      key.Binding
	Toggle      key.Binding
	Search      key.Binding
	Jump        key.Binding
	TimeWindow  key.Binding
	Play        key.Binding
	Table       key.Binding
	ScrollDown  key.Binding
	ScrollUp    key.Binding
	ExportFile  key.Binding
	CopyFrame   key.Binding
	OpenHelp    key.Binding
	Reload      key.Binding
	SortNext    key.Binding
	SortReverse key.Binding
	TableMode   key.Binding
	NextPage    key.Binding
	PrevPage    key.Binding
	PerPage     key.Binding
	YearsBack   key.Binding
	YearsFwd    key.Binding
	YearsReset  key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	NextView: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next view"),
	),
	LineView: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "line view"),
	),
	PieView: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "pie view"),
	),
	BarView: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "bar view"),
	),
	MapView: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "map view"),
	),
	RowDown: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "move down"),
	),
	RowUp: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "move up"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("u", "pgup"),
		key.WithHelp("u/pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("d", "pgdown"),
		key.WithHelp("d/pgdown", "page down"),
	),
	Top: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "first country"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "last country"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "toggle country"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search countries"),
	),
	Jump: key.NewBinding(
		key.WithKeys(":"),
		key.WithHelp(":", "jump to rank or code"),
	),
	TimeWindow: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "time window"),
	),
	Play: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "play / pause"),
	),
	Table: key.NewBinding(
		key.WithKeys("T"),
		key.WithHelp("T", "toggle data table"),
	),
	ScrollDown: key.NewBinding(
		key.WithKeys("J", "ctrl+d"),
		key.WithHelp("J", "scroll chart down"),
	),
	ScrollUp: key.NewBinding(
		key.WithKeys("K", "ctrl+u"),
		key.WithHelp("K", "scroll chart up"),
	),
	ExportFile: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "export to file"),
	),
	CopyFrame: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy chart data"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
	Reload: key.NewBinding(
		key.WithKeys("ctrl+r", "f5"),
		key.WithHelp("ctrl+r", "reload data"),
	),
	SortNext: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "table: next sort column"),
	),
	SortReverse: key.NewBinding(
		key.WithKeys("S"),
		key.WithHelp("S", "table: reverse sort"),
	),
	TableMode: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "table: simple / complete"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("]", "l", "right"),
		key.WithHelp("]", "table: next page"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("[", "h", "left"),
		key.WithHelp("[", "table: previous page"),
	),
	PerPage: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "table: rows per page"),
	),
	YearsBack: key.NewBinding(
		key.WithKeys("<"),
		key.WithHelp("<", "table: years earlier"),
	),
	YearsFwd: key.NewBinding(
		key.WithKeys(">"),
		key.WithHelp(">", "table: years later"),
	),
	YearsReset: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "table: reset years"),
	),
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.Quit,
		k.NextView,
		k.LineView,
		k.PieView,
		k.BarView,
		k.MapView,
		k.RowDown,
		k.RowUp,
		k.Toggle,
		k.Search,
		k.Jump,
		k.TimeWindow,
		k.Play,
		k.Table,
		k.ExportFile,
		k.CopyFrame,
		k.Reload,
		k.SortNext,
		k.SortReverse,
		k.TableMode,
		k.NextPage,
		k.PerPage,
		k.YearsBack,
		k.YearsFwd,
	}
}
