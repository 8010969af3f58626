package dialogs

import tea "github.com/charmbracelet/bubbletea"

// Dialog is a modal drawn over the dashboard. The model routes keys to the
// active dialog until IsVisible reports false.
type Dialog interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Dialog, tea.Cmd)
	View() string

	Focus() tea.Cmd
	Blur()
	IsVisible() bool
	Show()
	Hide()
}
