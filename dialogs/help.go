package dialogs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"
)

const helpPerPage = 14

// Help lists key bindings, a page at a time.
type Help struct {
	visible  bool
	bindings []key.Binding
	pager    paginator.Model
}

func (d Help) Init() tea.Cmd { return nil }

func NewHelpDialog(bindings []key.Binding) *Help {
	p := paginator.New()
	p.Type = paginator.Dots
	p.PerPage = helpPerPage
	p.SetTotalPages(len(bindings))
	return &Help{visible: true, bindings: bindings, pager: p}
}

func (d *Help) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter", "esc", "?", "q":
			d.visible = false
			return d, nil
		}
	}
	var cmd tea.Cmd
	d.pager, cmd = d.pager.Update(msg)
	return d, cmd
}

func (d Help) View() string {
	if !d.visible {
		return ""
	}
	start, end := d.pager.GetSliceBounds(len(d.bindings))
	var lines []string
	for _, b := range d.bindings[start:end] {
		h := b.Help()
		lines = append(lines, fmt.Sprintf("%-14s %s", h.Key, h.Desc))
	}
	hint := "enter/esc to return"
	if d.pager.TotalPages > 1 {
		lines = append(lines, "", d.pager.View())
		hint = "←/→ page • " + hint
	}
	return box("Keys", strings.Join(lines, "\n"), hint)
}

func (d *Help) Show() { d.visible = true }
func (d *Help) Hide() { d.visible = false }

func (d *Help) Focus() tea.Cmd { return nil }
func (d *Help) Blur()          {}
func (d Help) IsVisible() bool { return d.visible }
