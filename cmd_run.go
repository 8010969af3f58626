package main

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) enterCommandMode(cmd Command) {
	m.ui.command = CommandInput{cmd: cmd}
	if cmd == CmdSearch {
		m.ui.command.buf = m.ui.searchQuery
	}
	m.ui.mode = modeCommand
}

func (m *model) runCommand() tea.Cmd {
	switch m.ui.command.cmd {
	case CmdJump:
		return m.jumpTo(m.ui.command.buf)
	case CmdSearch:
		m.setSearchQuery(m.ui.command.buf)
		return nil
	}
	return nil
}

func (m *model) exitCommandMode() {
	m.ui.command = CommandInput{}
	m.ui.mode = modeView
}

func (m *model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// esc abandons the command; for search it also clears the query
	if msg.Type == tea.KeyEsc {
		if m.ui.command.cmd == CmdSearch {
			m.setSearchQuery("")
		}
		m.exitCommandMode()
		return m, nil
	}

	if msg.Type == tea.KeyEnter {
		cmd := m.runCommand()
		m.exitCommandMode()
		return m, cmd
	}

	switch msg.Type {
	case tea.KeyBackspace:
		if r := []rune(m.ui.command.buf); len(r) > 0 {
			m.ui.command.buf = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.ui.command.buf += " "
	case tea.KeyRunes:
		m.ui.command.buf += string(msg.Runes)
	default:
		return m, nil
	}

	// search narrows the sidebar while typing
	if m.ui.command.cmd == CmdSearch {
		m.setSearchQuery(m.ui.command.buf)
	}
	return m, nil
}
