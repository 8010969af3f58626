package main

type mode int

const (
	modeView mode = iota
	modeCommand
	modeTimeWindow
)

// focus is the pane that receives navigation keys.
type focus int

const (
	focusSidebar focus = iota
	focusTable
)

type uiState struct {
	mode       mode
	focus      focus
	command    CommandInput
	noticeMsg  string
	noticeType noticeKind
	noticeSeq  int

	searchQuery   string
	cursor        int // index into data.visible
	sidebarOffset int

	timeWindow timeWindowUI
}
