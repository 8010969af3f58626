package main

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/andareed/popviz/view"
)

const (
	timeWindowFocusStart = iota
	timeWindowFocusEnd
	timeWindowFocusScrubber
)

const (
	timeWindowDrawerContentHeight = 5
	timeWindowDrawerHeight        = timeWindowDrawerContentHeight + 2
)

// timeWindowSteps are the scrubber step sizes, in years.
var timeWindowSteps = []int{1, 5, 10}

type timeWindowUI struct {
	open     bool
	focus    int
	category view.Category

	// startInput doubles as the year input for snapshot views.
	startInput textinput.Model
	endInput   textinput.Model
	errorMsg   string

	draftStart int
	draftEnd   int
	stepIdx    int
}

func newTimeWindowUI() timeWindowUI {
	return timeWindowUI{
		startInput: initTimeWindowInput(),
		endInput:   initTimeWindowInput(),
	}
}

func initTimeWindowInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "YYYY"
	ti.CharLimit = 4
	ti.Width = 6
	ti.Prompt = ""
	return ti
}
