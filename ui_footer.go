package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type FooterState struct {
	Mode      string
	ModeInput string

	Source string

	View    string
	Window  string
	Playing bool

	Selected int
	Total    int

	StatusMessage string
	Legend        string
}

type FooterStyles struct {
	BarBG       lipgloss.Color
	StatusBG    lipgloss.Color
	ModePillBG  lipgloss.Color
	ModePillFG  lipgloss.Color
	PlayPillBG  lipgloss.Color
	PausePillBG lipgloss.Color
	FileNameFG  lipgloss.Color
	TextFG      lipgloss.Color
	DimFG       lipgloss.Color
	StatusFG    lipgloss.Color
	LegendFG    lipgloss.Color
}

func DefaultFooterStyles() FooterStyles {
	return FooterStyles{
		BarBG:       lipgloss.Color("#2b2b2b"),
		StatusBG:    lipgloss.Color("#000000"),
		ModePillBG:  lipgloss.Color("#ff9f1c"),
		ModePillFG:  lipgloss.Color("#000000"),
		PlayPillBG:  lipgloss.Color("#2ec4b6"),
		PausePillBG: lipgloss.Color("#6b7280"),
		FileNameFG:  lipgloss.Color("#e0e0e0"),
		TextFG:      lipgloss.Color("#cfcfcf"),
		DimFG:       lipgloss.Color("#a0a0a0"),
		StatusFG:    lipgloss.Color("#9a9a9a"),
		LegendFG:    lipgloss.Color("#b0b0b0"),
	}
}

const (
	playLabel  = "▶ PLAYING"
	pauseLabel = "❚❚ PAUSED"
)

func RenderFooter(width int, st FooterState, styles FooterStyles) string {
	if width <= 0 {
		return ""
	}
	if st.Mode == "" {
		st.Mode = "NORMAL"
	}
	if st.Legend == "" {
		st.Legend = "(? help · / search · t time · p play)"
	}
	if st.Selected < 0 {
		st.Selected = 0
	}
	if st.Total < 0 {
		st.Total = 0
	}

	line1 := renderControlBar(width, st, styles)
	line2 := renderStatusBar(width, st, styles)
	return line1 + "\n" + line2
}

func renderControlBar(width int, st FooterState, styles FooterStyles) string {
	gapW := 1

	rightPlain := fmt.Sprintf(" Selected %d/%d", st.Selected, st.Total)
	rightPlain = truncatePlain(rightPlain, width)
	rightW := runeWidth(rightPlain)

	leftW := max(0, width-rightW)

	// Columns after the mode pill each pay for a gap, and only when they get
	// any width at all.
	avail := leftW
	modeColW := min(runeWidth(st.Mode)+2, avail)
	avail -= modeColW
	take := func(want int) int {
		w := min(want, max(0, avail-gapW))
		if w > 0 {
			avail -= w + gapW
		}
		return w
	}

	playText := pauseLabel
	if st.Playing {
		playText = playLabel
	}
	playColW := take(runeWidth(playText) + 2)
	viewPlain := fmt.Sprintf("[VIEW: %s] · [WINDOW: %s]", st.View, st.Window)
	viewColW := take(runeWidth(viewPlain))
	sourceColW := take(avail)

	gap := strings.Repeat(" ", gapW)
	left := renderPill(modeColW, st.Mode, styles.ModePillBG, styles)
	if sourceColW > 0 {
		left += gap + renderSourceSegment(sourceColW, st, styles)
	}
	if viewColW > 0 {
		left += gap + applyFG(padRightPlain(truncatePlain(viewPlain, viewColW), viewColW), styles.DimFG, styles.TextFG)
	}
	if playColW > 0 {
		pillBG := styles.PausePillBG
		if st.Playing {
			pillBG = styles.PlayPillBG
		}
		left += gap + renderPill(playColW, playText, pillBG, styles)
	}
	left += strings.Repeat(" ", avail)

	return applyBar(left+rightPlain, styles.BarBG, styles.TextFG)
}

func renderStatusBar(width int, st FooterState, styles FooterStyles) string {
	legendPlain := truncatePlain(st.Legend, width)
	legendW := runeWidth(legendPlain)

	leftW := max(0, width-legendW)

	msgPlain := truncatePlain(st.StatusMessage, leftW)
	msgPlain = padRightPlain(msgPlain, leftW)

	linePlain := applyFG(msgPlain, styles.StatusFG, styles.StatusFG) + applyFG(legendPlain, styles.LegendFG, styles.StatusFG)
	return applyBar(linePlain, styles.StatusBG, styles.StatusFG)
}

func renderPill(colW int, text string, bg lipgloss.Color, styles FooterStyles) string {
	if colW <= 0 {
		return ""
	}
	innerW := max(0, colW-2)
	pillPlain := " " + truncatePlain(text, innerW) + " "
	pillPlain = truncatePlain(pillPlain, colW)
	pad := strings.Repeat(" ", colW-runeWidth(pillPlain))

	pill := ansiBg(bg) + ansiFg(styles.ModePillFG) + pillPlain
	pill += ansiBg(styles.BarBG) + ansiFg(styles.TextFG) + pad
	return pill
}

func renderSourceSegment(colW int, st FooterState, styles FooterStyles) string {
	if colW <= 0 {
		return ""
	}
	name := strings.TrimSpace(st.Source)
	if name == "" {
		name = "(no source)"
	}
	remaining := colW
	prefix := "▸ "
	mid := " ▸ "
	sourcePlain := truncatePlain(prefix+name, remaining)
	remaining -= runeWidth(sourcePlain)

	inputPlain := ""
	if remaining > 0 {
		if input := strings.TrimSpace(st.ModeInput); input != "" {
			inputPlain = truncatePlain(mid+input, remaining)
			remaining -= runeWidth(inputPlain)
		}
	}
	pad := strings.Repeat(" ", max(0, remaining))
	return applyFG(sourcePlain, styles.FileNameFG, styles.TextFG) + inputPlain + pad
}

func applyBar(s string, bg lipgloss.Color, baseFG lipgloss.Color) string {
	return ansiBg(bg) + ansiFg(baseFG) + s + "\x1b[0m"
}

// modeLabel names the footer mode pill.
func (m *model) modeLabel() string {
	switch m.ui.mode {
	case modeCommand:
		switch m.ui.command.cmd {
		case CmdSearch:
			return "SEARCH"
		case CmdJump:
			return "JUMP"
		}
	case modeTimeWindow:
		return "TIME"
	}
	if m.ui.focus == focusTable {
		return "TABLE"
	}
	return "NORMAL"
}

func applyFG(s string, fg lipgloss.Color, resetFG lipgloss.Color) string {
	return ansiFg(fg) + s + ansiFg(resetFG)
}

func ansiFg(c lipgloss.Color) string {
	return ansiColor(false, c)
}

func ansiBg(c lipgloss.Color) string {
	return ansiColor(true, c)
}

func ansiColor(isBg bool, c lipgloss.Color) string {
	s := string(c)
	if s == "" {
		if isBg {
			return "\x1b[49m"
		}
		return "\x1b[39m"
	}
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		r, _ := strconv.ParseInt(s[1:3], 16, 0)
		g, _ := strconv.ParseInt(s[3:5], 16, 0)
		b, _ := strconv.ParseInt(s[5:7], 16, 0)
		code := 38
		if isBg {
			code = 48
		}
		return fmt.Sprintf("\x1b[%d;2;%d;%d;%dm", code, r, g, b)
	}
	return ""
}

func padRightPlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.FillRight(s, w)
}

func truncatePlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.Truncate(s, w, "")
}

func runeWidth(s string) int {
	return runewidth.StringWidth(s)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
