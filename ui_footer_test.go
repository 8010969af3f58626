package main

import (
	"strings"
	"testing"

	"github.com/muesli/reflow/ansi"
)

func TestRenderFooterWidth(t *testing.T) {
	st := FooterState{
		Mode:          "SEARCH",
		ModeInput:     "[SEARCH] country: ind",
		Source:        "http://localhost:8080",
		View:          "Population Trend",
		Window:        "2000-2023",
		Playing:       true,
		Selected:      10,
		Total:         217,
		StatusMessage: "Loaded 217 countries",
	}
	for _, width := range []int{160, 80, 30, 18, 10} {
		got := RenderFooter(width, st, DefaultFooterStyles())
		lines := strings.Split(got, "\n")
		if len(lines) != 2 {
			t.Fatalf("width %d: %d lines, want 2", width, len(lines))
		}
		for i, line := range lines {
			if w := ansi.PrintableRuneWidth(line); w != width {
				t.Errorf("width %d: line %d is %d cells", width, i, w)
			}
		}
	}
	if RenderFooter(0, st, DefaultFooterStyles()) != "" {
		t.Errorf("zero width footer should be empty")
	}
}

func TestRenderFooterContent(t *testing.T) {
	got := RenderFooter(160, FooterState{Selected: 3, Total: 5}, DefaultFooterStyles())
	for _, want := range []string{"NORMAL", pauseLabel, "Selected 3/5", "? help"} {
		if !strings.Contains(got, want) {
			t.Errorf("footer missing %q:\n%q", want, got)
		}
	}
}

func TestModeLabel(t *testing.T) {
	m := loadedModel(t)
	for _, test := range []struct {
		keys []string
		want string
	}{
		{nil, "NORMAL"},
		{[]string{"/"}, "SEARCH"},
		{[]string{"esc", ":"}, "JUMP"},
		{[]string{"esc", "t"}, "TIME"},
		{[]string{"esc", "T"}, "TABLE"},
	} {
		press(m, test.keys...)
		if got := m.modeLabel(); got != test.want {
			t.Errorf("after %v mode = %q, want %q", test.keys, got, test.want)
		}
	}
}

func TestHighlightMatches(t *testing.T) {
	if got := highlightMatches("India", ""); got != "India" {
		t.Errorf("empty query changed text: %q", got)
	}
	got := highlightMatches("Indonesia", "in")
	if ansi.PrintableRuneWidth(got) != len("Indonesia") {
		t.Errorf("highlight changed the visible text: %q", got)
	}
	if !strings.Contains(got, "done") || !strings.Contains(got, "sia") {
		t.Errorf("unmatched runs lost: %q", got)
	}
}
