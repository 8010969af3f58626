package main

import "testing"

func TestShiftRange(t *testing.T) {
	for _, test := range []struct {
		description        string
		start, end, delta  int
		wantStart, wantEnd int
	}{
		{"forward", 2000, 2005, 1, 2001, 2006},
		{"stops at the first year", 2000, 2005, -20, 1990, 1995},
		{"stops at the last year", 2000, 2005, 20, 2005, 2010},
		{"full span does not move", 1990, 2010, 1, 1990, 2010},
	} {
		t.Run(test.description, func(t *testing.T) {
			start, end := shiftRange(test.start, test.end, test.delta, 1990, 2010)
			if start != test.wantStart || end != test.wantEnd {
				t.Errorf("shiftRange = %d-%d, want %d-%d", start, end, test.wantStart, test.wantEnd)
			}
		})
	}
}

func TestExpandRange(t *testing.T) {
	for _, test := range []struct {
		description        string
		delta              int
		wantStart, wantEnd int
	}{
		{"earlier start", -3, 1997, 2005},
		{"later end, clamped", 10, 2000, 2010},
		{"no change", 0, 2000, 2005},
	} {
		t.Run(test.description, func(t *testing.T) {
			start, end := expandRange(2000, 2005, test.delta, 1990, 2010)
			if start != test.wantStart || end != test.wantEnd {
				t.Errorf("expandRange = %d-%d, want %d-%d", start, end, test.wantStart, test.wantEnd)
			}
		})
	}
}

func TestDefaultWindowBounds(t *testing.T) {
	for _, test := range []struct {
		min, max           int
		wantStart, wantEnd int
	}{
		{1960, 2023, 2000, 2023},
		{2005, 2023, 2005, 2023},
		{1950, 1990, 1990, 1990},
	} {
		start, end := defaultWindowBounds(test.min, test.max)
		if start != test.wantStart || end != test.wantEnd {
			t.Errorf("defaultWindowBounds(%d, %d) = %d-%d, want %d-%d",
				test.min, test.max, start, end, test.wantStart, test.wantEnd)
		}
	}
}

func TestScrubberBar(t *testing.T) {
	for _, test := range []struct {
		description string
		width       int
		start, end  int
		want        string
	}{
		{"range", 11, 2002, 2005, "--[==]-----"},
		{"single year", 11, 2010, 2010, "----------|"},
		{"whole span", 11, 2000, 2010, "[=========]"},
	} {
		t.Run(test.description, func(t *testing.T) {
			if got := scrubberBar(test.width, 2000, 2010, test.start, test.end); got != test.want {
				t.Errorf("scrubberBar = %q, want %q", got, test.want)
			}
		})
	}
}

func TestParseYear(t *testing.T) {
	if y, ok := parseYear(" 1999 "); !ok || y != 1999 {
		t.Errorf("parseYear = %d, %v", y, ok)
	}
	for _, raw := range []string{"", "19x9"} {
		if _, ok := parseYear(raw); ok {
			t.Errorf("parseYear(%q) accepted", raw)
		}
	}
}
